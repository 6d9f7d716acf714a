/*
 * Copyright 2025 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package tabular

import (
	"encoding/csv"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/rulego/tabular/types"
)

// formattedRows materializes the table as formatted strings, row by row.
func (t *Table) formattedRows() [][]string {
	data := make([][]interface{}, len(t.columns))
	for j, col := range t.columns {
		data[j] = col.Data()
	}
	rows := make([][]string, t.rowCount)
	for i := 0; i < t.rowCount; i++ {
		row := make([]string, len(t.columns))
		for j := range t.columns {
			row[j] = types.FormatValue(data[j][i])
		}
		rows[i] = row
	}
	return rows
}

// Print renders the table as aligned ASCII output.
func (t *Table) Print(w io.Writer) {
	tw := tablewriter.NewWriter(w)
	tw.SetHeader(t.names)
	tw.AppendBulk(t.formattedRows())
	tw.Render()
}

// WriteCSV writes the table as CSV with a header row. Nulls render as
// empty cells.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.names); err != nil {
		return err
	}
	for _, row := range t.formattedRows() {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
