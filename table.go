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
	"github.com/rulego/tabular/dataset"
	"github.com/rulego/tabular/logger"
	"github.com/rulego/tabular/types"
)

// ColumnSpec names and types one table column.
type ColumnSpec struct {
	Name string
	Type types.DataType
}

// Table is a fixed-width, heterogeneously-typed collection of columns
// of equal length. Cells are cast into the typed value domain at
// construction; the table and its columns are immutable afterwards.
type Table struct {
	columns  []*dataset.Column
	byName   map[string]*dataset.Column
	names    []string
	rowCount int
	rowNames []string
}

// NewTable builds a table from raw rows. Every row must have exactly
// one cell per column spec; every cell must cast cleanly into its
// column's data type.
func NewTable(rows [][]interface{}, specs []ColumnSpec, opts ...Option) (*Table, error) {
	var cfg tableConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(specs) == 0 {
		return nil, dataset.NewUsageError("a table requires at least one column")
	}
	seen := make(map[string]struct{}, len(specs))
	for _, spec := range specs {
		if spec.Name == "" {
			return nil, dataset.NewUsageError("column names must not be empty")
		}
		if spec.Type == nil {
			return nil, dataset.NewUsageError("column '%s' has no data type", spec.Name)
		}
		if _, dup := seen[spec.Name]; dup {
			return nil, dataset.NewUsageError("duplicate column name '%s'", spec.Name)
		}
		seen[spec.Name] = struct{}{}
	}

	cells := make([][]interface{}, len(specs))
	for j := range specs {
		cells[j] = make([]interface{}, len(rows))
	}
	for i, row := range rows {
		if len(row) != len(specs) {
			return nil, dataset.NewUsageError("row %d has %d cells, want %d", i, len(row), len(specs))
		}
		for j, raw := range row {
			v, err := specs[j].Type.Cast(raw)
			if err != nil {
				return nil, dataset.NewUsageError("row %d, column '%s': %v", i, specs[j].Name, err)
			}
			cells[j][i] = v
		}
	}

	var rowNames []string
	if cfg.rowNamesColumn != "" {
		keyIdx := -1
		for j, spec := range specs {
			if spec.Name == cfg.rowNamesColumn {
				keyIdx = j
				break
			}
		}
		if keyIdx < 0 {
			return nil, dataset.NewUsageError("row name column '%s' does not exist", cfg.rowNamesColumn)
		}
		rowNames = make([]string, len(rows))
		for i, v := range cells[keyIdx] {
			if v == nil {
				return nil, dataset.NewUsageError("row name column '%s' is null at row %d", cfg.rowNamesColumn, i)
			}
			rowNames[i] = types.FormatValue(v)
		}
	}

	t := &Table{
		byName:   make(map[string]*dataset.Column, len(specs)),
		rowCount: len(rows),
		rowNames: rowNames,
	}
	for j, spec := range specs {
		col, err := dataset.NewColumn(spec.Name, spec.Type, cells[j], rowNames)
		if err != nil {
			return nil, err
		}
		t.columns = append(t.columns, col)
		t.names = append(t.names, spec.Name)
		t.byName[spec.Name] = col
	}

	logger.Debug("created table: %d columns, %d rows", len(t.columns), t.rowCount)
	return t, nil
}

// Len returns the row count.
func (t *Table) Len() int { return t.rowCount }

// ColumnNames returns the column names in declaration order.
func (t *Table) ColumnNames() []string {
	return append([]string(nil), t.names...)
}

// Columns returns the columns in declaration order.
func (t *Table) Columns() []*dataset.Column {
	return append([]*dataset.Column(nil), t.columns...)
}

// Column returns the named column; unknown names are a usage error.
func (t *Table) Column(name string) (*dataset.Column, error) {
	col, ok := t.byName[name]
	if !ok {
		return nil, dataset.NewUsageError("table has no column '%s'", name)
	}
	return col, nil
}

// RowNames returns the configured row keys, or nil.
func (t *Table) RowNames() []string {
	if t.rowNames == nil {
		return nil
	}
	return append([]string(nil), t.rowNames...)
}

// Aggregate applies an aggregation to the named column.
func (t *Table) Aggregate(column string, agg dataset.Aggregation) (interface{}, error) {
	col, err := t.Column(column)
	if err != nil {
		return nil, err
	}
	return col.Aggregate(agg)
}
