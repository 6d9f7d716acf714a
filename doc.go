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

/*
Package tabular aggregates fixed-width, heterogeneously-typed tables
with exact decimal arithmetic.

A Table is built once from raw rows and a column schema; every cell is
cast into the typed value domain at construction and columns are
immutable from then on. Statistics are applied per column and cached
per aggregation identity, so repeated questions cost one computation.

	t, err := tabular.NewTable(rows, []tabular.ColumnSpec{
		{Name: "price", Type: types.Number},
		{Name: "sku", Type: types.Text},
	})
	if err != nil {
		return err
	}
	total, err := t.Aggregate("price", aggregator.NewSum())

Numbers are arbitrary-precision decimals throughout. Sums, means,
variances and the percentile family never touch binary floating point,
so results are reproducible bit for bit.

See the aggregator package for the full set of statistics and the
dataset package for the column and caching contract.
*/
package tabular
