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

// Option configures table construction.
type Option func(*tableConfig)

type tableConfig struct {
	rowNamesColumn string
}

// WithRowNames designates a column whose values key the table's rows,
// enabling lookup by row name on every column. The designated column
// must contain unique, non-null values.
func WithRowNames(columnName string) Option {
	return func(cfg *tableConfig) {
		cfg.rowNamesColumn = columnName
	}
}
