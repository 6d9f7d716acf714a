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
Package types defines the typed value domain of tabular.

A column value is one of a closed set of Go representations, selected by
the column's DataType:

	nil            null (any data type)
	*apd.Decimal   Number
	string         Text
	bool           Boolean
	time.Time      Date, DateTime
	time.Duration  TimeDelta

Numbers use arbitrary-precision decimals so that aggregate computations
(sums, means, variances) are exact and reproducible; binary floating
point is never stored in a column.

Each DataType casts raw construction input into its representation and
answers capability checks: whether a given aggregate kind may run
against a column of that type. No implicit coercion between data types
is ever performed.
*/
package types
