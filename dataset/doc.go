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
Package dataset holds the column model of tabular.

A Column is an immutable, ordered, nullable sequence of typed values
bound to a name and a data type. Columns never change after
construction, which lets every aggregation result be cached forever
under the aggregation's Identity. The Aggregation interface defined
here is the contract every statistic in the aggregator package
implements: type validation, execution, and identity for caching.

Columns are safe for concurrent use. The first computation for a given
identity happens at most once, even under parallel callers.
*/
package dataset
