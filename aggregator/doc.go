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
Package aggregator implements the concrete column statistics.

Every statistic is a small value object implementing
dataset.Aggregation: it declares which data types it accepts, exposes a
cache identity, and computes its result over a column. Instances are
stateless across invocations (parameters are baked in at construction)
and safe to reuse across many columns.

Numeric statistics operate on apd decimals end to end, so sums, means
and variances are exact and reproducible; results never pass through
binary floating point.

The statistics that assume fully-populated data (Mean, Median, Mode,
the variance family, MAD and the rank-based family) fail with a
null-data error when the column contains any null. Partial aggregation
over sparse data is a methodological error the caller must address
explicitly, not something to paper over by skipping values.
*/
package aggregator
