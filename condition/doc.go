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
Package condition provides single-value boolean predicates for the
existential aggregations (Any, All).

A predicate is a pure function over one column value. Two flavors are
supported: Func wraps a plain Go function, and ExprPredicate compiles
an expr-lang expression over the variable "value", e.g.

	p, err := condition.NewExprPredicate(`value > 5`)

Expression predicates carry their source text, which makes the owning
aggregation cacheable; Go function predicates are opaque and the
owning aggregation re-executes on every call.
*/
package condition
