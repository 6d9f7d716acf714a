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

package condition

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Predicate is a pure boolean test over a single non-null column value.
type Predicate interface {
	Evaluate(value interface{}) (bool, error)
}

// Func adapts a plain Go function into a Predicate.
type Func func(value interface{}) bool

// Evaluate implements Predicate.
func (f Func) Evaluate(value interface{}) (bool, error) {
	return f(value), nil
}

// ExprPredicate is a predicate compiled from an expr-lang expression.
// The column value is bound to the variable "value".
type ExprPredicate struct {
	source  string
	program *vm.Program
}

// NewExprPredicate compiles an expression into a predicate. The
// expression must evaluate to a boolean.
func NewExprPredicate(source string) (*ExprPredicate, error) {
	program, err := expr.Compile(source,
		expr.AsBool(),
		expr.AllowUndefinedVariables(),
	)
	if err != nil {
		return nil, fmt.Errorf("compile predicate %q: %w", source, err)
	}
	return &ExprPredicate{source: source, program: program}, nil
}

// Source returns the expression text the predicate was compiled from.
func (p *ExprPredicate) Source() string { return p.source }

// Evaluate implements Predicate.
func (p *ExprPredicate) Evaluate(value interface{}) (bool, error) {
	env := map[string]interface{}{"value": exprValue(value)}
	out, err := expr.Run(p.program, env)
	if err != nil {
		return false, fmt.Errorf("evaluate predicate %q: %w", p.source, err)
	}
	b, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("predicate %q returned %T, want bool", p.source, out)
	}
	return b, nil
}

// Source extracts the expression text from a predicate when it has one.
// Predicates without source text cannot participate in result caching.
func Source(p Predicate) (string, bool) {
	s, ok := p.(interface{ Source() string })
	if !ok {
		return "", false
	}
	return s.Source(), true
}

// exprValue converts a column value into a representation the
// expression VM can compare with literals. Exact decimals become
// float64 here; predicate evaluation is a boolean test, not an
// arithmetic aggregate, so the conversion does not leak into results.
func exprValue(value interface{}) interface{} {
	if d, ok := value.(*apd.Decimal); ok {
		f, err := d.Float64()
		if err != nil {
			return d.String()
		}
		return f
	}
	return value
}
