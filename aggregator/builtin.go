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

package aggregator

import (
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/cockroachdb/apd/v3"
	"github.com/rulego/tabular/condition"
	"github.com/rulego/tabular/dataset"
	"github.com/rulego/tabular/types"
)

// Any reports whether at least one non-null value satisfies the
// predicate. Without a predicate it tests the values themselves, which
// is only meaningful for Boolean columns. Nulls are ignored, never
// counted as failures.
type Any struct {
	predicate condition.Predicate
}

// NewAny builds the predicate-less form, valid on Boolean columns.
func NewAny() *Any { return &Any{} }

// NewAnyWith builds the predicate form, valid on every data type.
func NewAnyWith(p condition.Predicate) *Any { return &Any{predicate: p} }

// Identity implements dataset.Aggregation. An opaque Go function
// predicate yields the zero identity: such instances bypass the cache.
func (a *Any) Identity() dataset.Identity {
	return existentialIdentity(types.Any, a.predicate)
}

// Validate implements dataset.Aggregation.
func (a *Any) Validate(c *dataset.Column) error {
	return validateKind(types.Any, c)
}

// Run implements dataset.Aggregation.
func (a *Any) Run(c *dataset.Column) (interface{}, error) {
	return runExistential(c, a.predicate, true)
}

// All reports whether every non-null value satisfies the predicate.
// A column with no non-null values is vacuously true.
type All struct {
	predicate condition.Predicate
}

// NewAll builds the predicate-less form, valid on Boolean columns.
func NewAll() *All { return &All{} }

// NewAllWith builds the predicate form, valid on every data type.
func NewAllWith(p condition.Predicate) *All { return &All{predicate: p} }

// Identity implements dataset.Aggregation.
func (a *All) Identity() dataset.Identity {
	return existentialIdentity(types.All, a.predicate)
}

// Validate implements dataset.Aggregation.
func (a *All) Validate(c *dataset.Column) error {
	return validateKind(types.All, c)
}

// Run implements dataset.Aggregation.
func (a *All) Run(c *dataset.Column) (interface{}, error) {
	return runExistential(c, a.predicate, false)
}

func existentialIdentity(kind types.AggregateKind, p condition.Predicate) dataset.Identity {
	if p == nil {
		return dataset.NewIdentity(kind, "")
	}
	if src, ok := condition.Source(p); ok {
		return dataset.NewIdentity(kind, src)
	}
	return dataset.Identity{}
}

// runExistential scans non-null values and short-circuits on the first
// one whose predicate result equals match.
func runExistential(c *dataset.Column, p condition.Predicate, match bool) (interface{}, error) {
	if p == nil {
		if c.DataType() != types.Boolean {
			return nil, dataset.NewUsageError(
				"column '%s' is not Boolean: a predicate is required", c.Name())
		}
		p = condition.Func(func(v interface{}) bool { return v.(bool) })
	}
	for _, v := range c.Data() {
		if v == nil {
			continue
		}
		ok, err := p.Evaluate(v)
		if err != nil {
			return nil, dataset.NewUsageError("predicate failed on column '%s': %v", c.Name(), err)
		}
		if ok == match {
			return match, nil
		}
	}
	return !match, nil
}

// Length is the total row count, nulls included. Valid on every type.
type Length struct{}

// NewLength builds a Length aggregation.
func NewLength() *Length { return &Length{} }

// Identity implements dataset.Aggregation.
func (l *Length) Identity() dataset.Identity {
	return dataset.NewIdentity(types.Length, "")
}

// Validate implements dataset.Aggregation.
func (l *Length) Validate(c *dataset.Column) error {
	return validateKind(types.Length, c)
}

// Run implements dataset.Aggregation.
func (l *Length) Run(c *dataset.Column) (interface{}, error) {
	return c.Len(), nil
}

// Count is the number of values exactly equal to a target. The target
// may be null, in which case nulls are counted.
type Count struct {
	target interface{}
}

// NewCount builds a Count aggregation. Common Go scalars are
// normalized into the typed value domain: ints and floats become
// decimals, so NewCount(1) matches a Number column's values.
func NewCount(target interface{}) *Count {
	return &Count{target: normalizeTarget(target)}
}

func normalizeTarget(target interface{}) interface{} {
	switch v := target.(type) {
	case int:
		return apd.New(int64(v), 0)
	case int32:
		return apd.New(int64(v), 0)
	case int64:
		return apd.New(v, 0)
	case float64:
		if d, err := new(apd.Decimal).SetFloat64(v); err == nil {
			return d
		}
		return target
	default:
		return target
	}
}

// Identity implements dataset.Aggregation. Distinct targets yield
// distinct identities; a null target renders as "null" and a text
// target is quoted, so Count(nil) and Count("null") never collide.
func (ct *Count) Identity() dataset.Identity {
	var param string
	switch v := ct.target.(type) {
	case nil:
		param = "null"
	case string:
		param = strconv.Quote(v)
	default:
		param = types.FormatValue(v)
	}
	return dataset.NewIdentity(types.Count, param)
}

// Validate implements dataset.Aggregation.
func (ct *Count) Validate(c *dataset.Column) error {
	return validateKind(types.Count, c)
}

// Run implements dataset.Aggregation.
func (ct *Count) Run(c *dataset.Column) (interface{}, error) {
	count := 0
	for _, v := range c.Data() {
		if dataset.ValueEqual(v, ct.target) {
			count++
		}
	}
	return count, nil
}

// MaxLength is the maximum character length among non-null Text
// values. An all-null column has maximum length zero.
type MaxLength struct{}

// NewMaxLength builds a MaxLength aggregation.
func NewMaxLength() *MaxLength { return &MaxLength{} }

// Identity implements dataset.Aggregation.
func (m *MaxLength) Identity() dataset.Identity {
	return dataset.NewIdentity(types.MaxLength, "")
}

// Validate implements dataset.Aggregation.
func (m *MaxLength) Validate(c *dataset.Column) error {
	return validateKind(types.MaxLength, c)
}

// Run implements dataset.Aggregation.
func (m *MaxLength) Run(c *dataset.Column) (interface{}, error) {
	longest := 0
	for _, v := range c.DataWithoutNulls() {
		s, ok := v.(string)
		if !ok {
			return nil, dataset.NewDataTypeError(types.MaxLength, c.Name(), c.DataType().Name())
		}
		if n := utf8.RuneCountInString(s); n > longest {
			longest = n
		}
	}
	return longest, nil
}

// MaxPrecision is the maximum count of significant fractional digits
// among non-null Number values. It drives display and quantization
// decisions elsewhere; it is not itself a statistic.
type MaxPrecision struct{}

// NewMaxPrecision builds a MaxPrecision aggregation.
func NewMaxPrecision() *MaxPrecision { return &MaxPrecision{} }

// Identity implements dataset.Aggregation.
func (m *MaxPrecision) Identity() dataset.Identity {
	return dataset.NewIdentity(types.MaxPrecision, "")
}

// Validate implements dataset.Aggregation.
func (m *MaxPrecision) Validate(c *dataset.Column) error {
	return validateKind(types.MaxPrecision, c)
}

// Run implements dataset.Aggregation.
func (m *MaxPrecision) Run(c *dataset.Column) (interface{}, error) {
	precision := 0
	reduced := new(apd.Decimal)
	for _, v := range c.DataWithoutNulls() {
		d, ok := v.(*apd.Decimal)
		if !ok {
			return nil, dataset.NewDataTypeError(types.MaxPrecision, c.Name(), c.DataType().Name())
		}
		// Trailing zeros are not significant: 1.10 has precision 1.
		reduced.Reduce(d)
		if reduced.Exponent < 0 && int(-reduced.Exponent) > precision {
			precision = int(-reduced.Exponent)
		}
	}
	return precision, nil
}

// Sum is the sum of non-null values. The sum of an all-null column is
// the arithmetic identity: decimal zero for Number, zero duration for
// TimeDelta.
type Sum struct{}

// NewSum builds a Sum aggregation.
func NewSum() *Sum { return &Sum{} }

// Identity implements dataset.Aggregation.
func (s *Sum) Identity() dataset.Identity {
	return dataset.NewIdentity(types.Sum, "")
}

// Validate implements dataset.Aggregation.
func (s *Sum) Validate(c *dataset.Column) error {
	return validateKind(types.Sum, c)
}

// Run implements dataset.Aggregation.
func (s *Sum) Run(c *dataset.Column) (interface{}, error) {
	if c.DataType() == types.TimeDelta {
		var total time.Duration
		for _, v := range c.DataWithoutNulls() {
			total += v.(time.Duration)
		}
		return total, nil
	}
	ds := make([]*apd.Decimal, 0, c.Len())
	for _, v := range c.DataWithoutNulls() {
		d, ok := v.(*apd.Decimal)
		if !ok {
			return nil, dataset.NewDataTypeError(types.Sum, c.Name(), c.DataType().Name())
		}
		ds = append(ds, d)
	}
	return sumDecimals(ds)
}

// Min is the smallest non-null value of an orderable column.
type Min struct{}

// NewMin builds a Min aggregation.
func NewMin() *Min { return &Min{} }

// Identity implements dataset.Aggregation.
func (m *Min) Identity() dataset.Identity {
	return dataset.NewIdentity(types.Min, "")
}

// Validate implements dataset.Aggregation.
func (m *Min) Validate(c *dataset.Column) error {
	return validateKind(types.Min, c)
}

// Run implements dataset.Aggregation.
func (m *Min) Run(c *dataset.Column) (interface{}, error) {
	return extremum(types.Min, c, true)
}

// Max is the largest non-null value of an orderable column.
type Max struct{}

// NewMax builds a Max aggregation.
func NewMax() *Max { return &Max{} }

// Identity implements dataset.Aggregation.
func (m *Max) Identity() dataset.Identity {
	return dataset.NewIdentity(types.Max, "")
}

// Validate implements dataset.Aggregation.
func (m *Max) Validate(c *dataset.Column) error {
	return validateKind(types.Max, c)
}

// Run implements dataset.Aggregation.
func (m *Max) Run(c *dataset.Column) (interface{}, error) {
	return extremum(types.Max, c, false)
}

func extremum(kind types.AggregateKind, c *dataset.Column, min bool) (interface{}, error) {
	values := c.DataWithoutNulls()
	if len(values) == 0 {
		return nil, dataset.NewEmptyDataError(kind, c.Name(), "no non-null values")
	}
	best := values[0]
	for _, v := range values[1:] {
		if min {
			if dataset.ValueLess(v, best) {
				best = v
			}
		} else if dataset.ValueLess(best, v) {
			best = v
		}
	}
	return best, nil
}
