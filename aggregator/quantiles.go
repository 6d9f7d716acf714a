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
	"sort"
	"strings"

	"github.com/cockroachdb/apd/v3"
	"github.com/rulego/tabular/dataset"
	"github.com/rulego/tabular/types"
)

// Quantiles is the result of a rank-based aggregation: G+1 ascending
// boundary values for G groups. It is immutable and safe to share.
type Quantiles struct {
	boundaries []*apd.Decimal
}

// Groups returns the number of groups G.
func (q *Quantiles) Groups() int {
	return len(q.boundaries) - 1
}

// Boundary returns boundary i, 0 <= i <= Groups. Indexes outside that
// range panic, like a slice access.
func (q *Quantiles) Boundary(i int) *apd.Decimal {
	return q.boundaries[i]
}

// Boundaries returns a copy of all boundaries in ascending order.
func (q *Quantiles) Boundaries() []*apd.Decimal {
	return append([]*apd.Decimal(nil), q.boundaries...)
}

// String renders the boundaries for logs.
func (q *Quantiles) String() string {
	parts := make([]string, len(q.boundaries))
	for i, b := range q.boundaries {
		parts[i] = b.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Locate maps a value to the index of the group it falls into: the
// half-open interval [Boundary(i), Boundary(i+1)). The series maximum
// is the sole exception, admitted into the last group. Values below
// the first boundary or above the last fail with a range error.
func (q *Quantiles) Locate(value interface{}) (int, error) {
	d, err := toDecimal(value)
	if err != nil {
		return 0, err
	}
	last := len(q.boundaries) - 1
	if d.Cmp(q.boundaries[0]) < 0 || d.Cmp(q.boundaries[last]) > 0 {
		return 0, dataset.NewRangeError("value %s is outside the boundary range [%s, %s]",
			d, q.boundaries[0], q.boundaries[last])
	}
	// First boundary strictly greater than the value; the group sits
	// one below it.
	i := sort.Search(len(q.boundaries), func(i int) bool {
		return q.boundaries[i].Cmp(d) > 0
	})
	group := i - 1
	if group > last-1 {
		group = last - 1
	}
	return group, nil
}

// computeQuantiles runs the shared rank-statistic algorithm over a
// fully-populated Number column.
//
// For interior boundary j of G over n ascending values, with rank
// k = n*j/G: an integral k yields the midpoint of the values at
// (1-indexed) positions k and k+1; a fractional k yields the value at
// position ceil(k). Boundary 0 is the minimum, boundary G the maximum.
// This is the CDF-based order-statistic method; all arithmetic stays
// in exact decimals.
func computeQuantiles(kind types.AggregateKind, c *dataset.Column, groups int) (*Quantiles, error) {
	ds, err := completeDecimals(kind, c)
	if err != nil {
		return nil, err
	}
	n := len(ds)
	if n == 0 {
		return nil, dataset.NewEmptyDataError(kind, c.Name(), "requires at least one value")
	}
	sorted := sortDecimals(ds)

	boundaries := make([]*apd.Decimal, groups+1)
	boundaries[0] = new(apd.Decimal).Set(sorted[0])
	boundaries[groups] = new(apd.Decimal).Set(sorted[n-1])
	for j := 1; j < groups; j++ {
		num := n * j
		if num%groups == 0 {
			k := num / groups
			m, err := midpoint(sorted[k-1], sorted[k])
			if err != nil {
				return nil, err
			}
			boundaries[j] = m
		} else {
			boundaries[j] = new(apd.Decimal).Set(sorted[num/groups])
		}
	}
	return &Quantiles{boundaries: boundaries}, nil
}

// quantileAggregation is the shared implementation of the rank-based
// families; only the kind tag and group count differ.
type quantileAggregation struct {
	kind   types.AggregateKind
	groups int
}

// Identity implements dataset.Aggregation.
func (q quantileAggregation) Identity() dataset.Identity {
	return dataset.NewIdentity(q.kind, "")
}

// Validate implements dataset.Aggregation.
func (q quantileAggregation) Validate(c *dataset.Column) error {
	return validateKind(q.kind, c)
}

// Run implements dataset.Aggregation. The result is a *Quantiles.
func (q quantileAggregation) Run(c *dataset.Column) (interface{}, error) {
	return computeQuantiles(q.kind, c, q.groups)
}

// Percentiles divides a Number column into 100 groups.
type Percentiles struct{ quantileAggregation }

// NewPercentiles builds a Percentiles aggregation.
func NewPercentiles() *Percentiles {
	return &Percentiles{quantileAggregation{kind: types.Percentiles, groups: 100}}
}

// Quartiles divides a Number column into 4 groups.
type Quartiles struct{ quantileAggregation }

// NewQuartiles builds a Quartiles aggregation.
func NewQuartiles() *Quartiles {
	return &Quartiles{quantileAggregation{kind: types.Quartiles, groups: 4}}
}

// Quintiles divides a Number column into 5 groups.
type Quintiles struct{ quantileAggregation }

// NewQuintiles builds a Quintiles aggregation.
func NewQuintiles() *Quintiles {
	return &Quintiles{quantileAggregation{kind: types.Quintiles, groups: 5}}
}

// Deciles divides a Number column into 10 groups.
type Deciles struct{ quantileAggregation }

// NewDeciles builds a Deciles aggregation.
func NewDeciles() *Deciles {
	return &Deciles{quantileAggregation{kind: types.Deciles, groups: 10}}
}
