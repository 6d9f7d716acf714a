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

	"github.com/cockroachdb/apd/v3"
	"github.com/rulego/tabular/dataset"
	"github.com/rulego/tabular/types"
)

// decimalCtx is the arithmetic context for every statistic: 28
// significant digits, matching the conventional default of decimal
// statistics packages. Intermediate divisions and roots round here;
// terminating results are exact.
var decimalCtx = apd.BaseContext.WithPrecision(28)

var two = apd.New(2, 0)

// validateKind is the shared Validate implementation: the column's
// data type must accept the aggregation kind.
func validateKind(kind types.AggregateKind, c *dataset.Column) error {
	if !c.DataType().CanAggregate(kind) {
		return dataset.NewDataTypeError(kind, c.Name(), c.DataType().Name())
	}
	return nil
}

// completeDecimals returns every value of a fully-populated Number
// column, in row order. Any null fails with a null-data error.
func completeDecimals(kind types.AggregateKind, c *dataset.Column) ([]*apd.Decimal, error) {
	data := c.Data()
	out := make([]*apd.Decimal, 0, len(data))
	for _, v := range data {
		if v == nil {
			return nil, dataset.NewNullDataError(kind, c.Name())
		}
		d, ok := v.(*apd.Decimal)
		if !ok {
			return nil, dataset.NewDataTypeError(kind, c.Name(), c.DataType().Name())
		}
		out = append(out, d)
	}
	return out, nil
}

// sortDecimals returns a new slice sorted ascending.
func sortDecimals(ds []*apd.Decimal) []*apd.Decimal {
	out := append([]*apd.Decimal(nil), ds...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Cmp(out[j]) < 0
	})
	return out
}

func sumDecimals(ds []*apd.Decimal) (*apd.Decimal, error) {
	total := apd.New(0, 0)
	for _, d := range ds {
		if _, err := decimalCtx.Add(total, total, d); err != nil {
			return nil, err
		}
	}
	return total, nil
}

func meanDecimals(ds []*apd.Decimal) (*apd.Decimal, error) {
	total, err := sumDecimals(ds)
	if err != nil {
		return nil, err
	}
	if _, err := decimalCtx.Quo(total, total, apd.New(int64(len(ds)), 0)); err != nil {
		return nil, err
	}
	return total, nil
}

// midpoint returns (a+b)/2.
func midpoint(a, b *apd.Decimal) (*apd.Decimal, error) {
	m := new(apd.Decimal)
	if _, err := decimalCtx.Add(m, a, b); err != nil {
		return nil, err
	}
	if _, err := decimalCtx.Quo(m, m, two); err != nil {
		return nil, err
	}
	return m, nil
}

// toDecimal coerces a caller-supplied value into a decimal for
// comparisons against computed boundaries. No column value passes
// through here.
func toDecimal(v interface{}) (*apd.Decimal, error) {
	switch x := v.(type) {
	case *apd.Decimal:
		return x, nil
	case int:
		return apd.New(int64(x), 0), nil
	case int64:
		return apd.New(x, 0), nil
	case float64:
		d := new(apd.Decimal)
		if _, err := d.SetFloat64(x); err != nil {
			return nil, dataset.NewUsageError("cannot compare %v: %v", x, err)
		}
		return d, nil
	case string:
		d, _, err := apd.NewFromString(x)
		if err != nil {
			return nil, dataset.NewUsageError("cannot compare %q: %v", x, err)
		}
		return d, nil
	default:
		return nil, dataset.NewUsageError("cannot compare %v (%T) with numeric boundaries", v, v)
	}
}
