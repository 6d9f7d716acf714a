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
	"github.com/cockroachdb/apd/v3"
	"github.com/rulego/tabular/dataset"
	"github.com/rulego/tabular/types"
)

// Mean is the arithmetic mean of a fully-populated Number column.
type Mean struct{}

// NewMean builds a Mean aggregation.
func NewMean() *Mean { return &Mean{} }

// Identity implements dataset.Aggregation.
func (m *Mean) Identity() dataset.Identity {
	return dataset.NewIdentity(types.Mean, "")
}

// Validate implements dataset.Aggregation.
func (m *Mean) Validate(c *dataset.Column) error {
	return validateKind(types.Mean, c)
}

// Run implements dataset.Aggregation.
func (m *Mean) Run(c *dataset.Column) (interface{}, error) {
	ds, err := completeDecimals(types.Mean, c)
	if err != nil {
		return nil, err
	}
	if len(ds) == 0 {
		return nil, dataset.NewEmptyDataError(types.Mean, c.Name(), "no values")
	}
	return meanDecimals(ds)
}

// Median is the 50th percentile of a fully-populated Number column.
type Median struct{}

// NewMedian builds a Median aggregation.
func NewMedian() *Median { return &Median{} }

// Identity implements dataset.Aggregation.
func (m *Median) Identity() dataset.Identity {
	return dataset.NewIdentity(types.Median, "")
}

// Validate implements dataset.Aggregation.
func (m *Median) Validate(c *dataset.Column) error {
	return validateKind(types.Median, c)
}

// Run implements dataset.Aggregation.
func (m *Median) Run(c *dataset.Column) (interface{}, error) {
	ds, err := completeDecimals(types.Median, c)
	if err != nil {
		return nil, err
	}
	if len(ds) == 0 {
		return nil, dataset.NewEmptyDataError(types.Median, c.Name(), "no values")
	}
	return medianOf(sortDecimals(ds))
}

// medianOf computes the median of an ascending sequence: the middle
// value for odd n, the midpoint of the two middle values for even n.
func medianOf(sorted []*apd.Decimal) (*apd.Decimal, error) {
	n := len(sorted)
	if n%2 == 1 {
		return new(apd.Decimal).Set(sorted[n/2]), nil
	}
	return midpoint(sorted[n/2-1], sorted[n/2])
}

// Mode is the most frequent value of a fully-populated Number column.
// The first value to reach the winning frequency wins ties.
type Mode struct{}

// NewMode builds a Mode aggregation.
func NewMode() *Mode { return &Mode{} }

// Identity implements dataset.Aggregation.
func (m *Mode) Identity() dataset.Identity {
	return dataset.NewIdentity(types.Mode, "")
}

// Validate implements dataset.Aggregation.
func (m *Mode) Validate(c *dataset.Column) error {
	return validateKind(types.Mode, c)
}

// Run implements dataset.Aggregation.
func (m *Mode) Run(c *dataset.Column) (interface{}, error) {
	ds, err := completeDecimals(types.Mode, c)
	if err != nil {
		return nil, err
	}
	if len(ds) == 0 {
		return nil, dataset.NewEmptyDataError(types.Mode, c.Name(), "no values")
	}
	counts := make(map[string]int, len(ds))
	var best *apd.Decimal
	bestCount := 0
	reduced := new(apd.Decimal)
	for _, d := range ds {
		// Count numerically: 1.50 and 1.5 are the same value.
		reduced.Reduce(d)
		key := reduced.String()
		counts[key]++
		if counts[key] > bestCount {
			bestCount = counts[key]
			best = d
		}
	}
	return new(apd.Decimal).Set(best), nil
}

// Variance is the sample variance (n-1 divisor) of a fully-populated
// Number column.
type Variance struct{}

// NewVariance builds a sample Variance aggregation.
func NewVariance() *Variance { return &Variance{} }

// Identity implements dataset.Aggregation.
func (v *Variance) Identity() dataset.Identity {
	return dataset.NewIdentity(types.Variance, "")
}

// Validate implements dataset.Aggregation.
func (v *Variance) Validate(c *dataset.Column) error {
	return validateKind(types.Variance, c)
}

// Run implements dataset.Aggregation.
func (v *Variance) Run(c *dataset.Column) (interface{}, error) {
	return variance(types.Variance, c, true)
}

// PopulationVariance is the population variance (n divisor) of a
// fully-populated Number column.
type PopulationVariance struct{}

// NewPopulationVariance builds a PopulationVariance aggregation.
func NewPopulationVariance() *PopulationVariance { return &PopulationVariance{} }

// Identity implements dataset.Aggregation.
func (v *PopulationVariance) Identity() dataset.Identity {
	return dataset.NewIdentity(types.PopulationVariance, "")
}

// Validate implements dataset.Aggregation.
func (v *PopulationVariance) Validate(c *dataset.Column) error {
	return validateKind(types.PopulationVariance, c)
}

// Run implements dataset.Aggregation.
func (v *PopulationVariance) Run(c *dataset.Column) (interface{}, error) {
	return variance(types.PopulationVariance, c, false)
}

func variance(kind types.AggregateKind, c *dataset.Column, sample bool) (interface{}, error) {
	ds, err := completeDecimals(kind, c)
	if err != nil {
		return nil, err
	}
	if sample && len(ds) < 2 {
		return nil, dataset.NewEmptyDataError(kind, c.Name(), "requires at least two values")
	}
	if len(ds) == 0 {
		return nil, dataset.NewEmptyDataError(kind, c.Name(), "no values")
	}
	mean, err := meanDecimals(ds)
	if err != nil {
		return nil, err
	}
	total := apd.New(0, 0)
	diff := new(apd.Decimal)
	for _, d := range ds {
		if _, err := decimalCtx.Sub(diff, d, mean); err != nil {
			return nil, err
		}
		if _, err := decimalCtx.Mul(diff, diff, diff); err != nil {
			return nil, err
		}
		if _, err := decimalCtx.Add(total, total, diff); err != nil {
			return nil, err
		}
	}
	divisor := int64(len(ds))
	if sample {
		divisor--
	}
	if _, err := decimalCtx.Quo(total, total, apd.New(divisor, 0)); err != nil {
		return nil, err
	}
	return total, nil
}

// StDev is the sample standard deviation, the square root of Variance.
type StDev struct{}

// NewStDev builds a sample StDev aggregation.
func NewStDev() *StDev { return &StDev{} }

// Identity implements dataset.Aggregation.
func (s *StDev) Identity() dataset.Identity {
	return dataset.NewIdentity(types.StDev, "")
}

// Validate implements dataset.Aggregation.
func (s *StDev) Validate(c *dataset.Column) error {
	return validateKind(types.StDev, c)
}

// Run implements dataset.Aggregation.
func (s *StDev) Run(c *dataset.Column) (interface{}, error) {
	return stdev(types.StDev, c, true)
}

// PopulationStDev is the population standard deviation, the square
// root of PopulationVariance.
type PopulationStDev struct{}

// NewPopulationStDev builds a PopulationStDev aggregation.
func NewPopulationStDev() *PopulationStDev { return &PopulationStDev{} }

// Identity implements dataset.Aggregation.
func (s *PopulationStDev) Identity() dataset.Identity {
	return dataset.NewIdentity(types.PopulationStDev, "")
}

// Validate implements dataset.Aggregation.
func (s *PopulationStDev) Validate(c *dataset.Column) error {
	return validateKind(types.PopulationStDev, c)
}

// Run implements dataset.Aggregation.
func (s *PopulationStDev) Run(c *dataset.Column) (interface{}, error) {
	return stdev(types.PopulationStDev, c, false)
}

func stdev(kind types.AggregateKind, c *dataset.Column, sample bool) (interface{}, error) {
	v, err := variance(kind, c, sample)
	if err != nil {
		return nil, err
	}
	root := new(apd.Decimal)
	if _, err := decimalCtx.Sqrt(root, v.(*apd.Decimal)); err != nil {
		return nil, err
	}
	return root, nil
}

// MAD is the mean absolute deviation: the mean of absolute differences
// from the column mean, over a fully-populated Number column.
type MAD struct{}

// NewMAD builds a MAD aggregation.
func NewMAD() *MAD { return &MAD{} }

// Identity implements dataset.Aggregation.
func (m *MAD) Identity() dataset.Identity {
	return dataset.NewIdentity(types.MAD, "")
}

// Validate implements dataset.Aggregation.
func (m *MAD) Validate(c *dataset.Column) error {
	return validateKind(types.MAD, c)
}

// Run implements dataset.Aggregation.
func (m *MAD) Run(c *dataset.Column) (interface{}, error) {
	ds, err := completeDecimals(types.MAD, c)
	if err != nil {
		return nil, err
	}
	if len(ds) == 0 {
		return nil, dataset.NewEmptyDataError(types.MAD, c.Name(), "no values")
	}
	mean, err := meanDecimals(ds)
	if err != nil {
		return nil, err
	}
	total := apd.New(0, 0)
	diff := new(apd.Decimal)
	for _, d := range ds {
		if _, err := decimalCtx.Sub(diff, d, mean); err != nil {
			return nil, err
		}
		diff.Abs(diff)
		if _, err := decimalCtx.Add(total, total, diff); err != nil {
			return nil, err
		}
	}
	if _, err := decimalCtx.Quo(total, total, apd.New(int64(len(ds)), 0)); err != nil {
		return nil, err
	}
	return total, nil
}

// IQR is the interquartile range: the third quartile boundary minus
// the first, computed with the shared rank-statistic algorithm.
type IQR struct{}

// NewIQR builds an IQR aggregation.
func NewIQR() *IQR { return &IQR{} }

// Identity implements dataset.Aggregation.
func (i *IQR) Identity() dataset.Identity {
	return dataset.NewIdentity(types.IQR, "")
}

// Validate implements dataset.Aggregation.
func (i *IQR) Validate(c *dataset.Column) error {
	return validateKind(types.IQR, c)
}

// Run implements dataset.Aggregation.
func (i *IQR) Run(c *dataset.Column) (interface{}, error) {
	q, err := computeQuantiles(types.IQR, c, 4)
	if err != nil {
		return nil, err
	}
	spread := new(apd.Decimal)
	if _, err := decimalCtx.Sub(spread, q.Boundary(3), q.Boundary(1)); err != nil {
		return nil, err
	}
	return spread, nil
}
