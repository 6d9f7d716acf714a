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
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/rulego/tabular/dataset"
	"github.com/rulego/tabular/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The fixtures mirror a small ledger: "one" is sparse, "two" is fully
// populated, "three" is text.
func statsFixtures(t *testing.T) (one, two, three *dataset.Column) {
	t.Helper()
	one = numberColumn(t, "one", "1.1", "2.7", nil, "2.7")
	two = numberColumn(t, "two", "2.19", "3.42", "4.1", "3.42")
	three = column(t, "three", types.Text, "a", "b", "c", "c")
	return one, two, three
}

// requireNullStrict asserts the aggregation rejects sparse columns with
// a null-data error and text columns with a data-type error.
func requireNullStrict(t *testing.T, agg dataset.Aggregation) {
	t.Helper()
	one, _, three := statsFixtures(t)

	_, err := one.Aggregate(agg)
	require.Error(t, err)
	assert.True(t, dataset.IsNullDataError(err), "sparse column: got %v", err)

	_, err = three.Aggregate(agg)
	require.Error(t, err)
	assert.True(t, dataset.IsDataTypeError(err), "text column: got %v", err)
}

func TestMean(t *testing.T) {
	requireNullStrict(t, NewMean())

	_, two, _ := statsFixtures(t)
	v, err := two.Aggregate(NewMean())
	require.NoError(t, err)
	assertDecimal(t, "3.2825", v)
}

func TestMedian(t *testing.T) {
	requireNullStrict(t, NewMedian())

	_, two, _ := statsFixtures(t)
	v, err := two.Aggregate(NewMedian())
	require.NoError(t, err)
	assertDecimal(t, "3.42", v)

	odd := numberColumn(t, "odd", 5, 1, 3)
	v, err = odd.Aggregate(NewMedian())
	require.NoError(t, err)
	assertDecimal(t, "3", v)
}

func TestMode(t *testing.T) {
	requireNullStrict(t, NewMode())

	_, two, _ := statsFixtures(t)
	v, err := two.Aggregate(NewMode())
	require.NoError(t, err)
	assertDecimal(t, "3.42", v)
}

func TestModeFirstSeenWinsTies(t *testing.T) {
	col := numberColumn(t, "tied", 1, 1, 2, 2)
	v, err := col.Aggregate(NewMode())
	require.NoError(t, err)
	assertDecimal(t, "1", v)
}

func TestModeCountsNumerically(t *testing.T) {
	// 1.5 and 1.50 are the same value and count together.
	col := numberColumn(t, "padded", "1.5", "1.50", "2")
	v, err := col.Aggregate(NewMode())
	require.NoError(t, err)
	assertDecimal(t, "1.5", v)
}

func TestVariance(t *testing.T) {
	requireNullStrict(t, NewVariance())

	_, two, _ := statsFixtures(t)
	v, err := two.Aggregate(NewVariance())
	require.NoError(t, err)
	assertDecimal(t, "0.633225", v)
}

func TestVarianceRequiresTwoValues(t *testing.T) {
	col := numberColumn(t, "single", 7)
	_, err := col.Aggregate(NewVariance())
	require.Error(t, err)
	assert.True(t, dataset.IsEmptyDataError(err))
}

func TestPopulationVariance(t *testing.T) {
	requireNullStrict(t, NewPopulationVariance())

	_, two, _ := statsFixtures(t)
	v, err := two.Aggregate(NewPopulationVariance())
	require.NoError(t, err)
	assertDecimal(t, "0.47491875", v)
}

func TestStDev(t *testing.T) {
	requireNullStrict(t, NewStDev())

	_, two, _ := statsFixtures(t)
	v, err := two.Aggregate(NewStDev())
	require.NoError(t, err)
	assertDecimalNear(t, 0.795754, v)
}

func TestPopulationStDev(t *testing.T) {
	requireNullStrict(t, NewPopulationStDev())

	_, two, _ := statsFixtures(t)
	v, err := two.Aggregate(NewPopulationStDev())
	require.NoError(t, err)
	assertDecimalNear(t, 0.689143, v)
}

func TestDispersionIdentities(t *testing.T) {
	// StDev squared reproduces Variance within decimal rounding, for
	// both divisors.
	col := numberColumn(t, "values", "2.19", "3.42", "4.1", "3.42", "9", "0.25")

	cases := []struct {
		stdev    dataset.Aggregation
		variance dataset.Aggregation
	}{
		{NewStDev(), NewVariance()},
		{NewPopulationStDev(), NewPopulationVariance()},
	}
	for _, tc := range cases {
		sd, err := col.Aggregate(tc.stdev)
		require.NoError(t, err)
		va, err := col.Aggregate(tc.variance)
		require.NoError(t, err)

		squared := new(apd.Decimal)
		_, err = decimalCtx.Mul(squared, sd.(*apd.Decimal), sd.(*apd.Decimal))
		require.NoError(t, err)

		sf, err := squared.Float64()
		require.NoError(t, err)
		vf, err := va.(*apd.Decimal).Float64()
		require.NoError(t, err)
		assert.InDelta(t, vf, sf, 1e-9)
	}
}

func TestMAD(t *testing.T) {
	requireNullStrict(t, NewMAD())

	// Mean is 3.2825; absolute deviations are 1.0925, 0.1375, 0.8175,
	// 0.1375; their mean is 0.54625.
	_, two, _ := statsFixtures(t)
	v, err := two.Aggregate(NewMAD())
	require.NoError(t, err)
	assertDecimal(t, "0.54625", v)
}

func TestIQR(t *testing.T) {
	requireNullStrict(t, NewIQR())

	_, two, _ := statsFixtures(t)
	v, err := two.Aggregate(NewIQR())
	require.NoError(t, err)
	assertDecimal(t, "0.955", v)
}

func TestIdempotence(t *testing.T) {
	// Repeated aggregation of an unchanged column returns identical
	// results, cached or not.
	col := numberColumn(t, "two", "2.19", "3.42", "4.1", "3.42")
	aggs := []dataset.Aggregation{
		NewSum(), NewMean(), NewMedian(), NewMode(),
		NewVariance(), NewStDev(), NewMAD(), NewIQR(),
	}
	for _, agg := range aggs {
		first, err := col.Aggregate(agg)
		require.NoError(t, err)
		second, err := col.Aggregate(agg)
		require.NoError(t, err)
		assert.Zero(t, first.(*apd.Decimal).Cmp(second.(*apd.Decimal)),
			"aggregation %s not idempotent", agg.Identity())
	}
}
