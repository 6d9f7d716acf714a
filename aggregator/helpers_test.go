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

// column casts raw values through dataType and builds an unkeyed column.
func column(t *testing.T, name string, dataType types.DataType, raws ...interface{}) *dataset.Column {
	t.Helper()
	values := make([]interface{}, len(raws))
	for i, raw := range raws {
		v, err := dataType.Cast(raw)
		require.NoError(t, err)
		values[i] = v
	}
	col, err := dataset.NewColumn(name, dataType, values, nil)
	require.NoError(t, err)
	return col
}

func numberColumn(t *testing.T, name string, raws ...interface{}) *dataset.Column {
	t.Helper()
	return column(t, name, types.Number, raws...)
}

// sequenceColumn builds a Number column holding [1..n].
func sequenceColumn(t *testing.T, n int) *dataset.Column {
	t.Helper()
	raws := make([]interface{}, n)
	for i := range raws {
		raws[i] = i + 1
	}
	return numberColumn(t, "ints", raws...)
}

// assertDecimal asserts that got is a decimal numerically equal to want.
func assertDecimal(t *testing.T, want string, got interface{}) {
	t.Helper()
	d, ok := got.(*apd.Decimal)
	require.True(t, ok, "result is %T, want *apd.Decimal", got)
	expected, _, err := apd.NewFromString(want)
	require.NoError(t, err)
	assert.Zero(t, expected.Cmp(d), "want %s, got %s", want, d)
}

// assertDecimalNear asserts equality to want within delta, for results
// that round at the context precision.
func assertDecimalNear(t *testing.T, want float64, got interface{}) {
	t.Helper()
	d, ok := got.(*apd.Decimal)
	require.True(t, ok, "result is %T, want *apd.Decimal", got)
	f, err := d.Float64()
	require.NoError(t, err)
	assert.InDelta(t, want, f, 1e-6)
}
