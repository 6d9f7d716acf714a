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

package dataset

import (
	"sync"
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/rulego/tabular/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingAggregation counts executions so tests can observe the
// at-most-one-run-per-identity contract.
type countingAggregation struct {
	id     Identity
	result interface{}
	fail   error

	mu   sync.Mutex
	runs int
}

func (a *countingAggregation) Identity() Identity { return a.id }

func (a *countingAggregation) Validate(c *Column) error { return a.fail }

func (a *countingAggregation) Run(c *Column) (interface{}, error) {
	a.mu.Lock()
	a.runs++
	a.mu.Unlock()
	return a.result, nil
}

func (a *countingAggregation) runCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.runs
}

func numberValues(t *testing.T, raws ...interface{}) []interface{} {
	t.Helper()
	out := make([]interface{}, len(raws))
	for i, raw := range raws {
		v, err := types.Number.Cast(raw)
		require.NoError(t, err)
		out[i] = v
	}
	return out
}

func TestNewColumn(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		col, err := NewColumn("one", types.Number, numberValues(t, 1, 2, nil), nil)
		require.NoError(t, err)
		assert.Equal(t, "one", col.Name())
		assert.Equal(t, types.Number, col.DataType())
		assert.Equal(t, 3, col.Len())
	})

	t.Run("rejects values outside the data type", func(t *testing.T) {
		_, err := NewColumn("one", types.Number, []interface{}{1}, nil)
		require.Error(t, err)
		assert.True(t, IsUsageError(err))
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewColumn("", types.Number, nil, nil)
		assert.True(t, IsUsageError(err))
	})

	t.Run("rejects mismatched row names", func(t *testing.T) {
		_, err := NewColumn("one", types.Number, numberValues(t, 1, 2), []string{"a"})
		assert.True(t, IsUsageError(err))
	})

	t.Run("rejects duplicate row names", func(t *testing.T) {
		_, err := NewColumn("one", types.Number, numberValues(t, 1, 2), []string{"a", "a"})
		assert.True(t, IsUsageError(err))
	})
}

func TestColumnData(t *testing.T) {
	col, err := NewColumn("one", types.Number, numberValues(t, 1, nil, 2), nil)
	require.NoError(t, err)

	data := col.Data()
	require.Len(t, data, 3)
	assert.Nil(t, data[1])

	// Mutating the returned slice must not touch the column.
	data[0] = nil
	assert.NotNil(t, col.Data()[0])

	assert.Len(t, col.DataWithoutNulls(), 2)
	assert.True(t, col.HasNulls())

	sorted := col.DataSorted()
	require.Len(t, sorted, 2)
	assert.True(t, ValueLess(sorted[0], sorted[1]))
}

func TestColumnRowNames(t *testing.T) {
	col, err := NewColumn("one", types.Number, numberValues(t, 1, 2, nil), []string{"a", "b", "c"})
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c"}, col.Keys())

	v, err := col.Value("b")
	require.NoError(t, err)
	assert.Zero(t, v.(*apd.Decimal).Cmp(apd.New(2, 0)))

	v, err = col.Value("c")
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = col.Value("z")
	assert.True(t, IsUsageError(err))

	items, err := col.Items()
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "a", items[0].Key)
	assert.Nil(t, items[2].Value)
}

func TestColumnWithoutRowNames(t *testing.T) {
	col, err := NewColumn("one", types.Number, numberValues(t, 1), nil)
	require.NoError(t, err)

	assert.Nil(t, col.Keys())

	_, err = col.Value("a")
	assert.True(t, IsUsageError(err))

	_, err = col.Items()
	assert.True(t, IsUsageError(err))
}

func TestAggregateCaching(t *testing.T) {
	col, err := NewColumn("one", types.Number, numberValues(t, 1, 2, nil), nil)
	require.NoError(t, err)

	agg := &countingAggregation{id: NewIdentity(types.Length, ""), result: 33}

	_, cached := col.Cached(agg.Identity())
	assert.False(t, cached)

	v, err := col.Aggregate(agg)
	require.NoError(t, err)
	assert.Equal(t, 33, v)
	assert.Equal(t, 1, agg.runCount())

	v, err = col.Aggregate(agg)
	require.NoError(t, err)
	assert.Equal(t, 33, v)
	assert.Equal(t, 1, agg.runCount(), "second call must hit the cache")

	cachedValue, cached := col.Cached(agg.Identity())
	assert.True(t, cached)
	assert.Equal(t, 33, cachedValue)
}

func TestAggregateDistinctIdentities(t *testing.T) {
	col, err := NewColumn("one", types.Number, numberValues(t, 1, 2), nil)
	require.NoError(t, err)

	first := &countingAggregation{id: NewIdentity(types.Count, "1"), result: 1}
	second := &countingAggregation{id: NewIdentity(types.Count, "null"), result: 0}

	_, err = col.Aggregate(first)
	require.NoError(t, err)
	_, err = col.Aggregate(second)
	require.NoError(t, err)

	assert.Equal(t, 1, first.runCount())
	assert.Equal(t, 1, second.runCount(), "distinct parameters must not collide")
}

func TestAggregateFailureNotCached(t *testing.T) {
	col, err := NewColumn("one", types.Number, numberValues(t, 1), nil)
	require.NoError(t, err)

	agg := &countingAggregation{
		id:   NewIdentity(types.Mean, ""),
		fail: NewDataTypeError(types.Mean, "one", "Number"),
	}

	_, err = col.Aggregate(agg)
	require.Error(t, err)
	assert.True(t, IsDataTypeError(err))
	assert.Equal(t, 0, agg.runCount(), "run must not execute when validation fails")

	_, cached := col.Cached(agg.Identity())
	assert.False(t, cached, "failures must never be cached")
}

func TestAggregateUncacheable(t *testing.T) {
	col, err := NewColumn("one", types.Number, numberValues(t, 1), nil)
	require.NoError(t, err)

	agg := &countingAggregation{result: true} // zero identity
	require.False(t, agg.Identity().Valid())

	for i := 0; i < 3; i++ {
		_, err := col.Aggregate(agg)
		require.NoError(t, err)
	}
	assert.Equal(t, 3, agg.runCount(), "zero identity must bypass the cache")
}

func TestAggregateConcurrentFirstAccess(t *testing.T) {
	col, err := NewColumn("one", types.Number, numberValues(t, 1, 2, 3), nil)
	require.NoError(t, err)

	agg := &countingAggregation{id: NewIdentity(types.Sum, ""), result: 6}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := col.Aggregate(agg)
			assert.NoError(t, err)
			assert.Equal(t, 6, v)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, agg.runCount(), "parallel first callers must not duplicate work")
}

func TestIdentity(t *testing.T) {
	assert.Equal(t, NewIdentity(types.Count, "1"), NewIdentity(types.Count, "1"))
	assert.NotEqual(t, NewIdentity(types.Count, "1"), NewIdentity(types.Count, "2"))
	assert.Equal(t, "count(1)", NewIdentity(types.Count, "1").String())
	assert.Equal(t, "length", NewIdentity(types.Length, "").String())
	assert.False(t, Identity{}.Valid())
}

func TestValueEqual(t *testing.T) {
	assert.True(t, ValueEqual(nil, nil))
	assert.False(t, ValueEqual(nil, "a"))
	assert.True(t, ValueEqual(apd.New(15, -1), apd.New(150, -2)), "1.5 equals 1.50")
	assert.False(t, ValueEqual(apd.New(1, 0), apd.New(2, 0)))
	assert.True(t, ValueEqual("a", "a"))
}

func TestValueLess(t *testing.T) {
	assert.True(t, ValueLess(apd.New(1, 0), apd.New(2, 0)))
	assert.False(t, ValueLess(apd.New(2, 0), apd.New(1, 0)))
	assert.True(t, ValueLess("a", "b"))
	assert.True(t, ValueLess(false, true))
}
