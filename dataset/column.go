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
	"sort"
	"sync"

	"github.com/rulego/tabular/logger"
	"github.com/rulego/tabular/types"
)

// Column is an immutable, ordered, nullable sequence of typed values
// bound to a name and a data type. Every entry is either null or a
// canonical value of the column's data type. The column owns its
// values exclusively; they are never mutated after construction.
type Column struct {
	name     string
	dataType types.DataType
	values   []interface{}
	rowNames []string
	keyIndex map[string]int

	// cache maps aggregation identity to a previously computed result.
	// Populated lazily, never invalidated: the column is immutable, so
	// cached results never go stale.
	mu    sync.Mutex
	cache map[Identity]interface{}
}

// NewColumn builds a column from already-cast values. rowNames, when
// non-nil, is a parallel key sequence enabling lookup by name instead
// of position; keys must be unique and match the value count.
func NewColumn(name string, dataType types.DataType, values []interface{}, rowNames []string) (*Column, error) {
	if name == "" {
		return nil, NewUsageError("column name must not be empty")
	}
	if dataType == nil {
		return nil, NewUsageError("column '%s' has no data type", name)
	}
	for i, v := range values {
		if !dataType.Validate(v) {
			return nil, NewUsageError("column '%s' row %d: %v (%T) is not a valid %s value",
				name, i, v, v, dataType.Name())
		}
	}

	c := &Column{
		name:     name,
		dataType: dataType,
		values:   append([]interface{}(nil), values...),
		cache:    make(map[Identity]interface{}),
	}

	if rowNames != nil {
		if len(rowNames) != len(values) {
			return nil, NewUsageError("column '%s': %d row names for %d values",
				name, len(rowNames), len(values))
		}
		c.rowNames = append([]string(nil), rowNames...)
		c.keyIndex = make(map[string]int, len(rowNames))
		for i, key := range rowNames {
			if _, dup := c.keyIndex[key]; dup {
				return nil, NewUsageError("column '%s': duplicate row name '%s'", name, key)
			}
			c.keyIndex[key] = i
		}
	}
	return c, nil
}

// Name returns the column name.
func (c *Column) Name() string { return c.name }

// DataType returns the column's data type tag.
func (c *Column) DataType() types.DataType { return c.dataType }

// Len returns the total row count, nulls included.
func (c *Column) Len() int { return len(c.values) }

// Data returns all values including nulls, in row order. The returned
// slice is a copy; the column's own storage is never exposed.
func (c *Column) Data() []interface{} {
	return append([]interface{}(nil), c.values...)
}

// DataWithoutNulls returns the non-null values in row order, for
// aggregations whose algorithm is undefined on nulls.
func (c *Column) DataWithoutNulls() []interface{} {
	out := make([]interface{}, 0, len(c.values))
	for _, v := range c.values {
		if !types.IsNull(v) {
			out = append(out, v)
		}
	}
	return out
}

// DataSorted returns the non-null values sorted ascending.
func (c *Column) DataSorted() []interface{} {
	out := c.DataWithoutNulls()
	sort.SliceStable(out, func(i, j int) bool {
		return ValueLess(out[i], out[j])
	})
	return out
}

// HasNulls reports whether any entry is null.
func (c *Column) HasNulls() bool {
	for _, v := range c.values {
		if types.IsNull(v) {
			return true
		}
	}
	return false
}

// Keys returns the configured row names, or nil when the column is not
// keyed.
func (c *Column) Keys() []string {
	if c.rowNames == nil {
		return nil
	}
	return append([]string(nil), c.rowNames...)
}

// Value looks a value up by row name. It is a usage error when no row
// names are configured or the key is unknown; positional access is
// always available via Data.
func (c *Column) Value(key string) (interface{}, error) {
	if c.keyIndex == nil {
		return nil, NewUsageError("column '%s' has no row names", c.name)
	}
	i, ok := c.keyIndex[key]
	if !ok {
		return nil, NewUsageError("column '%s' has no row named '%s'", c.name, key)
	}
	return c.values[i], nil
}

// Items returns the row-name/value pairs in row order. It is a usage
// error when no row names are configured.
func (c *Column) Items() ([]KeyValue, error) {
	if c.rowNames == nil {
		return nil, NewUsageError("column '%s' has no row names", c.name)
	}
	items := make([]KeyValue, len(c.values))
	for i, v := range c.values {
		items[i] = KeyValue{Key: c.rowNames[i], Value: v}
	}
	return items, nil
}

// Aggregate applies an aggregation to the column.
//
// The result for a valid identity is computed at most once, ever: the
// cache lookup, validation, execution and store happen under the
// column's lock, so parallel first callers cannot duplicate work or
// tear a cache entry. Failures propagate to the caller and are never
// cached. Aggregations with an invalid (zero) identity bypass the
// cache entirely and re-execute on every call.
func (c *Column) Aggregate(agg Aggregation) (interface{}, error) {
	id := agg.Identity()
	if !id.Valid() {
		if err := agg.Validate(c); err != nil {
			return nil, err
		}
		return agg.Run(c)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if v, ok := c.cache[id]; ok {
		logger.Debug("column '%s': cache hit for %s", c.name, id)
		return v, nil
	}
	if err := agg.Validate(c); err != nil {
		return nil, err
	}
	v, err := agg.Run(c)
	if err != nil {
		return nil, err
	}
	c.cache[id] = v
	return v, nil
}

// Cached returns the cached result for an identity, if present.
func (c *Column) Cached(id Identity) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.cache[id]
	return v, ok
}
