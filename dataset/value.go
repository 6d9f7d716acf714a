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
	"time"

	"github.com/cockroachdb/apd/v3"
)

// KeyValue pairs a row key with the column value stored under it.
type KeyValue struct {
	Key   string
	Value interface{}
}

// ValueEqual reports exact equality between two column values. Null
// equals only null. Decimals compare numerically, so 1.50 equals 1.5.
func ValueEqual(a, b interface{}) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch av := a.(type) {
	case *apd.Decimal:
		bv, ok := b.(*apd.Decimal)
		return ok && av.Cmp(bv) == 0
	case time.Time:
		bv, ok := b.(time.Time)
		return ok && av.Equal(bv)
	default:
		return a == b
	}
}

// ValueLess orders two non-null values of the same data type. Booleans
// order false before true.
func ValueLess(a, b interface{}) bool {
	switch av := a.(type) {
	case *apd.Decimal:
		bv, ok := b.(*apd.Decimal)
		return ok && av.Cmp(bv) < 0
	case string:
		bv, ok := b.(string)
		return ok && av < bv
	case bool:
		bv, ok := b.(bool)
		return ok && !av && bv
	case time.Time:
		bv, ok := b.(time.Time)
		return ok && av.Before(bv)
	case time.Duration:
		bv, ok := b.(time.Duration)
		return ok && av < bv
	default:
		return false
	}
}
