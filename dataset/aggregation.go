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

import "github.com/rulego/tabular/types"

// Identity is the structural cache key of an aggregation instance: the
// kind tag plus a canonical rendering of the constructor parameters.
// Two instances with equal parameters collide in the cache, distinct
// parameters never do.
//
// The zero Identity marks an aggregation that cannot be cached, such as
// one parameterized by an opaque Go function.
type Identity struct {
	Kind  types.AggregateKind
	Param string
}

// NewIdentity builds an identity from a kind and a canonical parameter
// rendering. Param is empty for parameterless aggregations.
func NewIdentity(kind types.AggregateKind, param string) Identity {
	return Identity{Kind: kind, Param: param}
}

// Valid reports whether the identity may be used as a cache key.
func (id Identity) Valid() bool {
	return id.Kind != ""
}

// String renders the identity for logs.
func (id Identity) String() string {
	if id.Param == "" {
		return string(id.Kind)
	}
	return string(id.Kind) + "(" + id.Param + ")"
}

// Aggregation is the contract every statistic implements. Instances
// are value objects: parameters are baked in at construction and an
// instance is safe to reuse across many columns.
type Aggregation interface {
	// Identity returns the cache key for this instance.
	Identity() Identity
	// Validate fails with a data-type error when the column's type is
	// outside this aggregation's accepted set. It runs before any
	// computation.
	Validate(c *Column) error
	// Run executes the computation, assuming validation passed.
	Run(c *Column) (interface{}, error)
}
