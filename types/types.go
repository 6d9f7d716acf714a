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

package types

// AggregateKind identifies one aggregation family. It is the tag half
// of a cache identity and the subject of data-type capability checks.
type AggregateKind string

const (
	Any                AggregateKind = "any"
	All                AggregateKind = "all"
	Length             AggregateKind = "length"
	Count              AggregateKind = "count"
	MaxLength          AggregateKind = "max_length"
	MaxPrecision       AggregateKind = "max_precision"
	Sum                AggregateKind = "sum"
	Min                AggregateKind = "min"
	Max                AggregateKind = "max"
	Mean               AggregateKind = "mean"
	Median             AggregateKind = "median"
	Mode               AggregateKind = "mode"
	Variance           AggregateKind = "variance"
	PopulationVariance AggregateKind = "population_variance"
	StDev              AggregateKind = "stdev"
	PopulationStDev    AggregateKind = "population_stdev"
	MAD                AggregateKind = "mad"
	IQR                AggregateKind = "iqr"
	Percentiles        AggregateKind = "percentiles"
	Quartiles          AggregateKind = "quartiles"
	Quintiles          AggregateKind = "quintiles"
	Deciles            AggregateKind = "deciles"
)

// DataType tags a column with one member of the typed value domain.
// Implementations are stateless singletons, safe to share across
// tables and goroutines.
type DataType interface {
	// Name returns the tag name, e.g. "Number".
	Name() string
	// Cast converts raw construction input into the canonical value
	// representation for this type, or nil for recognized null tokens.
	Cast(raw interface{}) (interface{}, error)
	// Validate reports whether v is null or a canonical value of this type.
	Validate(v interface{}) bool
	// CanAggregate reports whether aggregations of kind k accept
	// columns of this type.
	CanAggregate(k AggregateKind) bool
}

// kindSet is a capability set over aggregate kinds.
type kindSet map[AggregateKind]struct{}

func newKindSet(kinds ...AggregateKind) kindSet {
	s := make(kindSet, len(kinds))
	for _, k := range kinds {
		s[k] = struct{}{}
	}
	return s
}

func (s kindSet) contains(k AggregateKind) bool {
	_, ok := s[k]
	return ok
}

// universalKinds run against every data type. Any and All require a
// caller-supplied predicate on non-Boolean columns, but that is a usage
// check at execution time, not a type capability.
var universalKinds = newKindSet(Any, All, Length, Count)

// numericKinds require exact decimal data.
var numericKinds = newKindSet(
	Sum, Min, Max, MaxPrecision,
	Mean, Median, Mode,
	Variance, PopulationVariance, StDev, PopulationStDev, MAD,
	IQR, Percentiles, Quartiles, Quintiles, Deciles,
)

// orderableTemporalKinds apply to types with a total order but no
// arithmetic closure under summation.
var orderableTemporalKinds = newKindSet(Min, Max)
