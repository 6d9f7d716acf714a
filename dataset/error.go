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
	"errors"
	"fmt"
	"strings"

	"github.com/rulego/tabular/types"
)

// ErrorType classifies aggregation failures.
type ErrorType int

const (
	// ErrorTypeDataType marks an aggregation invoked on a column whose
	// data type is outside the aggregation's accepted set.
	ErrorTypeDataType ErrorType = iota
	// ErrorTypeNullData marks a statistic that requires complete data
	// but encountered one or more nulls.
	ErrorTypeNullData
	// ErrorTypeEmptyData marks an aggregation requiring at least one
	// (or a minimum number of) non-null values that found too few.
	ErrorTypeEmptyData
	// ErrorTypeUsage marks caller-supplied parameters invalid for the
	// context, e.g. omitting a required predicate.
	ErrorTypeUsage
	// ErrorTypeRange marks a locate request outside the computed
	// boundary range.
	ErrorTypeRange
)

// String returns the error type name.
func (t ErrorType) String() string {
	switch t {
	case ErrorTypeDataType:
		return "DATA_TYPE_ERROR"
	case ErrorTypeNullData:
		return "NULL_DATA_ERROR"
	case ErrorTypeEmptyData:
		return "EMPTY_DATA_ERROR"
	case ErrorTypeUsage:
		return "USAGE_ERROR"
	case ErrorTypeRange:
		return "RANGE_ERROR"
	default:
		return "UNKNOWN_ERROR"
	}
}

// AggregateError is the failure condition raised by column aggregation.
// Failures propagate synchronously to the caller and are never cached,
// so a corrected call re-executes cleanly.
type AggregateError struct {
	Type    ErrorType
	Message string
	Column  string
	Kind    types.AggregateKind
}

// Error implements the error interface.
func (e *AggregateError) Error() string {
	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("[%s] %s", e.Type, e.Message))
	if e.Column != "" {
		builder.WriteString(fmt.Sprintf(" (column '%s')", e.Column))
	}
	if e.Kind != "" {
		builder.WriteString(fmt.Sprintf(" (aggregation '%s')", e.Kind))
	}
	return builder.String()
}

// NewDataTypeError reports that columns of dataTypeName cannot be
// aggregated by kind.
func NewDataTypeError(kind types.AggregateKind, column, dataTypeName string) *AggregateError {
	return &AggregateError{
		Type:    ErrorTypeDataType,
		Message: fmt.Sprintf("data type %s is not supported", dataTypeName),
		Column:  column,
		Kind:    kind,
	}
}

// NewNullDataError reports null values in a statistic that requires
// fully-populated data.
func NewNullDataError(kind types.AggregateKind, column string) *AggregateError {
	return &AggregateError{
		Type:    ErrorTypeNullData,
		Message: "column contains null values",
		Column:  column,
		Kind:    kind,
	}
}

// NewEmptyDataError reports fewer non-null values than the statistic
// requires.
func NewEmptyDataError(kind types.AggregateKind, column, message string) *AggregateError {
	return &AggregateError{
		Type:    ErrorTypeEmptyData,
		Message: message,
		Column:  column,
		Kind:    kind,
	}
}

// NewUsageError reports invalid caller-supplied parameters.
func NewUsageError(format string, args ...interface{}) *AggregateError {
	return &AggregateError{
		Type:    ErrorTypeUsage,
		Message: fmt.Sprintf(format, args...),
	}
}

// NewRangeError reports a value outside a computed boundary range.
func NewRangeError(format string, args ...interface{}) *AggregateError {
	return &AggregateError{
		Type:    ErrorTypeRange,
		Message: fmt.Sprintf(format, args...),
	}
}

func isErrorType(err error, t ErrorType) bool {
	var ae *AggregateError
	return errors.As(err, &ae) && ae.Type == t
}

// IsDataTypeError reports whether err is a type-mismatch failure.
func IsDataTypeError(err error) bool { return isErrorType(err, ErrorTypeDataType) }

// IsNullDataError reports whether err is a null-data failure.
func IsNullDataError(err error) bool { return isErrorType(err, ErrorTypeNullData) }

// IsEmptyDataError reports whether err is an empty-data failure.
func IsEmptyDataError(err error) bool { return isErrorType(err, ErrorTypeEmptyData) }

// IsUsageError reports whether err is a usage failure.
func IsUsageError(err error) bool { return isErrorType(err, ErrorTypeUsage) }

// IsRangeError reports whether err is a range failure.
func IsRangeError(err error) bool { return isErrorType(err, ErrorTypeRange) }
