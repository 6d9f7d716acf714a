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

import (
	"fmt"
	"strings"
	"time"

	"github.com/cockroachdb/apd/v3"
	"github.com/spf13/cast"
)

// Singleton data type tags. A table column binds to exactly one of
// these at construction time.
var (
	Number    DataType = numberType{}
	Text      DataType = textType{}
	Boolean   DataType = booleanType{}
	Date      DataType = dateType{}
	DateTime  DataType = dateTimeType{}
	TimeDelta DataType = timeDeltaType{}
)

// nullTokens are raw string inputs every Cast treats as null.
var nullTokens = map[string]struct{}{
	"":     {},
	"n/a":  {},
	"none": {},
	"null": {},
}

func isNullToken(s string) bool {
	_, ok := nullTokens[strings.ToLower(strings.TrimSpace(s))]
	return ok
}

// IsNull reports whether v is the null value.
func IsNull(v interface{}) bool {
	return v == nil
}

type numberType struct{}

func (numberType) Name() string { return "Number" }

func (numberType) Cast(raw interface{}) (interface{}, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case *apd.Decimal:
		if v == nil {
			return nil, nil
		}
		return new(apd.Decimal).Set(v), nil
	case apd.Decimal:
		return new(apd.Decimal).Set(&v), nil
	case string:
		if isNullToken(v) {
			return nil, nil
		}
		d, _, err := apd.NewFromString(strings.TrimSpace(v))
		if err != nil {
			return nil, fmt.Errorf("cannot cast %q to Number: %w", v, err)
		}
		return d, nil
	case float32, float64:
		d := new(apd.Decimal)
		if _, err := d.SetFloat64(cast.ToFloat64(v)); err != nil {
			return nil, fmt.Errorf("cannot cast %v to Number: %w", v, err)
		}
		return d, nil
	case bool:
		return nil, fmt.Errorf("cannot cast %v (bool) to Number", v)
	default:
		i, err := cast.ToInt64E(raw)
		if err != nil {
			return nil, fmt.Errorf("cannot cast %v (%T) to Number", raw, raw)
		}
		return apd.New(i, 0), nil
	}
}

func (numberType) Validate(v interface{}) bool {
	if v == nil {
		return true
	}
	_, ok := v.(*apd.Decimal)
	return ok
}

func (numberType) CanAggregate(k AggregateKind) bool {
	return universalKinds.contains(k) || numericKinds.contains(k)
}

type textType struct{}

func (textType) Name() string { return "Text" }

func (textType) Cast(raw interface{}) (interface{}, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case string:
		if isNullToken(v) {
			return nil, nil
		}
		return v, nil
	default:
		s, err := cast.ToStringE(raw)
		if err != nil {
			return nil, fmt.Errorf("cannot cast %v (%T) to Text", raw, raw)
		}
		return s, nil
	}
}

func (textType) Validate(v interface{}) bool {
	if v == nil {
		return true
	}
	_, ok := v.(string)
	return ok
}

func (textType) CanAggregate(k AggregateKind) bool {
	return universalKinds.contains(k) || k == MaxLength
}

type booleanType struct{}

func (booleanType) Name() string { return "Boolean" }

func (booleanType) Cast(raw interface{}) (interface{}, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case bool:
		return v, nil
	case string:
		if isNullToken(v) {
			return nil, nil
		}
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "yes", "y":
			return true, nil
		case "no", "n":
			return false, nil
		}
		b, err := cast.ToBoolE(strings.TrimSpace(v))
		if err != nil {
			return nil, fmt.Errorf("cannot cast %q to Boolean", v)
		}
		return b, nil
	default:
		b, err := cast.ToBoolE(raw)
		if err != nil {
			return nil, fmt.Errorf("cannot cast %v (%T) to Boolean", raw, raw)
		}
		return b, nil
	}
}

func (booleanType) Validate(v interface{}) bool {
	if v == nil {
		return true
	}
	_, ok := v.(bool)
	return ok
}

func (booleanType) CanAggregate(k AggregateKind) bool {
	return universalKinds.contains(k)
}

// dateLayouts are tried in order when casting text to Date.
var dateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"January 2, 2006",
}

// dateTimeLayouts are tried in order when casting text to DateTime.
var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"01/02/2006 15:04",
}

func parseTime(s string, layouts []string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("no layout matches %q", s)
}

type dateType struct{}

func (dateType) Name() string { return "Date" }

func (dateType) Cast(raw interface{}) (interface{}, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case time.Time:
		return v, nil
	case string:
		if isNullToken(v) {
			return nil, nil
		}
		t, err := parseTime(v, dateLayouts)
		if err != nil {
			return nil, fmt.Errorf("cannot cast %q to Date: %w", v, err)
		}
		return t, nil
	default:
		return nil, fmt.Errorf("cannot cast %v (%T) to Date", raw, raw)
	}
}

func (dateType) Validate(v interface{}) bool {
	if v == nil {
		return true
	}
	_, ok := v.(time.Time)
	return ok
}

func (dateType) CanAggregate(k AggregateKind) bool {
	return universalKinds.contains(k) || orderableTemporalKinds.contains(k)
}

type dateTimeType struct{}

func (dateTimeType) Name() string { return "DateTime" }

func (dateTimeType) Cast(raw interface{}) (interface{}, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case time.Time:
		return v, nil
	case string:
		if isNullToken(v) {
			return nil, nil
		}
		t, err := parseTime(v, dateTimeLayouts)
		if err != nil {
			return nil, fmt.Errorf("cannot cast %q to DateTime: %w", v, err)
		}
		return t, nil
	default:
		return nil, fmt.Errorf("cannot cast %v (%T) to DateTime", raw, raw)
	}
}

func (dateTimeType) Validate(v interface{}) bool {
	if v == nil {
		return true
	}
	_, ok := v.(time.Time)
	return ok
}

func (dateTimeType) CanAggregate(k AggregateKind) bool {
	return universalKinds.contains(k) || orderableTemporalKinds.contains(k)
}

type timeDeltaType struct{}

func (timeDeltaType) Name() string { return "TimeDelta" }

func (timeDeltaType) Cast(raw interface{}) (interface{}, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case time.Duration:
		return v, nil
	case string:
		if isNullToken(v) {
			return nil, nil
		}
		d, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			return nil, fmt.Errorf("cannot cast %q to TimeDelta: %w", v, err)
		}
		return d, nil
	default:
		// Bare numbers are seconds.
		f, err := cast.ToFloat64E(raw)
		if err != nil {
			return nil, fmt.Errorf("cannot cast %v (%T) to TimeDelta", raw, raw)
		}
		return time.Duration(f * float64(time.Second)), nil
	}
}

func (timeDeltaType) Validate(v interface{}) bool {
	if v == nil {
		return true
	}
	_, ok := v.(time.Duration)
	return ok
}

func (timeDeltaType) CanAggregate(k AggregateKind) bool {
	return universalKinds.contains(k) || orderableTemporalKinds.contains(k) || k == Sum
}

// FormatValue renders a column value for display, export and cache
// identity parameters. Null renders as the empty string.
func FormatValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case *apd.Decimal:
		return val.String()
	case string:
		return val
	case bool:
		if val {
			return "true"
		}
		return "false"
	case time.Time:
		if val.Hour() == 0 && val.Minute() == 0 && val.Second() == 0 && val.Nanosecond() == 0 {
			return val.Format("2006-01-02")
		}
		return val.Format(time.RFC3339)
	case time.Duration:
		return val.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
