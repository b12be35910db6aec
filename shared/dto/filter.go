package dto

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

const (
	FilterOperatorEq        = "eq"
	FilterOperatorLike      = "like"
	FilterOperatorIn        = "in"
	FilterOperatorNotEq     = "not_eq"
	FilterOperatorLessEq    = "less_eq"
	FilterOperatorGreaterEq = "greater_eq"
	FilterIsNotNull         = "is_not_null"
	FilterIsNull            = "is_null"
)

const (
	FilterGroupOperatorAnd = "AND"
	FilterGroupOperatorOr  = "OR"
)

// Filter is evaluated against the fields of an already fetched document.
// Nothing is pushed down to the document store.
type Filter struct {
	Field    string
	Value    any
	Operator string `validate:"required,oneof=eq like in not_eq less_eq greater_eq is_null is_not_null"`
}

func (f *Filter) Match(fields map[string]any) bool {
	value, present := fields[f.Field]

	switch f.Operator {
	case FilterOperatorEq:
		cmp, ok := compare(value, f.Value)

		return present && ok && cmp == 0
	case FilterOperatorNotEq:
		cmp, ok := compare(value, f.Value)

		return !present || !ok || cmp != 0
	case FilterOperatorLike:
		if !present || value == nil {
			return false
		}

		return strings.Contains(strings.ToLower(toString(value)), strings.ToLower(toString(f.Value)))
	case FilterOperatorIn:
		return present && matchIn(value, f.Value)
	case FilterOperatorLessEq:
		cmp, ok := compare(value, f.Value)

		return present && ok && cmp <= 0
	case FilterOperatorGreaterEq:
		cmp, ok := compare(value, f.Value)

		return present && ok && cmp >= 0
	case FilterIsNotNull:
		return present && value != nil && toString(value) != ""
	case FilterIsNull:
		return !present || value == nil || toString(value) == ""
	default:
		return false
	}
}

type FilterGroup struct {
	Filters  []any
	Operator string
}

// Match reports whether fields satisfy the group. An empty group matches
// everything; the operator defaults to AND.
func (f *FilterGroup) Match(fields map[string]any) bool {
	if len(f.Filters) == 0 {
		return true
	}

	or := strings.EqualFold(f.Operator, FilterGroupOperatorOr)

	for _, filter := range f.Filters {
		var matched bool

		switch fill := filter.(type) {
		case Filter:
			matched = fill.Match(fields)
		case FilterGroup:
			matched = fill.Match(fields)
		default:
			continue
		}

		if or && matched {
			return true
		}

		if !or && !matched {
			return false
		}
	}

	return !or
}

func (f *FilterGroup) IsEmpty() bool {
	return len(f.Filters) == 0
}

func matchIn(value, candidates any) bool {
	val := reflect.ValueOf(candidates)
	if !val.IsValid() {
		return false
	}

	switch val.Kind() {
	case reflect.Array, reflect.Slice:
		for idx := range val.Len() {
			if cmp, ok := compare(value, val.Index(idx).Interface()); ok && cmp == 0 {
				return true
			}
		}

		return false
	case reflect.String:
		for _, candidate := range strings.Split(val.String(), ",") {
			if cmp, ok := compare(value, strings.TrimSpace(candidate)); ok && cmp == 0 {
				return true
			}
		}

		return false
	default:
		cmp, ok := compare(value, candidates)

		return ok && cmp == 0
	}
}

// compare orders two document values. Numbers compare numerically (a string
// operand is parsed), times chronologically, everything else as text.
func compare(left, right any) (int, bool) {
	if left == nil || right == nil {
		return 0, left == nil && right == nil
	}

	if lt, ok := left.(time.Time); ok {
		rt, ok := toTime(right)
		if !ok {
			return 0, false
		}

		return lt.Compare(rt), true
	}

	if ln, ok := toFloat(left); ok {
		if rn, ok := toFloat(right); ok {
			switch {
			case ln < rn:
				return -1, true
			case ln > rn:
				return 1, true
			default:
				return 0, true
			}
		}
	}

	return strings.Compare(toString(left), toString(right)), true
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)

		return f, err == nil
	default:
		return 0, false
	}
}

func toTime(value any) (time.Time, bool) {
	switch v := value.(type) {
	case time.Time:
		return v, true
	case string:
		for _, layout := range []string{time.RFC3339Nano, time.DateOnly} {
			if t, err := time.Parse(layout, v); err == nil {
				return t, true
			}
		}

		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}

func toString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case time.Time:
		return v.Format(time.RFC3339Nano)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Compare exposes the ordering used by filters so sorting agrees with
// less_eq/greater_eq.
func Compare(left, right any) int {
	if left == nil && right == nil {
		return 0
	}

	if left == nil {
		return -1
	}

	if right == nil {
		return 1
	}

	cmp, _ := compare(left, right)

	return cmp
}
