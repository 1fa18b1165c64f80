package searchspace

import (
	"math"
	"reflect"
)

//////
// Mixed-type value helpers.
//
// Dimension values are carried as `any` because a space mixes floats,
// integers, strings and booleans. These helpers classify and coerce them
// the same way everywhere: classification is by static type, not by value
// (an integer-valued float64 is still a real number, not an integer).
//////

// toFloat coerces any supported numeric value to float64.
func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	}
	return 0, false
}

// toInt coerces any supported integer-typed value to int.
func toInt(v any) (int, bool) {
	switch x := v.(type) {
	case int:
		return x, true
	case int8:
		return int(x), true
	case int16:
		return int(x), true
	case int32:
		return int(x), true
	case int64:
		return int(x), true
	case uint:
		return int(x), true
	case uint8:
		return int(x), true
	case uint16:
		return int(x), true
	case uint32:
		return int(x), true
	case uint64:
		return int(x), true
	}
	return 0, false
}

// isIntegral reports whether v is an integer-typed value.
func isIntegral(v any) bool {
	_, ok := toInt(v)
	return ok
}

// isNumber reports whether v is any numeric value, integral or floating.
func isNumber(v any) bool {
	_, ok := toFloat(v)
	return ok
}

// isFloat reports whether v is a floating-point value.
func isFloat(v any) bool {
	switch v.(type) {
	case float32, float64:
		return true
	}
	return false
}

// isString reports whether v is a string.
func isString(v any) bool {
	_, ok := v.(string)
	return ok
}

// isBool reports whether v is a boolean.
func isBool(v any) bool {
	_, ok := v.(bool)
	return ok
}

// equalValue compares two dimension values. Numbers compare by magnitude so
// that int(1) matches float64(1.0); everything else compares structurally.
func equalValue(a, b any) bool {
	fa, oka := toFloat(a)
	fb, okb := toFloat(b)

	if oka && okb {
		return fa == fb
	}

	if oka != okb {
		return false
	}

	return reflect.DeepEqual(a, b)
}

// almostEqual compares floats with the tolerance used by dimension equality.
func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= 1e-8+1e-5*math.Abs(b)
}

// asSlice normalizes any slice or array value into []any. It is used by the
// dimension-description inference so callers can pass []int, []string, etc.
func asSlice(v any) ([]any, bool) {
	if s, ok := v.([]any); ok {
		return s, true
	}

	rv := reflect.ValueOf(v)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return nil, false
	}

	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}

	return out, true
}
