package record

import (
	"encoding/json"
	"math"
	"reflect"

	"github.com/spf13/cast"
)

// Number returns v as a float64 when v is numeric. Strings and booleans are
// not numeric, whatever they contain.
func Number(v any) (float64, bool) {
	if v == nil {
		return 0, false
	}
	if _, ok := v.(json.Number); ok {
		f, err := cast.ToFloat64E(v)
		return f, err == nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
	default:
		return 0, false
	}

	if f, err := cast.ToFloat64E(v); err == nil {
		return f, true
	}
	// named numeric types fall through cast's type switch
	switch {
	case rv.CanInt():
		return float64(rv.Int()), true
	case rv.CanUint():
		return float64(rv.Uint()), true
	default:
		return rv.Float(), true
	}
}

// SameValue reports whether a and b are strictly equal: numbers of any Go
// numeric type compare by value (NaN equals nothing), other values must have
// the same type, hold comparable values and compare equal with ==.
func SameValue(a, b any) bool {
	af, aNum := Number(a)
	bf, bNum := Number(b)
	if aNum || bNum {
		return aNum && bNum && af == bf
	}
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) || !isComparable(a) || !isComparable(b) {
		return false
	}
	return a == b
}

// IndexKey normalizes v for use as a map key consistent with SameValue.
// It reports false for values that can never compare equal.
func IndexKey(v any) (any, bool) {
	if f, ok := Number(v); ok {
		if math.IsNaN(f) {
			return nil, false
		}
		return f, true
	}
	if v == nil {
		return nil, true
	}
	if !isComparable(v) {
		return nil, false
	}
	return v, true
}

// isComparable checks the dynamic value: a struct or array of a comparable
// type can still hold a slice or map in an interface field.
func isComparable(v any) bool {
	return reflect.ValueOf(v).Comparable()
}
