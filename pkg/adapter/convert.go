package adapter

import (
	"fmt"
	"math"
	"reflect"
)

func convert(v any, to reflect.Type) (reflect.Value, error) {
	if v == nil {
		switch to.Kind() {
		case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			return reflect.Zero(to), nil
		default:
			return reflect.Value{}, fmt.Errorf("%w: nil for %s", ErrBadSignature, to)
		}
	}

	rv := reflect.ValueOf(v)
	from := rv.Type()
	switch {
	case from.AssignableTo(to):
		return rv, nil
	case isNumber(from.Kind()) && isNumber(to.Kind()):
		return convertNumber(rv, to)
	case from.Kind() == reflect.String && to.Kind() == reflect.String:
		return rv.Convert(to), nil
	case convertible(from, to):
		return rv.Convert(to), nil
	default:
		return reflect.Value{}, fmt.Errorf("%w: %s is not assignable to %s", ErrBadSignature, from, to)
	}
}

// convertible reports the remaining conversions that cannot fail or lose
// information. Slice to array conversions panic on a length mismatch.
func convertible(from, to reflect.Type) bool {
	if !from.ConvertibleTo(to) {
		return false
	}

	fk, tk := from.Kind(), to.Kind()
	switch {
	case fk == reflect.String || tk == reflect.String:
		return false
	case isNumber(fk) || isNumber(tk) || isComplex(fk) || isComplex(tk):
		return false
	case fk == reflect.Slice && tk == reflect.Array:
		return false
	case fk == reflect.Slice && tk == reflect.Pointer && to.Elem().Kind() == reflect.Array:
		return false
	}
	return true
}

// convertNumber converts between integer and float kinds only when the value
// is represented exactly by the target. Float to float conversions only check
// the range.
func convertNumber(rv reflect.Value, to reflect.Type) (reflect.Value, error) {
	out := reflect.New(to).Elem()

	var ok bool
	switch k := rv.Kind(); {
	case isInt(k):
		ok = setFromInt(out, rv.Int())
	case isUint(k):
		ok = setFromUint(out, rv.Uint())
	default:
		ok = setFromFloat(out, rv.Float())
	}

	if !ok {
		return reflect.Value{}, fmt.Errorf("%w: %v does not fit %s", ErrBadSignature, rv.Interface(), to)
	}
	return out, nil
}

func setFromInt(out reflect.Value, n int64) bool {
	switch k := out.Kind(); {
	case isInt(k):
		if out.OverflowInt(n) {
			return false
		}
		out.SetInt(n)
	case isUint(k):
		if n < 0 || out.OverflowUint(uint64(n)) {
			return false
		}
		out.SetUint(uint64(n))
	default:
		f := float64(n)
		if f >= 0x1p63 || int64(f) != n {
			return false
		}
		return setExactFloat(out, f)
	}
	return true
}

func setFromUint(out reflect.Value, u uint64) bool {
	switch k := out.Kind(); {
	case isInt(k):
		if u > math.MaxInt64 || out.OverflowInt(int64(u)) {
			return false
		}
		out.SetInt(int64(u))
	case isUint(k):
		if out.OverflowUint(u) {
			return false
		}
		out.SetUint(u)
	default:
		f := float64(u)
		if f >= 0x1p64 || uint64(f) != u {
			return false
		}
		return setExactFloat(out, f)
	}
	return true
}

func setFromFloat(out reflect.Value, f float64) bool {
	switch k := out.Kind(); {
	case isInt(k):
		if math.Trunc(f) != f || f < -0x1p63 || f >= 0x1p63 || out.OverflowInt(int64(f)) {
			return false
		}
		out.SetInt(int64(f))
	case isUint(k):
		if math.Trunc(f) != f || f < 0 || f >= 0x1p64 || out.OverflowUint(uint64(f)) {
			return false
		}
		out.SetUint(uint64(f))
	default:
		if out.OverflowFloat(f) {
			return false
		}
		out.SetFloat(f)
	}
	return true
}

// setExactFloat stores an integral f and reports whether the target kept it.
func setExactFloat(out reflect.Value, f float64) bool {
	if out.OverflowFloat(f) {
		return false
	}
	out.SetFloat(f)
	return out.Float() == f
}

func isInt(k reflect.Kind) bool {
	return k >= reflect.Int && k <= reflect.Int64
}

func isUint(k reflect.Kind) bool {
	return k >= reflect.Uint && k <= reflect.Uintptr
}

func isFloat(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}

func isNumber(k reflect.Kind) bool {
	return isInt(k) || isUint(k) || isFloat(k)
}

func isComplex(k reflect.Kind) bool {
	return k == reflect.Complex64 || k == reflect.Complex128
}
