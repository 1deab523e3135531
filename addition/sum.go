package addition

import (
	"math"
	"reflect"
)

// Sum adds values left to right. The result is an Int when every value is
// an Int and a Float otherwise. An integer sum that overflows int64 carries
// on as a Float.
func Sum(values ...Number) (Number, error) {
	if len(values) == 0 {
		return Number{}, ErrEmptyInput
	}

	total := Int(0)
	for i, v := range values {
		switch {
		case v.kind == InvalidKind:
			return Number{}, &OperandError{Position: i + 1, Value: v}
		case total.kind == IntKind && v.kind == IntKind:
			s := total.i + v.i
			if (v.i > 0 && s < total.i) || (v.i < 0 && s > total.i) {
				total = Float(float64(total.i) + float64(v.i))
				continue
			}
			total.i = s
		default:
			total = Float(total.Float64() + v.Float64())
		}
	}

	return total, nil
}

// SumList sums the elements of list, which must be a slice or an array.
// Elements are converted with FromAny.
func SumList(list any) (Number, error) {
	rv := reflect.ValueOf(list)
	if k := rv.Kind(); k != reflect.Slice && k != reflect.Array {
		return Number{}, ErrInvalidContainerType
	}

	if ns, ok := list.([]Number); ok {
		return Sum(ns...)
	}

	values := make([]Number, rv.Len())
	for i := range values {
		elem := rv.Index(i).Interface()
		n, err := FromAny(elem)
		if err != nil {
			return Number{}, &OperandError{Position: i + 1, Value: elem}
		}
		values[i] = n
	}

	return Sum(values...)
}

// FromAny converts a Go integer or float, or a valid Number, to a Number.
// Anything else, including bool and nil, fails with ErrInvalidOperandType.
func FromAny(v any) (Number, error) {
	switch x := v.(type) {
	case Number:
		if x.kind == InvalidKind {
			return Number{}, &OperandError{Position: 1, Value: v}
		}
		return x, nil
	case float32:
		return Float(float64(x)), nil
	case float64:
		return Float(x), nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return Number{}, &OperandError{Position: 1, Value: v}
		}
		return Int(int64(u)), nil
	case reflect.Float32, reflect.Float64:
		return Float(rv.Float()), nil
	}

	return Number{}, &OperandError{Position: 1, Value: v}
}
