package poi

import (
	"fmt"
	"iter"
	"reflect"

	"github.com/spf13/cast"
)

var float64Type = reflect.TypeOf(float64(0))

func isIterable(v any) bool {
	switch v.(type) {
	case Container, *POIArray, *POI, iter.Seq[float64], func(func(float64) bool):
		return true
	}

	if v == nil {
		return false
	}

	switch reflect.TypeOf(v).Kind() { // nolint: exhaustive
	case reflect.Slice, reflect.Array, reflect.Map, reflect.String, reflect.Chan:
		return true
	}

	return false
}

func isNumber(v any) bool {
	if v == nil {
		return false
	}

	switch reflect.TypeOf(v).Kind() { // nolint: exhaustive
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}

	return false
}

func toFloat64(v any) (float64, error) {
	if !isNumber(v) {
		return 0, fmt.Errorf("%w: %v (%T) is not a number", ErrTypeConstraint, v, v)
	}

	f, err := cast.ToFloat64E(v)
	if err == nil {
		return f, nil
	}

	// named numeric types
	return reflect.ValueOf(v).Convert(float64Type).Float(), nil
}

// toFloat64s copies an iterable of numbers into a fresh float64 slice.
func toFloat64s(values any) (vs []float64, err error) {
	if c, ok := asContainer(values); ok {
		return c.Values(), nil
	}

	switch s := values.(type) {
	case []float64:
		return append(make([]float64, 0, len(s)), s...), nil
	case iter.Seq[float64]:
		return collect(s)
	case func(func(float64) bool):
		return collect(s)
	}

	if values == nil {
		return nil, fmt.Errorf("%w: a list/array of values is required", ErrTypeConstraint)
	}

	rv := reflect.ValueOf(values)

	switch rv.Kind() { // nolint: exhaustive
	case reflect.Slice, reflect.Array:
	default:
		return nil, fmt.Errorf("%w: a list/array of values is required, got %T", ErrTypeConstraint, values)
	}

	vs = make([]float64, rv.Len())

	for idx := 0; idx < rv.Len(); idx++ {
		vs[idx], err = toFloat64(rv.Index(idx).Interface())
		if err != nil {
			return nil, err
		}
	}

	return vs, nil
}

func collect(seq iter.Seq[float64]) ([]float64, error) {
	if seq == nil {
		return nil, fmt.Errorf("%w: nil sequence of values", ErrTypeConstraint)
	}

	vs := make([]float64, 0)
	for v := range seq {
		vs = append(vs, v)
	}

	return vs, nil
}
