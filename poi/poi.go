package poi

import (
	"fmt"
	"strconv"

	"github.com/sgostarter/libhypotests/parameter"
)

// POI is a parameter of interest with exactly one value.
type POI struct {
	arr   POIArray
	value float64
}

// NewPOI wraps p and a single number. Slices, arrays, maps, strings and other
// iterables are rejected with ErrTypeConstraint.
func NewPOI(p parameter.Parameter, value any) (POI, error) {
	return NewPOIWithChecker(parameter.IsValid, p, value)
}

func NewPOIWithChecker(check parameter.Checker, p parameter.Parameter, value any) (POI, error) {
	if err := checkParameter(check, p); err != nil {
		return POI{}, err
	}

	if isIterable(value) {
		return POI{}, fmt.Errorf("%w: a single value for the POI is required, got %T", ErrTypeConstraint, value)
	}

	v, err := toFloat64(value)
	if err != nil {
		return POI{}, err
	}

	return POI{
		arr:   newArray(p, []float64{v}),
		value: v,
	}, nil
}

func MustNewPOI(p parameter.Parameter, value any) POI {
	poi, err := NewPOI(p, value)
	if err != nil {
		panic(err)
	}

	return poi
}

// AsArray returns a one-element POIArray with the parameter and value of poi.
func AsArray(poi POI) POIArray {
	return newArray(poi.arr.parameter, []float64{poi.value})
}

func (poi POI) Kind() Kind {
	return KindScalar
}

func (poi POI) Value() float64 {
	return poi.value
}

func (poi POI) Name() string {
	return poi.arr.name
}

func (poi POI) Parameter() parameter.Parameter {
	return poi.arr.parameter
}

func (poi POI) Values() []float64 {
	return poi.arr.Values()
}

func (poi POI) rawValues() []float64 {
	return poi.arr.values
}

func (poi POI) Len() int {
	return poi.arr.Len()
}

func (poi POI) NDim() int {
	return poi.arr.NDim()
}

func (poi POI) Shape() []int {
	return poi.arr.Shape()
}

// Compare only accepts another POI; a POIArray, even with a single equal
// value, is NotComparable.
func (poi POI) Compare(other any) Comparison {
	o, ok := asContainer(other)
	if !ok {
		return NotComparable
	}

	op, ok := o.(POI)
	if !ok {
		return NotComparable
	}

	if poi.arr.name != op.arr.name || poi.value != op.value {
		return Unequal
	}

	return Same
}

func (poi POI) Equal(other any) bool {
	return poi.Compare(other) == Same
}

func (poi POI) Hash() uint64 {
	return hashScalar(poi.arr.name, poi.value)
}

// Key is an exact, readable cache key such as "Nsig=0.5".
func (poi POI) Key() string {
	v := poi.value
	if v == 0 { // -0
		v = 0
	}

	return poi.arr.name + "=" + formatValue(v)
}

func (poi POI) String() string {
	return fmt.Sprintf("POI('%s', value=%s)", poi.arr.name, formatValue(poi.value))
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
