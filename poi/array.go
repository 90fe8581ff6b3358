package poi

import (
	"fmt"
	"iter"

	"github.com/sgostarter/libhypotests/parameter"
	"gonum.org/v1/gonum/floats"
)

// POIArray holds ordered candidate values of one parameter of interest.
// It is immutable; Append returns a new array.
//
//	nsig, _ := parameter.NewFitParameter(&parameter.Config{Name: "Nsig"})
//	pois, _ := poi.NewArray(nsig, []int{0, 1, 2})
type POIArray struct {
	parameter parameter.Parameter
	name      string
	values    []float64
}

// NewArray wraps p and a slice, array or sequence of numbers. Every element is
// converted to float64.
func NewArray(p parameter.Parameter, values any) (POIArray, error) {
	return NewArrayWithChecker(parameter.IsValid, p, values)
}

// NewArrayWithChecker is NewArray with a caller supplied validity predicate.
func NewArrayWithChecker(check parameter.Checker, p parameter.Parameter, values any) (POIArray, error) {
	if err := checkParameter(check, p); err != nil {
		return POIArray{}, err
	}

	vs, err := toFloat64s(values)
	if err != nil {
		return POIArray{}, err
	}

	return newArray(p, vs), nil
}

func MustNewArray(p parameter.Parameter, values any) POIArray {
	a, err := NewArray(p, values)
	if err != nil {
		panic(err)
	}

	return a
}

func checkParameter(check parameter.Checker, p parameter.Parameter) error {
	if check == nil {
		check = parameter.IsValid
	}

	if p == nil || !check(p) {
		return fmt.Errorf("%w: %v is not a valid parameter", ErrInvalidParameter, p)
	}

	return nil
}

// newArray takes ownership of vs.
func newArray(p parameter.Parameter, vs []float64) POIArray {
	return POIArray{
		parameter: p,
		name:      p.Name(),
		values:    vs,
	}
}

func (a POIArray) Kind() Kind {
	return KindArray
}

func (a POIArray) Name() string {
	return a.name
}

func (a POIArray) Parameter() parameter.Parameter {
	return a.parameter
}

func (a POIArray) Values() []float64 {
	return append(make([]float64, 0, len(a.values)), a.values...)
}

func (a POIArray) rawValues() []float64 {
	return a.values
}

func (a POIArray) Len() int {
	return len(a.values)
}

func (a POIArray) NDim() int {
	return 1
}

func (a POIArray) Shape() []int {
	return []int{len(a.values)}
}

// At returns the i-th value as a POI. It panics if i is out of range.
func (a POIArray) At(i int) POI {
	return a.poiOf(a.values[i])
}

func (a POIArray) Get(i int) (POI, error) {
	if i < 0 || i >= len(a.values) {
		return POI{}, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, len(a.values))
	}

	return a.At(i), nil
}

// All yields one POI per value in stored order. Each call starts a new pass.
func (a POIArray) All() iter.Seq[POI] {
	return func(yield func(POI) bool) {
		for _, v := range a.values {
			if !yield(a.poiOf(v)) {
				return
			}
		}
	}
}

func (a POIArray) Enumerate() iter.Seq2[int, POI] {
	return func(yield func(int, POI) bool) {
		for idx, v := range a.values {
			if !yield(idx, a.poiOf(v)) {
				return
			}
		}
	}
}

func (a POIArray) poiOf(v float64) POI {
	return POI{
		arr:   POIArray{parameter: a.parameter, name: a.name, values: []float64{v}},
		value: v,
	}
}

// Compare compares name and values, in order, against any Container,
// including a POI. Anything else is NotComparable.
func (a POIArray) Compare(other any) Comparison {
	o, ok := asContainer(other)
	if !ok {
		return NotComparable
	}

	if a.name != o.Name() || !floats.Equal(a.values, o.rawValues()) {
		return Unequal
	}

	return Same
}

func (a POIArray) Equal(other any) bool {
	return a.Compare(other) == Same
}

// Hash is consistent with Equal between arrays: -0.0 and +0.0 hash the same.
func (a POIArray) Hash() uint64 {
	return hashValues(a.name, a.values)
}

func (a POIArray) Key() string {
	return fmt.Sprintf("%s#%016x", a.name, a.Hash())
}

// Append returns a new array with values, a number or an iterable of numbers,
// added after the existing ones.
func (a POIArray) Append(values any) (POIArray, error) {
	if err := checkParameter(parameter.IsValid, a.parameter); err != nil {
		return POIArray{}, err
	}

	var added []float64

	if isIterable(values) {
		vs, err := toFloat64s(values)
		if err != nil {
			return POIArray{}, err
		}

		added = vs
	} else {
		v, err := toFloat64(values)
		if err != nil {
			return POIArray{}, err
		}

		added = []float64{v}
	}

	vs := make([]float64, 0, len(a.values)+len(added))
	vs = append(vs, a.values...)
	vs = append(vs, added...)

	return newArray(a.parameter, vs), nil
}

func (a POIArray) String() string {
	return fmt.Sprintf("POIarray('%s', values=%v)", a.name, a.values)
}
