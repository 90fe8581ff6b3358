package poi

import (
	"fmt"
	"math"

	"github.com/sgostarter/libhypotests/parameter"
	"gonum.org/v1/gonum/floats"
)

// MaxGridLen caps the number of values Linspace and Arange may produce.
const MaxGridLen = math.MaxInt32

// Linspace returns num evenly spaced values over [start, stop].
func Linspace(p parameter.Parameter, start, stop float64, num int) (POIArray, error) {
	if err := checkParameter(parameter.IsValid, p); err != nil {
		return POIArray{}, err
	}

	switch {
	case num < 0:
		return POIArray{}, fmt.Errorf("%w: negative number of samples %d", ErrTypeConstraint, num)
	case num > MaxGridLen:
		return POIArray{}, fmt.Errorf("%w: %d samples exceed %d", ErrTypeConstraint, num, MaxGridLen)
	case num == 0:
		return newArray(p, []float64{}), nil
	case num == 1:
		return newArray(p, []float64{start}), nil
	}

	return newArray(p, floats.Span(make([]float64, num), start, stop)), nil
}

// Arange returns start, start+step, ... up to but excluding stop. A step
// pointing away from stop gives an empty array.
func Arange(p parameter.Parameter, start, stop, step float64) (POIArray, error) {
	if err := checkParameter(parameter.IsValid, p); err != nil {
		return POIArray{}, err
	}

	if step == 0 || math.IsNaN(step) || math.IsInf(step, 0) {
		return POIArray{}, fmt.Errorf("%w: invalid step %v", ErrTypeConstraint, step)
	}

	n := math.Ceil((stop - start) / step)
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return POIArray{}, fmt.Errorf("%w: invalid range [%v, %v)", ErrTypeConstraint, start, stop)
	}

	if n > MaxGridLen {
		return POIArray{}, fmt.Errorf("%w: range [%v, %v) with step %v exceeds %d values", ErrTypeConstraint, start, stop, step, MaxGridLen)
	}

	if n < 0 {
		n = 0
	}

	vs := make([]float64, int(n))
	for idx := range vs {
		vs[idx] = start + float64(idx)*step
	}

	return newArray(p, vs), nil
}
