package poi

import "github.com/sgostarter/libhypotests/parameter"

type Kind int

const (
	KindArray Kind = iota
	KindScalar
)

func (k Kind) String() string {
	switch k {
	case KindArray:
		return "array"
	case KindScalar:
		return "scalar"
	}

	return "unknown"
}

type Comparison int

const (
	NotComparable Comparison = iota
	Unequal
	Same
)

// Container is the read-only view shared by POIArray and POI. The set of
// implementations is closed; use Kind to tell the variants apart.
//
// Equality is decided by the receiver's variant. A POIArray compares its name
// and values against any Container, so a one-element array equals a POI of
// the same value. A POI only ever equals another POI. Use the package level
// Equal when both sides must be of the same variant.
type Container interface {
	Kind() Kind
	Name() string
	Parameter() parameter.Parameter
	// Values returns a copy of the stored values.
	Values() []float64
	Len() int
	NDim() int
	Shape() []int
	Hash() uint64
	Key() string
	Compare(other any) Comparison
	Equal(other any) bool
	String() string

	rawValues() []float64
}

var (
	_ Container = POIArray{}
	_ Container = POI{}
)

// Equal reports whether a and b are the same variant and equal under that
// variant's rule.
func Equal(a, b Container) bool {
	if a == nil || b == nil {
		return false
	}

	if a.Kind() != b.Kind() {
		return false
	}

	return a.Equal(b)
}

func asContainer(other any) (Container, bool) {
	switch o := other.(type) {
	case *POIArray:
		if o == nil {
			return nil, false
		}

		return *o, true
	case *POI:
		if o == nil {
			return nil, false
		}

		return *o, true
	case Container:
		return o, true
	}

	return nil, false
}
