package parameter

// Parameter is the fit parameter a parameter of interest refers to. It is owned
// by the fitting library; containers in this module only read its name.
type Parameter interface {
	Name() string
	Value() float64
	SetValue(v float64) error
	Floating() bool
}

// Checker decides whether an object can be used as a Parameter.
type Checker func(p any) bool
