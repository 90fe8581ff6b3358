package parameter

import (
	"errors"
	"math"
	"testing"

	"github.com/sgostarter/i/l"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type namedOnly struct{}

func (namedOnly) Name() string { return "x" }

func TestIsValid(t *testing.T) {
	p, err := NewFitParameter(&Config{Name: "Nsig"})
	require.Nil(t, err)

	var nilParam *FitParameter

	assert.True(t, IsValid(p))
	assert.False(t, IsValid(nil))
	assert.False(t, IsValid(nilParam))
	assert.False(t, IsValid(namedOnly{}))
	assert.False(t, IsValid("Nsig"))
	assert.False(t, IsValid(&FitParameter{}))
}

func TestFitParameter(t *testing.T) {
	lower, upper := 0.0, 10.0

	p, err := NewFitParameter(&Config{Name: "mu", Value: 1, Lower: &lower, Upper: &upper})
	require.Nil(t, err)
	assert.EqualValues(t, "mu", p.Name())
	assert.EqualValues(t, 1, p.Value())
	assert.True(t, p.Floating())

	assert.Nil(t, p.SetValue(10))
	assert.EqualValues(t, 10, p.Value())

	err = p.SetValue(11)
	assert.True(t, errors.Is(err, ErrOutOfLimits))
	assert.True(t, errors.Is(p.SetValue(math.NaN()), ErrOutOfLimits))
	assert.EqualValues(t, 10, p.Value())

	p.SetFloating(false)
	assert.False(t, p.Floating())

	lo, up := p.Limits()
	assert.EqualValues(t, 0, lo)
	assert.EqualValues(t, 10, up)

	_, err = NewFitParameter(&Config{Name: "mu", Value: -1, Lower: &lower})
	assert.True(t, errors.Is(err, ErrOutOfLimits))

	_, err = NewFitParameter(&Config{Name: "mu", Lower: &upper, Upper: &lower})
	assert.True(t, errors.Is(err, ErrInvalidConfig))

	_, err = NewFitParameter(nil)
	assert.True(t, errors.Is(err, ErrInvalidConfig))

	fixed, err := NewFitParameter(&Config{Name: "bkg", Fixed: true})
	require.Nil(t, err)
	assert.False(t, fixed.Floating())

	lo, up = fixed.Limits()
	assert.True(t, math.IsInf(lo, -1))
	assert.True(t, math.IsInf(up, 1))
}

func TestLoadConfigs(t *testing.T) {
	cfgs, err := LoadConfigs([]byte(`
parameters:
  - name: Nsig
    value: 10
    lower: 0
  - name: Nbkg
    value: 100
    fixed: true
`))
	require.Nil(t, err)
	require.Len(t, cfgs, 2)
	assert.EqualValues(t, "Nsig", cfgs[0].Name)
	assert.EqualValues(t, 10, cfgs[0].Value)
	require.NotNil(t, cfgs[0].Lower)
	assert.EqualValues(t, 0, *cfgs[0].Lower)
	assert.Nil(t, cfgs[0].Upper)
	assert.True(t, cfgs[1].Fixed)

	s, err := NewSetFromConfigs(cfgs, l.NewConsoleLoggerWrapper())
	require.Nil(t, err)
	assert.EqualValues(t, []string{"Nbkg", "Nsig"}, s.Names())

	_, err = LoadConfigs([]byte("parameters: ["))
	assert.NotNil(t, err)
}

func TestSet(t *testing.T) {
	nsig, _ := NewFitParameter(&Config{Name: "Nsig"})
	nbkg, _ := NewFitParameter(&Config{Name: "Nbkg"})

	s, err := NewSet(nil, nsig, nbkg)
	require.Nil(t, err)
	assert.EqualValues(t, 2, s.Len())

	p, ok := s.Get("Nsig")
	assert.True(t, ok)
	assert.Equal(t, nsig, p)

	_, ok = s.Get("mu")
	assert.False(t, ok)

	dup, _ := NewFitParameter(&Config{Name: "Nsig"})
	assert.True(t, errors.Is(s.Add(dup), ErrExists))
	assert.True(t, errors.Is(s.Add(nil), ErrInvalidConfig))

	_, err = NewSet(nil, nsig, nsig)
	assert.True(t, errors.Is(err, ErrExists))

	_, err = NewSetFromConfigs([]*Config{{Name: "a"}, {}}, nil)
	assert.True(t, errors.Is(err, ErrInvalidConfig))
}
