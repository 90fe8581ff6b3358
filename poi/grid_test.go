package poi

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinspace(t *testing.T) {
	p := utParameter(t, "Nsig")

	arr, err := Linspace(p, 0, 9, 10)
	require.Nil(t, err)
	assert.EqualValues(t, 10, arr.Len())
	assert.True(t, arr.Equal(MustNewArray(p, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9})))
	assert.True(t, arr.At(3).Equal(MustNewPOI(p, 3)))

	idx := 0
	for poi := range arr.All() {
		assert.True(t, poi.Equal(MustNewPOI(p, idx)))
		idx++
	}

	assert.EqualValues(t, 10, idx)

	arr, err = Linspace(p, 0, 10, 10)
	require.Nil(t, err)
	assert.EqualValues(t, 0, arr.At(0).Value())
	assert.EqualValues(t, 10, arr.At(9).Value())
	assert.InDelta(t, 10.0/9, arr.At(1).Value(), 1e-12)

	arr, err = Linspace(p, 2, 5, 1)
	require.Nil(t, err)
	assert.EqualValues(t, []float64{2}, arr.Values())

	arr, err = Linspace(p, 2, 5, 0)
	require.Nil(t, err)
	assert.EqualValues(t, 0, arr.Len())

	_, err = Linspace(p, 2, 5, -1)
	assert.True(t, errors.Is(err, ErrTypeConstraint))

	_, err = Linspace(p, 2, 5, math.MaxInt)
	assert.True(t, errors.Is(err, ErrTypeConstraint))

	_, err = Linspace(nil, 2, 5, 3)
	assert.True(t, errors.Is(err, ErrInvalidParameter))
}

func TestArange(t *testing.T) {
	p := utParameter(t, "mu")

	arr, err := Arange(p, 0, 3, 1)
	require.Nil(t, err)
	assert.EqualValues(t, []float64{0, 1, 2}, arr.Values())

	arr, err = Arange(p, 1, 0, -0.5)
	require.Nil(t, err)
	assert.EqualValues(t, []float64{1, 0.5}, arr.Values())

	arr, err = Arange(p, 0, 3, -1)
	require.Nil(t, err)
	assert.EqualValues(t, 0, arr.Len())

	for _, step := range []float64{0, math.NaN(), math.Inf(1)} {
		_, err = Arange(p, 0, 3, step)
		assert.True(t, errors.Is(err, ErrTypeConstraint))
	}

	_, err = Arange(p, 0, math.Inf(1), 1)
	assert.True(t, errors.Is(err, ErrTypeConstraint))

	_, err = Arange(p, 0, 1, 1e-300)
	assert.True(t, errors.Is(err, ErrTypeConstraint))

	_, err = Arange(p, 1, 0, -1e-300)
	assert.True(t, errors.Is(err, ErrTypeConstraint))

	arr, err = Arange(p, 0, 1, -1e-300)
	require.Nil(t, err)
	assert.EqualValues(t, 0, arr.Len())

	_, err = Arange(nil, 0, 3, 1)
	assert.True(t, errors.Is(err, ErrInvalidParameter))
}
