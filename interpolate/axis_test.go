package interpolate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAxis(t *testing.T) {
	_, err := NewAxis([]float64{})
	assert.ErrorIs(t, err, ErrInsufficientKnots, "empty axis")

	_, err = NewAxis([]float64{0, 1, 1, 2})
	assert.Error(t, err, "duplicate knot")

	_, err = NewAxis([]float64{0, 2, 1})
	assert.Error(t, err, "decreasing knot")

	_, err = NewAxis([]float64{0, math.NaN(), 1})
	assert.Error(t, err, "NaN knot")

	ax, err := NewAxis([]float64{-1, 0, 2.5, 7})
	assert.NoError(t, err)
	assert.Equal(t, 4, ax.Len())
	assert.Equal(t, -1.0, ax.Min())
	assert.Equal(t, 7.0, ax.Max())
	assert.Equal(t, 2.5, ax.Knot(2))
}

func TestNewUniformAxis(t *testing.T) {
	_, err := NewUniformAxis(0, 1, 0)
	assert.ErrorIs(t, err, ErrInsufficientKnots, "no knots")

	_, err = NewUniformAxis(0, -1, 3)
	assert.Error(t, err, "negative spacing")

	_, err = NewUniformAxis(0, 0, 3)
	assert.Error(t, err, "zero spacing")

	ax, err := NewUniformAxis(1, 0.5, 5)
	assert.NoError(t, err)
	assert.Equal(t, 5, ax.Len())
	assert.Equal(t, 1.0, ax.Min())
	assert.Equal(t, 3.0, ax.Max())
	assert.Equal(t, 2.0, ax.Knot(2))
}

func TestBracketInterior(t *testing.T) {
	ax, err := NewAxis([]float64{0, 1, 3, 4})
	assert.NoError(t, err)

	br := ax.Bracket(0.5)
	assert.Equal(t, BracketResult{Low: 0, T: 0.5}, br)

	br = ax.Bracket(2)
	assert.Equal(t, BracketResult{Low: 1, T: 0.5}, br)

	br = ax.Bracket(3.25)
	assert.Equal(t, BracketResult{Low: 2, T: 0.25}, br)
}

// A coordinate equal to a knot resolves to the interval with that knot as
// its lower bound, except at the topmost knot.
func TestBracketKnotTies(t *testing.T) {
	ax, err := NewAxis([]float64{0, 1, 3, 4})
	assert.NoError(t, err)

	br := ax.Bracket(0)
	assert.Equal(t, BracketResult{Low: 0, T: 0}, br, "first knot")

	br = ax.Bracket(1)
	assert.Equal(t, BracketResult{Low: 1, T: 0}, br, "interior knot")

	br = ax.Bracket(3)
	assert.Equal(t, BracketResult{Low: 2, T: 0}, br, "interior knot")

	br = ax.Bracket(4)
	assert.Equal(t, BracketResult{Low: 2, T: 1}, br, "topmost knot")
}

func TestBracketOutOfRange(t *testing.T) {
	ax, err := NewAxis([]float64{0, 1, 3, 4})
	assert.NoError(t, err)

	br := ax.Bracket(-1)
	assert.Equal(t, BracketResult{Low: 0, T: -1, Extrapolating: true}, br)

	br = ax.Bracket(5)
	assert.Equal(t, BracketResult{Low: 2, T: 2, Extrapolating: true}, br)
}

// A single-knot axis brackets every coordinate to the same place.
func TestBracketSingleKnot(t *testing.T) {
	ax, err := NewAxis([]float64{3})
	assert.NoError(t, err)

	for _, x := range []float64{-100, 0, 3, 100} {
		br := ax.Bracket(x)
		assert.Equal(t, BracketResult{Low: 0, T: 0}, br, "x = %g", x)
	}
}

// Uniform and explicit-knot axes must bracket identically.
func TestBracketUniformMatchesExplicit(t *testing.T) {
	unif, err := NewUniformAxis(2, 0.25, 9)
	assert.NoError(t, err)
	knots := make([]float64, 9)
	for i := range knots {
		knots[i] = 2 + 0.25*float64(i)
	}
	expl, err := NewAxis(knots)
	assert.NoError(t, err)

	for x := 1.9; x < 4.3; x += 0.01 {
		bu, be := unif.Bracket(x), expl.Bracket(x)
		assert.Equal(t, be.Low, bu.Low, "x = %g", x)
		assert.InDelta(t, be.T, bu.T, 1e-12, "x = %g", x)
		assert.Equal(t, be.Extrapolating, bu.Extrapolating, "x = %g", x)
	}
}
