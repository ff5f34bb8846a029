package interpolate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func mustAxis(t *testing.T, knots []float64) *Axis {
	t.Helper()
	ax, err := NewAxis(knots)
	assert.NoError(t, err)
	return ax
}

func TestNewGridShape(t *testing.T) {
	x := mustAxis(t, []float64{0, 1, 2})
	y := mustAxis(t, []float64{0, 1})

	_, err := NewGrid([]*Axis{x, y}, make([]float64, 5), 1)
	assert.ErrorIs(t, err, ErrShapeMismatch, "too few values")

	_, err = NewGrid([]*Axis{x, y}, make([]float64, 7), 1)
	assert.ErrorIs(t, err, ErrShapeMismatch, "too many values")

	_, err = NewGrid([]*Axis{x, y}, make([]float64, 6), 0)
	assert.ErrorIs(t, err, ErrShapeMismatch, "no channels")

	_, err = NewGrid([]*Axis{x, y}, make([]float64, 12), 2)
	assert.NoError(t, err, "two channels")

	_, err = NewGrid(nil, nil, 1)
	assert.ErrorIs(t, err, ErrShapeMismatch, "no axes")
}

func TestGridAt(t *testing.T) {
	x := mustAxis(t, []float64{0, 1, 2})
	y := mustAxis(t, []float64{0, 1})

	// vals(ix, iy, c) = 100*ix + 10*iy + c, listed row-major with the
	// last axis varying fastest and the channel index innermost.
	vals := []float64{
		0, 1, 10, 11,
		100, 101, 110, 111,
		200, 201, 210, 211,
	}
	g, err := NewGrid([]*Axis{x, y}, vals, 2)
	assert.NoError(t, err)

	assert.Equal(t, 2, g.NAxes())
	assert.Equal(t, 2, g.Channels())
	assert.Equal(t, 3, g.Axis(0).Len())
	assert.Equal(t, 2, g.Axis(1).Len())

	for ix := 0; ix < 3; ix++ {
		for iy := 0; iy < 2; iy++ {
			got := g.At([]int{ix, iy})
			want0 := float64(100*ix + 10*iy)
			assert.Equal(t, []float64{want0, want0 + 1}, got,
				"index (%d, %d)", ix, iy)
		}
	}
}
