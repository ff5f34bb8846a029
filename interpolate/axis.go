/*package interpolate evaluates tabulated functions on N-dimensional grids
through local interpolation. A Grid pairs one Axis of knots per dimension
with a flat row-major value table, and an Interpolator collapses that table
to a point value with an independently chosen kernel and boundary rule for
every axis.
*/
package interpolate

import (
	"fmt"
	"math"
)

// Axis is an ordered, strictly increasing sequence of knot coordinates for
// one grid dimension. Axes are immutable after construction and may be
// shared read-only between any number of grids.
type Axis struct {
	s searcher
}

// BracketResult locates a coordinate within an axis. Low is the index of
// the lower knot of the bracketing interval, T is the normalized position
// within that interval, and Extrapolating reports whether the coordinate
// fell outside the knot range. When extrapolating, Low is clamped to the
// first or last interval and T lies outside [0, 1].
type BracketResult struct {
	Low           int
	T             float64
	Extrapolating bool
}

// NewAxis creates an axis from a strictly increasing sequence of knots.
// The slice is retained, not copied, and must not be modified afterwards.
func NewAxis(knots []float64) (*Axis, error) {
	if len(knots) == 0 {
		return nil, fmt.Errorf("axis has no knots: %w", ErrInsufficientKnots)
	}
	for i, x := range knots {
		if math.IsNaN(x) {
			return nil, fmt.Errorf("axis knot %d is NaN", i)
		}
		if i > 0 && x <= knots[i-1] {
			return nil, fmt.Errorf(
				"axis knots not strictly increasing: knot %d = %g, "+
					"knot %d = %g", i-1, knots[i-1], i, x,
			)
		}
	}

	ax := &Axis{}
	ax.s.init(knots)
	return ax, nil
}

// NewUniformAxis creates an axis of n knots starting at x0 and separated
// by dx. Bracketing on a uniform axis is O(1) instead of O(log n).
func NewUniformAxis(x0, dx float64, n int) (*Axis, error) {
	if n < 1 {
		return nil, fmt.Errorf("axis has no knots: %w", ErrInsufficientKnots)
	}
	if math.IsNaN(x0) || math.IsNaN(dx) {
		return nil, fmt.Errorf("axis parameters x0 = %g, dx = %g", x0, dx)
	}
	if n > 1 && dx <= 0 {
		return nil, fmt.Errorf("axis spacing dx = %g is not positive", dx)
	}

	ax := &Axis{}
	ax.s.unifInit(x0, dx, n)
	return ax, nil
}

// Len returns the number of knots in the axis.
func (ax *Axis) Len() int { return ax.s.n }

// Knot returns the coordinate of knot i.
func (ax *Axis) Knot(i int) float64 { return ax.s.val(i) }

// Min returns the coordinate of the first knot.
func (ax *Axis) Min() float64 { return ax.s.x0 }

// Max returns the coordinate of the last knot.
func (ax *Axis) Max() float64 { return ax.s.lim }

// Bracket finds the knot interval containing x in O(log n), or O(1) for
// uniform axes. A coordinate equal to a knot resolves to the interval
// with that knot as its lower bound, except at the topmost knot, which
// resolves to the last interval. A single-knot axis brackets every
// coordinate to (0, 0): it contributes no interpolation and acts as a
// pass-through dimension.
func (ax *Axis) Bracket(x float64) BracketResult {
	if ax.s.n == 1 {
		return BracketResult{Low: 0, T: 0, Extrapolating: false}
	}

	i := ax.s.search(x)
	x0, x1 := ax.s.val(i), ax.s.val(i+1)
	return BracketResult{
		Low:           i,
		T:             (x - x0) / (x1 - x0),
		Extrapolating: x < ax.s.x0 || x > ax.s.lim,
	}
}
