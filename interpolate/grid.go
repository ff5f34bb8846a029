package interpolate

import (
	"fmt"
)

// Grid is an N-dimensional Cartesian-product table of sample values with
// one or more co-located value channels per grid point. Values are stored
// row-major with the last axis varying fastest and the channel index
// innermost: vals(i0, .., iN-1, c) -> vals[(i0*n1*..*nN-1 + .. + iN-1)*C + c].
//
// Grids are immutable after construction and may be shared read-only
// between any number of interpolators.
type Grid struct {
	axes     []*Axis
	vals     []float64
	channels int
	// strides[d] is the distance in vals between neighboring points
	// along axis d.
	strides []int
}

// NewGrid creates a grid over the given axes with the given channel count.
// The axes and value slices are retained, not copied, and must not be
// modified afterwards. The length of vals must equal the product of the
// axis lengths times channels.
func NewGrid(axes []*Axis, vals []float64, channels int) (*Grid, error) {
	if len(axes) == 0 {
		return nil, fmt.Errorf("grid has no axes: %w", ErrShapeMismatch)
	}
	if channels < 1 {
		return nil, fmt.Errorf(
			"grid channel count is %d: %w", channels, ErrShapeMismatch,
		)
	}

	points := 1
	for _, ax := range axes {
		points *= ax.Len()
	}
	if points*channels != len(vals) {
		return nil, fmt.Errorf(
			"len(vals) = %d, but the axis lengths and channel count "+
				"need %d: %w", len(vals), points*channels, ErrShapeMismatch,
		)
	}

	g := &Grid{
		axes:     append([]*Axis{}, axes...),
		vals:     vals,
		channels: channels,
		strides:  make([]int, len(axes)),
	}
	stride := channels
	for d := len(axes) - 1; d >= 0; d-- {
		g.strides[d] = stride
		stride *= axes[d].Len()
	}
	return g, nil
}

// NAxes returns the number of grid dimensions.
func (g *Grid) NAxes() int { return len(g.axes) }

// Axis returns the knot axis for dimension d.
func (g *Grid) Axis(d int) *Axis { return g.axes[d] }

// Channels returns the number of co-located value channels per point.
func (g *Grid) Channels() int { return g.channels }

// At returns the channel values at the given per-axis knot indices. The
// lookup is O(1) and the returned slice aliases the grid's storage.
// Indices are trusted: the interpolator only ever supplies indices derived
// from valid axis lengths.
func (g *Grid) At(idx []int) []float64 {
	off := 0
	for d, i := range idx {
		off += i * g.strides[d]
	}
	return g.vals[off : off+g.channels]
}
