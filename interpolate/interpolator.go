package interpolate

import (
	"fmt"
	"strings"
)

// Bound selects the behavior for query coordinates falling outside an
// axis's knot range. The zero value is Reject.
type Bound int

const (
	// Reject fails the evaluation with ErrOutOfDomain.
	Reject Bound = iota
	// Clamp evaluates at the nearest edge knot instead.
	Clamp
	// Extrapolate extends the axis's kernel beyond its edge interval.
	Extrapolate

	endBound
)

// String returns the name of the boundary rule as used in configuration
// files.
func (b Bound) String() string {
	switch b {
	case Reject:
		return "Reject"
	case Clamp:
		return "Clamp"
	case Extrapolate:
		return "Extrapolate"
	}
	return fmt.Sprintf("Bound(%d)", int(b))
}

// BoundFromString returns the boundary rule with the given name. Names
// are compared case-insensitively.
func BoundFromString(name string) (Bound, error) {
	for b := Bound(0); b < endBound; b++ {
		if strings.EqualFold(b.String(), name) {
			return b, nil
		}
	}
	return 0, fmt.Errorf("unrecognized boundary rule name '%s'", name)
}

// Interpolator evaluates a Grid at arbitrary coordinates, using an
// independently chosen kernel and boundary rule for each axis.
//
// Interpolators are immutable after construction, so concurrent Eval
// calls on the same Interpolator are safe without locking.
type Interpolator struct {
	grid    *Grid
	kernels []Kernel
	bounds  []Bound
	// widths[d] is the sample window size along axis d: 1 on
	// single-knot pass-through axes, otherwise the kernel's width.
	widths []int
	nwin   int
}

// NewInterpolator creates an interpolator over grid with one kernel and
// one boundary rule per axis. A nil bounds slice applies Reject to every
// axis. Construction fails with ErrInsufficientKnots if any multi-knot
// axis is shorter than its kernel's minimum, and with ErrShapeMismatch if
// the kernel or bound counts do not match the grid's axis count.
func NewInterpolator(
	grid *Grid, kernels []Kernel, bounds []Bound,
) (*Interpolator, error) {
	n := grid.NAxes()
	if len(kernels) != n {
		return nil, fmt.Errorf(
			"%d kernels given for a grid with %d axes: %w",
			len(kernels), n, ErrShapeMismatch,
		)
	}
	if bounds == nil {
		bounds = make([]Bound, n)
	} else if len(bounds) != n {
		return nil, fmt.Errorf(
			"%d boundary rules given for a grid with %d axes: %w",
			len(bounds), n, ErrShapeMismatch,
		)
	}

	in := &Interpolator{
		grid:    grid,
		kernels: append([]Kernel{}, kernels...),
		bounds:  append([]Bound{}, bounds...),
		widths:  make([]int, n),
		nwin:    1,
	}

	for d := 0; d < n; d++ {
		if kernels[d] < 0 || kernels[d] >= endKernel {
			return nil, fmt.Errorf("invalid kernel %d on axis %d",
				int(kernels[d]), d)
		}
		if bounds[d] < 0 || bounds[d] >= endBound {
			return nil, fmt.Errorf("invalid boundary rule %d on axis %d",
				int(bounds[d]), d)
		}

		m := grid.Axis(d).Len()
		switch {
		case m == 1:
			in.widths[d] = 1
		case m < kernels[d].minKnots():
			return nil, fmt.Errorf(
				"axis %d has %d knots, but kernel %s needs %d: %w",
				d, m, kernels[d], kernels[d].minKnots(),
				ErrInsufficientKnots,
			)
		default:
			in.widths[d] = kernels[d].width()
		}
		in.nwin *= in.widths[d]
	}

	return in, nil
}

// Grid returns the grid the interpolator evaluates.
func (in *Interpolator) Grid() *Grid { return in.grid }

// Eval interpolates the grid at the given coordinate tuple, returning one
// value per channel.
func (in *Interpolator) Eval(coords []float64) ([]float64, error) {
	out := make([]float64, in.grid.channels)
	if err := in.eval(coords, out, nil); err != nil {
		return nil, err
	}
	return out, nil
}

// EvalDeriv interpolates the grid at the given coordinate tuple,
// returning one value per channel along with the partial derivative of
// each channel with respect to each axis's coordinate: derivs[d][c] is
// d(channel c)/d(coordinate d).
func (in *Interpolator) EvalDeriv(
	coords []float64,
) (vals []float64, derivs [][]float64, err error) {
	vals = make([]float64, in.grid.channels)
	derivs = make([][]float64, in.grid.NAxes())
	for d := range derivs {
		derivs[d] = make([]float64, in.grid.channels)
	}
	if err := in.eval(coords, vals, derivs); err != nil {
		return nil, nil, err
	}
	return vals, derivs, nil
}

// EvalAll evaluates the interpolator at every coordinate tuple in
// queries. If an output array is given, the output is written to that
// array (the array is still returned as a convenience). The output holds
// Channels() values per query, stored contiguously in query order.
//
// If more than one output array is provided, only the first is used.
func (in *Interpolator) EvalAll(
	queries [][]float64, out ...[]float64,
) ([]float64, error) {
	c := in.grid.channels
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(queries)*c)}
	}
	for i, q := range queries {
		if err := in.eval(q, out[0][i*c:(i+1)*c], nil); err != nil {
			return nil, err
		}
	}
	return out[0], nil
}

// eval runs one evaluation: bracket every axis, gather the sample window
// tensor, then collapse one axis at a time. Axes reduce last to first so
// the innermost gather walks contiguous storage; for the separable
// kernels here the order only affects floating-point rounding, and fixing
// it keeps output bit-reproducible across platforms.
func (in *Interpolator) eval(
	coords, outVals []float64, outDerivs [][]float64,
) error {
	g := in.grid
	n, c := g.NAxes(), g.channels
	if len(coords) != n {
		return fmt.Errorf(
			"query has %d coordinates, but the grid has %d axes: %w",
			len(coords), n, ErrShapeMismatch,
		)
	}

	brs := make([]BracketResult, n)
	for d := 0; d < n; d++ {
		br := g.axes[d].Bracket(coords[d])
		if br.Extrapolating {
			switch in.bounds[d] {
			case Reject:
				return fmt.Errorf(
					"coordinate %g on axis %d outside [%g, %g]: %w",
					coords[d], d, g.axes[d].Min(), g.axes[d].Max(),
					ErrOutOfDomain,
				)
			case Clamp:
				if br.T < 0 {
					br.T = 0
				} else {
					br.T = 1
				}
				br.Extrapolating = false
			}
		}
		brs[d] = br
	}

	// Clamped sample window indices for every axis.
	totalWidth := 0
	for _, w := range in.widths {
		totalWidth += w
	}
	winBacking := make([]int, totalWidth)
	win := make([][]int, n)
	off := 0
	for d := 0; d < n; d++ {
		win[d] = winBacking[off : off+in.widths[d]]
		off += in.widths[d]
		fillWindow(win[d], brs[d].Low, g.axes[d].Len())
	}

	// Gather the window tensor, row-major in window space with the
	// channel index innermost, matching the grid's own layout.
	vbuf := make([]float64, in.nwin*c)
	ctr := make([]int, n)
	for i := 0; i < in.nwin; i++ {
		goff := 0
		for d := 0; d < n; d++ {
			goff += win[d][ctr[d]] * g.strides[d]
		}
		copy(vbuf[i*c:(i+1)*c], g.vals[goff:goff+c])

		for d := n - 1; d >= 0; d-- {
			ctr[d]++
			if ctr[d] < in.widths[d] {
				break
			}
			ctr[d] = 0
		}
	}

	// tans[i] carries the derivative tensor with respect to axis
	// tanAxes[i]. A tensor is created when its axis reduces and always
	// has the value tensor's current shape, so later axes reduce it the
	// same way they reduce values.
	var tans [][]float64
	var tanAxes []int
	var wbuf [4]float64
	twinBacking := make([]float64, 4*n)
	twin := make([][]float64, n)
	tvals := make([]float64, n)

	m := in.nwin
	for d := n - 1; d >= 0; d-- {
		w := in.widths[d]
		m /= w

		if w == 1 {
			// Single-knot pass-through: the tensor keeps its shape and
			// the result does not depend on this coordinate.
			if outDerivs != nil {
				tans = append(tans, make([]float64, m*c))
				tanAxes = append(tanAxes, d)
			}
			continue
		}

		k, ax, br := in.kernels[d], g.axes[d], brs[d]

		var dbuf []float64
		if outDerivs != nil {
			dbuf = make([]float64, m*c)
		}

		for j := 0; j < m; j++ {
			for ch := 0; ch < c; ch++ {
				for i := 0; i < w; i++ {
					wbuf[i] = vbuf[(j*w+i)*c+ch]
				}
				for ti := range tans {
					twin[ti] = twinBacking[ti*4 : ti*4+w]
					for i := 0; i < w; i++ {
						twin[ti][i] = tans[ti][(j*w+i)*c+ch]
					}
				}

				v, dv, err := k.cell(
					ax, br, wbuf[:w], twin[:len(tans)], tvals,
				)
				if err != nil {
					return fmt.Errorf("axis %d: %w", d, err)
				}

				vbuf[j*c+ch] = v
				if dbuf != nil {
					dbuf[j*c+ch] = dv
				}
				for ti := range tans {
					tans[ti][j*c+ch] = tvals[ti]
				}
			}
		}

		if outDerivs != nil {
			tans = append(tans, dbuf)
			tanAxes = append(tanAxes, d)
		}
	}

	copy(outVals, vbuf[:c])
	if outDerivs != nil {
		for i, d := range tanAxes {
			copy(outDerivs[d], tans[i][:c])
		}
	}
	return nil
}

// fillWindow writes the clamped sample indices a kernel reads around
// interval low on an axis of n knots. Cubic windows clamp their outer
// neighbors inward at the axis edges, where the one-sided slope estimates
// leave them unused.
func fillWindow(out []int, low, n int) {
	switch len(out) {
	case 1:
		out[0] = 0
	case 2:
		out[0], out[1] = low, low+1
	case 4:
		i0, i3 := low-1, low+2
		if i0 < 0 {
			i0 = 0
		}
		if i3 > n-1 {
			i3 = n - 1
		}
		out[0], out[1], out[2], out[3] = i0, low, low+1, i3
	}
}
