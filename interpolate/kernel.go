package interpolate

import (
	"fmt"
	"math"
	"strings"
)

// Kernel selects the 1-dimensional interpolation rule used along a single
// axis. Kernels are stateless: each is a pure function of the bracketing
// interval and the neighboring samples along its axis.
type Kernel int

const (
	// Nearest returns the sample at the closer end of the bracketing
	// interval. Its derivative is reported as zero.
	Nearest Kernel = iota
	// Linear interpolates linearly between the interval endpoints, and
	// extends the same line outside them when extrapolating.
	Linear
	// LogLinear applies Linear to log(value) and exponentiates the
	// result. Every sample it touches must be strictly positive.
	LogLinear
	// Cubic evaluates a Hermite segment whose knot slopes are the
	// average of the forward and backward difference quotients, one-sided
	// at the first and last knot. The curve passes through every knot and
	// is C1 across interior knots. Outside the knot range it continues
	// linearly from the edge knot's value and slope, which keeps both the
	// value and the first derivative continuous at the edge.
	Cubic
	// LogCubic applies Cubic in log space, with LogLinear's positivity
	// requirement.
	LogCubic

	endKernel
)

// String returns the name of the kernel as used in configuration files.
func (k Kernel) String() string {
	switch k {
	case Nearest:
		return "Nearest"
	case Linear:
		return "Linear"
	case LogLinear:
		return "LogLinear"
	case Cubic:
		return "Cubic"
	case LogCubic:
		return "LogCubic"
	}
	return fmt.Sprintf("Kernel(%d)", int(k))
}

// KernelFromString returns the kernel with the given name. Names are
// compared case-insensitively.
func KernelFromString(name string) (Kernel, error) {
	for k := Kernel(0); k < endKernel; k++ {
		if strings.EqualFold(k.String(), name) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unrecognized kernel name '%s'", name)
}

// width returns the number of samples the kernel reads around a
// bracketing interval.
func (k Kernel) width() int {
	if k == Cubic || k == LogCubic {
		return 4
	}
	return 2
}

// minKnots returns the smallest axis (other than a single-knot
// pass-through axis) the kernel can interpolate on.
func (k Kernel) minKnots() int {
	if k == Cubic || k == LogCubic {
		return 4
	}
	return 2
}

func (k Kernel) logSpace() bool {
	return k == LogLinear || k == LogCubic
}

func (k Kernel) base() Kernel {
	switch k {
	case LogLinear:
		return Linear
	case LogCubic:
		return Cubic
	}
	return k
}

// basicEval evaluates the kernel's underlying polynomial on the window of
// samples w around interval low of ax, returning the interpolated value
// and its derivative with respect to the coordinate. Windows hold width()
// samples: the interval endpoints at w[0], w[1] for two-point kernels and
// at w[1], w[2] for cubic kernels, with w[0] and w[3] the outer neighbors
// (duplicated inward at the axis edges, where they go unused).
func (k Kernel) basicEval(ax *Axis, low int, t float64, w []float64) (v, dv float64) {
	switch k.base() {
	case Nearest:
		if t < 0.5 {
			return w[0], 0
		}
		return w[1], 0

	case Linear:
		h := ax.Knot(low+1) - ax.Knot(low)
		return w[0]*(1-t) + w[1]*t, (w[1] - w[0]) / h

	case Cubic:
		return cubicEval(ax, low, t, w)
	}
	panic(fmt.Sprintf("Unrecognized kernel %d.", int(k)))
}

// cubicEval evaluates a Hermite segment on the interval [Knot(low),
// Knot(low+1)]. The slope at each interval endpoint is the average of the
// forward and backward difference quotients through its neighbors, or the
// interval's own secant at the first and last knot of the axis. For t
// outside [0, 1] the segment continues linearly from the edge knot.
func cubicEval(ax *Axis, low int, t float64, w []float64) (v, dv float64) {
	xa, xb := ax.Knot(low), ax.Knot(low+1)
	h := xb - xa
	s := (w[2] - w[1]) / h

	m0, m1 := s, s
	if low > 0 {
		m0 = 0.5 * (s + (w[1]-w[0])/(xa-ax.Knot(low-1)))
	}
	if low < ax.Len()-2 {
		m1 = 0.5 * ((w[3]-w[2])/(ax.Knot(low+2)-xb) + s)
	}

	if t < 0 {
		return w[1] + m0*h*t, m0
	}
	if t > 1 {
		return w[2] + m1*h*(t-1), m1
	}

	t2, t3 := t*t, t*t*t
	v = (2*t3-3*t2+1)*w[1] + (t3-2*t2+t)*h*m0 +
		(-2*t3+3*t2)*w[2] + (t3-t2)*h*m1
	dv = ((6*t2-6*t)*w[1] + (3*t2-4*t+1)*h*m0 +
		(-6*t2+6*t)*w[2] + (3*t2-2*t)*h*m1) / h
	return v, dv
}

// cell collapses one axis for a single channel of a single output cell. w
// holds the kernel's window of samples, and tw holds the matching windows
// of any derivative tensors carried with respect to other axes. cell
// returns the interpolated value and its derivative with respect to this
// axis's coordinate, and writes the reduced derivative tensors to tvals.
//
// Log kernels interpolate log(w) and exponentiate, so the value is
// exp(interpolate(log(values))) by construction. A carried derivative D of
// a log interpolant satisfies D/v = interpolate(D_window / w_window), which
// is how tangent windows are propagated through a log axis.
func (k Kernel) cell(
	ax *Axis, br BracketResult, w []float64, tw [][]float64, tvals []float64,
) (v, dv float64, err error) {
	width := k.width()

	if !k.logSpace() {
		v, dv = k.basicEval(ax, br.Low, br.T, w)
		for j := range tw {
			tvals[j], _ = k.basicEval(ax, br.Low, br.T, tw[j])
		}
		return v, dv, nil
	}

	var lw [4]float64
	for i := 0; i < width; i++ {
		if w[i] <= 0 {
			return 0, 0, fmt.Errorf(
				"sample %g on axis interval %d: %w",
				w[i], br.Low, ErrNonPositiveLogValue,
			)
		}
		lw[i] = math.Log(w[i])
	}

	logV, dLogV := k.basicEval(ax, br.Low, br.T, lw[:width])
	v = math.Exp(logV)
	// A query exactly on a knot returns the stored sample, not its
	// log/exp round trip.
	lo := 0
	if width == 4 {
		lo = 1
	}
	if br.T == 0 {
		v = w[lo]
	} else if br.T == 1 {
		v = w[lo+1]
	}
	dv = v * dLogV

	var rw [4]float64
	for j := range tw {
		for i := 0; i < width; i++ {
			rw[i] = tw[j][i] / w[i]
		}
		r, _ := k.basicEval(ax, br.Low, br.T, rw[:width])
		tvals[j] = v * r
	}
	return v, dv, nil
}
