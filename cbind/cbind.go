/*package cbind exposes the interpolation engine in the shape a C export
shim or scripting binding needs: opaque integer handles, primitive array
arguments, and integer status codes instead of Go errors. A cgo wrapper
only has to marshal array pointers and forward the calls.
*/
package cbind

import (
	"errors"
	"sync"

	"github.com/phil-mansfield/ndinterp/interpolate"
)

// Status codes returned by every call. StatusOK is zero so the codes can
// be tested with a bare if in C.
const (
	StatusOK = iota
	StatusShapeMismatch
	StatusInsufficientKnots
	StatusOutOfDomain
	StatusNonPositiveLogValue
	StatusInvalidHandle
	StatusBadArgument
)

var (
	mu      sync.Mutex
	handles = map[int64]*interpolate.Interpolator{}

	nextHandle int64 = 1
)

// Build constructs an interpolator and returns its handle. axes holds one
// strictly increasing knot sequence per dimension, vals the row-major
// value array with the last axis varying fastest and channels values per
// point, and kernels and bounds one interpolate.Kernel and
// interpolate.Bound code per axis. On failure the handle is 0 and the
// status identifies the error.
func Build(
	axes [][]float64, vals []float64, channels int, kernels, bounds []int,
) (int64, int) {
	if len(kernels) != len(axes) || len(bounds) != len(axes) {
		return 0, StatusBadArgument
	}

	ks := make([]interpolate.Kernel, len(kernels))
	for d, k := range kernels {
		ks[d] = interpolate.Kernel(k)
	}
	bs := make([]interpolate.Bound, len(bounds))
	for d, b := range bounds {
		bs[d] = interpolate.Bound(b)
	}

	axs := make([]*interpolate.Axis, len(axes))
	for d := range axes {
		ax, err := interpolate.NewAxis(axes[d])
		if err != nil {
			return 0, statusOf(err)
		}
		axs[d] = ax
	}

	g, err := interpolate.NewGrid(axs, vals, channels)
	if err != nil {
		return 0, statusOf(err)
	}
	in, err := interpolate.NewInterpolator(g, ks, bs)
	if err != nil {
		return 0, statusOf(err)
	}

	mu.Lock()
	defer mu.Unlock()
	h := nextHandle
	nextHandle++
	handles[h] = in
	return h, StatusOK
}

// Eval evaluates the interpolator behind handle at coords and writes one
// value per channel to out.
func Eval(handle int64, coords, out []float64) int {
	in, ok := lookup(handle)
	if !ok {
		return StatusInvalidHandle
	}
	if len(out) != in.Grid().Channels() {
		return StatusBadArgument
	}

	vals, err := in.Eval(coords)
	if err != nil {
		return statusOf(err)
	}
	copy(out, vals)
	return StatusOK
}

// EvalDeriv evaluates the interpolator behind handle at coords, writing
// one value per channel to outVals and the partial derivatives to
// outDerivs, axis-major: outDerivs[d*channels + c] is the derivative of
// channel c with respect to the coordinate of axis d.
func EvalDeriv(handle int64, coords, outVals, outDerivs []float64) int {
	in, ok := lookup(handle)
	if !ok {
		return StatusInvalidHandle
	}
	c := in.Grid().Channels()
	if len(outVals) != c || len(outDerivs) != c*in.Grid().NAxes() {
		return StatusBadArgument
	}

	vals, derivs, err := in.EvalDeriv(coords)
	if err != nil {
		return statusOf(err)
	}
	copy(outVals, vals)
	for d := range derivs {
		copy(outDerivs[d*c:(d+1)*c], derivs[d])
	}
	return StatusOK
}

// Release frees the interpolator behind handle. Further calls with the
// same handle return StatusInvalidHandle.
func Release(handle int64) int {
	mu.Lock()
	defer mu.Unlock()
	if _, ok := handles[handle]; !ok {
		return StatusInvalidHandle
	}
	delete(handles, handle)
	return StatusOK
}

// lookup only holds the handle table's lock: interpolators are immutable,
// so evaluation itself needs no locking.
func lookup(handle int64) (*interpolate.Interpolator, bool) {
	mu.Lock()
	defer mu.Unlock()
	in, ok := handles[handle]
	return in, ok
}

func statusOf(err error) int {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, interpolate.ErrShapeMismatch):
		return StatusShapeMismatch
	case errors.Is(err, interpolate.ErrInsufficientKnots):
		return StatusInsufficientKnots
	case errors.Is(err, interpolate.ErrOutOfDomain):
		return StatusOutOfDomain
	case errors.Is(err, interpolate.ErrNonPositiveLogValue):
		return StatusNonPositiveLogValue
	}
	return StatusBadArgument
}
