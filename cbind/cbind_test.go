package cbind

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phil-mansfield/ndinterp/interpolate"
)

func buildPlane(t *testing.T, bounds []int) int64 {
	t.Helper()
	h, status := Build(
		[][]float64{{0, 1, 2}, {0, 1}},
		[]float64{0, 10, 1, 11, 2, 12},
		1,
		[]int{int(interpolate.Linear), int(interpolate.Linear)},
		bounds,
	)
	assert.Equal(t, StatusOK, status)
	assert.NotEqual(t, int64(0), h)
	return h
}

func TestBuildEvalRelease(t *testing.T) {
	h := buildPlane(t, []int{int(interpolate.Reject), int(interpolate.Reject)})

	out := make([]float64, 1)
	assert.Equal(t, StatusOK, Eval(h, []float64{0.5, 0.5}, out))
	assert.Equal(t, 5.5, out[0])

	assert.Equal(t, StatusOutOfDomain, Eval(h, []float64{3, 0}, out))

	assert.Equal(t, StatusOK, Release(h))
	assert.Equal(t, StatusInvalidHandle, Eval(h, []float64{0.5, 0.5}, out))
	assert.Equal(t, StatusInvalidHandle, Release(h))
}

func TestBuildErrors(t *testing.T) {
	_, status := Build(
		[][]float64{{0, 1, 2}, {0, 1}},
		[]float64{0, 10, 1, 11, 2, 12},
		1,
		[]int{int(interpolate.Linear)},
		[]int{int(interpolate.Reject), int(interpolate.Reject)},
	)
	assert.Equal(t, StatusBadArgument, status, "kernel count")

	_, status = Build(
		[][]float64{{0, 1, 2}, {0, 1}},
		[]float64{0, 10, 1, 11, 2},
		1,
		[]int{int(interpolate.Linear), int(interpolate.Linear)},
		[]int{int(interpolate.Reject), int(interpolate.Reject)},
	)
	assert.Equal(t, StatusShapeMismatch, status, "value array size")

	_, status = Build(
		[][]float64{{0, 1, 2}, {0, 1}},
		[]float64{0, 10, 1, 11, 2, 12},
		1,
		[]int{int(interpolate.Cubic), int(interpolate.Linear)},
		[]int{int(interpolate.Reject), int(interpolate.Reject)},
	)
	assert.Equal(t, StatusInsufficientKnots, status, "cubic on 3 knots")
}

func TestEvalStatusCodes(t *testing.T) {
	h, status := Build(
		[][]float64{{0, 1, 2, 3}},
		[]float64{1, 2, -4, 8},
		1,
		[]int{int(interpolate.LogLinear)},
		[]int{int(interpolate.Reject)},
	)
	assert.Equal(t, StatusOK, status)
	defer Release(h)

	out := make([]float64, 1)
	assert.Equal(t, StatusOK, Eval(h, []float64{0.5}, out))
	assert.Equal(t, StatusNonPositiveLogValue, Eval(h, []float64{1.5}, out))
	assert.Equal(t, StatusBadArgument, Eval(h, []float64{0.5}, nil))
	assert.Equal(t, StatusShapeMismatch, Eval(h, []float64{0.5, 0.5}, out))
}

func TestEvalDeriv(t *testing.T) {
	h := buildPlane(t, []int{int(interpolate.Reject), int(interpolate.Reject)})
	defer Release(h)

	outVals := make([]float64, 1)
	outDerivs := make([]float64, 2)
	status := EvalDeriv(h, []float64{0.5, 0.5}, outVals, outDerivs)
	assert.Equal(t, StatusOK, status)
	assert.Equal(t, 5.5, outVals[0])
	assert.Equal(t, []float64{1, 10}, outDerivs)

	status = EvalDeriv(h, []float64{0.5, 0.5}, outVals, outDerivs[:1])
	assert.Equal(t, StatusBadArgument, status)
}

func TestHandlesAreDistinct(t *testing.T) {
	h1 := buildPlane(t, []int{int(interpolate.Reject), int(interpolate.Reject)})
	h2 := buildPlane(t, []int{int(interpolate.Clamp), int(interpolate.Clamp)})
	defer Release(h1)
	defer Release(h2)

	assert.NotEqual(t, h1, h2)

	out := make([]float64, 1)
	assert.Equal(t, StatusOutOfDomain, Eval(h1, []float64{3, 0}, out))
	assert.Equal(t, StatusOK, Eval(h2, []float64{3, 0}, out))
	assert.Equal(t, 2.0, out[0], "clamped to the x edge")
}
