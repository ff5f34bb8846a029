package main

import (
	"log"
	"os"

	plt "github.com/phil-mansfield/pyplot"

	"github.com/phil-mansfield/ndinterp/interpolate"
)

// Plots every kernel over the same 1-D sample table, so their shapes and
// extrapolation behavior can be compared by eye.
//
// Usage: $ plot_kernels out.png
func main() {
	if len(os.Args) != 2 {
		log.Fatalf("Required file use: $ %s out_file", os.Args[0])
	}
	out := os.Args[1]

	xs := []float64{0, 1, 2, 3, 4, 5}
	vs := []float64{2, 1, 0.5, 4, 8, 3}

	kernels := []interpolate.Kernel{
		interpolate.Nearest, interpolate.Linear, interpolate.LogLinear,
		interpolate.Cubic, interpolate.LogCubic,
	}
	colors := []string{"k", "b", "c", "r", "m"}

	evalXs := linspace(-0.5, 5.5, 400)

	plt.Reset()
	plt.Figure()

	for i, k := range kernels {
		in := kernelInterpolator(xs, vs, k)
		evalYs, err := in.EvalAll(rows(evalXs))
		if err != nil {
			log.Fatal(err.Error())
		}
		plt.Plot(evalXs, evalYs, plt.C(colors[i]), plt.LW(2))
	}
	plt.Plot(xs, vs, "ok")

	plt.XLabel("$x$", plt.FontSize(16))
	plt.YLabel("$f(x)$", plt.FontSize(16))
	plt.SaveFig(out)
	plt.Execute()
}

func kernelInterpolator(
	xs, vs []float64, k interpolate.Kernel,
) *interpolate.Interpolator {
	ax, err := interpolate.NewAxis(xs)
	if err != nil {
		log.Fatal(err.Error())
	}
	g, err := interpolate.NewGrid([]*interpolate.Axis{ax}, vs, 1)
	if err != nil {
		log.Fatal(err.Error())
	}
	in, err := interpolate.NewInterpolator(
		g, []interpolate.Kernel{k},
		[]interpolate.Bound{interpolate.Extrapolate},
	)
	if err != nil {
		log.Fatal(err.Error())
	}
	return in
}

func linspace(lo, hi float64, n int) []float64 {
	xs := make([]float64, n)
	dx := (hi - lo) / float64(n-1)
	for i := range xs {
		xs[i] = lo + float64(i)*dx
	}
	xs[n-1] = hi
	return xs
}

func rows(xs []float64) [][]float64 {
	qs := make([][]float64, len(xs))
	for i, x := range xs {
		qs[i] = []float64{x}
	}
	return qs
}
