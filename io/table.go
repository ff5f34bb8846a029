/*package io reads interpolation grids and run configurations from disk.
The core in the interpolate package only ever sees in-memory arrays; this
package is the collaborator which produces them.
*/
package io

import (
	"fmt"

	"github.com/phil-mansfield/table"

	"github.com/phil-mansfield/ndinterp/interpolate"
)

// ReadGridTable reads an interpolation grid from a whitespace-separated
// table. Each row holds nAxes coordinate columns followed by channels
// value columns, and rows must enumerate the full Cartesian product of
// the axis knots in row-major order with the last axis varying fastest.
// The per-axis knot sequences are recovered from the coordinate columns.
func ReadGridTable(
	file string, nAxes, channels int,
) ([]*interpolate.Axis, []float64, error) {
	if nAxes < 1 {
		return nil, nil, fmt.Errorf("nAxes = %d, must be positive", nAxes)
	} else if channels < 1 {
		return nil, nil, fmt.Errorf(
			"channels = %d, must be positive", channels,
		)
	}

	colIdxs := make([]int, nAxes+channels)
	for i := range colIdxs {
		colIdxs[i] = i
	}
	cols, err := table.ReadTable(file, colIdxs, nil)
	if err != nil {
		return nil, nil, err
	}

	rows := len(cols[0])
	if rows == 0 {
		return nil, nil, fmt.Errorf("table %s contains no rows", file)
	}

	knots := make([][]float64, nAxes)
	for d := 0; d < nAxes; d++ {
		knots[d] = uniqueKnots(cols[d])
	}

	points := 1
	for _, ks := range knots {
		points *= len(ks)
	}
	if points != rows {
		return nil, nil, fmt.Errorf(
			"table %s has %d rows, but its axes span %d grid points",
			file, rows, points,
		)
	}

	// Check that the rows really are the row-major enumeration of the
	// knot product.
	stride := 1
	strides := make([]int, nAxes)
	for d := nAxes - 1; d >= 0; d-- {
		strides[d] = stride
		stride *= len(knots[d])
	}
	for r := 0; r < rows; r++ {
		for d := 0; d < nAxes; d++ {
			want := knots[d][(r/strides[d])%len(knots[d])]
			if cols[d][r] != want {
				return nil, nil, fmt.Errorf(
					"table %s row %d: coordinate %g in column %d, "+
						"but row-major order needs %g",
					file, r, cols[d][r], d, want,
				)
			}
		}
	}

	axes := make([]*interpolate.Axis, nAxes)
	for d := range axes {
		if axes[d], err = interpolate.NewAxis(knots[d]); err != nil {
			return nil, nil, fmt.Errorf("table %s axis %d: %w", file, d, err)
		}
	}

	vals := make([]float64, rows*channels)
	for r := 0; r < rows; r++ {
		for c := 0; c < channels; c++ {
			vals[r*channels+c] = cols[nAxes+c][r]
		}
	}

	return axes, vals, nil
}

// uniqueKnots returns the values of col in first-appearance order with
// consecutive and cyclic repeats removed. For a row-major grid listing
// this is exactly the column's knot sequence.
func uniqueKnots(col []float64) []float64 {
	var ks []float64
	seen := make(map[float64]bool)
	for _, x := range col {
		if !seen[x] {
			seen[x] = true
			ks = append(ks, x)
		}
	}
	return ks
}
