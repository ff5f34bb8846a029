package io

import (
	"fmt"

	"github.com/phil-mansfield/ndinterp/interpolate"
)

const ExampleEvaluateFile = `[Evaluate]

#######################
# Required Parameters #
#######################

# File containing the grid table. Each row holds one grid point: the
# coordinate columns, one per axis, followed by the value columns, one per
# channel. Rows must list the full grid in row-major order with the last
# axis varying fastest.
GridFile = path/to/grid.dat

# Number of grid axes.
Axes = 2

# Interpolation kernel for each axis, in axis order. Give the key once to
# use the same kernel on every axis. One of:
# [ Nearest | Linear | LogLinear | Cubic | LogCubic ]
Kernels = Cubic
Kernels = Linear

#######################
# Optional Parameters #
#######################

# Number of value channels stored per grid point. Default is 1.
# Channels = 1

# Behavior for query coordinates outside an axis's knot range, in axis
# order. Give the key once to use the same rule on every axis. One of:
# [ Reject | Clamp | Extrapolate ]
# Default is Reject on every axis.
# Bounds = Clamp
# Bounds = Extrapolate

# File containing the query points, one coordinate tuple per row. If not
# set, points are read from stdin.
# PointsFile = path/to/points.dat

# Also print the partial derivative of every channel with respect to
# every axis coordinate.
# Derivatives = true`

type EvaluateConfig struct {
	// Required
	GridFile string
	Axes     int
	Kernels  []string

	// Optional
	Channels    int
	Bounds      []string
	PointsFile  string
	Derivatives bool
}

type EvaluateWrapper struct {
	Evaluate EvaluateConfig
}

func DefaultEvaluateWrapper() *EvaluateWrapper {
	con := EvaluateConfig{}
	con.Channels = 1
	return &EvaluateWrapper{con}
}

func (con *EvaluateConfig) ValidGridFile() bool { return con.GridFile != "" }
func (con *EvaluateConfig) ValidAxes() bool     { return con.Axes > 0 }
func (con *EvaluateConfig) ValidChannels() bool { return con.Channels > 0 }

// KernelList resolves the configured kernel names to one kernel per axis.
// A single name applies to every axis.
func (con *EvaluateConfig) KernelList() ([]interpolate.Kernel, error) {
	names, err := perAxis(con.Kernels, con.Axes, "Kernels")
	if err != nil {
		return nil, err
	}
	kernels := make([]interpolate.Kernel, con.Axes)
	for d, name := range names {
		if kernels[d], err = interpolate.KernelFromString(name); err != nil {
			return nil, err
		}
	}
	return kernels, nil
}

// BoundList resolves the configured boundary rule names to one rule per
// axis. A single name applies to every axis; no names means Reject
// everywhere.
func (con *EvaluateConfig) BoundList() ([]interpolate.Bound, error) {
	if len(con.Bounds) == 0 {
		return make([]interpolate.Bound, con.Axes), nil
	}
	names, err := perAxis(con.Bounds, con.Axes, "Bounds")
	if err != nil {
		return nil, err
	}
	bounds := make([]interpolate.Bound, con.Axes)
	for d, name := range names {
		if bounds[d], err = interpolate.BoundFromString(name); err != nil {
			return nil, err
		}
	}
	return bounds, nil
}

func perAxis(names []string, axes int, key string) ([]string, error) {
	if len(names) == 1 && axes > 1 {
		out := make([]string, axes)
		for d := range out {
			out[d] = names[0]
		}
		return out, nil
	}
	if len(names) != axes {
		return nil, fmt.Errorf(
			"%d '%s' values given for %d axes.", len(names), key, axes,
		)
	}
	return names, nil
}
