package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"gopkg.in/gcfg.v1"

	"github.com/phil-mansfield/ndinterp/interpolate"
	"github.com/phil-mansfield/ndinterp/io"
)

func main() {
	var (
		evaluate      string
		exampleConfig string
	)

	flag.StringVar(
		&evaluate, "Evaluate", "",
		"Configuration file for [Evaluate] mode.",
	)
	flag.StringVar(
		&exampleConfig, "ExampleConfig", "",
		"Prints an example configuration file of the specified type to "+
			"stdout. The only accepted argument is 'Evaluate'.",
	)

	flag.Parse()

	switch {
	case exampleConfig != "":
		if exampleConfig != "Evaluate" {
			log.Fatalf(
				"Unknown config type '%s'. The only accepted argument "+
					"is 'Evaluate'.", exampleConfig,
			)
		}
		fmt.Println(io.ExampleEvaluateFile)

	case evaluate != "":
		wrap := io.DefaultEvaluateWrapper()
		err := gcfg.ReadFileInto(wrap, evaluate)
		if err != nil {
			log.Fatal(err.Error())
		}
		con := &wrap.Evaluate

		if !con.ValidGridFile() {
			log.Fatal("Invalid/non-existent 'GridFile' value.")
		} else if !con.ValidAxes() {
			log.Fatal("Invalid/non-existent 'Axes' value.")
		} else if !con.ValidChannels() {
			log.Fatal("Invalid 'Channels' value.")
		}

		evaluateMain(con)

	default:
		log.Fatal("Must select a mode with -Evaluate or -ExampleConfig.")
	}
}

func evaluateMain(con *io.EvaluateConfig) {
	kernels, err := con.KernelList()
	if err != nil {
		log.Fatal(err.Error())
	}
	bounds, err := con.BoundList()
	if err != nil {
		log.Fatal(err.Error())
	}

	axes, vals, err := io.ReadGridTable(con.GridFile, con.Axes, con.Channels)
	if err != nil {
		log.Fatal(err.Error())
	}
	g, err := interpolate.NewGrid(axes, vals, con.Channels)
	if err != nil {
		log.Fatal(err.Error())
	}
	in, err := interpolate.NewInterpolator(g, kernels, bounds)
	if err != nil {
		log.Fatal(err.Error())
	}

	points := os.Stdin
	if con.PointsFile != "" {
		points, err = os.Open(con.PointsFile)
		if err != nil {
			log.Fatal(err.Error())
		}
		defer points.Close()
	}

	scanner := bufio.NewScanner(points)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		coords, err := parseCoords(text, con.Axes)
		if err != nil {
			log.Fatalf("Line %d: %s", line, err.Error())
		}

		if con.Derivatives {
			vals, derivs, err := in.EvalDeriv(coords)
			if err != nil {
				log.Fatalf("Line %d: %s", line, err.Error())
			}
			printRow(coords, vals)
			for _, dv := range derivs {
				printRow(nil, dv)
			}
			fmt.Println()
		} else {
			vals, err := in.Eval(coords)
			if err != nil {
				log.Fatalf("Line %d: %s", line, err.Error())
			}
			printRow(coords, vals)
			fmt.Println()
		}
	}
	if err := scanner.Err(); err != nil {
		log.Fatal(err.Error())
	}
}

func parseCoords(text string, n int) ([]float64, error) {
	fields := strings.Fields(text)
	if len(fields) != n {
		return nil, fmt.Errorf(
			"Got %d coordinates, but the grid has %d axes.", len(fields), n,
		)
	}
	coords := make([]float64, n)
	for i, f := range fields {
		x, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		coords[i] = x
	}
	return coords, nil
}

func printRow(coords, vals []float64) {
	for _, x := range coords {
		fmt.Printf("%g ", x)
	}
	for _, v := range vals {
		fmt.Printf("%g ", v)
	}
}
