// Command hull reads a point set and prints its convex hull.
//
// Input is a file (or stdin) with one "x y" point per line, or an SVG
// document whose circles and polygon vertices are the points. The hull is
// printed to stdout in the same plain format, counterclockwise. The hull can
// also be written as an SVG or PNG picture, and the steps the algorithm took
// can be listed or drawn for debugging.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/osuushi/hull"
	"github.com/osuushi/hull/advanced"
	"github.com/osuushi/hull/pointio"
	"github.com/osuushi/hull/render"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

type options struct {
	algorithm      string
	pivot          string
	parallelCutoff int
	format         string
	input          string
	svg            string
	png            string
	size           int
	imgcat         bool
	trace          bool
	color          bool
	verbose        bool
}

func newApp() (*kingpin.Application, *options) {
	opts := &options{}
	app := kingpin.New("hull", "Compute the convex hull of a set of points.")

	app.Flag("algorithm", "Hull algorithm.").
		Short('a').
		Default(hull.KirkpatrickSeidelName).
		Envar("HULL_ALGORITHM").
		EnumVar(&opts.algorithm, hull.KirkpatrickSeidelName, hull.JarvisMarchName)
	app.Flag("pivot", "How Kirkpatrick–Seidel picks split values.").
		Default(advanced.ApproximateMedian.String()).
		Envar("HULL_PIVOT").
		EnumVar(&opts.pivot, advanced.ApproximateMedian.String(), advanced.ExactMedian.String())
	app.Flag("parallel-cutoff", "Solve Kirkpatrick–Seidel subproblems of at least this many points concurrently. 0 disables.").
		Default("0").
		Envar("HULL_PARALLEL_CUTOFF").
		IntVar(&opts.parallelCutoff)
	app.Flag("format", "Input format. auto picks svg for .svg files.").
		Default("auto").
		EnumVar(&opts.format, "auto", pointio.Plain.String(), pointio.SVG.String())
	app.Flag("svg", "Write the points and hull as an SVG file.").
		PlaceHolder("FILE").
		StringVar(&opts.svg)
	app.Flag("png", "Draw the points, hull and recorded steps to a PNG file.").
		PlaceHolder("FILE").
		StringVar(&opts.png)
	app.Flag("size", "Size of drawn images in pixels.").
		Default("512").
		IntVar(&opts.size)
	app.Flag("imgcat", "Draw the hull inline in the terminal (iTerm).").
		BoolVar(&opts.imgcat)
	app.Flag("trace", "List the steps the algorithm took on stderr.").
		BoolVar(&opts.trace)
	app.Flag("color", "Color the trace.").
		BoolVar(&opts.color)
	app.Flag("verbose", "Log the Kirkpatrick–Seidel recursion on stderr.").
		Short('v').
		BoolVar(&opts.verbose)
	app.Arg("input", "Point file, or - for stdin.").
		Default("-").
		StringVar(&opts.input)

	return app, opts
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "hull: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	app, opts := newApp()
	app.UsageWriter(stderr)
	app.ErrorWriter(stderr)
	if _, err := app.Parse(args); err != nil {
		return err
	}

	if opts.verbose {
		hull.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		defer hull.SetLogger(nil)
	}

	points, err := readPoints(opts, stdin)
	if err != nil {
		return err
	}

	// Only record when something is going to look at the steps, since
	// recording turns off parallelism.
	var trace *advanced.Trace
	var rec hull.Recorder
	if opts.trace || opts.png != "" || opts.imgcat {
		trace = &advanced.Trace{}
		rec = trace
	}

	alg, err := algorithm(opts, rec)
	if err != nil {
		return err
	}
	result, err := hull.Compute(alg, points)
	if err != nil {
		return errors.Wrapf(err, "%s failed", alg.Name())
	}
	fmt.Fprintf(stderr, "Read %d points, %s found %d hull vertices\n", len(points), alg.Name(), len(result))

	if err := pointio.WriteHull(stdout, result); err != nil {
		return err
	}
	if opts.trace {
		if err := render.WriteTrace(stderr, trace.Steps, opts.color); err != nil {
			return err
		}
	}
	if opts.svg != "" {
		if err := writeSVG(opts.svg, points, result); err != nil {
			return err
		}
	}
	if opts.png != "" || opts.imgcat {
		c := render.Draw(points, result, trace.Events(), opts.size)
		if opts.png != "" {
			if err := render.SavePNG(c, opts.png); err != nil {
				return err
			}
		}
		if opts.imgcat {
			if err := render.Imgcat(c, stdout); err != nil {
				return err
			}
		}
	}
	return nil
}

func readPoints(opts *options, stdin io.Reader) ([]hull.Point, error) {
	format := pointio.Plain
	switch opts.format {
	case pointio.SVG.String():
		format = pointio.SVG
	case "auto":
		format = pointio.FormatOf(opts.input)
	}

	if opts.input == "-" {
		points, err := pointio.Read(stdin, format)
		return points, errors.Wrap(err, "reading stdin")
	}
	f, err := os.Open(opts.input)
	if err != nil {
		return nil, errors.Wrap(err, "opening input")
	}
	defer f.Close()
	points, err := pointio.Read(f, format)
	return points, errors.Wrapf(err, "reading %s", opts.input)
}

func algorithm(opts *options, rec hull.Recorder) (hull.Algorithm, error) {
	alg, err := hull.AlgorithmByName(opts.algorithm, rec)
	if err != nil {
		return nil, err
	}
	if ks, ok := alg.(advanced.KirkpatrickSeidel); ok {
		if opts.pivot == advanced.ExactMedian.String() {
			ks.Pivot = advanced.ExactMedian
		}
		if opts.parallelCutoff < 0 {
			return nil, errors.Errorf("parallel cutoff must not be negative, got %d", opts.parallelCutoff)
		}
		ks.ParallelCutoff = opts.parallelCutoff
		alg = ks
	}
	return alg, nil
}

func writeSVG(path string, points []hull.Point, result hull.Hull) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating svg")
	}
	if err := pointio.WriteSVG(f, points, result); err != nil {
		f.Close()
		return err
	}
	return errors.Wrap(f.Close(), "closing svg")
}
