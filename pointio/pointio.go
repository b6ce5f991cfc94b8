// Package pointio reads point sets and writes hulls, for the hull command and
// anything else that needs to get points in and out of files.
//
// Two input formats are understood. The plain format is one point per line,
// "x y", with blank lines and lines starting with # ignored. Commas work as
// separators too. The SVG format takes the center of every <circle> and every
// vertex of every <polygon> and <polyline>, which is enough to read back what
// WriteSVG writes, or to sketch a point set in a drawing program.
package pointio

import (
	"bufio"
	"io"
	"math"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/hull"
	"github.com/pkg/errors"
)

type Format int

const (
	Plain Format = iota
	SVG
)

func (f Format) String() string {
	if f == SVG {
		return "svg"
	}
	return "plain"
}

// Guess the format from a file name.
func FormatOf(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		return SVG
	}
	return Plain
}

func Read(r io.Reader, format Format) ([]hull.Point, error) {
	if format == SVG {
		return ReadSVG(r)
	}
	return ReadPoints(r)
}

func ReadPoints(r io.Reader) ([]hull.Point, error) {
	points := []hull.Point{}
	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading points")
	}
	return points, nil
}

func parsePoint(line string) (hull.Point, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return unicode.IsSpace(r) || r == ','
	})
	if len(fields) != 2 {
		return hull.Point{}, errors.Errorf("expected two coordinates, found %d in %q", len(fields), line)
	}
	x, err := parseCoordinate(fields[0])
	if err != nil {
		return hull.Point{}, err
	}
	y, err := parseCoordinate(fields[1])
	if err != nil {
		return hull.Point{}, err
	}
	return hull.Point{X: x, Y: y}, nil
}

// Infinities and NaNs parse fine, but no hull algorithm can do anything
// sensible with them.
func parseCoordinate(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid coordinate %q", s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.Errorf("coordinate %q is not finite", s)
	}
	return v, nil
}

func ReadSVG(r io.Reader) ([]hull.Point, error) {
	root, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	points := []hull.Point{}
	for _, circle := range root.FindAll("circle") {
		x, err := parseCoordinate(circle.Attributes["cx"])
		if err != nil {
			return nil, errors.Wrap(err, "circle cx")
		}
		y, err := parseCoordinate(circle.Attributes["cy"])
		if err != nil {
			return nil, errors.Wrap(err, "circle cy")
		}
		points = append(points, hull.Point{X: x, Y: y})
	}

	for _, name := range []string{"polygon", "polyline"} {
		for _, el := range root.FindAll(name) {
			vertices, err := parsePointList(el.Attributes["points"])
			if err != nil {
				return nil, errors.Wrapf(err, "%s points", name)
			}
			points = append(points, vertices...)
		}
	}
	return points, nil
}

// SVG point lists are a flat sequence of numbers separated by whitespace
// and/or commas, taken two at a time.
func parsePointList(s string) ([]hull.Point, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == ','
	})
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates in %q", s)
	}
	points := make([]hull.Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := parseCoordinate(fields[i])
		if err != nil {
			return nil, err
		}
		y, err := parseCoordinate(fields[i+1])
		if err != nil {
			return nil, err
		}
		points = append(points, hull.Point{X: x, Y: y})
	}
	return points, nil
}
