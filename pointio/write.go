package pointio

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/osuushi/hull"
	"github.com/pkg/errors"
)

// WriteHull writes the hull vertices in order, one "x y" line each, in the
// plain format that ReadPoints reads.
func WriteHull(w io.Writer, h hull.Hull) error {
	bw := bufio.NewWriter(w)
	for _, p := range h {
		fmt.Fprintf(bw, "%s %s\n", formatCoordinate(p.X), formatCoordinate(p.Y))
	}
	return errors.Wrap(bw.Flush(), "writing hull")
}

// WriteSVG draws the points as circles and the hull as a polygon. SVG puts
// the origin at the top left with y pointing down, so the picture is upside
// down compared to the usual plot. ReadSVG reads it back as is, which means
// the hull's vertices come back as points too.
func WriteSVG(w io.Writer, points []hull.Point, h hull.Hull) error {
	minX, minY, maxX, maxY := bounds(points)
	span := math.Max(maxX-minX, maxY-minY)
	if span == 0 {
		span = 1
	}
	radius := span / 200
	padding := span / 20

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%s %s %s %s">`+"\n",
		formatCoordinate(minX-padding), formatCoordinate(minY-padding),
		formatCoordinate(maxX-minX+2*padding), formatCoordinate(maxY-minY+2*padding),
	)
	if len(h) > 0 {
		vertices := make([]string, len(h))
		for i, p := range h {
			vertices[i] = formatCoordinate(p.X) + "," + formatCoordinate(p.Y)
		}
		fmt.Fprintf(bw, `  <polygon points="%s" fill="none" stroke="green" stroke-width="%s" />`+"\n",
			strings.Join(vertices, " "), formatCoordinate(radius/2))
	}
	for _, p := range points {
		fmt.Fprintf(bw, `  <circle cx="%s" cy="%s" r="%s" />`+"\n",
			formatCoordinate(p.X), formatCoordinate(p.Y), formatCoordinate(radius))
	}
	fmt.Fprintln(bw, "</svg>")
	return errors.Wrap(bw.Flush(), "writing svg")
}

// Shortest representation that parses back to the same value.
func formatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func bounds(points []hull.Point) (minX, minY, maxX, maxY float64) {
	if len(points) == 0 {
		return 0, 0, 0, 0
	}
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return minX, minY, maxX, maxY
}
