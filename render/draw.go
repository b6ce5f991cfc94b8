// Package render draws hulls for debugging: a PNG of the points, the hull and
// whatever a recorder saw, optionally printed straight to the terminal, and a
// colored text listing of the recorded steps.
package render

import (
	"io"
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/hull"
	"github.com/osuushi/hull/advanced"
	"github.com/pkg/errors"
)

// Padding around the points, in pixels
const drawPadding = 20

// Draw the points, the events, and then the hull on top, fitting everything
// into a size×size square (or smaller, keeping the aspect ratio). Only the
// events after the last Clear are drawn.
func Draw(points []hull.Point, h hull.Hull, events []advanced.Event, size int) *gg.Context {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	if len(points) == 0 {
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}
	span := math.Max(maxX-minX, maxY-minY)
	if span == 0 {
		span = 1
	}
	scale := float64(size) / span

	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()
	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	for i := len(events) - 1; i >= 0; i-- {
		if events[i].Kind == advanced.Clear {
			events = events[i+1:]
			break
		}
	}

	c.SetLineWidth(1)
	for _, event := range events {
		switch event.Kind {
		case advanced.SplitLine:
			c.SetRGBA(0.3, 0.5, 1, 0.6)
			c.SetDash(4, 4)
			c.DrawLine(event.X, minY-drawPadding/scale, event.X, maxY+drawPadding/scale)
			c.Stroke()
			c.SetDash()
		case advanced.CandidateEdge:
			c.SetRGBA(1, 1, 0, 0.4)
			c.DrawLine(event.Edge.A.X, event.Edge.A.Y, event.Edge.B.X, event.Edge.B.Y)
			c.Stroke()
		case advanced.HullEdge:
			c.SetRGBA(1, 0.4, 0.2, 0.8)
			c.DrawLine(event.Edge.A.X, event.Edge.A.Y, event.Edge.B.X, event.Edge.B.Y)
			c.Stroke()
		}
	}

	c.SetRGB(0.6, 0.6, 0.6)
	for _, p := range points {
		c.DrawCircle(p.X, p.Y, 2/scale)
		c.Fill()
	}

	if len(h) > 0 {
		c.SetRGB(0, 1, 0)
		c.SetLineWidth(2)
		c.MoveTo(h[0].X, h[0].Y)
		for _, p := range h[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.ClosePath()
		c.Stroke()
		for _, p := range h {
			c.DrawCircle(p.X, p.Y, 3/scale)
			c.Fill()
		}
	}
	return c
}

func SavePNG(c *gg.Context, path string) error {
	return errors.Wrapf(c.SavePNG(path), "saving %s", path)
}

// Print the image inline. This only works in terminals that support the iTerm
// image protocol.
func Imgcat(c *gg.Context, w io.Writer) error {
	f, err := os.CreateTemp("", "hull-*.png")
	if err != nil {
		return errors.Wrap(err, "creating temporary png")
	}
	defer os.Remove(f.Name())
	if err := c.EncodePNG(f); err != nil {
		f.Close()
		return errors.Wrap(err, "encoding png")
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(err, "writing png")
	}
	return errors.Wrap(imgcat.CatFile(f.Name(), w), "displaying png")
}
