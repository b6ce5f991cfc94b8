package advanced

// This contains no actual tests. It is just a helper for testing hull
// validity.

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

// Helper to check that a hull is valid for the given points. The rules are:
// 1. Every vertex of the hull is one of the input points.
// 2. No vertex appears twice.
// 3. No three consecutive vertices turn clockwise.
// 4. Every input point is inside the hull or on its boundary.
// 5. There is a hull whenever there are points.
//
// Rules 3 and 4 allow for rounding in proportion to the extent of the input,
// not its distance from the origin, so a hull that cuts a corner far from the
// origin still fails.
func AssertValidHull(t *testing.T, points []Point, hull Hull) {
	t.Helper()
	require.NoError(t, checkHull(points, hull))
}

func checkHull(points []Point, hull Hull) error {
	if len(points) > 0 && len(hull) == 0 {
		return errors.Errorf("empty hull for %d points", len(points))
	}

	inputs := make(map[Point]struct{}, len(points))
	xs := make([]float64, 0, len(points))
	ys := make([]float64, 0, len(points))
	for _, p := range points {
		inputs[p] = struct{}{}
		xs = append(xs, p.X)
		ys = append(ys, p.Y)
	}
	extent := 1.0
	if len(points) > 0 {
		extent = math.Max(extent, math.Max(floats.Max(xs)-floats.Min(xs), floats.Max(ys)-floats.Min(ys)))
	}
	tolerance := 1e-12 * extent * extent

	seen := make(map[Point]struct{}, len(hull))
	for _, v := range hull {
		if _, ok := inputs[v]; !ok {
			return errors.Errorf("hull vertex %v is not an input point", v)
		}
		if _, ok := seen[v]; ok {
			return errors.Errorf("hull vertex %v appears twice", v)
		}
		seen[v] = struct{}{}
	}

	n := len(hull)
	if n >= 3 {
		for i := range hull {
			a, b, c := hull[i], hull[CircularIndex(i+1, n)], hull[CircularIndex(i+2, n)]
			if cross(a, b, c) < -tolerance {
				return errors.Errorf("hull turns clockwise at %v", b)
			}
		}
	}

	for _, p := range points {
		if !containsWithin(hull, p, tolerance) {
			return errors.Errorf("point %v is outside the hull %v", p, hull)
		}
	}
	return nil
}

// Twice the signed area of abc, positive when counterclockwise.
func cross(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

func containsWithin(hull Hull, p Point, tolerance float64) bool {
	switch len(hull) {
	case 0:
		return false
	case 1:
		return hull[0] == p
	case 2:
		a, b := hull[0], hull[1]
		return math.Abs(cross(a, b, p)) <= tolerance && onSegment(a, b, p)
	}
	for i, a := range hull {
		b := hull[CircularIndex(i+1, len(hull))]
		if cross(a, b, p) < -tolerance {
			return false
		}
	}
	return true
}
