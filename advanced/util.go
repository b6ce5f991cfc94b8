package advanced

import "fmt"

// Numeric policy
//
// Nothing is compared with a tolerance. Coordinates, x positions and slopes
// are compared exactly, and every question about lines is answered by the sign
// of a cross product of coordinate differences. Both algorithms ask
// their questions that way, so they agree on exact input however far it sits
// from the origin. Since hull vertices are always input points, exact
// comparison is also the only way to say "this is the same point" without
// merging distinct nearby inputs.

// Points are ordered lexicographically: by X, and by Y when X is equal.
func (p Point) Less(other Point) bool {
	if p.X == other.X {
		return p.Y < other.Y
	}
	return p.X < other.X
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Mirror the point across the x axis. Running the upper hull solver on
// reflected points yields the lower hull.
func (p Point) reflect() Point {
	return Point{p.X, -p.Y}
}

func (p Point) distanceSquared(other Point) float64 {
	dx := other.X - p.X
	dy := other.Y - p.Y
	return dx*dx + dy*dy
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

func (e Edge) String() string {
	return fmt.Sprintf("%v→%v", e.A, e.B)
}

// Find the extreme points by x. For points sharing the minimum (maximum) x, the
// one chosen is decided by preferHigh: the highest point if true, otherwise the
// lowest. Among exact duplicates, the first occurrence wins.
func xExtremes(points []Point, preferHigh bool) (left, right Point) {
	left, right = points[0], points[0]
	for _, p := range points[1:] {
		if p.X < left.X || (p.X == left.X && tieBreaks(p, left, preferHigh)) {
			left = p
		}
		if p.X > right.X || (p.X == right.X && tieBreaks(p, right, preferHigh)) {
			right = p
		}
	}
	return left, right
}

func tieBreaks(p, current Point, preferHigh bool) bool {
	if preferHigh {
		return p.Y > current.Y
	}
	return p.Y < current.Y
}
