package advanced

import (
	"github.com/osuushi/hull/dbg"
	"golang.org/x/sync/errgroup"
)

// The upper hull solver. Points are split at a median x, the bridge over the
// split is found, and everything under the bridge is thrown away before
// recursing on what is left on either side. Since each level of recursion does
// linear work, and the split is balanced, the total is O(n log h).
type upperHullSolver struct {
	median         func([]float64) float64
	rec            stepper
	parallelCutoff int
}

// UpperHull returns the upper hull of points from left to right. For points
// sharing the leftmost (rightmost) x, only the highest is on the upper hull. If
// all points share an x, the result is the single highest point.
func UpperHull(points []Point) []Point {
	solver := &upperHullSolver{median: MedianOfMedians}
	return solver.upperHull(points)
}

func (s *upperHullSolver) upperHull(points []Point) []Point {
	if len(points) == 0 {
		fatalf(ErrPrecondition, "upper hull of no points")
	}
	lo, hi := xExtremes(points, true)
	if lo == hi {
		s.rec.step(comment("Single point hull at %v", s.rec.view(lo)))
		return []Point{lo}
	}

	// Points sharing an x with an extreme are below it, so the working set only
	// keeps points strictly between the extremes. This also means lo and hi are
	// the only points at their x, which connect relies on.
	working := make([]Point, 0, len(points))
	working = append(working, lo, hi)
	for _, p := range points {
		if p.X > lo.X && p.X < hi.X {
			working = append(working, p)
		}
	}
	return s.connect(lo, hi, working)
}

// Connect returns the upper hull of points from lo to hi, inclusive. lo must be
// the only point with the smallest x, and hi the only point with the largest.
func (s *upperHullSolver) connect(lo, hi Point, points []Point) []Point {
	if lo == hi {
		return []Point{lo}
	}

	xs := make([]float64, len(points))
	for i, p := range points {
		xs[i] = p.X
	}
	// The median is never the largest x, since hi is unique, so there is always
	// a point on each side of the split.
	a := s.median(xs)
	left, right := bridge(points, a, s.median)

	s.rec.step(
		splitLine(a),
		hullEdge(left, right),
		comment("Found the bridge from %v to %v over x=%g", s.rec.view(left), s.rec.view(right), a),
	)
	if debugEnabled() {
		Logger().Debug("found bridge",
			"frame", dbg.Name(&points[0]),
			"points", len(points),
			"split", a,
			"left", s.rec.view(left),
			"right", s.rec.view(right),
		)
	}

	// Everything strictly between the bridge endpoints is under the bridge.
	leftPoints := []Point{left}
	rightPoints := []Point{right}
	for _, p := range points {
		if p.X < left.X {
			leftPoints = append(leftPoints, p)
		} else if p.X > right.X {
			rightPoints = append(rightPoints, p)
		}
	}

	var leftHull, rightHull []Point
	solveLeft := func() {
		if left == lo {
			leftHull = []Point{left}
		} else {
			leftHull = s.connect(lo, left, leftPoints)
		}
	}
	solveRight := func() {
		if right == hi {
			rightHull = []Point{right}
		} else {
			rightHull = s.connect(right, hi, rightPoints)
		}
	}

	if s.parallel(len(points)) {
		// The halves share nothing after partitioning. A failure on the other
		// goroutine is rethrown here so it surfaces like any other.
		var group errgroup.Group
		group.Go(func() error {
			return Catch(solveRight)
		})
		solveLeft()
		if err := group.Wait(); err != nil {
			rethrow(err)
		}
	} else {
		solveLeft()
		solveRight()
	}

	result := append(leftHull, rightHull...)
	if s.rec.enabled() {
		events := make([]Event, 0, len(result))
		for i := 0; i+1 < len(result); i++ {
			events = append(events, candidateEdge(result[i], result[i+1]))
		}
		events = append(events, comment("Connected %v to %v", s.rec.view(lo), s.rec.view(hi)))
		s.rec.step(events...)
	}
	return result
}

// Recorders see steps in order, so only go parallel without one.
func (s *upperHullSolver) parallel(n int) bool {
	return s.parallelCutoff > 0 && n >= s.parallelCutoff && !s.rec.enabled()
}
