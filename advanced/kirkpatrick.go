package advanced

import "fmt"

// How Kirkpatrick–Seidel picks split values, both for the x split in connect
// and for the median slope in the bridge finder.
type PivotRule int

const (
	// The median of medians. Cheap, and close enough to the median for the
	// O(n log h) bound.
	ApproximateMedian PivotRule = iota
	// The exact lower median, by linear time selection. Balances the recursion
	// perfectly at the cost of a larger constant.
	ExactMedian
)

func (r PivotRule) String() string {
	switch r {
	case ApproximateMedian:
		return "approximate"
	case ExactMedian:
		return "exact"
	}
	return fmt.Sprintf("PivotRule(%d)", int(r))
}

func (r PivotRule) median() func([]float64) float64 {
	if r == ExactMedian {
		return Median
	}
	return MedianOfMedians
}

// KirkpatrickSeidel computes hulls in O(n log h) time, where h is the number
// of hull vertices.
type KirkpatrickSeidel struct {
	Recorder Recorder
	Pivot    PivotRule
	// When positive, connect steps over at least this many points solve their
	// two halves concurrently. Ignored when a Recorder is set.
	ParallelCutoff int
}

func (KirkpatrickSeidel) Name() string {
	return "kirkpatrick-seidel"
}

// The upper hull of the points and the upper hull of the points reflected
// across the x axis (which is the lower hull, reflected) are computed
// separately, then joined at the extremes.
func (ks KirkpatrickSeidel) Hull(points []Point) Hull {
	if len(points) == 0 {
		return Hull{}
	}
	rec := stepper{rec: ks.Recorder}

	upper := ks.solver(rec).upperHull(points)
	rec.step(comment("Added upper hull"))

	reflected := make([]Point, len(points))
	for i, p := range points {
		reflected[i] = p.reflect()
	}
	lower := ks.solver(stepper{rec: ks.Recorder, reflected: true}).upperHull(reflected)
	for i, p := range lower {
		lower[i] = p.reflect()
	}
	rec.step(comment("Added lower hull"))

	if rec.enabled() {
		// The chains meet at the extremes, unless there is a vertical edge there.
		if first, last := lower[len(lower)-1], upper[len(upper)-1]; first != last {
			rec.step(hullEdge(first, last), comment("Adding right vertical edge between %v and %v", first, last))
		}
		if first, last := upper[0], lower[0]; first != last {
			rec.step(hullEdge(first, last), comment("Adding left vertical edge between %v and %v", first, last))
		}
	}

	hull := joinChains(lower, upper)
	rec.step(comment("Kirkpatrick–Seidel is complete with %d vertices", len(hull)))
	return hull
}

func (ks KirkpatrickSeidel) solver(rec stepper) *upperHullSolver {
	return &upperHullSolver{
		median:         ks.Pivot.median(),
		rec:            rec,
		parallelCutoff: ks.ParallelCutoff,
	}
}

// Join the lower chain (left to right) with the upper chain (walked right to
// left) into one counterclockwise cycle. The chains share their endpoints,
// except where the hull has a vertical edge at an extreme, so shared endpoints
// are dropped from the upper chain.
func joinChains(lower, upper []Point) Hull {
	hull := make(Hull, 0, len(lower)+len(upper))
	hull = append(hull, lower...)

	rest := make([]Point, 0, len(upper))
	for i := len(upper) - 1; i >= 0; i-- {
		rest = append(rest, upper[i])
	}
	if len(rest) > 0 && rest[0] == hull[len(hull)-1] {
		rest = rest[1:]
	}
	if len(rest) > 0 && rest[len(rest)-1] == hull[0] {
		rest = rest[:len(rest)-1]
	}
	return append(hull, rest...)
}
