package advanced

// Bridge finding by prune and search, after Kirkpatrick and Seidel, "The
// Ultimate Planar Convex Hull Algorithm?" (1986).
//
// The bridge over x = a is the edge of the upper hull that crosses that line.
// Each round pairs the points up and takes the median slope k of the pairs. The
// line of slope k supporting the points from above either already is the
// bridge, or it touches the hull entirely on one side of x = a. In the second
// case, the bridge's slope is strictly smaller (touching on the left) or larger
// (touching on the right) than k, and in each pair on the wrong side of the
// median slope, one point is provably not an endpoint of the bridge. A constant
// fraction of the points goes every round, so the whole search is linear.

// The slope is only used to pick the median. Every decision after that
// compares directions by the sign of a cross product, as Orient does.
type pair struct {
	left, right Point
	slope       float64
}

// Positive if pr is steeper than other, zero if parallel.
func (pr pair) compareSlope(other pair) float64 {
	dx, dy := other.right.X-other.left.X, other.right.Y-other.left.Y
	ex, ey := pr.right.X-pr.left.X, pr.right.Y-pr.left.Y
	return ey*dx - dy*ex
}

// Positive if p is above the line through q parallel to pr, zero if on it.
func (pr pair) above(p, q Point) float64 {
	dx, dy := pr.right.X-pr.left.X, pr.right.Y-pr.left.Y
	return dx*(p.Y-q.Y) - dy*(p.X-q.X)
}

// Bridge finds the upper hull edge crossing x = a. There must be at least one
// point with x <= a and at least one with x > a. The returned points satisfy
// left.X <= a < right.X.
func Bridge(points []Point, a float64) (left, right Point) {
	return bridge(points, a, MedianOfMedians)
}

func bridge(points []Point, a float64, median func([]float64) float64) (left, right Point) {
	if len(points) < 2 {
		fatalf(ErrPrecondition, "bridge over %d points", len(points))
	}

	for len(points) > 2 {
		candidates := make([]Point, 0, len(points))
		pairs := make([]pair, 0, len(points)/2)

		// Pairing is arbitrary, so pair neighbors. An odd point out survives to
		// the next round.
		if len(points)%2 == 1 {
			candidates = append(candidates, points[len(points)-1])
		}
		for i := 0; i+1 < len(points); i += 2 {
			p, q := points[i], points[i+1]
			if q.X < p.X {
				p, q = q, p
			}
			if p.X == q.X {
				// Vertical pairs have no slope, but the lower point cannot be on
				// the upper hull. This also collapses duplicate points.
				if p.Y > q.Y {
					candidates = append(candidates, p)
				} else {
					candidates = append(candidates, q)
				}
				continue
			}
			pairs = append(pairs, pair{p, q, (q.Y - p.Y) / (q.X - p.X)})
		}

		if len(pairs) > 0 {
			slopes := make([]float64, len(pairs))
			for i, pr := range pairs {
				slopes[i] = pr.slope
			}
			k := median(slopes)
			// The median is one of the slopes, so some pair has exactly that slope.
			var pivot pair
			for _, pr := range pairs {
				if pr.slope == k {
					pivot = pr
					break
				}
			}

			// Find the points on the supporting line parallel to the pivot pair.
			top := points[0]
			for _, p := range points[1:] {
				if pivot.above(p, top) > 0 {
					top = p
				}
			}
			lowest, highest := top, top
			for _, p := range points {
				if pivot.above(p, top) != 0 {
					continue
				}
				if p.X < lowest.X {
					lowest = p
				}
				if p.X > highest.X {
					highest = p
				}
			}

			switch {
			case lowest.X <= a && highest.X > a:
				// The supporting line already crosses x = a, so it is the bridge.
				return lowest, highest
			case highest.X <= a:
				// Touching on the left: the bridge is shallower than k. The left end
				// of any pair at least as steep as k cannot be a bridge endpoint.
				for _, pr := range pairs {
					if pr.compareSlope(pivot) < 0 {
						candidates = append(candidates, pr.left, pr.right)
					} else {
						candidates = append(candidates, pr.right)
					}
				}
			default:
				// Touching on the right: the mirror image of the case above.
				for _, pr := range pairs {
					if pr.compareSlope(pivot) > 0 {
						candidates = append(candidates, pr.left, pr.right)
					} else {
						candidates = append(candidates, pr.left)
					}
				}
			}
		}

		if len(candidates) >= len(points) || len(candidates) < 2 {
			fatalf(ErrStalled, "bridge over x=%g went from %d to %d candidates", a, len(points), len(candidates))
		}
		points = candidates
	}

	left, right = points[0], points[1]
	if right.X < left.X {
		left, right = right, left
	}
	if left.X > a || right.X <= a {
		fatalf(ErrStalled, "bridge candidates %v and %v do not straddle x=%g", left, right, a)
	}
	return left, right
}
