package advanced

// JarvisMarch computes hulls by gift wrapping, in O(nh) time where h is the
// number of hull vertices. It is simple enough to serve as an oracle for
// Kirkpatrick–Seidel.
type JarvisMarch struct {
	Recorder Recorder
}

func (JarvisMarch) Name() string {
	return "jarvis-march"
}

// Fewer than three points are not wrapped at all, but they still get a
// well-defined hull: the distinct points, in lexicographic order.
func (jm JarvisMarch) Hull(points []Point) Hull {
	if len(points) < 3 {
		return degenerateHull(points)
	}
	return giftWrap(points, stepper{rec: jm.Recorder})
}

// GiftWrap is the bare gift wrapping loop. For fewer than three points it
// returns an empty hull.
func GiftWrap(points []Point) Hull {
	return giftWrap(points, stepper{})
}

func giftWrap(points []Point, rec stepper) Hull {
	n := len(points)
	if n < 3 {
		return Hull{}
	}

	// Start from the leftmost point. Of several leftmost points, the lowest is
	// a true corner of the hull, whereas the others may be in the middle of a
	// vertical edge and never get wrapped back to.
	start := points[0]
	for _, p := range points[1:] {
		if p.X < start.X || (p.X == start.X && p.Y < start.Y) {
			start = p
		}
	}

	hull := Hull{}
	// Only kept for the recorder, which is not shown edges to known vertices.
	var visited map[Point]struct{}
	if rec.enabled() {
		visited = make(map[Point]struct{})
	}
	p := start
	for {
		hull = append(hull, p)
		if visited != nil {
			visited[p] = struct{}{}
		}
		if len(hull) > n {
			fatalf(ErrStalled, "gift wrapping found more than %d hull vertices", n)
		}

		// Find q such that every point is left of p→q, or on it and no farther
		// than q. Taking the farthest of collinear points leaves points in the
		// middle of a hull edge out of the hull.
		q := p
		var scanned []Event
		for _, r := range points {
			if r == p {
				continue
			}
			if q == p {
				q = r
			} else {
				switch Orient(p, r, q) {
				case CounterClockwise:
					q = r
				case Collinear:
					if p.distanceSquared(r) > p.distanceSquared(q) {
						q = r
					}
				}
			}
			if visited != nil {
				if _, ok := visited[r]; !ok {
					scanned = append(scanned, candidateEdge(p, r))
				}
			}
		}

		if q == p {
			rec.step(comment("All points coincide at %v", p))
			return hull
		}
		rec.step(append(scanned,
			hullEdge(p, q),
			comment("Checked every point from %v, and %v is the least counterclockwise", p, q),
		)...)

		if q == start {
			break
		}
		p = q
	}

	rec.step(comment("Found all %d points of the hull", len(hull)))
	return hull
}

// The hull of at most two points: nothing, one point, or a segment.
func degenerateHull(points []Point) Hull {
	switch len(points) {
	case 0:
		return Hull{}
	case 1:
		return Hull{points[0]}
	}
	a, b := points[0], points[1]
	if a == b {
		return Hull{a}
	}
	if b.Less(a) {
		a, b = b, a
	}
	return Hull{a, b}
}
