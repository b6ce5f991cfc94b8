package advanced

// Polygons are only used to check hulls, so everything here assumes a convex,
// counterclockwise polygon unless stated otherwise.

// Twice the signed area, by the shoelace formula. Positive for counterclockwise
// polygons.
func (poly Polygon) doubleSignedArea() float64 {
	var sum float64
	for i, p := range poly.Points {
		q := poly.Points[CircularIndex(i+1, len(poly.Points))]
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum
}

func (poly Polygon) SignedArea() float64 {
	return poly.doubleSignedArea() / 2
}

func (poly Polygon) IsCCW() bool {
	return poly.doubleSignedArea() > 0
}

func (poly Polygon) IsCW() bool {
	return poly.doubleSignedArea() < 0
}

// Check that every consecutive triple of vertices turns counterclockwise. This
// rejects collinear vertices as well as reflex ones.
func (poly Polygon) IsStrictlyConvex() bool {
	n := len(poly.Points)
	if n < 3 {
		return true
	}
	for i, p := range poly.Points {
		q := poly.Points[CircularIndex(i+1, n)]
		r := poly.Points[CircularIndex(i+2, n)]
		if Orient(p, q, r) != CounterClockwise {
			return false
		}
	}
	return true
}

// Point-in-convex-polygon, counting the boundary as inside. Polygons with fewer
// than three vertices are treated as the point or segment they describe.
func (poly Polygon) ContainsPoint(p Point) bool {
	switch len(poly.Points) {
	case 0:
		return false
	case 1:
		return poly.Points[0] == p
	case 2:
		a, b := poly.Points[0], poly.Points[1]
		return Orient(a, b, p) == Collinear && onSegment(a, b, p)
	}

	for i, a := range poly.Points {
		b := poly.Points[CircularIndex(i+1, len(poly.Points))]
		if Orient(a, b, p) == Clockwise {
			return false
		}
	}
	return true
}

// Assuming p is collinear with a and b, is it between them?
func onSegment(a, b, p Point) bool {
	return p.X >= min(a.X, b.X) && p.X <= max(a.X, b.X) &&
		p.Y >= min(a.Y, b.Y) && p.Y <= max(a.Y, b.Y)
}

func (poly Polygon) Reverse() Polygon {
	newPoly := Polygon{}
	for i := len(poly.Points) - 1; i >= 0; i-- {
		newPoly.Points = append(newPoly.Points, poly.Points[i])
	}
	return newPoly
}

func (h Hull) Polygon() Polygon {
	return Polygon{Points: h}
}
