package advanced

// Points are plain values. Every vertex of a hull is one of the input points,
// copied, never synthesized, so two vertices refer to the same input point iff
// their coordinates are identical.
type Point struct {
	X float64
	Y float64
}

// A hull is the boundary of the convex hull, listed counterclockwise starting
// at the lowest of the leftmost points. The last vertex connects back to the
// first; it is not repeated.
type Hull []Point

// Directed segment from A to B. Used for recorder events.
type Edge struct {
	A, B Point
}

type Polygon struct {
	Points []Point
}
