package advanced

// An Algorithm computes the convex hull of a point set.
//
// Every algorithm follows the same contract for degenerate input: no points
// give an empty hull, coincident points give a single vertex, and collinear
// points give the two extreme points. Otherwise the hull is counterclockwise,
// starting at the lowest of the leftmost points, with no collinear vertices.
//
// Hull panics with an internal error on failure. Use Catch, or the root
// package, to get an error instead.
type Algorithm interface {
	Name() string
	Hull(points []Point) Hull
}

var (
	_ Algorithm = JarvisMarch{}
	_ Algorithm = KirkpatrickSeidel{}
)
