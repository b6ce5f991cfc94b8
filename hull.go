// Convex hulls of planar point sets for Go.
//
// Two algorithms are provided behind the same contract: Jarvis March (gift
// wrapping), which takes O(nh) time for n points and h hull vertices, and
// Kirkpatrick–Seidel, which takes O(n log h) time. Both return the hull
// counterclockwise, starting at the lowest of the leftmost points, without
// duplicate or collinear vertices.
//
// Degenerate input is not an error. No points give an empty hull, coincident
// points give a single vertex, and collinear points give the two extreme
// points.
//
// The building blocks (selection, bridge finding, the upper hull solver) live
// in the advanced package.
package hull

import (
	"log/slog"

	"github.com/osuushi/hull/advanced"
	"github.com/pkg/errors"
)

type Point = advanced.Point
type Hull = advanced.Hull
type Algorithm = advanced.Algorithm
type Recorder = advanced.Recorder

var (
	ErrPrecondition = advanced.ErrPrecondition
	ErrStalled      = advanced.ErrStalled
)

// Names accepted by AlgorithmByName.
const (
	JarvisMarchName       = "jarvis-march"
	KirkpatrickSeidelName = "kirkpatrick-seidel"
)

// Compute the hull of points with the given algorithm. The points are not
// modified. On failure, no partial hull is returned.
func Compute(alg Algorithm, points []Point) (result Hull, err error) {
	defer func() {
		recoveredErr := advanced.HandleHullPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return alg.Hull(points), nil
}

func JarvisMarch(points []Point) (Hull, error) {
	return Compute(advanced.JarvisMarch{}, points)
}

func KirkpatrickSeidel(points []Point) (Hull, error) {
	return Compute(advanced.KirkpatrickSeidel{}, points)
}

// Look up an algorithm by name, attaching a recorder (which may be nil).
func AlgorithmByName(name string, rec Recorder) (Algorithm, error) {
	switch name {
	case JarvisMarchName:
		return advanced.JarvisMarch{Recorder: rec}, nil
	case KirkpatrickSeidelName:
		return advanced.KirkpatrickSeidel{Recorder: rec}, nil
	}
	return nil, errors.Errorf("unknown hull algorithm %q", name)
}

// SetLogger enables debug logging of the Kirkpatrick–Seidel recursion. Pass nil
// to silence it again, which is the default.
func SetLogger(l *slog.Logger) {
	advanced.SetLogger(l)
}
