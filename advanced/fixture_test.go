package advanced

import (
	"embed"
	"log"
	"math"
	"math/rand"
	"strconv"

	"github.com/JoshVarga/svgparser"
)

// This loads point sets from the svg pictures in fixtures/. Every <circle>
// element is one point, at its center. If anything goes wrong, it panics.
//
// Fixtures are available by name, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) []Point {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	circles := rootEl.FindAll("circle")
	if len(circles) == 0 {
		log.Fatalf("No circles found in fixture %q", name)
	}

	points := make([]Point, 0, len(circles))
	for _, circle := range circles {
		x, err := strconv.ParseFloat(circle.Attributes["cx"], 64)
		if err != nil {
			log.Fatalf("Invalid cx value %q: %v", circle.Attributes["cx"], err)
		}
		y, err := strconv.ParseFloat(circle.Attributes["cy"], 64)
		if err != nil {
			log.Fatalf("Invalid cy value %q: %v", circle.Attributes["cy"], err)
		}
		points = append(points, Point{x, y})
	}
	return points
}

// Some ad hoc point sets

// Uniform in a disk, by the square root trick.
func DiskPoints(n int, radius float64, seed int64) []Point {
	r := rand.New(rand.NewSource(seed))
	points := make([]Point, n)
	for i := range points {
		rho := radius * math.Sqrt(r.Float64())
		theta := 2 * math.Pi * r.Float64()
		points[i] = Point{X: rho * math.Cos(theta), Y: rho * math.Sin(theta)}
	}
	return points
}

// Uniform in a square centered on the origin.
func SquarePoints(n int, side float64, seed int64) []Point {
	r := rand.New(rand.NewSource(seed))
	points := make([]Point, n)
	for i := range points {
		points[i] = Point{X: side * (r.Float64() - 0.5), Y: side * (r.Float64() - 0.5)}
	}
	return points
}

// Every point is on the hull. This is the worst case for Jarvis March. The
// order is shuffled so that nothing benefits from sorted input.
func CirclePoints(n int, radius float64, seed int64) []Point {
	r := rand.New(rand.NewSource(seed))
	points := make([]Point, n)
	for i := range points {
		theta := 2 * math.Pi * float64(i) / float64(n)
		points[i] = Point{X: radius * math.Cos(theta), Y: radius * math.Sin(theta)}
	}
	r.Shuffle(n, func(i, j int) {
		points[i], points[j] = points[j], points[i]
	})
	return points
}

// Integer points in a small box, so collinear triples, shared x values and
// duplicates are common.
func GridPoints(n int, halfWidth int, seed int64) []Point {
	r := rand.New(rand.NewSource(seed))
	points := make([]Point, n)
	for i := range points {
		points[i] = Point{
			X: float64(r.Intn(2*halfWidth+1) - halfWidth),
			Y: float64(r.Intn(2*halfWidth+1) - halfWidth),
		}
	}
	return points
}

// Points on y = x², shuffled. They are all in convex position, and with
// integer coordinates every orientation test is exact.
func ParabolaPoints(n int, seed int64) []Point {
	r := rand.New(rand.NewSource(seed))
	points := make([]Point, n)
	for i := range points {
		x := float64(i - n/2)
		points[i] = Point{X: x, Y: x * x}
	}
	r.Shuffle(n, func(i, j int) {
		points[i], points[j] = points[j], points[i]
	})
	return points
}
