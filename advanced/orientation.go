package advanced

type Orientation int

const (
	Collinear Orientation = iota
	Clockwise
	CounterClockwise
)

func (o Orientation) String() string {
	switch o {
	case Collinear:
		return "collinear"
	case Clockwise:
		return "clockwise"
	case CounterClockwise:
		return "counterclockwise"
	}
	return "invalid orientation"
}

// Classify the turn p→q→r. The sign convention matters: Jarvis March relies on
// a negative value meaning a counterclockwise turn, and flipping it would wrap
// the hull the wrong way around.
//
// Collinearity is an exact zero test. See the numeric policy in util.go.
func Orient(p, q, r Point) Orientation {
	val := (q.Y-p.Y)*(r.X-q.X) - (q.X-p.X)*(r.Y-q.Y)
	switch {
	case val == 0:
		return Collinear
	case val > 0:
		return Clockwise
	}
	return CounterClockwise
}
