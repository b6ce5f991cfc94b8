package advanced

import "fmt"

// A Recorder watches an algorithm work. Algorithms report discrete steps, each
// a small batch of events, at the points where a person following along would
// want to see progress. Recording never changes the computed hull.
//
// Events always use the caller's coordinates. The lower hull is computed on
// reflected points, but its events are reflected back before they are
// reported.
type Recorder interface {
	Step(events ...Event)
}

type EventKind int

const (
	// An edge that is known to be on the hull.
	HullEdge EventKind = iota
	// An edge under consideration, which may be discarded.
	CandidateEdge
	// The vertical line x = X that a connect step splits on.
	SplitLine
	// A text annotation explaining the step.
	Comment
	// Everything drawn so far is stale. The algorithms here never emit this,
	// but hosts can insert it into a trace.
	Clear
)

func (k EventKind) String() string {
	switch k {
	case HullEdge:
		return "hull"
	case CandidateEdge:
		return "candidate"
	case SplitLine:
		return "split"
	case Comment:
		return "comment"
	case Clear:
		return "clear"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

type Event struct {
	Kind EventKind
	Edge Edge    // HullEdge and CandidateEdge
	X    float64 // SplitLine
	Text string  // Comment
}

func (e Event) String() string {
	switch e.Kind {
	case HullEdge, CandidateEdge:
		return fmt.Sprintf("%s %s", e.Kind, e.Edge)
	case SplitLine:
		return fmt.Sprintf("%s x=%g", e.Kind, e.X)
	case Comment:
		return fmt.Sprintf("%s %q", e.Kind, e.Text)
	}
	return e.Kind.String()
}

func hullEdge(a, b Point) Event {
	return Event{Kind: HullEdge, Edge: Edge{a, b}}
}

func candidateEdge(a, b Point) Event {
	return Event{Kind: CandidateEdge, Edge: Edge{a, b}}
}

func splitLine(x float64) Event {
	return Event{Kind: SplitLine, X: x}
}

func comment(format string, args ...interface{}) Event {
	return Event{Kind: Comment, Text: fmt.Sprintf(format, args...)}
}

// Adapts a plain function into a Recorder.
type RecorderFunc func(events ...Event)

func (f RecorderFunc) Step(events ...Event) {
	f(events...)
}

// Trace keeps every step in order. It is not safe for concurrent use, which is
// fine: algorithms only run their recursion in parallel when no recorder is
// attached.
type Trace struct {
	Steps [][]Event
}

func (t *Trace) Step(events ...Event) {
	t.Steps = append(t.Steps, events)
}

// All events of all steps, flattened.
func (t *Trace) Events() []Event {
	var all []Event
	for _, step := range t.Steps {
		all = append(all, step...)
	}
	return all
}

// The recorder as the algorithms see it. A nil recorder swallows everything,
// and reflected recorders flip coordinates back before passing events on.
type stepper struct {
	rec       Recorder
	reflected bool
}

func (s stepper) enabled() bool {
	return s.rec != nil
}

func (s stepper) step(events ...Event) {
	if s.rec == nil {
		return
	}
	if s.reflected {
		for i := range events {
			if events[i].Kind == HullEdge || events[i].Kind == CandidateEdge {
				events[i].Edge.A = events[i].Edge.A.reflect()
				events[i].Edge.B = events[i].Edge.B.reflect()
			}
		}
	}
	s.rec.Step(events...)
}

// A point as the caller sees it, for use in comment text.
func (s stepper) view(p Point) Point {
	if s.reflected {
		return p.reflect()
	}
	return p
}
