package render

import (
	"fmt"
	"io"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/hull/advanced"
	"github.com/pkg/errors"
)

// WriteTrace lists recorded steps, one event per line, colored by kind when
// color is set.
func WriteTrace(w io.Writer, steps [][]advanced.Event, color bool) error {
	au := aurora.NewAurora(color)
	for i, step := range steps {
		if _, err := fmt.Fprintf(w, "%s\n", au.Bold(fmt.Sprintf("step %d", i+1))); err != nil {
			return errors.Wrap(err, "writing trace")
		}
		for _, event := range step {
			var line interface{}
			switch event.Kind {
			case advanced.HullEdge:
				line = au.Green(event)
			case advanced.CandidateEdge:
				line = au.Yellow(event)
			case advanced.SplitLine:
				line = au.Blue(event)
			case advanced.Clear:
				line = au.Red(event)
			default:
				line = au.Cyan(event.Text)
			}
			if _, err := fmt.Fprintf(w, "  %s\n", line); err != nil {
				return errors.Wrap(err, "writing trace")
			}
		}
	}
	return nil
}
