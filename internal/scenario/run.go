package scenario

import (
	"context"
	"fmt"

	"github.com/shinji-kodama/circleops/internal/model"
)

// Report is the outcome of building a circle or applying a step.
type Report struct {
	// Label is the human-readable heading for this report.
	Label string `json:"label"`

	// Step is the 1-based step index, or 0 for the initial build of a circle.
	Step int `json:"step"`

	// Circle is the name of the circle the report describes.
	Circle string `json:"circle"`

	// Snapshot is the circle's state right after the build or step.
	Snapshot model.CircleSnapshot `json:"snapshot"`
}

// Run builds every declared circle and applies the steps in order. The
// scenario is assumed to have passed Validate.
//
// ctx is checked before each step; on cancellation the reports produced so
// far are returned together with ctx.Err().
func Run(ctx context.Context, s *Scenario) ([]Report, error) {
	circles := make(map[string]*model.Circle, len(s.Circles))
	reports := make([]Report, 0, len(s.Circles)+len(s.Steps))

	for _, spec := range s.Circles {
		c := spec.Build()
		circles[spec.Name] = c
		reports = append(reports, Report{
			Label:    fmt.Sprintf("Circle %s", spec.Name),
			Circle:   spec.Name,
			Snapshot: c.Snapshot(),
		})
	}

	for i, st := range s.Steps {
		if err := ctx.Err(); err != nil {
			return reports, err
		}

		target, ok := circles[st.Target]
		if !ok {
			return reports, fmt.Errorf("step %d: unknown target circle %q", i+1, st.Target)
		}

		switch st.Op {
		case OpMove:
			target.Move(deref(st.X), deref(st.Y))
		case OpResize:
			target.Resize(deref(st.Radius))
		case OpCombine:
			other, ok := circles[st.With]
			if !ok {
				return reports, fmt.Errorf("step %d: unknown circle %q to combine with", i+1, st.With)
			}
			target.Combine(other)
		case OpDouble:
			target.Double()
		case OpShow:
		default:
			return reports, fmt.Errorf("step %d: unsupported operation %q", i+1, st.Op)
		}

		reports = append(reports, Report{
			Label:    stepLabel(st),
			Step:     i + 1,
			Circle:   st.Target,
			Snapshot: target.Snapshot(),
		})
	}

	return reports, nil
}

// stepLabel returns the report heading for a step, e.g.
// "Combined Circle c1 and Circle c2" or "Doubled Circle c2".
func stepLabel(st Step) string {
	if st.Label != "" {
		return st.Label
	}

	switch st.Op {
	case OpMove:
		return fmt.Sprintf("Moved Circle %s", st.Target)
	case OpResize:
		return fmt.Sprintf("Resized Circle %s", st.Target)
	case OpCombine:
		return fmt.Sprintf("Combined Circle %s and Circle %s", st.Target, st.With)
	case OpDouble:
		return fmt.Sprintf("Doubled Circle %s", st.Target)
	default:
		return fmt.Sprintf("Circle %s", st.Target)
	}
}
