package director

import (
	"fmt"

	"github.com/ivlev/autozoom/internal/events"
)

// Plan is the derived camera artifact for one recording: the canvas it
// was computed against, the total duration and the ordered segment
// list. It is rebuilt wholesale whenever the event log or the settings
// change, never patched.
type Plan struct {
	Version  string        `yaml:"version"`
	Canvas   events.Canvas `yaml:"canvas"`
	Duration float64       `yaml:"duration"`
	Segments []Segment     `yaml:"segments"`
}

// PlanVersion is written into every generated plan file.
const PlanVersion = "1.0"

// NewPlan assembles a plan and verifies its invariants.
func NewPlan(canvas events.Canvas, duration float64, segments []Segment) (*Plan, error) {
	p := &Plan{
		Version:  PlanVersion,
		Canvas:   canvas,
		Duration: duration,
		Segments: segments,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks the invariants every sampler relies on: segments
// strictly ordered by start, non-overlapping, with sane ranges.
func (p *Plan) Validate() error {
	if p.Canvas.Width <= 0 || p.Canvas.Height <= 0 {
		return fmt.Errorf("plan canvas %dx%d is invalid", p.Canvas.Width, p.Canvas.Height)
	}
	for i, s := range p.Segments {
		if s.End <= s.Start {
			return fmt.Errorf("segment %d range [%.3f, %.3f] is empty or reversed", i, s.Start, s.End)
		}
		if s.Scale < 1.0 {
			return fmt.Errorf("segment %d scale %.2f below identity", i, s.Scale)
		}
		if i > 0 {
			prev := p.Segments[i-1]
			if s.Start < prev.Start {
				return fmt.Errorf("segment %d starts before segment %d", i, i-1)
			}
			if s.Start < prev.End {
				return fmt.Errorf("segments %d and %d overlap", i-1, i)
			}
		}
	}
	return nil
}
