package director

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/ivlev/autozoom/internal/easing"
	"github.com/ivlev/autozoom/internal/events"
)

// Segment is one time-bounded zoom event. The closed interval
// [Start, End] is split into three phases: zoom-in over the first
// quarter, hold over the middle half, zoom-out over the last quarter.
type Segment struct {
	ID           string       `yaml:"id"`
	Start        float64      `yaml:"start"`
	End          float64      `yaml:"end"`
	Focus        events.Point `yaml:"focus"`
	Scale        float64      `yaml:"scale"`
	Easing       easing.Curve `yaml:"easing"`
	FollowCursor bool         `yaml:"follow_cursor,omitempty"`
}

// NewSegment constructs a segment, enforcing End > Start.
func NewSegment(start, end float64, focus events.Point, scale float64, curve easing.Curve, follow bool) (Segment, error) {
	if end <= start {
		return Segment{}, fmt.Errorf("segment range [%.3f, %.3f] is empty or reversed", start, end)
	}
	s := Segment{
		Start:        start,
		End:          end,
		Focus:        focus,
		Scale:        scale,
		Easing:       curve,
		FollowCursor: follow,
	}
	s.ID = segmentID(s)
	return s, nil
}

// Duration returns the full segment length in seconds.
func (s Segment) Duration() float64 { return s.End - s.Start }

// ZoomInDuration is the length of the ramp-up phase (25% of the segment).
func (s Segment) ZoomInDuration() float64 { return s.Duration() * 0.25 }

// ZoomOutDuration is the length of the ramp-down phase (25% of the segment).
func (s Segment) ZoomOutDuration() float64 { return s.Duration() * 0.25 }

// HoldDuration is the plateau between the ramps. It is derived as the
// remainder so the three phases always sum exactly to Duration.
func (s Segment) HoldDuration() float64 {
	return s.Duration() - s.ZoomInDuration() - s.ZoomOutDuration()
}

// ZoomInEnd is the timestamp where the hold phase begins.
func (s Segment) ZoomInEnd() float64 { return s.Start + s.ZoomInDuration() }

// HoldEnd is the timestamp where the zoom-out phase begins.
func (s Segment) HoldEnd() float64 { return s.Start + s.ZoomInDuration() + s.HoldDuration() }

// Contains reports whether t falls inside the closed segment interval.
func (s Segment) Contains(t float64) bool { return t >= s.Start && t <= s.End }

// segmentID derives a stable UUID from the segment content so that
// generating the same plan twice yields identical IDs.
func segmentID(s Segment) string {
	key := fmt.Sprintf("autozoom/segment/%.6f/%.6f/%.6f/%.6f/%.6f/%s/%t",
		s.Start, s.End, s.Focus.X, s.Focus.Y, s.Scale, s.Easing, s.FollowCursor)
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(key)).String()
}
