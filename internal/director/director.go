package director

import (
	"fmt"

	"github.com/ivlev/autozoom/internal/analyzer"
	"github.com/ivlev/autozoom/internal/config"
	"github.com/ivlev/autozoom/internal/events"
)

// Director turns click activity into an ordered, non-overlapping list
// of zoom segments. All thresholds are fixed at construction; Generate
// itself is a pure function of its inputs.
type Director struct {
	Canvas events.Canvas

	// MergeGap and MergeRadius control the post-generation merge pass:
	// adjacent segments closer than MergeGap in time and MergeRadius in
	// normalized focus distance collapse into one.
	MergeGap    float64
	MergeRadius float64

	detector analyzer.Detector
}

// NewDirector creates a director with the default merge thresholds
// (0.3s, 0.05 normalized ≈ 50px at full-canvas scale).
func NewDirector(canvas events.Canvas) *Director {
	return &Director{
		Canvas:      canvas,
		MergeGap:    0.3,
		MergeRadius: 0.05,
		detector:    analyzer.NewGapDetector(canvas),
	}
}

// Generate produces the segment list for a frozen click log. The log
// must be time-ordered; a backwards timestamp surfaces as
// events.ErrNonMonotonic. An empty log, or disabled settings, yields an
// empty list; a segment is never fabricated.
func (d *Director) Generate(clicks []events.ClickEvent, settings config.Settings) ([]Segment, error) {
	settings = settings.Clamp()
	if err := events.CheckClickOrder(clicks); err != nil {
		return nil, fmt.Errorf("generate segments: %w", err)
	}
	if !settings.Enabled || len(clicks) == 0 {
		return nil, nil
	}

	clusters, err := d.detector.Detect(clicks)
	if err != nil {
		return nil, fmt.Errorf("generate segments: %w", err)
	}

	segments := make([]Segment, 0, len(clusters))
	for _, c := range clusters {
		seg, err := NewSegment(
			c.Start,
			c.Start+settings.Duration,
			events.ClampForScale(c.Focus, settings.ZoomLevel),
			settings.ZoomLevel,
			settings.Easing,
			settings.FollowCursor,
		)
		if err != nil {
			return nil, fmt.Errorf("cluster at t=%.3f: %w", c.Start, err)
		}
		segments = append(segments, seg)
	}

	segments = d.mergeAdjacent(segments)
	segments, err = d.resolveOverlaps(segments)
	if err != nil {
		return nil, err
	}

	// Merging and overlap trimming change content; re-derive IDs so
	// they stay a pure function of the final segment.
	for i := range segments {
		segments[i].ID = segmentID(segments[i])
	}
	return segments, nil
}

// mergeAdjacent collapses neighbors whose time gap and focus distance
// are both under the merge thresholds. The merged segment spans from
// the first start to the last end; the scale is the maximum of the
// members and the focus follows the max-scale member, earliest winning
// a tie.
func (d *Director) mergeAdjacent(segments []Segment) []Segment {
	if len(segments) < 2 {
		return segments
	}

	out := segments[:1]
	for _, s := range segments[1:] {
		last := &out[len(out)-1]
		if s.Start-last.End < d.MergeGap && last.Focus.DistanceTo(s.Focus) < d.MergeRadius {
			if s.End > last.End {
				last.End = s.End
			}
			if s.Scale > last.Scale {
				last.Scale = s.Scale
				last.Focus = s.Focus
			}
			continue
		}
		out = append(out, s)
	}
	return out
}

// resolveOverlaps removes any overlap the merge pass left behind
// (clusters whose foci were too far apart to merge). The earlier
// segment is trimmed to end where the next begins; when the starts are
// too close for the trimmed segment to animate at all, the pair is
// force-merged under the max-scale rule instead. Overlapping segments
// are never kept.
func (d *Director) resolveOverlaps(segments []Segment) ([]Segment, error) {
	const minSpan = 0.1

	for i := 0; i < len(segments)-1; i++ {
		cur, next := &segments[i], &segments[i+1]
		if cur.End <= next.Start {
			continue
		}

		if next.Start-cur.Start < minSpan {
			if next.Scale > cur.Scale {
				cur.Scale = next.Scale
				cur.Focus = next.Focus
			}
			if next.End > cur.End {
				cur.End = next.End
			}
			segments = append(segments[:i+1], segments[i+2:]...)
			i--
			continue
		}

		cur.End = next.Start
	}

	for i := 1; i < len(segments); i++ {
		if segments[i].Start < segments[i-1].End {
			return nil, fmt.Errorf("segments %d and %d still overlap after resolution", i-1, i)
		}
	}
	return segments, nil
}
