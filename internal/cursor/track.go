package cursor

import (
	"fmt"
	"sort"

	"github.com/ivlev/autozoom/internal/easing"
	"github.com/ivlev/autozoom/internal/events"
)

// Track is an immutable, smoothed cursor trajectory with time-indexed
// lookup. It is built once after a recording freezes and is safe for
// concurrent readers.
type Track struct {
	samples []events.CursorSample
}

// NewTrack validates the raw sample order, smooths it and freezes the
// result.
func NewTrack(raw []events.CursorSample, smoothing float64) (*Track, error) {
	if err := events.CheckSampleOrder(raw); err != nil {
		return nil, fmt.Errorf("cursor track: %w", err)
	}
	return &Track{samples: Smooth(raw, smoothing)}, nil
}

// Len returns the number of samples in the track.
func (t *Track) Len() int { return len(t.samples) }

// At returns the cursor position at time ts, linearly interpolated
// between the surrounding samples. Before the first sample the first
// position is held, after the last the last one; an empty track pins
// the cursor to the canvas center. Duplicate timestamps resolve to the
// later sample (last wins).
func (t *Track) At(ts float64) events.Point {
	if t == nil || len(t.samples) == 0 {
		return events.Center()
	}
	n := len(t.samples)
	if ts <= t.samples[0].Time {
		return t.samples[0].Pos
	}
	if ts >= t.samples[n-1].Time {
		return t.samples[n-1].Pos
	}

	// First sample strictly after ts; its predecessor is at or before.
	hi := sort.Search(n, func(i int) bool { return t.samples[i].Time > ts })
	lo := hi - 1

	a, b := t.samples[lo], t.samples[hi]
	span := b.Time - a.Time
	if span <= 0 {
		return b.Pos
	}
	u := (ts - a.Time) / span
	return events.Point{
		X: easing.Lerp(a.Pos.X, b.Pos.X, u),
		Y: easing.Lerp(a.Pos.Y, b.Pos.Y, u),
	}
}
