package renderer

import (
	"sort"

	"github.com/ivlev/autozoom/internal/config"
	"github.com/ivlev/autozoom/internal/cursor"
	"github.com/ivlev/autozoom/internal/effects"
	"github.com/ivlev/autozoom/internal/events"
	"github.com/ivlev/autozoom/internal/timeline"
)

// Overlay is one highlight instance at a specific frame: the static
// descriptor plus its animation progress and the radius/opacity the
// renderer should actually use at that instant.
type Overlay struct {
	Highlight effects.Highlight
	Progress  float64
	Radius    float64
	Opacity   float64
}

// Frame is everything the export collaborator needs to composite one
// output frame: the camera transform, the cursor position and the
// highlights alive at that instant.
type Frame struct {
	Time      float64
	Transform Transform
	Cursor    events.Point
	Overlays  []Overlay
}

// Resolver combines the zoom timeline, the smoothed cursor track and
// the highlight list into per-frame descriptions. All inputs are
// immutable snapshots, so Resolve is safe to call from concurrent
// workers.
type Resolver struct {
	timeline   *timeline.Timeline
	track      *cursor.Track
	highlights []effects.Highlight
	settings   config.Settings
	maxWindow  float64
}

// NewResolver builds a resolver over frozen inputs. The highlight list
// must be ordered by click time, which ForClicks preserves.
func NewResolver(tl *timeline.Timeline, track *cursor.Track, highlights []effects.Highlight, settings config.Settings) *Resolver {
	maxWindow := 0.0
	for _, h := range highlights {
		if h.Duration > maxWindow {
			maxWindow = h.Duration
		}
	}
	return &Resolver{
		timeline:   tl,
		track:      track,
		highlights: highlights,
		settings:   settings.Clamp(),
		maxWindow:  maxWindow,
	}
}

// Resolve samples the combined effect state at time t. A t outside the
// recording yields the identity transform with no overlays, matching
// the timeline's out-of-range behavior.
func (r *Resolver) Resolve(t float64) Frame {
	return Frame{
		Time:      t,
		Transform: NewTransform(r.timeline.State(t)),
		Cursor:    r.track.At(t),
		Overlays:  r.activeOverlays(t),
	}
}

// activeOverlays filters highlights whose window contains t. The list
// is ordered by click time, so only the slice that can still be alive
// at t is scanned.
func (r *Resolver) activeOverlays(t float64) []Overlay {
	first := sort.Search(len(r.highlights), func(i int) bool {
		return r.highlights[i].Time > t-r.maxWindow
	})

	var out []Overlay
	for _, h := range r.highlights[first:] {
		if h.Time > t {
			break
		}
		if !h.ActiveAt(t) {
			continue
		}
		out = append(out, r.overlay(h, t))
	}
	return out
}

// overlay computes the per-frame appearance of one highlight. When a
// zoom segment covers the click's timestamp the radius is multiplied
// by the cursor scale so the highlight stays proportional inside the
// magnified frame; the generator itself never knows about zoom.
func (r *Resolver) overlay(h effects.Highlight, t float64) Overlay {
	radius := h.Radius
	if r.timeline.IsZoomActive(h.Time) {
		radius *= r.settings.CursorScale
	}

	p := h.Progress(t)
	return Overlay{
		Highlight: h,
		Progress:  p,
		Radius:    radius,
		Opacity:   h.Opacity * (1 - p), // fade out over the window
	}
}
