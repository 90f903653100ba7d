package timeline

import (
	"fmt"
	"sort"

	"github.com/ivlev/autozoom/internal/cursor"
	"github.com/ivlev/autozoom/internal/director"
	"github.com/ivlev/autozoom/internal/easing"
	"github.com/ivlev/autozoom/internal/events"
)

// CameraState is the virtual camera at one instant: where it centers
// and how much it magnifies. It is a transient sampling output, never
// persisted.
type CameraState struct {
	Center events.Point
	Scale  float64
}

// Identity is the unzoomed camera: full canvas, centered.
func Identity() CameraState {
	return CameraState{Center: events.Center(), Scale: 1.0}
}

// Timeline answers "what is the camera doing at time t" for one frozen
// recording. It owns no mutable state after construction and is safe
// for concurrent sampling.
type Timeline struct {
	segments []director.Segment
	duration float64
	track    *cursor.Track // drives follow mode; may be nil
}

// New builds a timeline over an ordered, non-overlapping segment list.
// The invariants are re-checked here because the timeline is also fed
// from plan files, not only from the director.
func New(segments []director.Segment, duration float64, track *cursor.Track) (*Timeline, error) {
	for i, s := range segments {
		if s.End <= s.Start {
			return nil, fmt.Errorf("timeline: segment %d range [%.3f, %.3f] is empty or reversed", i, s.Start, s.End)
		}
		if i > 0 && s.Start < segments[i-1].End {
			return nil, fmt.Errorf("timeline: segments %d and %d overlap", i-1, i)
		}
	}
	return &Timeline{segments: segments, duration: duration, track: track}, nil
}

// Duration returns the recording duration the timeline covers.
func (tl *Timeline) Duration() float64 { return tl.duration }

// Segments returns the underlying segment list.
func (tl *Timeline) Segments() []director.Segment { return tl.segments }

// IsZoomActive reports whether t falls inside any zoom segment.
func (tl *Timeline) IsZoomActive(t float64) bool {
	_, ok := tl.find(t)
	return ok
}

// State samples the camera at time t. Outside every segment, including
// any t past the recording end, it returns the identity state; an
// out-of-range query is not an error. Every returned center is clamped
// against the instantaneous scale, so the implied viewport always sits
// fully inside the canvas.
func (tl *Timeline) State(t float64) CameraState {
	seg, ok := tl.find(t)
	if !ok {
		return Identity()
	}

	switch {
	case t < seg.ZoomInEnd():
		return tl.zoomIn(seg, t)
	case t < seg.HoldEnd():
		return tl.hold(seg, t)
	default:
		return tl.zoomOut(seg, t)
	}
}

// find locates the segment containing t by binary search over the
// ordered, non-overlapping list.
func (tl *Timeline) find(t float64) (director.Segment, bool) {
	i := sort.Search(len(tl.segments), func(i int) bool {
		return tl.segments[i].End >= t
	})
	if i < len(tl.segments) && tl.segments[i].Contains(t) {
		return tl.segments[i], true
	}
	return director.Segment{}, false
}

// zoomIn ramps the scale from identity up to the segment scale while
// the camera sits on the focus point. The per-sample clamp walks the
// center out from the canvas center as the viewport shrinks, which is
// what keeps the motion continuous for edge-of-canvas foci.
func (tl *Timeline) zoomIn(seg director.Segment, t float64) CameraState {
	x := (t - seg.Start) / seg.ZoomInDuration()
	e := easing.Eval(seg.Easing, x)
	scale := 1 + (seg.Scale-1)*e
	return clamped(seg.Focus, scale)
}

// hold keeps the scale at its plateau. A static segment stays on the
// focus; a follow segment blends the focus into the live smoothed
// cursor across the first third of the hold, under the segment's own
// curve, so follow re-engages without a jump.
func (tl *Timeline) hold(seg director.Segment, t float64) CameraState {
	center := seg.Focus
	if seg.FollowCursor && tl.track != nil {
		live := tl.track.At(t)
		blend := seg.HoldDuration() / 3
		u := 1.0
		if blend > 0 && t < seg.ZoomInEnd()+blend {
			u = easing.Eval(seg.Easing, (t-seg.ZoomInEnd())/blend)
		}
		center = lerpPoint(seg.Focus, live, u)
	}
	return clamped(center, seg.Scale)
}

// zoomOut ramps the scale back to identity while the center eases from
// wherever the hold left it toward the default framing. For follow
// segments the hand-off point is the cursor position at hold end,
// frozen from the track, so the result stays a pure function of time.
func (tl *Timeline) zoomOut(seg director.Segment, t float64) CameraState {
	x := (t - seg.HoldEnd()) / seg.ZoomOutDuration()
	e := easing.Eval(seg.Easing, x)
	scale := seg.Scale + (1-seg.Scale)*e

	from := seg.Focus
	if seg.FollowCursor && tl.track != nil {
		from = tl.track.At(seg.HoldEnd())
	}
	center := lerpPoint(from, events.Center(), e)
	return clamped(center, scale)
}

func clamped(center events.Point, scale float64) CameraState {
	return CameraState{Center: events.ClampForScale(center, scale), Scale: scale}
}

func lerpPoint(a, b events.Point, t float64) events.Point {
	return events.Point{
		X: easing.Lerp(a.X, b.X, t),
		Y: easing.Lerp(a.Y, b.Y, t),
	}
}
