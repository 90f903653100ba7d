package renderer

import (
	"github.com/ivlev/autozoom/internal/events"
	"github.com/ivlev/autozoom/internal/timeline"
)

// Rect is a normalized axis-aligned rectangle on the source canvas.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// Transform is the camera state expressed as a crop-and-scale
// operation the export collaborator can turn into an affine matrix or
// an FFmpeg crop chain.
type Transform struct {
	Center events.Point
	Scale  float64
}

// NewTransform builds a transform from a sampled camera state. The
// center is clamped defensively: the timeline already guarantees
// in-bounds centers, and this is the last line before the renderer, so
// an out-of-bounds request must be impossible past this point.
func NewTransform(st timeline.CameraState) Transform {
	scale := st.Scale
	if scale < 1 {
		scale = 1
	}
	return Transform{
		Center: events.ClampForScale(st.Center, scale),
		Scale:  scale,
	}
}

// Viewport returns the normalized source rectangle the output frame
// shows. Its area is 1/Scale² and it always sits inside [0,1]².
func (t Transform) Viewport() Rect {
	size := 1.0 / t.Scale
	return Rect{
		X: t.Center.X - size/2,
		Y: t.Center.Y - size/2,
		W: size,
		H: size,
	}
}

// Affine returns the row-major 2x3 matrix mapping normalized source
// coordinates to normalized output coordinates:
//
//	[ sx  0  tx ]
//	[ 0  sy  ty ]
func (t Transform) Affine() [6]float64 {
	v := t.Viewport()
	return [6]float64{
		1 / v.W, 0, -v.X / v.W,
		0, 1 / v.H, -v.Y / v.H,
	}
}

// IsIdentity reports whether the transform leaves the frame untouched.
func (t Transform) IsIdentity() bool {
	return t.Scale == 1
}
