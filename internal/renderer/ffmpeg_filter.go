package renderer

import (
	"fmt"
	"strings"

	"github.com/ivlev/autozoom/internal/timeline"
)

// keyframe is one support point of the piecewise-linear approximation
// the zoompan filter is built from. Centers are in output pixels.
type keyframe struct {
	time float64
	zoom float64
	cx   float64
	cy   float64
}

// rampSteps subdivides each eased ramp so the piecewise-linear
// expression stays visually close to the easing curve.
const rampSteps = 4

// ZoomPanFilter renders the timeline as an FFmpeg zoompan filter for
// an export pipeline that composites with FFmpeg instead of consuming
// per-frame transforms. Eased ramps are approximated by linear pieces
// between subdivided keyframes.
func ZoomPanFilter(tl *timeline.Timeline, fps, width, height int) string {
	keyframes := collectKeyframes(tl, width, height)
	if len(keyframes) == 0 {
		return ""
	}

	zoomExpr := buildExpression(keyframes, fps, func(k keyframe) float64 { return k.zoom })
	xExpr := buildExpression(keyframes, fps, func(k keyframe) float64 { return k.cx - float64(width)/(2*k.zoom) })
	yExpr := buildExpression(keyframes, fps, func(k keyframe) float64 { return k.cy - float64(height)/(2*k.zoom) })

	return fmt.Sprintf("zoompan=z='%s':x='%s':y='%s':d=1:s=%dx%d:fps=%d",
		zoomExpr, xExpr, yExpr, width, height, fps)
}

// collectKeyframes samples the timeline at every phase boundary and at
// subdivision points inside the eased ramps.
func collectKeyframes(tl *timeline.Timeline, width, height int) []keyframe {
	segments := tl.Segments()
	if len(segments) == 0 {
		return nil
	}

	var times []float64
	add := func(t float64) { times = append(times, t) }

	add(0)
	for _, seg := range segments {
		add(seg.Start)
		for i := 1; i <= rampSteps; i++ {
			add(seg.Start + seg.ZoomInDuration()*float64(i)/rampSteps)
		}
		add(seg.HoldEnd())
		for i := 1; i <= rampSteps; i++ {
			add(seg.HoldEnd() + seg.ZoomOutDuration()*float64(i)/rampSteps)
		}
	}
	add(tl.Duration())

	var keyframes []keyframe
	last := -1.0
	for _, t := range times {
		if t <= last {
			continue
		}
		last = t
		st := tl.State(t)
		keyframes = append(keyframes, keyframe{
			time: t,
			zoom: st.Scale,
			cx:   st.Center.X * float64(width),
			cy:   st.Center.Y * float64(height),
		})
	}
	return keyframes
}

// buildExpression creates a piecewise-linear FFmpeg expression over the
// keyframes for one channel (zoom, x or y).
func buildExpression(keyframes []keyframe, fps int, value func(keyframe) float64) string {
	if len(keyframes) == 1 {
		return fmt.Sprintf("%.6f", value(keyframes[0]))
	}

	var b strings.Builder
	closes := 0
	for i := 0; i < len(keyframes)-1; i++ {
		startFrame := int(keyframes[i].time * float64(fps))
		endFrame := int(keyframes[i+1].time * float64(fps))
		startVal := value(keyframes[i])
		endVal := value(keyframes[i+1])

		if endFrame <= startFrame {
			continue
		}
		fmt.Fprintf(&b, "if(lte(on,%d),%.6f+(on-%d)/%d*(%.6f-%.6f),",
			endFrame, startVal, startFrame, endFrame-startFrame, endVal, startVal)
		closes++
	}

	fmt.Fprintf(&b, "%.6f", value(keyframes[len(keyframes)-1]))
	b.WriteString(strings.Repeat(")", closes))
	return b.String()
}
