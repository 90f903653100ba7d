package cursor

import (
	"github.com/ivlev/autozoom/internal/config"
	"github.com/ivlev/autozoom/internal/events"
)

// Smooth filters a raw cursor trajectory with an exponentially
// weighted moving average. The output has the same length and the same
// timestamps; only positions change. Alpha is the clamped smoothing
// factor: higher alpha means more inertia (smoother path, more lag).
//
// Single forward pass, no state kept between calls.
func Smooth(samples []events.CursorSample, smoothing float64) []events.CursorSample {
	if len(samples) == 0 {
		return nil
	}

	alpha := clampAlpha(smoothing)

	out := make([]events.CursorSample, len(samples))
	out[0] = samples[0]
	for i := 1; i < len(samples); i++ {
		prev := out[i-1].Pos
		raw := samples[i].Pos
		out[i] = events.CursorSample{
			Pos: events.Point{
				X: alpha*prev.X + (1-alpha)*raw.X,
				Y: alpha*prev.Y + (1-alpha)*raw.Y,
			},
			Time: samples[i].Time,
		}
	}
	return out
}

func clampAlpha(smoothing float64) float64 {
	if smoothing < config.MinSmoothing {
		return config.MinSmoothing
	}
	if smoothing > config.MaxSmoothing {
		return config.MaxSmoothing
	}
	return smoothing
}
