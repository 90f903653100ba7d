package effects

import "github.com/ivlev/autozoom/internal/events"

// Style selects the highlight animation drawn for a click. The set is
// closed; renderers switch over it exhaustively.
type Style string

const (
	StylePulse      Style = "pulse"
	StyleDoubleRing Style = "double_ring"
)

// Highlight describes one click-highlight animation. It is keyed to
// the click that produced it and lives only for its duration window;
// there is no removal step, expiry is just falling out of the window.
type Highlight struct {
	Pos      events.Point `yaml:"pos"`
	Time     float64      `yaml:"time"` // click timestamp, window start
	Color    string       `yaml:"color"`
	Opacity  float64      `yaml:"opacity"`
	Radius   float64      `yaml:"radius"` // normalized against the canvas short side
	Duration float64      `yaml:"duration"`
	Style    Style        `yaml:"style"`
}

// Fixed per-kind animation parameters. Not configurable per call: the
// product treats highlight look as a constant, only its size reacts to
// settings (and that adjustment belongs to the frame resolver).
const (
	baseRadius  = 0.018
	baseOpacity = 0.85

	pulseDuration = 0.5
	ringDuration  = 0.8

	primaryColor   = "#4F8EF7"
	secondaryColor = "#F7A84F"
)

// ForClick maps a click event to its highlight descriptor. Pure and
// stateless: the same event always yields the same highlight.
func ForClick(ev events.ClickEvent) Highlight {
	h := Highlight{
		Pos:     ev.Pos,
		Time:    ev.Time,
		Opacity: baseOpacity,
		Radius:  baseRadius,
	}

	switch ev.Kind {
	case events.ClickDouble:
		h.Style = StyleDoubleRing
		h.Color = primaryColor
		h.Duration = ringDuration
	case events.ClickSecondary:
		h.Style = StylePulse
		h.Color = secondaryColor
		h.Duration = pulseDuration
	default: // primary, and anything a future capture layer invents
		h.Style = StylePulse
		h.Color = primaryColor
		h.Duration = pulseDuration
	}
	return h
}

// ForClicks maps a whole click log, preserving order.
func ForClicks(clicks []events.ClickEvent) []Highlight {
	if len(clicks) == 0 {
		return nil
	}
	out := make([]Highlight, len(clicks))
	for i, ev := range clicks {
		out[i] = ForClick(ev)
	}
	return out
}

// ActiveAt reports whether t falls inside the highlight's lifetime
// window [Time, Time+Duration).
func (h Highlight) ActiveAt(t float64) bool {
	return t >= h.Time && t < h.Time+h.Duration
}

// Progress returns the normalized animation progress at t, clamped to
// [0,1].
func (h Highlight) Progress(t float64) float64 {
	if h.Duration <= 0 {
		return 1
	}
	p := (t - h.Time) / h.Duration
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
