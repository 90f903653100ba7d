package analyzer

import (
	"fmt"

	"github.com/ivlev/autozoom/internal/events"
)

// GapDetector groups consecutive clicks into clusters by time gap and
// planar distance. Positions arrive normalized, so the pixel radius is
// evaluated against the actual capture resolution: the normalized
// delta is scaled back through the canvas before comparing. That keeps
// one canonical conversion basis for the threshold regardless of
// aspect ratio.
type GapDetector struct {
	MaxGap      float64 // seconds between consecutive member clicks
	MaxRadiusPx float64 // pixel distance between consecutive member clicks

	canvas events.Canvas
}

// NewGapDetector creates a detector with the capture defaults:
// 0.3s gap, 100px radius.
func NewGapDetector(canvas events.Canvas) *GapDetector {
	return &GapDetector{
		MaxGap:      0.3,
		MaxRadiusPx: 100,
		canvas:      canvas,
	}
}

// Detect scans the ordered click log once and emits clusters in input
// order. A click joins the current cluster when it happens within
// MaxGap of the previous member and within MaxRadiusPx of it.
func (d *GapDetector) Detect(clicks []events.ClickEvent) ([]Cluster, error) {
	if err := events.CheckClickOrder(clicks); err != nil {
		return nil, fmt.Errorf("analyze clicks: %w", err)
	}
	if len(clicks) == 0 {
		return nil, nil
	}

	var clusters []Cluster
	current := newCluster(clicks[0])

	for _, ev := range clicks[1:] {
		prev := current.Clicks[len(current.Clicks)-1]
		if ev.Time-prev.Time < d.MaxGap && ev.Pos.PixelDistanceTo(prev.Pos, d.canvas) < d.MaxRadiusPx {
			current.add(ev)
			continue
		}
		clusters = append(clusters, current.finish())
		current = newCluster(ev)
	}
	clusters = append(clusters, current.finish())

	return clusters, nil
}

func newCluster(ev events.ClickEvent) Cluster {
	return Cluster{
		Start:  ev.Time,
		End:    ev.Time,
		Clicks: []events.ClickEvent{ev},
	}
}

func (c *Cluster) add(ev events.ClickEvent) {
	c.Clicks = append(c.Clicks, ev)
	c.End = ev.Time
}

// finish computes the centroid focus over the member positions.
func (c Cluster) finish() Cluster {
	var sx, sy float64
	for _, ev := range c.Clicks {
		sx += ev.Pos.X
		sy += ev.Pos.Y
	}
	n := float64(len(c.Clicks))
	c.Focus = events.Point{X: sx / n, Y: sy / n}
	return c
}
