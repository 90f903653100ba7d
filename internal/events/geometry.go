package events

import "math"

// Point is a position normalized to the capture canvas: (0,0) is the
// top-left corner, (1,1) the bottom-right.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Canvas is the capture resolution the normalized coordinates refer to.
type Canvas struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Center returns the normalized canvas center.
func Center() Point {
	return Point{X: 0.5, Y: 0.5}
}

// DistanceTo returns the Euclidean distance between two normalized points.
func (p Point) DistanceTo(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// PixelDistanceTo returns the distance between two normalized points
// measured in pixels of the given canvas.
func (p Point) PixelDistanceTo(q Point, c Canvas) float64 {
	dx := (p.X - q.X) * float64(c.Width)
	dy := (p.Y - q.Y) * float64(c.Height)
	return math.Sqrt(dx*dx + dy*dy)
}

// Clamp01 clamps both coordinates into [0,1].
func (p Point) Clamp01() Point {
	return Point{X: clamp(p.X, 0, 1), Y: clamp(p.Y, 0, 1)}
}

// ClampForScale moves a camera center so that a viewport of size
// 1/scale centered on it stays fully inside the canvas. The scale is
// never adjusted, only the center. At scale <= 1 the viewport covers
// the whole canvas and the only valid center is the canvas center.
func ClampForScale(center Point, scale float64) Point {
	if scale <= 1 {
		return Center()
	}
	half := 0.5 / scale
	return Point{
		X: clamp(center.X, half, 1-half),
		Y: clamp(center.Y, half, 1-half),
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
