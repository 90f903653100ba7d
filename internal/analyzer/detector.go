package analyzer

import "github.com/ivlev/autozoom/internal/events"

// Cluster represents a burst of clicks close enough in time and space
// to be treated as one region of interest.
type Cluster struct {
	Start  float64      // timestamp of the first member click
	End    float64      // timestamp of the last member click
	Focus  events.Point // centroid of member positions
	Clicks []events.ClickEvent
}

// Detector is the interface for click-activity analysis strategies.
type Detector interface {
	Detect(clicks []events.ClickEvent) ([]Cluster, error)
}
