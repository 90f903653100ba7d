package analyzer

import (
	"fmt"

	"github.com/ivlev/autozoom/internal/events"
)

// NewDetector creates a detector based on the specified variant.
func NewDetector(variant string, canvas events.Canvas) (Detector, error) {
	switch variant {
	case "gap", "":
		return NewGapDetector(canvas), nil
	case "dwell":
		return nil, fmt.Errorf("dwell-time detector not yet implemented")
	default:
		return nil, fmt.Errorf("unknown detector variant: %s", variant)
	}
}
