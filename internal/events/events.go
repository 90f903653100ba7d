package events

import (
	"errors"
	"fmt"
)

// ClickKind identifies the button/gesture that produced a click.
type ClickKind string

const (
	ClickPrimary   ClickKind = "primary"
	ClickSecondary ClickKind = "secondary"
	ClickDouble    ClickKind = "double"
)

// ClickEvent is one click captured during recording. Timestamps are
// seconds since recording start; positions are normalized to the
// capture canvas. Events are produced by the capture collaborator and
// consumed read-only here.
type ClickEvent struct {
	Kind ClickKind `yaml:"kind"`
	Pos  Point     `yaml:"pos"`
	Time float64   `yaml:"time"`
}

// CursorSample is one cursor position captured during recording.
type CursorSample struct {
	Pos  Point   `yaml:"pos"`
	Time float64 `yaml:"time"`
}

// ErrNonMonotonic is returned when an event log that must be
// time-ordered runs backwards. The log is never silently reordered;
// the caller owns the fix.
var ErrNonMonotonic = errors.New("event timestamps are not in ascending order")

// CheckClickOrder verifies that click timestamps never decrease.
// Equal timestamps are tolerated (double-click reporters emit them).
func CheckClickOrder(clicks []ClickEvent) error {
	for i := 1; i < len(clicks); i++ {
		if clicks[i].Time < clicks[i-1].Time {
			return fmt.Errorf("click %d at t=%.3f before click %d at t=%.3f: %w",
				i, clicks[i].Time, i-1, clicks[i-1].Time, ErrNonMonotonic)
		}
	}
	return nil
}

// CheckSampleOrder verifies that cursor sample timestamps never decrease.
func CheckSampleOrder(samples []CursorSample) error {
	for i := 1; i < len(samples); i++ {
		if samples[i].Time < samples[i-1].Time {
			return fmt.Errorf("cursor sample %d at t=%.3f before sample %d at t=%.3f: %w",
				i, samples[i].Time, i-1, samples[i-1].Time, ErrNonMonotonic)
		}
	}
	return nil
}
