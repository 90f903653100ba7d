package events

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Recording is one frozen capture session: the canvas geometry, the
// total duration and the ordered click/cursor logs. Once loaded it is
// treated as immutable by every downstream component.
type Recording struct {
	Canvas   Canvas         `yaml:"canvas"`
	Duration float64        `yaml:"duration"`
	Clicks   []ClickEvent   `yaml:"clicks"`
	Cursor   []CursorSample `yaml:"cursor"`
}

// Source abstracts where a recording comes from, so tests and tools
// can feed the engine without touching the filesystem.
type Source interface {
	Load() (*Recording, error)
}

// FileSource reads a recording log from a YAML file written by the
// capture collaborator.
type FileSource struct {
	Path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

func (s *FileSource) Load() (*Recording, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read recording %s: %w", s.Path, err)
	}

	var rec Recording
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("parse recording %s: %w", s.Path, err)
	}

	if err := rec.Validate(); err != nil {
		return nil, fmt.Errorf("recording %s: %w", s.Path, err)
	}
	return &rec, nil
}

// Validate checks the invariants every consumer relies on: a real
// canvas, ordered logs and a duration that covers the last event.
func (r *Recording) Validate() error {
	if r.Canvas.Width <= 0 || r.Canvas.Height <= 0 {
		return fmt.Errorf("invalid canvas %dx%d", r.Canvas.Width, r.Canvas.Height)
	}
	if err := CheckClickOrder(r.Clicks); err != nil {
		return err
	}
	if err := CheckSampleOrder(r.Cursor); err != nil {
		return err
	}

	// The capture layer writes duration last; repair a missing one from
	// the logs instead of failing a whole session over it.
	last := 0.0
	if n := len(r.Clicks); n > 0 && r.Clicks[n-1].Time > last {
		last = r.Clicks[n-1].Time
	}
	if n := len(r.Cursor); n > 0 && r.Cursor[n-1].Time > last {
		last = r.Cursor[n-1].Time
	}
	if r.Duration < last {
		r.Duration = last
	}
	return nil
}
