package cursor

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivlev/autozoom/internal/events"
)

func TestSmoothConstantInputUnchanged(t *testing.T) {
	p := events.Point{X: 0.42, Y: 0.77}
	var samples []events.CursorSample
	for i := 0; i < 50; i++ {
		samples = append(samples, events.CursorSample{Pos: p, Time: float64(i) * 0.016})
	}

	out := Smooth(samples, 0.4)
	require.Len(t, out, len(samples))
	for i, s := range out {
		assert.Equal(t, p, s.Pos, "sample %d moved", i)
		assert.Equal(t, samples[i].Time, s.Time, "sample %d timestamp changed", i)
	}
}

func TestSmoothPreservesLengthAndTimestamps(t *testing.T) {
	samples := []events.CursorSample{
		{Pos: events.Point{X: 0.0, Y: 0.0}, Time: 0.0},
		{Pos: events.Point{X: 1.0, Y: 0.5}, Time: 0.1},
		{Pos: events.Point{X: 0.2, Y: 0.9}, Time: 0.2},
	}

	out := Smooth(samples, 0.3)
	require.Len(t, out, 3)
	for i := range out {
		assert.Equal(t, samples[i].Time, out[i].Time)
	}
	// First sample passes through untouched.
	assert.Equal(t, samples[0].Pos, out[0].Pos)
}

func TestSmoothAddsInertia(t *testing.T) {
	// A step input: the smoothed path must lag behind the raw jump,
	// and a higher alpha must lag more.
	step := []events.CursorSample{
		{Pos: events.Point{X: 0, Y: 0}, Time: 0.0},
		{Pos: events.Point{X: 1, Y: 0}, Time: 0.1},
	}

	gentle := Smooth(step, 0.1)
	heavy := Smooth(step, 0.5)

	assert.Less(t, gentle[1].Pos.X, 1.0)
	assert.Less(t, heavy[1].Pos.X, gentle[1].Pos.X)
	assert.InDelta(t, 0.9, gentle[1].Pos.X, 1e-9)
	assert.InDelta(t, 0.5, heavy[1].Pos.X, 1e-9)
}

func TestSmoothDeterministic(t *testing.T) {
	samples := []events.CursorSample{
		{Pos: events.Point{X: 0.1, Y: 0.2}, Time: 0.0},
		{Pos: events.Point{X: 0.6, Y: 0.1}, Time: 0.05},
		{Pos: events.Point{X: 0.3, Y: 0.8}, Time: 0.10},
	}
	assert.Equal(t, Smooth(samples, 0.25), Smooth(samples, 0.25))
}

func TestSmoothEmpty(t *testing.T) {
	assert.Nil(t, Smooth(nil, 0.3))
}

func TestTrackAt(t *testing.T) {
	track, err := NewTrack([]events.CursorSample{
		{Pos: events.Point{X: 0.0, Y: 0.0}, Time: 0.0},
		{Pos: events.Point{X: 1.0, Y: 1.0}, Time: 1.0},
	}, 0.1) // minimal inertia to keep the arithmetic readable
	require.NoError(t, err)

	// Positions reflect the smoothed samples, interpolated in between.
	end := track.At(1.0)
	mid := track.At(0.5)
	assert.InDelta(t, end.X/2, mid.X, 1e-9)
	assert.InDelta(t, end.Y/2, mid.Y, 1e-9)

	// Clamped at both ends.
	assert.Equal(t, track.At(0.0), track.At(-5.0))
	assert.Equal(t, track.At(1.0), track.At(99.0))
}

func TestTrackAtEmpty(t *testing.T) {
	track, err := NewTrack(nil, 0.3)
	require.NoError(t, err)
	assert.Equal(t, events.Center(), track.At(1.0))
}

func TestTrackDuplicateTimestampsLastWins(t *testing.T) {
	track, err := NewTrack([]events.CursorSample{
		{Pos: events.Point{X: 0.2, Y: 0.2}, Time: 1.0},
		{Pos: events.Point{X: 0.2, Y: 0.2}, Time: 2.0},
		{Pos: events.Point{X: 0.8, Y: 0.8}, Time: 2.0},
		{Pos: events.Point{X: 0.8, Y: 0.8}, Time: 3.0},
	}, 0.1)
	require.NoError(t, err)

	got := track.At(2.0)
	// The later duplicate must drive the lookup; with minimal smoothing
	// it sits close to 0.8 rather than 0.2.
	assert.Greater(t, got.X, 0.5)
}

func TestTrackRejectsUnorderedSamples(t *testing.T) {
	_, err := NewTrack([]events.CursorSample{{Time: 2.0}, {Time: 1.0}}, 0.3)
	require.ErrorIs(t, err, events.ErrNonMonotonic)
}

func TestSmoothAlphaClamped(t *testing.T) {
	step := []events.CursorSample{
		{Pos: events.Point{X: 0, Y: 0}, Time: 0.0},
		{Pos: events.Point{X: 1, Y: 0}, Time: 0.1},
	}
	// Out-of-range smoothing behaves like the nearest bound.
	assert.Equal(t, Smooth(step, -3.0), Smooth(step, 0.1))
	assert.Equal(t, Smooth(step, 42.0), Smooth(step, 0.5))
	if math.Abs(Smooth(step, 42.0)[1].Pos.X-0.5) > 1e-9 {
		t.Error("max alpha should retain half the previous position")
	}
}
