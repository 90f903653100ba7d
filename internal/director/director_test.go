package director

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivlev/autozoom/internal/config"
	"github.com/ivlev/autozoom/internal/easing"
	"github.com/ivlev/autozoom/internal/events"
)

var testCanvas = events.Canvas{Width: 1000, Height: 1000}

func testSettings() config.Settings {
	return config.Settings{
		Enabled:         true,
		ZoomLevel:       2.0,
		Duration:        1.2,
		Easing:          easing.EaseInOut,
		CursorSmoothing: 0.3,
		CursorScale:     1.5,
	}
}

func TestGenerateClusterMergeLaw(t *testing.T) {
	// Two clicks 50px apart and 0.1s apart become exactly one segment
	// with the centroid focus.
	clicks := []events.ClickEvent{
		{Kind: events.ClickPrimary, Pos: events.Point{X: 0.40, Y: 0.40}, Time: 0.0},
		{Kind: events.ClickPrimary, Pos: events.Point{X: 0.45, Y: 0.40}, Time: 0.1},
	}

	segments, err := NewDirector(testCanvas).Generate(clicks, testSettings())
	require.NoError(t, err)
	require.Len(t, segments, 1)

	seg := segments[0]
	assert.InDelta(t, 0.0, seg.Start, 1e-9)
	assert.InDelta(t, 1.2, seg.End, 1e-9)
	assert.InDelta(t, 0.425, seg.Focus.X, 1e-9)
	assert.InDelta(t, 0.40, seg.Focus.Y, 1e-9)
	assert.Equal(t, 2.0, seg.Scale)
}

func TestGenerateNoMergeLaw(t *testing.T) {
	// 200px apart at 0.1s: two clusters. The second segment would
	// overlap the first, so the first is trimmed to end at the second's
	// start, never kept overlapping.
	clicks := []events.ClickEvent{
		{Pos: events.Point{X: 0.30, Y: 0.40}, Time: 0.0},
		{Pos: events.Point{X: 0.50, Y: 0.40}, Time: 0.1},
	}

	segments, err := NewDirector(testCanvas).Generate(clicks, testSettings())
	require.NoError(t, err)
	require.Len(t, segments, 2)

	assert.InDelta(t, 0.0, segments[0].Start, 1e-9)
	assert.InDelta(t, 0.1, segments[0].End, 1e-9)
	assert.InDelta(t, 0.1, segments[1].Start, 1e-9)
	assert.InDelta(t, 1.3, segments[1].End, 1e-9)
}

func TestGenerateEmptyLog(t *testing.T) {
	segments, err := NewDirector(testCanvas).Generate(nil, testSettings())
	require.NoError(t, err)
	assert.Empty(t, segments)
}

func TestGenerateDisabledSettings(t *testing.T) {
	s := testSettings()
	s.Enabled = false
	clicks := []events.ClickEvent{{Pos: events.Point{X: 0.5, Y: 0.5}, Time: 1.0}}

	segments, err := NewDirector(testCanvas).Generate(clicks, s)
	require.NoError(t, err)
	assert.Empty(t, segments)
}

func TestGenerateRejectsUnorderedLog(t *testing.T) {
	clicks := []events.ClickEvent{{Time: 2.0}, {Time: 1.0}}
	_, err := NewDirector(testCanvas).Generate(clicks, testSettings())
	require.ErrorIs(t, err, events.ErrNonMonotonic)
}

func TestGenerateIdempotent(t *testing.T) {
	clicks := []events.ClickEvent{
		{Pos: events.Point{X: 0.2, Y: 0.3}, Time: 0.5},
		{Pos: events.Point{X: 0.8, Y: 0.7}, Time: 3.0},
		{Pos: events.Point{X: 0.81, Y: 0.71}, Time: 3.1},
	}

	d := NewDirector(testCanvas)
	first, err := d.Generate(clicks, testSettings())
	require.NoError(t, err)
	second, err := d.Generate(clicks, testSettings())
	require.NoError(t, err)

	// Identical including the content-derived IDs.
	assert.Equal(t, first, second)
}

func TestGenerateCornerClamp(t *testing.T) {
	// A corner click at zoom 4 gets its focus pulled inside so the
	// 1/4-sized viewport fits the canvas.
	s := testSettings()
	s.ZoomLevel = 4.0
	clicks := []events.ClickEvent{{Pos: events.Point{X: 0.02, Y: 0.02}, Time: 1.0}}

	segments, err := NewDirector(testCanvas).Generate(clicks, s)
	require.NoError(t, err)
	require.Len(t, segments, 1)

	seg := segments[0]
	half := 0.5 / seg.Scale
	assert.GreaterOrEqual(t, seg.Focus.X, half)
	assert.GreaterOrEqual(t, seg.Focus.Y, half)
	assert.InDelta(t, 0.125, seg.Focus.X, 1e-9)
	assert.InDelta(t, 0.125, seg.Focus.Y, 1e-9)
}

func TestGenerateSegmentMergePass(t *testing.T) {
	// Two clusters with nearly identical foci separated by a gap just
	// under the merge threshold collapse into one long segment.
	clicks := []events.ClickEvent{
		{Pos: events.Point{X: 0.50, Y: 0.50}, Time: 0.0},
		{Pos: events.Point{X: 0.51, Y: 0.50}, Time: 1.4}, // 0.2s after first segment ends
	}

	segments, err := NewDirector(testCanvas).Generate(clicks, testSettings())
	require.NoError(t, err)
	require.Len(t, segments, 1)

	seg := segments[0]
	assert.InDelta(t, 0.0, seg.Start, 1e-9)
	assert.InDelta(t, 2.6, seg.End, 1e-9)
	// Equal scales: earliest member keeps the focus.
	assert.InDelta(t, 0.50, seg.Focus.X, 1e-9)
}

func TestGenerateSimultaneousDistantClicks(t *testing.T) {
	// Two clicks at the same instant, too far apart to cluster. A
	// trimmed first segment would be empty, so the pair force-merges.
	clicks := []events.ClickEvent{
		{Pos: events.Point{X: 0.2, Y: 0.5}, Time: 1.0},
		{Pos: events.Point{X: 0.8, Y: 0.5}, Time: 1.0},
	}

	segments, err := NewDirector(testCanvas).Generate(clicks, testSettings())
	require.NoError(t, err)
	require.Len(t, segments, 1)
	assert.Greater(t, segments[0].End, segments[0].Start)
}

func TestGenerateOrderedNonOverlapping(t *testing.T) {
	clicks := []events.ClickEvent{
		{Pos: events.Point{X: 0.1, Y: 0.1}, Time: 0.0},
		{Pos: events.Point{X: 0.9, Y: 0.9}, Time: 0.5},
		{Pos: events.Point{X: 0.1, Y: 0.9}, Time: 1.0},
		{Pos: events.Point{X: 0.9, Y: 0.1}, Time: 4.0},
		{Pos: events.Point{X: 0.5, Y: 0.5}, Time: 8.0},
	}

	segments, err := NewDirector(testCanvas).Generate(clicks, testSettings())
	require.NoError(t, err)
	require.NotEmpty(t, segments)

	for i := 1; i < len(segments); i++ {
		assert.GreaterOrEqual(t, segments[i].Start, segments[i-1].End,
			"segments %d and %d overlap", i-1, i)
	}
}

func TestPhaseDurationsSumExactly(t *testing.T) {
	seg, err := NewSegment(0.37, 1.91, events.Point{X: 0.5, Y: 0.5}, 3.3, easing.Linear, false)
	require.NoError(t, err)

	sum := seg.ZoomInDuration() + seg.HoldDuration() + seg.ZoomOutDuration()
	assert.InDelta(t, seg.Duration(), sum, 1e-12)
	assert.True(t, math.Abs(sum-1.54) < 1e-9)
}

func TestNewSegmentRejectsEmptyRange(t *testing.T) {
	_, err := NewSegment(1.0, 1.0, events.Point{}, 2.0, easing.Linear, false)
	require.Error(t, err)
	_, err = NewSegment(2.0, 1.0, events.Point{}, 2.0, easing.Linear, false)
	require.Error(t, err)
}
