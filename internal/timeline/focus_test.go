package timeline_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelar/dayline/internal/timeline"
)

func TestLive_ContainsAnchorHalfOpen(t *testing.T) {
	intervals := []timeline.Interval{
		at("a", 9, 10),
		at("b", 9.5, 10.5),
		at("c", 10, 11),
	}
	anchor := time.Date(2026, 3, 2, 9, 40, 0, 0, time.UTC)

	live := timeline.Live(anchor, intervals)
	require.Len(t, live, 2)

	// At exactly 10:00, a's exclusive end drops it and c's inclusive
	// start picks it up.
	ten := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	live = timeline.Live(ten, intervals)
	ids := []string{live[0].ID, live[1].ID}
	assert.NotContains(t, ids, "a")
	assert.Contains(t, ids, "c")
}

func TestLive_SortedByPriority(t *testing.T) {
	intervals := []timeline.Interval{
		ranked("low", 9, 11, 0),
		ranked("high", 9, 11, 7),
		ranked("mid", 9, 11, 3),
	}
	live := timeline.Live(time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC), intervals)
	require.Len(t, live, 3)
	assert.Equal(t, "high", live[0].ID)
	assert.Equal(t, "mid", live[1].ID)
	assert.Equal(t, "low", live[2].ID)
}

func TestResolveFocus_DefaultsToHighestPriority(t *testing.T) {
	live := []timeline.Interval{ranked("high", 9, 11, 7), ranked("low", 9, 11, 0)}
	id, ok := timeline.ResolveFocus("", live)
	require.True(t, ok)
	assert.Equal(t, "high", id)
}

func TestResolveFocus_PinPersistsWhileLive(t *testing.T) {
	live := []timeline.Interval{ranked("high", 9, 11, 7), ranked("low", 9, 11, 0)}
	id, ok := timeline.ResolveFocus("low", live)
	require.True(t, ok)
	assert.Equal(t, "low", id)
}

func TestResolveFocus_StalePinFallsBack(t *testing.T) {
	live := []timeline.Interval{ranked("high", 9, 11, 7)}
	id, ok := timeline.ResolveFocus("gone", live)
	require.True(t, ok)
	assert.Equal(t, "high", id)
}

func TestResolveFocus_EmptyLiveClearsFocus(t *testing.T) {
	id, ok := timeline.ResolveFocus("anything", nil)
	assert.False(t, ok)
	assert.Empty(t, id)
}

func TestNextUpcoming(t *testing.T) {
	intervals := []timeline.Interval{
		at("past", 8, 9),
		at("soon", 14, 15),
		ranked("soon-vip", 14, 16, 5),
		at("later", 17, 18),
	}
	anchor := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	next, ok := timeline.NextUpcoming(anchor, intervals)
	require.True(t, ok)
	assert.Equal(t, "soon-vip", next.ID, "start ties resolve by priority")

	_, ok = timeline.NextUpcoming(time.Date(2026, 3, 2, 23, 0, 0, 0, time.UTC), intervals)
	assert.False(t, ok)
}

// Mirrors the pin lifecycle: default focus, manual pin, then both
// events end and focus clears.
func TestFocusTracker_PinLifecycle(t *testing.T) {
	intervals := []timeline.Interval{
		ranked("main", 9, 10, 4),
		ranked("side", 9.5, 10, 0),
	}
	var tracker timeline.FocusTracker

	tick := func(h, m int) timeline.FocusState {
		return tracker.Update(time.Date(2026, 3, 2, h, m, 0, 0, time.UTC), intervals)
	}

	state := tick(9, 40)
	require.Len(t, state.Live, 2)
	assert.Equal(t, "main", state.FocusedID, "rank default")

	tracker.Pin("side")
	state = tick(9, 45)
	assert.Equal(t, "side", state.FocusedID, "pin persists across ticks while live")

	state = tick(9, 50)
	assert.Equal(t, "side", state.FocusedID)

	// 10:01 — both ended; focus cleared, pin forgotten.
	state = tick(10, 1)
	assert.Empty(t, state.Live)
	assert.Empty(t, state.FocusedID)

	// A later live interval defaults again instead of resurrecting the pin.
	intervals = append(intervals, ranked("evening", 20, 21, 0))
	state = tracker.Update(time.Date(2026, 3, 2, 20, 30, 0, 0, time.UTC), intervals)
	assert.Equal(t, "evening", state.FocusedID)
}

func TestFocusTracker_CycleFocus(t *testing.T) {
	intervals := []timeline.Interval{
		ranked("a", 9, 11, 5),
		ranked("b", 9, 11, 3),
		ranked("c", 9, 11, 1),
	}
	var tracker timeline.FocusTracker
	anchor := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	state := tracker.Update(anchor, intervals)
	assert.Equal(t, "a", state.FocusedID)

	assert.Equal(t, "b", tracker.CycleFocus(state))
	state = tracker.Update(anchor, intervals)
	assert.Equal(t, "b", state.FocusedID)

	assert.Equal(t, "c", tracker.CycleFocus(state))
	state = tracker.Update(anchor, intervals)

	// Wraps back around.
	assert.Equal(t, "a", tracker.CycleFocus(state))
}
