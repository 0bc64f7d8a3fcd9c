package timeline_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelar/dayline/internal/timeline"
)

const testDay = "2026-03-02"

func mustInterval(t *testing.T, ivs []timeline.Interval, id string) timeline.Interval {
	t.Helper()
	for _, iv := range ivs {
		if iv.ID == id {
			return iv
		}
	}
	t.Fatalf("interval %q not found", id)
	return timeline.Interval{}
}

func TestNormalize_InvalidTimezone(t *testing.T) {
	_, err := timeline.Normalize(nil, testDay, "Mars/Olympus_Mons")
	require.Error(t, err)
	assert.ErrorIs(t, err, timeline.ErrInvalidTimezone)
}

func TestNormalize_MissingEndGetsDefaultDuration(t *testing.T) {
	ivs, err := timeline.Normalize([]timeline.RawEvent{
		{ID: "a", StartDate: testDay, StartTime: "09:00"},
	}, testDay, "UTC")
	require.NoError(t, err)
	require.Len(t, ivs, 1)
	assert.Equal(t, time.Hour, ivs[0].Duration())
}

func TestNormalize_InvertedEndRepaired(t *testing.T) {
	ivs, err := timeline.Normalize([]timeline.RawEvent{
		{ID: "a", StartDate: testDay, StartTime: "09:00", EndDate: testDay, EndTime: "08:00"},
	}, testDay, "UTC")
	require.NoError(t, err)
	require.Len(t, ivs, 1)
	assert.True(t, ivs[0].End.After(ivs[0].Start))
	assert.Equal(t, timeline.DefaultDuration, ivs[0].Duration())
}

func TestNormalize_AllDaySpansFullDay(t *testing.T) {
	ivs, err := timeline.Normalize([]timeline.RawEvent{
		{ID: "a", StartDate: testDay, StartTime: "11:30", AllDay: true},
	}, testDay, "UTC")
	require.NoError(t, err)
	require.Len(t, ivs, 1)

	dayStart, dayEnd, _, err := timeline.DayBounds(testDay, "UTC")
	require.NoError(t, err)
	assert.True(t, ivs[0].Start.Equal(dayStart), "all-day ignores time-of-day fields")
	assert.True(t, ivs[0].End.Equal(dayEnd))
}

func TestNormalize_ClipsToReferenceDay(t *testing.T) {
	ivs, err := timeline.Normalize([]timeline.RawEvent{
		{ID: "spans", StartDate: "2026-03-01", StartTime: "22:00", EndDate: testDay, EndTime: "02:00"},
		{ID: "runs-over", StartDate: testDay, StartTime: "23:30", EndDate: "2026-03-03", EndTime: "01:00"},
	}, testDay, "UTC")
	require.NoError(t, err)
	require.Len(t, ivs, 2)

	dayStart, dayEnd, _, _ := timeline.DayBounds(testDay, "UTC")
	spans := mustInterval(t, ivs, "spans")
	assert.True(t, spans.Start.Equal(dayStart))
	over := mustInterval(t, ivs, "runs-over")
	assert.True(t, over.End.Equal(dayEnd))
}

func TestNormalize_DropsEventsOutsideDay(t *testing.T) {
	ivs, err := timeline.Normalize([]timeline.RawEvent{
		{ID: "before", StartDate: "2026-03-01", StartTime: "09:00"},
		{ID: "after", StartDate: "2026-03-03", StartTime: "09:00"},
		{ID: "inside", StartDate: testDay, StartTime: "09:00"},
	}, testDay, "UTC")
	require.NoError(t, err)
	require.Len(t, ivs, 1)
	assert.Equal(t, "inside", ivs[0].ID)
}

func TestNormalize_MinVisualFloorLeavesLogicalEndAlone(t *testing.T) {
	ivs, err := timeline.Normalize([]timeline.RawEvent{
		{ID: "blip", StartDate: testDay, StartTime: "10:00", EndDate: testDay, EndTime: "10:01"},
	}, testDay, "UTC")
	require.NoError(t, err)
	require.Len(t, ivs, 1)

	iv := ivs[0]
	assert.Equal(t, time.Minute, iv.Duration(), "logical end unchanged")
	assert.Equal(t, timeline.MinVisualLength, iv.RenderEnd.Sub(iv.Start))
}

func TestNormalize_TimezoneResolution(t *testing.T) {
	ivs, err := timeline.Normalize([]timeline.RawEvent{
		{ID: "a", StartDate: testDay, StartTime: "09:00"},
	}, testDay, "Asia/Kolkata")
	require.NoError(t, err)
	require.Len(t, ivs, 1)

	loc, _ := time.LoadLocation("Asia/Kolkata")
	want := time.Date(2026, 3, 2, 9, 0, 0, 0, loc)
	assert.True(t, ivs[0].Start.Equal(want))
}

func TestIntervalOverlapsAndContains(t *testing.T) {
	base := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	a := timeline.Interval{Start: base, End: base.Add(time.Hour)}
	b := timeline.Interval{Start: base.Add(30 * time.Minute), End: base.Add(90 * time.Minute)}
	c := timeline.Interval{Start: base.Add(time.Hour), End: base.Add(2 * time.Hour)}

	assert.True(t, a.Overlaps(b))
	assert.True(t, b.Overlaps(a))
	assert.False(t, a.Overlaps(c), "half-open ranges: touching is not overlap")

	assert.True(t, a.Contains(base), "start is inclusive")
	assert.False(t, a.Contains(base.Add(time.Hour)), "end is exclusive")
}
