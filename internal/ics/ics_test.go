package ics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelar/dayline/internal/ics"
)

const sampleICS = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//test//test//EN
BEGIN:VEVENT
UID:single@test
SUMMARY:One-off review
LOCATION:Room 4
DTSTART:20260302T140000Z
DTEND:20260302T150000Z
END:VEVENT
BEGIN:VEVENT
UID:daily@test
SUMMARY:Morning check-in
DTSTART:20260302T090000Z
DTEND:20260302T091500Z
RRULE:FREQ=DAILY;COUNT=5
EXDATE:20260304T090000Z
END:VEVENT
BEGIN:VEVENT
UID:allday@test
SUMMARY:Conference
DTSTART;VALUE=DATE:20260303
END:VEVENT
END:VCALENDAR
`

func TestParse(t *testing.T) {
	events, skipped, err := ics.Parse([]byte(sampleICS))
	require.NoError(t, err)
	assert.Zero(t, skipped)
	require.Len(t, events, 3)

	byUID := map[string]ics.ParsedEvent{}
	for _, ev := range events {
		byUID[ev.UID] = ev
	}

	single := byUID["single@test"]
	assert.Equal(t, "One-off review", single.Summary)
	assert.Equal(t, "Room 4", single.Location)
	assert.False(t, single.AllDay)
	assert.Equal(t, time.Hour, single.End.Sub(single.Start))

	daily := byUID["daily@test"]
	assert.Equal(t, "FREQ=DAILY;COUNT=5", daily.RawRRule)
	require.Len(t, daily.ExDates, 1)

	assert.True(t, byUID["allday@test"].AllDay)
}

func TestParse_EmptyBody(t *testing.T) {
	_, _, err := ics.Parse(nil)
	assert.Error(t, err)
}

func TestExpand_RecurrenceWithExdate(t *testing.T) {
	events, _, err := ics.Parse([]byte(sampleICS))
	require.NoError(t, err)

	rangeStart := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	rangeEnd := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	instances := ics.Expand(events, rangeStart, rangeEnd, time.UTC)

	var daily []ics.Instance
	for _, in := range instances {
		if in.UID == "daily@test" {
			daily = append(daily, in)
		}
	}
	// COUNT=5 minus the excluded Mar 4 occurrence.
	require.Len(t, daily, 4)
	for _, in := range daily {
		assert.NotEqual(t, 4, in.Start.Day(), "EXDATE removed")
		assert.Equal(t, 15*time.Minute, in.End.Sub(in.Start), "base duration preserved")
	}
}

func TestExpand_RangeFiltersOneOffs(t *testing.T) {
	events, _, err := ics.Parse([]byte(sampleICS))
	require.NoError(t, err)

	// A window that misses the one-off entirely.
	rangeStart := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	rangeEnd := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)
	instances := ics.Expand(events, rangeStart, rangeEnd, time.UTC)
	for _, in := range instances {
		assert.NotEqual(t, "single@test", in.UID)
	}
}

func TestExpand_AllDayInstanceSpansDay(t *testing.T) {
	events, _, err := ics.Parse([]byte(sampleICS))
	require.NoError(t, err)

	rangeStart := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	rangeEnd := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	instances := ics.Expand(events, rangeStart, rangeEnd, time.UTC)

	for _, in := range instances {
		if in.UID != "allday@test" {
			continue
		}
		assert.True(t, in.AllDay)
		assert.Equal(t, 24*time.Hour, in.End.Sub(in.Start))
		assert.Equal(t, 0, in.Start.Hour())
		return
	}
	t.Fatal("all-day instance not found")
}
