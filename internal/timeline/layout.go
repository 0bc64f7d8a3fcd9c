package timeline

import (
	"sort"
	"time"
)

// DayLayout is the full layout model for one reference day: normalized
// intervals, their overlap clusters, and per-interval placements. It is
// recomputed from scratch on every data change; nothing in it is a
// persistent identity.
type DayLayout struct {
	DayStart time.Time
	DayEnd   time.Time
	Location *time.Location

	// Intervals is the normalized input, sorted by start.
	Intervals []Interval
	Clusters  []Cluster
	// Placements is sorted by start (ties by column) for rendering.
	Placements []Placement
}

// BuildDay runs the whole pipeline: normalize raw events against the
// reference day and timezone, cluster them, and assign columns.
func BuildDay(events []RawEvent, day, tz string) (*DayLayout, error) {
	intervals, err := Normalize(events, day, tz)
	if err != nil {
		return nil, err
	}
	dayStart, dayEnd, loc, err := DayBounds(day, tz)
	if err != nil {
		return nil, err
	}

	clusters := BuildClusters(intervals)

	var placements []Placement
	for _, c := range clusters {
		placements = append(placements, AssignColumns(c)...)
	}
	sort.Slice(placements, func(i, j int) bool {
		a, b := placements[i], placements[j]
		if !a.Start.Equal(b.Start) {
			return a.Start.Before(b.Start)
		}
		if a.Column != b.Column {
			return a.Column < b.Column
		}
		return a.ID < b.ID
	})

	sorted := make([]Interval, len(intervals))
	copy(sorted, intervals)
	sort.Slice(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if !a.Start.Equal(b.Start) {
			return a.Start.Before(b.Start)
		}
		return a.ID < b.ID
	})

	return &DayLayout{
		DayStart:   dayStart,
		DayEnd:     dayEnd,
		Location:   loc,
		Intervals:  sorted,
		Clusters:   clusters,
		Placements: placements,
	}, nil
}

// DayLength is the axis length; 23h or 25h on DST transition days.
func (l *DayLayout) DayLength() time.Duration { return l.DayEnd.Sub(l.DayStart) }

// Offset returns an interval's distance from the start of day along
// the time axis.
func (l *DayLayout) Offset(iv Interval) time.Duration { return iv.Start.Sub(l.DayStart) }

// RenderLength returns the drawable length, with the minimum visual
// floor already applied.
func (l *DayLayout) RenderLength(iv Interval) time.Duration { return iv.RenderEnd.Sub(iv.Start) }

// OffsetFrac and LengthFrac express an interval's position as fractions
// of the day axis, so a renderer can scale to any pixel height.
func (l *DayLayout) OffsetFrac(iv Interval) float64 {
	return float64(l.Offset(iv)) / float64(l.DayLength())
}

func (l *DayLayout) LengthFrac(iv Interval) float64 {
	return float64(l.RenderLength(iv)) / float64(l.DayLength())
}

// Visible returns the placements whose rendered range intersects the
// given window.
func (l *DayLayout) Visible(winStart, winEnd time.Time) []Placement {
	var out []Placement
	for _, p := range l.Placements {
		if p.Start.Before(winEnd) && p.RenderEnd.After(winStart) {
			out = append(out, p)
		}
	}
	return out
}

// MaxColumns returns the widest lane count across all clusters.
func (l *DayLayout) MaxColumns() int {
	max := 0
	for _, p := range l.Placements {
		if p.ColumnCount > max {
			max = p.ColumnCount
		}
	}
	return max
}
