// Package timeline lays out a day's events as a continuous timeline:
// raw event records are normalized into half-open intervals, grouped
// into overlap clusters, and assigned side-by-side columns so that no
// two overlapping events share a lane. It also owns the sliding
// visible-window state that follows "now" and the live-focus selection.
//
// The package is pure and single-threaded: it performs no I/O, and the
// only mutable pieces (WindowScheduler, FocusTracker) are owned by
// exactly one view at a time.
package timeline

import (
	"errors"
	"fmt"
	"time"
)

const (
	// DefaultDuration is assumed when an event has no usable end.
	DefaultDuration = time.Hour

	// MinVisualLength is the floor applied to RenderEnd so very short
	// events still get a drawable height. Overlap and clustering always
	// use the logical End, never RenderEnd.
	MinVisualLength = 4 * time.Minute

	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// ErrInvalidTimezone is returned when the caller-supplied IANA zone
// name cannot be loaded. It is the engine's only input error; malformed
// event timing is repaired, not rejected.
var ErrInvalidTimezone = errors.New("invalid timezone")

// RawEvent is one already-expanded event instance as handed over by the
// store or an import source. Dates and times are timezone-naive wall
// values; Normalize resolves them in the reference timezone.
type RawEvent struct {
	ID        string
	Title     string
	StartDate string // "2006-01-02"
	StartTime string // "15:04", empty means midnight
	EndDate   string // optional
	EndTime   string // optional
	AllDay    bool
	Rank      int    // owning calendar priority, higher wins tie-breaks
	GroupID   string // owning calendar id, secondary tie-break
	Color     string // pass-through metadata for the renderer
}

// Interval is a normalized [Start, End) range clipped to one reference
// day. Intervals are immutable once produced by Normalize.
type Interval struct {
	ID      string
	Title   string
	GroupID string
	Color   string
	Rank    int
	AllDay  bool

	Start time.Time
	// End is the logical end used for overlap and clustering.
	End time.Time
	// RenderEnd is End with the minimum visual floor applied; it only
	// affects drawn height, never layout relationships.
	RenderEnd time.Time
}

// Overlaps reports whether the two half-open ranges intersect.
func (iv Interval) Overlaps(o Interval) bool {
	return iv.Start.Before(o.End) && o.Start.Before(iv.End)
}

// Contains reports whether t falls inside [Start, End).
func (iv Interval) Contains(t time.Time) bool {
	return !t.Before(iv.Start) && t.Before(iv.End)
}

// Duration returns the logical length of the interval.
func (iv Interval) Duration() time.Duration { return iv.End.Sub(iv.Start) }

// DayBounds resolves the reference day "2006-01-02" in the given zone
// and returns its [midnight, next midnight) range. An empty tz selects
// the process-local zone, matching config behavior.
func DayBounds(day, tz string) (time.Time, time.Time, *time.Location, error) {
	loc := time.Local
	if tz != "" {
		l, err := time.LoadLocation(tz)
		if err != nil {
			return time.Time{}, time.Time{}, nil, fmt.Errorf("%w: %q", ErrInvalidTimezone, tz)
		}
		loc = l
	}
	start, err := time.ParseInLocation(dateLayout, day, loc)
	if err != nil {
		return time.Time{}, time.Time{}, nil, fmt.Errorf("bad reference day %q: %w", day, err)
	}
	// AddDate keeps the day length honest across DST transitions.
	return start, start.AddDate(0, 0, 1), loc, nil
}

// Normalize converts raw events into well-formed intervals clipped to
// the reference day. Events that do not intersect the day are dropped;
// missing or inverted ends are repaired with DefaultDuration; all-day
// events span the full day regardless of any time-of-day fields. The
// input is never mutated.
func Normalize(events []RawEvent, day, tz string) ([]Interval, error) {
	dayStart, dayEnd, loc, err := DayBounds(day, tz)
	if err != nil {
		return nil, err
	}

	out := make([]Interval, 0, len(events))
	for _, ev := range events {
		iv, ok := normalizeOne(ev, dayStart, dayEnd, loc)
		if ok {
			out = append(out, iv)
		}
	}
	return out, nil
}

func normalizeOne(ev RawEvent, dayStart, dayEnd time.Time, loc *time.Location) (Interval, bool) {
	var start, end time.Time

	if ev.AllDay {
		sd := parseDate(ev.StartDate, dayStart, loc)
		ed := sd
		if ev.EndDate != "" {
			ed = parseDate(ev.EndDate, sd, loc)
		}
		if ed.Before(sd) {
			ed = sd
		}
		start = sd
		end = ed.AddDate(0, 0, 1)
	} else {
		start = parseDateTime(ev.StartDate, ev.StartTime, dayStart, loc)
		end = time.Time{}
		if ev.EndDate != "" || ev.EndTime != "" {
			endDate := ev.EndDate
			if endDate == "" {
				endDate = ev.StartDate
			}
			end = parseDateTime(endDate, ev.EndTime, start, loc)
		}
		if end.IsZero() || !end.After(start) {
			end = start.Add(DefaultDuration)
		}
	}

	// Drop events entirely outside the reference day. This is routine
	// filtering, not an error.
	if !start.Before(dayEnd) || !end.After(dayStart) {
		return Interval{}, false
	}
	if start.Before(dayStart) {
		start = dayStart
	}
	if end.After(dayEnd) {
		end = dayEnd
	}

	renderEnd := end
	if end.Sub(start) < MinVisualLength {
		renderEnd = start.Add(MinVisualLength)
		if renderEnd.After(dayEnd) {
			renderEnd = dayEnd
		}
	}

	return Interval{
		ID:        ev.ID,
		Title:     ev.Title,
		GroupID:   ev.GroupID,
		Color:     ev.Color,
		Rank:      ev.Rank,
		AllDay:    ev.AllDay,
		Start:     start,
		End:       end,
		RenderEnd: renderEnd,
	}, true
}

func parseDate(s string, fallback time.Time, loc *time.Location) time.Time {
	if s == "" {
		return fallback
	}
	t, err := time.ParseInLocation(dateLayout, s, loc)
	if err != nil {
		return fallback
	}
	return t
}

func parseDateTime(date, clock string, fallback time.Time, loc *time.Location) time.Time {
	if date == "" {
		return fallback
	}
	if clock == "" {
		return parseDate(date, fallback, loc)
	}
	t, err := time.ParseInLocation(dateLayout+" "+timeLayout, date+" "+clock, loc)
	if err != nil {
		return parseDate(date, fallback, loc)
	}
	return t
}

// byPriority is the single tie-break ordering used for both column
// assignment and live-focus selection: rank descending, then group id,
// event id, and start time ascending. IDs are unique within an input
// set, so the ordering is total and deterministic.
func byPriority(a, b Interval) bool {
	if a.Rank != b.Rank {
		return a.Rank > b.Rank
	}
	if a.GroupID != b.GroupID {
		return a.GroupID < b.GroupID
	}
	if a.ID != b.ID {
		return a.ID < b.ID
	}
	return a.Start.Before(b.Start)
}
