package ics

import (
	"time"

	"github.com/teambition/rrule-go"
)

// maxInstancesPerEvent caps runaway rules (e.g. a minutely RRULE with
// no UNTIL) so one bad feed cannot flood the store.
const maxInstancesPerEvent = 1000

// Instance is one concrete occurrence, converted into the display
// timezone and ready to be stored.
type Instance struct {
	UID      string
	Summary  string
	Location string
	Start    time.Time
	End      time.Time
	AllDay   bool
}

// Expand turns parsed events into concrete instances within
// [rangeStart, rangeEnd], expanding RRULEs and honoring EXDATE.
// Non-recurring events pass through with a simple range check. All
// instance times come back in loc.
func Expand(events []ParsedEvent, rangeStart, rangeEnd time.Time, loc *time.Location) []Instance {
	if loc == nil {
		loc = time.Local
	}

	var out []Instance
	for _, ev := range events {
		if ev.RawRRule == "" {
			end := eventEnd(ev, ev.Start)
			if ev.Start.Before(rangeEnd) && end.After(rangeStart) {
				out = append(out, makeInstance(ev, ev.Start, end, loc))
			}
			continue
		}
		out = append(out, expandRecurring(ev, rangeStart, rangeEnd, loc)...)
	}
	return out
}

func expandRecurring(ev ParsedEvent, rangeStart, rangeEnd time.Time, loc *time.Location) []Instance {
	r, err := rrule.StrToRRule(ev.RawRRule)
	if err != nil {
		// Unparseable rule: fall back to the base occurrence alone.
		end := eventEnd(ev, ev.Start)
		if ev.Start.Before(rangeEnd) && end.After(rangeStart) {
			return []Instance{makeInstance(ev, ev.Start, end, loc)}
		}
		return nil
	}
	r.DTStart(ev.Start)

	var set rrule.Set
	set.RRule(r)
	for _, ex := range ev.ExDates {
		set.ExDate(ex.In(ev.Start.Location()))
	}

	// Between wants the range in the event's own location.
	starts := set.Between(
		rangeStart.In(ev.Start.Location()),
		rangeEnd.In(ev.Start.Location()),
		true,
	)
	if len(starts) > maxInstancesPerEvent {
		starts = starts[:maxInstancesPerEvent]
	}

	out := make([]Instance, 0, len(starts))
	for _, s := range starts {
		out = append(out, makeInstance(ev, s, eventEnd(ev, s), loc))
	}
	return out
}

// eventEnd derives an occurrence's end from the base event: all-day
// occurrences run midnight to midnight, timed ones keep the base
// duration (one hour when the feed gave none).
func eventEnd(ev ParsedEvent, start time.Time) time.Time {
	if ev.AllDay {
		day := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
		return day.AddDate(0, 0, 1)
	}
	dur := ev.End.Sub(ev.Start)
	if dur <= 0 {
		dur = time.Hour
	}
	return start.Add(dur)
}

func makeInstance(ev ParsedEvent, start, end time.Time, loc *time.Location) Instance {
	if ev.AllDay {
		// Keep all-day instances date-stable instead of shifting them
		// across midnight when converting zones.
		day := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, loc)
		return Instance{
			UID: ev.UID, Summary: ev.Summary, Location: ev.Location,
			Start: day, End: day.AddDate(0, 0, 1), AllDay: true,
		}
	}
	return Instance{
		UID: ev.UID, Summary: ev.Summary, Location: ev.Location,
		Start: start.In(loc), End: end.In(loc),
	}
}
