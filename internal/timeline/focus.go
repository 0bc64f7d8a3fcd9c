package timeline

import (
	"sort"
	"time"
)

// FocusState is the derived "what is live right now" snapshot produced
// on every tick.
type FocusState struct {
	// Live holds every interval containing the anchor instant, in
	// priority order (rank desc, then group, id, start).
	Live []Interval
	// FocusedID is the interval shown in the focus header: a still-live
	// manual pin if one exists, otherwise the highest-priority live
	// interval. Empty when nothing is live.
	FocusedID string
}

// Focused returns the focused interval, if any.
func (s FocusState) Focused() (Interval, bool) {
	for _, iv := range s.Live {
		if iv.ID == s.FocusedID {
			return iv, true
		}
	}
	return Interval{}, false
}

// Live returns all intervals whose [start, end) contains anchor,
// sorted by the shared priority ordering.
func Live(anchor time.Time, intervals []Interval) []Interval {
	var out []Interval
	for _, iv := range intervals {
		if iv.Contains(anchor) {
			out = append(out, iv)
		}
	}
	sort.Slice(out, func(i, j int) bool { return byPriority(out[i], out[j]) })
	return out
}

// ResolveFocus keeps a previous focus id while it is still live,
// otherwise falls back to the highest-priority live interval. The
// second return is false when nothing is live.
func ResolveFocus(previousID string, live []Interval) (string, bool) {
	if len(live) == 0 {
		return "", false
	}
	if previousID != "" {
		for _, iv := range live {
			if iv.ID == previousID {
				return previousID, true
			}
		}
	}
	return live[0].ID, true
}

// NextUpcoming returns the first interval starting strictly after
// anchor; used by the renderer as the fallback when nothing is live.
// Ties on start time resolve by priority.
func NextUpcoming(anchor time.Time, intervals []Interval) (Interval, bool) {
	var best Interval
	found := false
	for _, iv := range intervals {
		if !iv.Start.After(anchor) {
			continue
		}
		if !found || iv.Start.Before(best.Start) ||
			(iv.Start.Equal(best.Start) && byPriority(iv, best)) {
			best = iv
			found = true
		}
	}
	return best, found
}

// FocusTracker carries the manual pin across ticks. A pin persists only
// while its interval stays live; once it drops out, the pin is cleared
// and focus returns to the rank-ordered default.
type FocusTracker struct {
	pinned string
}

// Pin overrides the focused interval. Pinning an id that is not live at
// the next Update is simply ignored and cleared.
func (t *FocusTracker) Pin(id string) { t.pinned = id }

// Clear drops any manual pin.
func (t *FocusTracker) Clear() { t.pinned = "" }

// Update recomputes the focus snapshot for the given anchor.
func (t *FocusTracker) Update(anchor time.Time, intervals []Interval) FocusState {
	live := Live(anchor, intervals)
	id, ok := ResolveFocus(t.pinned, live)
	if !ok {
		t.pinned = ""
		return FocusState{Live: live}
	}
	if id != t.pinned {
		// Pin dropped out of the live set (or never existed).
		t.pinned = ""
	}
	return FocusState{Live: live, FocusedID: id}
}

// CycleFocus pins the next live interval after the currently focused
// one, wrapping around. Used by the view's "cycle pin" key.
func (t *FocusTracker) CycleFocus(state FocusState) string {
	if len(state.Live) == 0 {
		return ""
	}
	cur := 0
	for i, iv := range state.Live {
		if iv.ID == state.FocusedID {
			cur = i
			break
		}
	}
	next := state.Live[(cur+1)%len(state.Live)].ID
	t.pinned = next
	return next
}
