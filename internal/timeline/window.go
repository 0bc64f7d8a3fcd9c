package timeline

import "time"

// Default window geometry; overridable via config.
const (
	DefaultPastSpan   = 30 * time.Minute
	DefaultFutureSpan = 90 * time.Minute
	DefaultHysteresis = 3 * time.Minute
)

// WindowScheduler owns the sliding visible-window state for one
// rendered day: the anchor instant ("now"), the scroll offset along the
// day axis, and the follow flag with hysteresis. It is created once per
// day view and mutated only by that view's update loop; every method is
// synchronous and O(1).
type WindowScheduler struct {
	dayStart time.Time
	dayEnd   time.Time

	pastSpan   time.Duration
	futureSpan time.Duration
	hysteresis time.Duration

	anchor    time.Time
	offset    time.Duration
	following bool
}

// NewWindowScheduler builds a scheduler for the given day bounds.
// Non-positive spans fall back to the defaults. The scheduler starts in
// following mode; the first Tick positions the window.
func NewWindowScheduler(dayStart, dayEnd time.Time, past, future, hysteresis time.Duration) *WindowScheduler {
	if past <= 0 {
		past = DefaultPastSpan
	}
	if future <= 0 {
		future = DefaultFutureSpan
	}
	if hysteresis <= 0 {
		hysteresis = DefaultHysteresis
	}
	return &WindowScheduler{
		dayStart:   dayStart,
		dayEnd:     dayEnd,
		pastSpan:   past,
		futureSpan: future,
		hysteresis: hysteresis,
		anchor:     dayStart,
		following:  true,
	}
}

func (w *WindowScheduler) dayLength() time.Duration { return w.dayEnd.Sub(w.dayStart) }

// windowLength shrinks to the day length when the configured spans
// exceed it, so the window never wraps past the day bounds.
func (w *WindowScheduler) windowLength() time.Duration {
	l := w.pastSpan + w.futureSpan
	if d := w.dayLength(); l > d {
		return d
	}
	return l
}

func (w *WindowScheduler) maxOffset() time.Duration {
	m := w.dayLength() - w.windowLength()
	if m < 0 {
		return 0
	}
	return m
}

func (w *WindowScheduler) clamp(off time.Duration) time.Duration {
	if off < 0 {
		return 0
	}
	if m := w.maxOffset(); off > m {
		return m
	}
	return off
}

// anchoredOffset is where the window sits when tracking the anchor:
// pastSpan before it, clamped into the day.
func (w *WindowScheduler) anchoredOffset() time.Duration {
	return w.clamp(w.anchor.Sub(w.dayStart) - w.pastSpan)
}

// Tick advances the anchor to the given wall-clock instant. While
// following, the window is re-anchored around it.
func (w *WindowScheduler) Tick(now time.Time) {
	w.anchor = now
	if w.following {
		w.offset = w.anchoredOffset()
	}
}

// ScrollTo sets the scroll offset directly (clamped) and re-derives the
// follow flag: following holds only while the offset stays within the
// hysteresis threshold of the anchored position.
func (w *WindowScheduler) ScrollTo(off time.Duration) {
	w.offset = w.clamp(off)
	delta := w.offset - w.anchoredOffset()
	if delta < 0 {
		delta = -delta
	}
	w.following = delta <= w.hysteresis
}

// ScrollBy shifts the offset relative to its current position.
func (w *WindowScheduler) ScrollBy(delta time.Duration) {
	w.ScrollTo(w.offset + delta)
}

// SnapToNow forces the window back onto the anchor and restores
// following.
func (w *WindowScheduler) SnapToNow() {
	w.offset = w.anchoredOffset()
	w.following = true
}

// VisibleWindow returns the current window bounds, clipped to the day.
func (w *WindowScheduler) VisibleWindow() (time.Time, time.Time) {
	start := w.dayStart.Add(w.offset)
	end := start.Add(w.windowLength())
	if end.After(w.dayEnd) {
		end = w.dayEnd
	}
	return start, end
}

// IsFollowing reports whether the window is tracking the anchor.
func (w *WindowScheduler) IsFollowing() bool { return w.following }

// Anchor returns the instant set by the last Tick.
func (w *WindowScheduler) Anchor() time.Time { return w.anchor }

// ScrollOffset returns the current offset along the day axis.
func (w *WindowScheduler) ScrollOffset() time.Duration { return w.offset }
