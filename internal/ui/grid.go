package ui

import (
	"time"

	"github.com/avelar/dayline/internal/timeline"
)

// Box is one event rectangle mapped into terminal cells: Row/Height
// along the visible window's rows, X/Width across the lane area. The
// mapping is pure so it can be tested without a terminal.
type Box struct {
	ID    string
	Title string
	Color string

	Row    int
	Height int
	X      int
	Width  int

	Start time.Time
	End   time.Time

	Live    bool
	Focused bool
}

// LayoutBoxes maps the placements visible in [winStart, winEnd) onto a
// rows-tall, laneWidth-wide cell grid. Each cluster divides the lane
// area by its own column count, so sparse parts of the day stay wide.
func LayoutBoxes(l *timeline.DayLayout, winStart, winEnd time.Time, rows, laneWidth int, focus timeline.FocusState) []Box {
	winLen := winEnd.Sub(winStart)
	if rows <= 0 || laneWidth <= 0 || winLen <= 0 {
		return nil
	}
	rowDur := winLen / time.Duration(rows)
	if rowDur <= 0 {
		return nil
	}

	live := map[string]bool{}
	for _, iv := range focus.Live {
		live[iv.ID] = true
	}

	var boxes []Box
	for _, p := range l.Visible(winStart, winEnd) {
		startRow := int(p.Start.Sub(winStart) / rowDur)
		endRow := int((p.RenderEnd.Sub(winStart) + rowDur - 1) / rowDur)
		if startRow < 0 {
			startRow = 0
		}
		if endRow > rows {
			endRow = rows
		}
		if endRow <= startRow {
			endRow = startRow + 1
		}
		if startRow >= rows {
			continue
		}

		x := p.Column * laneWidth / p.ColumnCount
		nextX := (p.Column + 1) * laneWidth / p.ColumnCount
		w := nextX - x
		if w < 1 {
			w = 1
		}

		boxes = append(boxes, Box{
			ID:      p.ID,
			Title:   p.Title,
			Color:   p.Color,
			Row:     startRow,
			Height:  endRow - startRow,
			X:       x,
			Width:   w,
			Start:   p.Start,
			End:     p.End,
			Live:    live[p.ID],
			Focused: p.ID == focus.FocusedID,
		})
	}
	return boxes
}

// NowRow returns the row the anchor instant falls on, or -1 when it is
// outside the visible window.
func NowRow(winStart, winEnd, anchor time.Time, rows int) int {
	winLen := winEnd.Sub(winStart)
	if rows <= 0 || winLen <= 0 {
		return -1
	}
	if anchor.Before(winStart) || !anchor.Before(winEnd) {
		return -1
	}
	row := int(anchor.Sub(winStart) * time.Duration(rows) / winLen)
	if row >= rows {
		row = rows - 1
	}
	return row
}

// RowTime returns the instant a row begins at.
func RowTime(winStart, winEnd time.Time, rows, row int) time.Time {
	winLen := winEnd.Sub(winStart)
	if rows <= 0 {
		return winStart
	}
	return winStart.Add(winLen / time.Duration(rows) * time.Duration(row))
}
