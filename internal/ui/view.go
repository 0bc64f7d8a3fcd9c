package ui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/avelar/dayline/internal/timeline"
)

const gutterWidth = 8 // "  14:30 " / "  now ▶ "

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "loading…"
	}

	var b strings.Builder
	b.WriteString(m.renderTopBar())
	b.WriteByte('\n')
	b.WriteString(m.renderFocusHeader())
	b.WriteByte('\n')
	b.WriteString(m.renderBody())
	b.WriteString(m.renderStatusBar())
	return b.String()
}

func (m Model) renderTopBar() string {
	theme := DefaultTheme

	d, err := time.ParseInLocation("2006-01-02", m.day, m.loc)
	label := m.day
	if err == nil {
		label = d.Format("Monday, January 2 2006")
	}
	left := theme.Title.Render(" Dayline ") + theme.Hint.Render(label)

	clock := ""
	if !m.sched.Anchor().IsZero() {
		clock = theme.Gutter.Render(m.sched.Anchor().Format("15:04:05") + " ")
	}
	return padBetween(left, clock, m.width)
}

// renderFocusHeader shows the focused live event, the next upcoming one
// when nothing is live, or the quick-add input while adding.
func (m Model) renderFocusHeader() string {
	theme := DefaultTheme

	if m.adding {
		line := " add: " + m.input.View()
		if m.inputErr != "" {
			line += "  " + theme.Error.Render(m.inputErr)
		}
		return line
	}

	if iv, ok := m.focus.Focused(); ok {
		line := theme.NowMarker.Render(" ● ") +
			theme.Focused.Render(" "+iv.Title+" ") +
			theme.Hint.Render(fmt.Sprintf("  %s – %s", iv.Start.Format("15:04"), iv.End.Format("15:04")))
		if extra := len(m.focus.Live) - 1; extra > 0 {
			line += theme.Hint.Render(fmt.Sprintf("  (+%d live, tab to cycle)", extra))
		}
		return line
	}

	if m.layout != nil {
		if next, ok := timeline.NextUpcoming(m.sched.Anchor(), m.layout.Intervals); ok {
			return theme.Hint.Render(
				fmt.Sprintf(" next: %s at %s", next.Title, next.Start.Format("15:04")))
		}
	}
	return theme.Hint.Render(" nothing scheduled")
}

type segment struct {
	x     int
	text  string // plain, pre-padded to the segment width
	color string
	live  bool
	focus bool
}

func (m Model) renderBody() string {
	theme := DefaultTheme
	rows := m.bodyRows()
	laneWidth := m.width - gutterWidth
	if laneWidth < 8 {
		laneWidth = 8
	}

	winStart, winEnd := m.sched.VisibleWindow()
	nowRow := NowRow(winStart, winEnd, m.sched.Anchor(), rows)

	var boxes []Box
	if m.layout != nil {
		boxes = LayoutBoxes(m.layout, winStart, winEnd, rows, laneWidth, m.focus)
	}

	segsByRow := make([][]segment, rows)
	for _, box := range boxes {
		for r := box.Row; r < box.Row+box.Height && r < rows; r++ {
			text := "▎"
			if r == box.Row {
				text = "▎" + box.Title
			}
			segsByRow[r] = append(segsByRow[r], segment{
				x:     box.X,
				text:  padOrTrim(text, box.Width),
				color: box.Color,
				live:  box.Live,
				focus: box.Focused,
			})
		}
	}

	var b strings.Builder
	prevLabel := ""
	for r := 0; r < rows; r++ {
		rowStart := RowTime(winStart, winEnd, rows, r)

		// Gutter: half-hour labels, with the now marker taking priority.
		gutter := strings.Repeat(" ", gutterWidth)
		label := rowStart.Round(30 * time.Minute).Format("15:04")
		if r == nowRow {
			gutter = theme.NowMarker.Render(padLeft("now ▶ ", gutterWidth))
			prevLabel = ""
		} else if label != prevLabel && withinRow(rowStart, m.rowDuration(), label, m.loc) {
			gutter = theme.Gutter.Render(padLeft(label+" ", gutterWidth))
			prevLabel = label
		}

		b.WriteString(gutter)
		b.WriteString(m.renderLane(segsByRow[r], laneWidth, r == nowRow))
		b.WriteByte('\n')
	}
	return b.String()
}

// withinRow reports whether the rounded label's instant actually falls
// inside this row's span, so labels land on the right row.
func withinRow(rowStart time.Time, rowDur time.Duration, label string, loc *time.Location) bool {
	t, err := time.ParseInLocation("2006-01-02 15:04",
		rowStart.In(loc).Format("2006-01-02")+" "+label, loc)
	if err != nil {
		return false
	}
	return !t.Before(rowStart) && t.Before(rowStart.Add(rowDur))
}

func (m Model) renderLane(segs []segment, laneWidth int, isNowRow bool) string {
	theme := DefaultTheme

	fill := " "
	fillStyle := theme.Status
	if isNowRow {
		fill = "╌"
		fillStyle = theme.NowLine
	}

	sort.Slice(segs, func(i, j int) bool { return segs[i].x < segs[j].x })

	var b strings.Builder
	cur := 0
	for _, s := range segs {
		if s.x < cur {
			continue // coarse rows can collide across clusters; first wins
		}
		if s.x > cur {
			b.WriteString(fillStyle.Render(strings.Repeat(fill, s.x-cur)))
			cur = s.x
		}
		style := theme.eventStyle(s.color, s.live)
		if s.focus {
			style = theme.Focused
		}
		b.WriteString(style.Render(s.text))
		cur += len([]rune(s.text))
	}
	if cur < laneWidth {
		b.WriteString(fillStyle.Render(strings.Repeat(fill, laneWidth-cur)))
	}
	return b.String()
}

func (m Model) renderStatusBar() string {
	theme := DefaultTheme

	follow := theme.Paused.Render(" PAUSED (n to follow) ")
	if m.sched.IsFollowing() {
		follow = theme.Following.Render(" FOLLOWING ")
	}

	count := 0
	if m.layout != nil {
		count = len(m.layout.Intervals)
	}
	left := follow + theme.Status.Render(fmt.Sprintf(" %d events ", count))
	if m.err != nil {
		left += theme.Error.Render(" " + m.err.Error() + " ")
	}

	hints := theme.Hint.Render("j/k scroll · n now · tab pin · a add · h/l day · q quit ")
	return padBetween(left, hints, m.width)
}

// ---------- string helpers ----------

func padOrTrim(s string, w int) string {
	r := []rune(s)
	if len(r) > w {
		return string(r[:w])
	}
	return s + strings.Repeat(" ", w-len(r))
}

func padLeft(s string, w int) string {
	if len(s) >= w {
		return s
	}
	return strings.Repeat(" ", w-len(s)) + s
}

// padBetween lays left and right at the edges of a w-wide line.
func padBetween(left, right string, w int) string {
	gap := w - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}
