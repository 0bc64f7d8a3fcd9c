package ui

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/avelar/dayline/internal/config"
	"github.com/avelar/dayline/internal/db"
	"github.com/avelar/dayline/internal/notify"
	"github.com/avelar/dayline/internal/timeline"
	"github.com/avelar/dayline/internal/utils"
)

// chrome rows around the timeline body: top bar, focus header, status bar.
const chromeRows = 3

type Model struct {
	cfg config.Config
	dbh *sql.DB
	loc *time.Location

	// day is the rendered reference day ("2006-01-02"). The scheduler
	// and focus tracker below are owned by this day view and rebuilt
	// whenever the day changes.
	day     string
	layout  *timeline.DayLayout
	sched   *timeline.WindowScheduler
	tracker timeline.FocusTracker
	focus   timeline.FocusState

	width, height int
	err           error

	// quick-add overlay
	adding   bool
	input    textinput.Model
	inputErr string

	// live ids already announced, so each event notifies once.
	notified map[string]bool
	ticked   bool
}

type tickMsg struct{ now time.Time }

type eventsLoadedMsg struct {
	raw []timeline.RawEvent
	err error
}

func tick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg { return tickMsg{now: time.Now()} })
}

func (m Model) loadEventsCmd() tea.Cmd {
	dbh, day := m.dbh, m.day
	return func() tea.Msg {
		raw, err := db.EventsForDay(dbh, day)
		return eventsLoadedMsg{raw: raw, err: err}
	}
}

// NewModel builds the day view for the given reference day.
func NewModel(dbh *sql.DB, cfg config.Config, day string) (Model, error) {
	loc := cfg.Location()

	dayStart, dayEnd, _, err := timeline.DayBounds(day, cfg.Timezone)
	if err != nil {
		return Model{}, err
	}

	in := textinput.New()
	in.Placeholder = "14:00 45m Coffee with Ana   (Enter to add, Esc to cancel)"
	in.CharLimit = 120
	in.Width = 60

	return Model{
		cfg:      cfg,
		dbh:      dbh,
		loc:      loc,
		day:      day,
		sched:    timeline.NewWindowScheduler(dayStart, dayEnd, cfg.PastSpan(), cfg.FutureSpan(), cfg.Hysteresis()),
		input:    in,
		notified: map[string]bool{},
	}, nil
}

// Run opens the TUI on the given day.
func Run(dbh *sql.DB, cfg config.Config, day string) error {
	m, err := NewModel(dbh, cfg, day)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		func() tea.Msg { return tickMsg{now: time.Now()} },
		m.loadEventsCmd(),
	)
}

func (m Model) bodyRows() int {
	rows := m.height - chromeRows
	if rows < 4 {
		rows = 4
	}
	return rows
}

// rowDuration is the time span one terminal row covers.
func (m Model) rowDuration() time.Duration {
	winStart, winEnd := m.sched.VisibleWindow()
	l := winEnd.Sub(winStart)
	if l <= 0 {
		return time.Minute
	}
	return l / time.Duration(m.bodyRows())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		m.sched.Tick(msg.now.In(m.loc))
		m.refreshFocus()
		cmd := tick(m.cfg.TickInterval())
		if m.cfg.Notify.Enabled {
			m.announceNewLive()
		}
		m.ticked = true
		return m, cmd

	case eventsLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		layout, err := timeline.BuildDay(msg.raw, m.day, m.cfg.Timezone)
		if err != nil {
			m.err = err
			return m, nil
		}
		m.err = nil
		m.layout = layout
		m.refreshFocus()
		return m, nil

	case tea.MouseMsg:
		return m.updateMouse(msg)

	case tea.KeyMsg:
		if m.adding {
			return m.updateQuickAdd(msg)
		}
		return m.updateNormal(msg.String())
	}
	return m, nil
}

func (m *Model) refreshFocus() {
	if m.layout == nil {
		m.focus = timeline.FocusState{}
		return
	}
	m.focus = m.tracker.Update(m.sched.Anchor(), m.layout.Intervals)
}

// announceNewLive sends one desktop notification per interval as it
// becomes live. The first tick is skipped so opening the app mid-event
// stays quiet.
func (m *Model) announceNewLive() {
	for _, iv := range m.focus.Live {
		if m.notified[iv.ID] {
			continue
		}
		m.notified[iv.ID] = true
		if m.ticked {
			title, body := notify.FormatEventStart(iv.Title, iv.Start, iv.End)
			_ = notify.Info(title, body)
		}
	}
}

func (m Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress {
		return m, nil
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.sched.ScrollBy(-m.rowDuration())
	case tea.MouseButtonWheelDown:
		m.sched.ScrollBy(m.rowDuration())
	}
	return m, nil
}

func (m Model) updateNormal(k string) (tea.Model, tea.Cmd) {
	switch k {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "j", "down":
		m.sched.ScrollBy(m.rowDuration())
	case "k", "up":
		m.sched.ScrollBy(-m.rowDuration())
	case "J", "pgdown":
		m.sched.ScrollBy(m.rowDuration() * time.Duration(m.bodyRows()/2))
	case "K", "pgup":
		m.sched.ScrollBy(-m.rowDuration() * time.Duration(m.bodyRows()/2))
	case "g", "home":
		m.sched.ScrollTo(0)
	case "G", "end":
		m.sched.ScrollTo(24 * time.Hour)

	case "n":
		m.sched.SnapToNow()
		m.refreshFocus()

	case "tab":
		if len(m.focus.Live) > 0 {
			m.tracker.CycleFocus(m.focus)
			m.refreshFocus()
		}

	case "h", "left":
		return m.shiftDay(-1)
	case "l", "right":
		return m.shiftDay(1)
	case "t":
		today := time.Now().In(m.loc).Format("2006-01-02")
		return m.setDay(today)

	case "a":
		m.adding = true
		m.inputErr = ""
		m.input.SetValue("")
		return m, m.input.Focus()

	case "r":
		return m, m.loadEventsCmd()
	}
	return m, nil
}

func (m Model) shiftDay(delta int) (tea.Model, tea.Cmd) {
	d, err := time.ParseInLocation("2006-01-02", m.day, m.loc)
	if err != nil {
		m.err = err
		return m, nil
	}
	return m.setDay(d.AddDate(0, 0, delta).Format("2006-01-02"))
}

// setDay rebuilds the per-day state: scheduler, focus tracker, and
// notification memory all belong to exactly one rendered day.
func (m Model) setDay(day string) (tea.Model, tea.Cmd) {
	dayStart, dayEnd, _, err := timeline.DayBounds(day, m.cfg.Timezone)
	if err != nil {
		m.err = err
		return m, nil
	}
	m.day = day
	m.layout = nil
	m.sched = timeline.NewWindowScheduler(dayStart, dayEnd, m.cfg.PastSpan(), m.cfg.FutureSpan(), m.cfg.Hysteresis())
	m.sched.Tick(time.Now().In(m.loc))
	m.tracker = timeline.FocusTracker{}
	m.focus = timeline.FocusState{}
	m.notified = map[string]bool{}
	m.ticked = false
	return m, m.loadEventsCmd()
}

func (m Model) updateQuickAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.adding = false
		return m, nil
	case "enter":
		if err := m.saveQuickAdd(m.input.Value()); err != nil {
			m.inputErr = err.Error()
			return m, nil
		}
		m.adding = false
		return m, m.loadEventsCmd()
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// saveQuickAdd parses "HH:MM [duration] title..." and stores the event
// on the rendered day.
func (m Model) saveQuickAdd(raw string) error {
	fields := strings.Fields(raw)
	if len(fields) < 2 {
		return fmt.Errorf("want: HH:MM [duration] title")
	}

	clock, err := utils.ParseClock(fields[0])
	if err != nil || clock == "" {
		return fmt.Errorf("bad start time %q", fields[0])
	}
	rest := fields[1:]

	span := time.Hour
	if d, err := utils.ParseSpan(rest[0]); err == nil && d > 0 {
		span = d
		rest = rest[1:]
	}
	if len(rest) == 0 {
		return fmt.Errorf("missing title")
	}

	start, err := time.ParseInLocation("2006-01-02 15:04", m.day+" "+clock, m.loc)
	if err != nil {
		return err
	}
	end := start.Add(span)

	_, err = db.InsertEvent(m.dbh, db.Event{
		Title:     strings.Join(rest, " "),
		StartDate: start.Format("2006-01-02"),
		StartTime: start.Format("15:04"),
		EndDate:   end.Format("2006-01-02"),
		EndTime:   end.Format("15:04"),
	})
	return err
}
