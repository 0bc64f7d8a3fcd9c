package db

import (
	"database/sql"
	"strconv"

	"github.com/avelar/dayline/internal/timeline"
)

// Event is one stored event instance. Dates and times are timezone-naive
// wall values ("2006-01-02", "15:04"); the engine resolves them in the
// configured zone at layout time.
type Event struct {
	ID         int64
	UID        string
	CalendarID string
	Title      string
	StartDate  string
	StartTime  string
	EndDate    string
	EndTime    string
	AllDay     bool
	Location   string
	Notes      string
}

// InsertEvent stores one event and returns its id.
func InsertEvent(dbh *sql.DB, ev Event) (int64, error) {
	res, err := dbh.Exec(`
		INSERT INTO events (uid, calendar_id, title, start_date, start_time, end_date, end_time, all_day, location, notes)
		VALUES (?, NULLIF(?, ''), ?, ?, ?, ?, ?, ?, ?, ?)`,
		ev.UID, ev.CalendarID, ev.Title,
		ev.StartDate, ev.StartTime, ev.EndDate, ev.EndTime,
		boolToInt(ev.AllDay), ev.Location, ev.Notes,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// UpsertEventByUID replaces any previous instance sharing the same
// (uid, start) key, keeping re-imports idempotent. Events without a UID
// fall through to a plain insert.
func UpsertEventByUID(dbh *sql.DB, ev Event) (int64, error) {
	if ev.UID == "" {
		return InsertEvent(dbh, ev)
	}
	if _, err := dbh.Exec(
		`DELETE FROM events WHERE uid = ? AND start_date = ? AND start_time = ?`,
		ev.UID, ev.StartDate, ev.StartTime,
	); err != nil {
		return 0, err
	}
	return InsertEvent(dbh, ev)
}

// DeleteEvent removes one event by id.
func DeleteEvent(dbh *sql.DB, id int64) error {
	_, err := dbh.Exec(`DELETE FROM events WHERE id = ?`, id)
	return err
}

// EventsForDay loads every stored event whose date range touches the
// given day ("2006-01-02"), joined with its calendar's rank and color,
// shaped as the engine's raw input. ISO dates compare correctly as
// strings, so the filter runs on the index.
func EventsForDay(dbh *sql.DB, day string) ([]timeline.RawEvent, error) {
	rows, err := dbh.Query(`
		SELECT e.id, e.title, e.start_date, e.start_time, e.end_date, e.end_time, e.all_day,
		       COALESCE(e.calendar_id, ''), COALESCE(c.rank, 0), COALESCE(c.color, '')
		FROM events e
		LEFT JOIN calendars c ON c.id = e.calendar_id
		WHERE e.start_date <= ?
		  AND COALESCE(NULLIF(e.end_date, ''), e.start_date) >= ?
		ORDER BY e.start_date, e.start_time, e.id`,
		day, day,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []timeline.RawEvent
	for rows.Next() {
		var (
			id     int64
			ev     timeline.RawEvent
			allDay int
		)
		if err := rows.Scan(&id, &ev.Title, &ev.StartDate, &ev.StartTime,
			&ev.EndDate, &ev.EndTime, &allDay, &ev.GroupID, &ev.Rank, &ev.Color); err != nil {
			return nil, err
		}
		ev.ID = strconv.FormatInt(id, 10)
		ev.AllDay = allDay != 0
		out = append(out, ev)
	}
	return out, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
