package db

import "database/sql"

// Calendar groups events and carries the rank the layout engine uses to
// break column tie-breaks, plus a display color the renderer passes
// through untouched.
type Calendar struct {
	ID    string
	Name  string
	Color string
	Rank  int
}

// UpsertCalendar creates or updates a calendar by id.
func UpsertCalendar(dbh *sql.DB, cal Calendar) error {
	_, err := dbh.Exec(`
		INSERT INTO calendars (id, name, color, rank) VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET name = excluded.name, color = excluded.color, rank = excluded.rank`,
		cal.ID, cal.Name, cal.Color, cal.Rank,
	)
	return err
}

// EnsureCalendar inserts a calendar if it does not exist yet, leaving
// an existing row (and its rank) untouched.
func EnsureCalendar(dbh *sql.DB, id string) error {
	_, err := dbh.Exec(`
		INSERT INTO calendars (id, name) VALUES (?, ?)
		ON CONFLICT(id) DO NOTHING`,
		id, id,
	)
	return err
}

// SetCalendarRank adjusts only the rank of an existing calendar.
func SetCalendarRank(dbh *sql.DB, id string, rank int) error {
	if err := EnsureCalendar(dbh, id); err != nil {
		return err
	}
	_, err := dbh.Exec(`UPDATE calendars SET rank = ? WHERE id = ?`, rank, id)
	return err
}

// ListCalendars returns all calendars, highest rank first.
func ListCalendars(dbh *sql.DB) ([]Calendar, error) {
	rows, err := dbh.Query(`SELECT id, name, color, rank FROM calendars ORDER BY rank DESC, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Calendar
	for rows.Next() {
		var c Calendar
		if err := rows.Scan(&c.ID, &c.Name, &c.Color, &c.Rank); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
