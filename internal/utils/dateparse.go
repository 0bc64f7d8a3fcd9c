package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const dayLayout = "2006-01-02"

var relDayRe = regexp.MustCompile(`^([+-])(\d+)$`)

// ResolveDay turns flexible user input into a reference day string
// ("2006-01-02") in the given location. Accepted forms: empty/"today",
// "tomorrow", "yesterday", "+N"/"-N" day offsets, weekday names (the
// next such weekday), and several common date layouts.
func ResolveDay(input string, loc *time.Location) (string, error) {
	raw := strings.TrimSpace(input)
	input = strings.ToLower(raw)
	now := time.Now().In(loc)

	switch input {
	case "", "today":
		return now.Format(dayLayout), nil
	case "tomorrow":
		return now.AddDate(0, 0, 1).Format(dayLayout), nil
	case "yesterday":
		return now.AddDate(0, 0, -1).Format(dayLayout), nil
	}

	if m := relDayRe.FindStringSubmatch(input); m != nil {
		n, _ := strconv.Atoi(m[2])
		if m[1] == "-" {
			n = -n
		}
		return now.AddDate(0, 0, n).Format(dayLayout), nil
	}

	if wd, ok := weekdays[input]; ok {
		days := (int(wd) - int(now.Weekday()) + 7) % 7
		if days == 0 {
			days = 7
		}
		return now.AddDate(0, 0, days).Format(dayLayout), nil
	}

	formats := []string{
		dayLayout,
		"2006/01/02",
		"01/02/2006",
		"Jan 2, 2006",
		"2 Jan 2006",
		"January 2, 2006",
	}
	for _, format := range formats {
		if t, err := time.ParseInLocation(format, raw, loc); err == nil {
			return t.Format(dayLayout), nil
		}
	}

	return "", fmt.Errorf("unable to parse day: %s", raw)
}

var weekdays = map[string]time.Weekday{
	"sunday": time.Sunday, "sun": time.Sunday,
	"monday": time.Monday, "mon": time.Monday,
	"tuesday": time.Tuesday, "tue": time.Tuesday,
	"wednesday": time.Wednesday, "wed": time.Wednesday,
	"thursday": time.Thursday, "thu": time.Thursday,
	"friday": time.Friday, "fri": time.Friday,
	"saturday": time.Saturday, "sat": time.Saturday,
}

// ParseClock validates an "HH:MM" time-of-day value.
func ParseClock(input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", nil
	}
	t, err := time.Parse("15:04", input)
	if err != nil {
		return "", fmt.Errorf("bad time %q, want HH:MM", input)
	}
	return t.Format("15:04"), nil
}

// ParseSpan parses simple duration strings like "45m", "2h", "1h30m".
func ParseSpan(input string) (time.Duration, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(input)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("bad duration %q", input)
	}
	return d, nil
}
