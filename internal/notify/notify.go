package notify

import (
	"fmt"
	"time"

	"github.com/gen2brain/beeep"
)

func Info(title, message string) error {
	return beeep.Notify(title, message, "")
}

func Alert(message string) error {
	return beeep.Alert("Dayline", message, "")
}

// FormatEventStart builds the notification shown when an event becomes
// live.
func FormatEventStart(title string, start, end time.Time) (string, string) {
	msg := fmt.Sprintf("%s – %s", start.Format("15:04"), end.Format("15:04"))
	return "Now: " + title, msg
}

// FormatEventUpcoming builds the notification for an event about to
// start.
func FormatEventUpcoming(title string, start time.Time) (string, string) {
	msg := fmt.Sprintf("Starts at %s", start.Format("15:04"))
	return "Up next: " + title, msg
}
