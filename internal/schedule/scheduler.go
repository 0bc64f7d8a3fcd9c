package schedule

import (
	"context"
	"time"

	"github.com/avelar/dayline/internal/timeline"
)

// Run fires f for each interval as its start time arrives, in start
// order, until every interval has started or ctx is canceled. Intervals
// already underway or finished at entry are skipped. Used by the
// foreground reminder watcher.
func Run(ctx context.Context, intervals []timeline.Interval, f func(timeline.Interval)) {
	for {
		next, ok := timeline.NextUpcoming(time.Now(), intervals)
		if !ok {
			return
		}

		t := time.NewTimer(time.Until(next.Start))
		select {
		case <-ctx.Done():
			if !t.Stop() {
				select {
				case <-t.C:
				default:
				}
			}
			return
		case <-t.C:
			// Fire every interval sharing this start, not just the
			// highest-priority one.
			for _, iv := range intervals {
				if iv.Start.Equal(next.Start) {
					f(iv)
				}
			}
		}
	}
}
