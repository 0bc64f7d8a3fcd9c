package timeline

import (
	"sort"
	"time"
)

// Cluster is a maximal run of transitively overlapping intervals,
// ordered by start time (ties by end, then id). Intervals in different
// clusters never overlap, so each cluster lays out independently.
type Cluster []Interval

// BuildClusters partitions intervals into overlap clusters with a
// single sweep: sort by start, then extend the current cluster while
// the next interval starts before the running max-end watermark.
// O(n log n) total, dominated by the sort.
func BuildClusters(intervals []Interval) []Cluster {
	if len(intervals) == 0 {
		return nil
	}

	sorted := make([]Interval, len(intervals))
	copy(sorted, intervals)
	sort.Slice(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if !a.Start.Equal(b.Start) {
			return a.Start.Before(b.Start)
		}
		if !a.End.Equal(b.End) {
			return a.End.Before(b.End)
		}
		return a.ID < b.ID
	})

	var clusters []Cluster
	current := Cluster{sorted[0]}
	watermark := sorted[0].End

	for _, iv := range sorted[1:] {
		if iv.Start.Before(watermark) {
			current = append(current, iv)
		} else {
			clusters = append(clusters, current)
			current = Cluster{iv}
			watermark = time.Time{}
		}
		if iv.End.After(watermark) {
			watermark = iv.End
		}
	}
	return append(clusters, current)
}

// Span returns the cluster's covered range.
func (c Cluster) Span() (time.Time, time.Time) {
	if len(c) == 0 {
		return time.Time{}, time.Time{}
	}
	start := c[0].Start
	end := c[0].End
	for _, iv := range c[1:] {
		if iv.End.After(end) {
			end = iv.End
		}
	}
	return start, end
}
