package timeline

import "sort"

// Placement is one interval's lane assignment within its cluster.
type Placement struct {
	Interval
	// Column is the zero-based lane index inside the cluster.
	Column int
	// ColumnCount is the cluster's total lane count; every placement in
	// the same cluster carries the same value.
	ColumnCount int
}

// AssignColumns gives every interval in a cluster a column such that no
// two overlapping intervals share one. Placement is greedy in priority
// order rather than chromatic-number optimal: higher-priority intervals
// pick lanes first, and a later interval is never placed to the left of
// an already-placed interval it overlaps. Run-to-run stability matters
// more here than squeezing out a lane.
//
// Results are returned in the cluster's start order. The assignment is
// fully deterministic for a given input set.
func AssignColumns(cluster Cluster) []Placement {
	if len(cluster) == 0 {
		return nil
	}

	order := make([]int, len(cluster))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		return byPriority(cluster[order[i]], cluster[order[j]])
	})

	assigned := make([]int, len(cluster))
	var columns [][]int // occupant indices per lane

	for _, idx := range order {
		iv := cluster[idx]

		// Everything already placed outranks iv, so iv may not take a
		// lane left of any placed interval it overlaps.
		permitted := 0
		for ci, occupants := range columns {
			for _, oi := range occupants {
				if iv.Overlaps(cluster[oi]) && ci >= permitted {
					permitted = ci + 1
				}
			}
		}

		col := -1
		for ci := permitted; ci < len(columns); ci++ {
			free := true
			for _, oi := range columns[ci] {
				if iv.Overlaps(cluster[oi]) {
					free = false
					break
				}
			}
			if free {
				col = ci
				break
			}
		}
		if col < 0 {
			columns = append(columns, nil)
			col = len(columns) - 1
		}

		columns[col] = append(columns[col], idx)
		assigned[idx] = col
	}

	out := make([]Placement, len(cluster))
	for i, iv := range cluster {
		out[i] = Placement{Interval: iv, Column: assigned[i], ColumnCount: len(columns)}
	}
	return out
}
