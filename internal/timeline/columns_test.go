package timeline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelar/dayline/internal/timeline"
)

func ranked(id string, startH, endH float64, rank int) timeline.Interval {
	iv := at(id, startH, endH)
	iv.Rank = rank
	return iv
}

func placementByID(t *testing.T, ps []timeline.Placement, id string) timeline.Placement {
	t.Helper()
	for _, p := range ps {
		if p.ID == id {
			return p
		}
	}
	t.Fatalf("placement %q not found", id)
	return timeline.Placement{}
}

func assertNoColumnOverlap(t *testing.T, ps []timeline.Placement) {
	t.Helper()
	for i, a := range ps {
		for _, b := range ps[i+1:] {
			if a.Overlaps(b.Interval) {
				assert.NotEqual(t, a.Column, b.Column,
					"%s and %s overlap but share column %d", a.ID, b.ID, a.Column)
			}
		}
	}
}

func TestAssignColumns_SingleInterval(t *testing.T) {
	ps := timeline.AssignColumns(timeline.Cluster{at("a", 9, 10)})
	require.Len(t, ps, 1)
	assert.Equal(t, 0, ps[0].Column)
	assert.Equal(t, 1, ps[0].ColumnCount)
}

func TestAssignColumns_TwoOverlappingEqualRank(t *testing.T) {
	// Scenario: [09:00,10:00) and [09:30,10:30), both rank 0.
	cluster := timeline.Cluster{at("a", 9, 10), at("b", 9.5, 10.5)}
	ps := timeline.AssignColumns(cluster)
	require.Len(t, ps, 2)

	a := placementByID(t, ps, "a")
	b := placementByID(t, ps, "b")
	assert.NotEqual(t, a.Column, b.Column)
	assert.Equal(t, 2, a.ColumnCount)
	assert.Equal(t, 2, b.ColumnCount)
	assertNoColumnOverlap(t, ps)
}

func TestAssignColumns_RankWinsFirstColumn(t *testing.T) {
	// Scenario: three transitively overlapping intervals; the rank-5
	// interval takes column 0 and later, lower-priority intervals are
	// pushed right of everything they overlap.
	cluster := timeline.Cluster{
		ranked("a", 9, 10, 0),
		ranked("vip", 9.25, 9.75, 5),
		ranked("c", 9+50.0/60, 10+10.0/60, 0),
	}
	ps := timeline.AssignColumns(cluster)
	require.Len(t, ps, 3)

	vip := placementByID(t, ps, "vip")
	a := placementByID(t, ps, "a")
	c := placementByID(t, ps, "c")

	assert.Equal(t, 0, vip.Column)
	assert.Equal(t, 1, a.Column)
	assert.Equal(t, 2, c.Column, "c overlaps a and may not sit left of it")
	for _, p := range ps {
		assert.Equal(t, 3, p.ColumnCount)
	}
	assertNoColumnOverlap(t, ps)
}

func TestAssignColumns_DisjointLowRankReusesColumn(t *testing.T) {
	// The low-rank interval overlaps nothing already placed, so it may
	// take column 0 alongside the earlier high-rank one.
	cluster := timeline.Cluster{
		ranked("bridge", 9, 12, 0),
		ranked("early", 9, 10, 3),
		ranked("late", 11, 12, 1),
	}
	ps := timeline.AssignColumns(cluster)

	early := placementByID(t, ps, "early")
	late := placementByID(t, ps, "late")
	bridge := placementByID(t, ps, "bridge")

	assert.Equal(t, 0, early.Column)
	assert.Equal(t, 0, late.Column, "disjoint from early, free to reuse column 0")
	assert.Equal(t, 1, bridge.Column)
	assert.Equal(t, 2, bridge.ColumnCount)
	assertNoColumnOverlap(t, ps)
}

func TestAssignColumns_GroupThenIDBreaksRankTies(t *testing.T) {
	cluster := timeline.Cluster{
		func() timeline.Interval { iv := at("b2", 9, 10); iv.GroupID = "work"; return iv }(),
		func() timeline.Interval { iv := at("a1", 9, 10); iv.GroupID = "home"; return iv }(),
		func() timeline.Interval { iv := at("a2", 9, 10); iv.GroupID = "home"; return iv }(),
	}
	ps := timeline.AssignColumns(cluster)

	// groupId ascending first, then id ascending.
	assert.Equal(t, 0, placementByID(t, ps, "a1").Column)
	assert.Equal(t, 1, placementByID(t, ps, "a2").Column)
	assert.Equal(t, 2, placementByID(t, ps, "b2").Column)
}

func TestAssignColumns_Deterministic(t *testing.T) {
	cluster := timeline.Cluster{
		ranked("a", 9, 11, 2),
		ranked("b", 9.5, 10, 2),
		ranked("c", 9.75, 12, 0),
		ranked("d", 10.5, 11.5, 4),
		ranked("e", 11, 13, 0),
	}
	first := timeline.AssignColumns(cluster)
	for run := 0; run < 20; run++ {
		assert.Equal(t, first, timeline.AssignColumns(cluster))
	}
}

func TestAssignColumns_NoOverlapInvariant_DenseCluster(t *testing.T) {
	var cluster timeline.Cluster
	// Staircase of mutually overlapping intervals with mixed ranks.
	for i := 0; i < 12; i++ {
		cluster = append(cluster, ranked(
			string(rune('a'+i)),
			9+float64(i)*0.25,
			10+float64(i)*0.25,
			i%3,
		))
	}
	ps := timeline.AssignColumns(cluster)
	require.Len(t, ps, len(cluster))
	assertNoColumnOverlap(t, ps)
	for _, p := range ps {
		assert.GreaterOrEqual(t, p.Column, 0)
		assert.Less(t, p.Column, p.ColumnCount)
	}
}
