package rtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuery_EmptyResultForDisjointRegion(t *testing.T) {
	tr := buildE2(t)
	got := tr.Query(rect(t, 1000, 1000, 1001, 1001)).All()
	assert.Empty(t, got)
}

func TestQuery_TouchingEdgeCounts(t *testing.T) {
	tr, err := New[string](WithMaxEntries[string](4), WithMinEntries[string](2))
	require.NoError(t, err)
	_, err = tr.Insert("a", rect(t, 0, 0, 1, 1))
	require.NoError(t, err)

	got := tr.Query(rect(t, 1, 0, 2, 1)).All()
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].Data)
}

// invariant 6: Query(r) returns exactly the set a brute-force scan of every
// inserted rect would, for a handful of overlapping/disjoint regions.
func TestQuery_MatchesBruteForce(t *testing.T) {
	tr := buildE2(t)

	type item struct {
		name string
		r    Rect
	}
	all := []item{
		{"a", rect(t, 0, 0, 3, 3)},
		{"b", rect(t, 2, 2, 4, 4)},
		{"c", rect(t, 1, 1, 2, 4)},
		{"d", rect(t, 8, 8, 10, 10)},
		{"e", rect(t, 7, 7, 9, 9)},
	}

	queries := []Rect{
		rect(t, 0, 0, 1, 1),
		rect(t, 1.5, 1.5, 2.5, 2.5),
		rect(t, 5, 5, 6, 6),
		rect(t, 7.5, 7.5, 8.5, 8.5),
		rect(t, -5, -5, 20, 20),
	}

	for _, q := range queries {
		var want []string
		for _, it := range all {
			if it.r.Intersects(q) {
				want = append(want, it.name)
			}
		}
		got := tr.Query(q).All()
		gotNames := make([]string, len(got))
		for i, e := range got {
			gotNames[i] = e.Data
		}
		assert.ElementsMatch(t, want, gotNames, "query %v", q)
	}
}

// invariant 7: QueryNodes(r) is a superset of every node that Query(r)'s
// matching leaf entries live in — every node on the path from the root to a
// matching leaf has a cover intersecting r (ancestor cover contains
// descendant cover).
func TestQueryNodes_IsSupersetAlongPathToMatches(t *testing.T) {
	tr := buildE2(t)
	q := rect(t, 7.5, 7.5, 8.5, 8.5)

	matchedLeaves := map[NodeRef[string]]bool{}
	for _, ref := range tr.GetLeaves() {
		v := tr.NodeView(ref)
		for _, e := range v.Entries {
			if e.Rect.Intersects(q) {
				matchedLeaves[ref] = true
			}
		}
	}
	require.NotEmpty(t, matchedLeaves)

	visited := map[NodeRef[string]]bool{}
	for _, ref := range tr.QueryNodes(q).All() {
		visited[ref] = true
	}

	for leaf := range matchedLeaves {
		assert.True(t, visited[leaf], "matching leaf must be visited by QueryNodes")
	}
	// The root's own cover spans both leaves, so it does intersect q here.
	assert.True(t, visited[tr.Root()])
}

// invariant 7, the other direction: QueryNodes must never yield a node
// whose own cover does not intersect r — in particular, the (a,b,c) leaf
// (cover (0,0)-(4,4)) must not appear for a query confined to the (d,e)
// cluster, even though it shares a root with a matching leaf.
func TestQueryNodes_NeverYieldsNonIntersectingCover(t *testing.T) {
	tr := buildE2(t)
	q := rect(t, 7.5, 7.5, 8.5, 8.5)

	for _, ref := range tr.QueryNodes(q).All() {
		cover := tr.nodeCoverForTest(ref)
		assert.True(t, cover.Intersects(q), "yielded node %v has non-intersecting cover %v", ref, cover)
	}

	// Concretely: the (a,b,c) leaf must be absent.
	var abcLeaf NodeRef[string]
	for _, ref := range tr.GetLeaves() {
		v := tr.NodeView(ref)
		for _, e := range v.Entries {
			if e.Data == "a" {
				abcLeaf = ref
			}
		}
	}
	require.False(t, abcLeaf.IsNil())

	for _, ref := range tr.QueryNodes(q).All() {
		assert.NotEqual(t, abcLeaf, ref, "(a,b,c) leaf must be pruned, not merely entry-filtered")
	}
}

func TestSearchNodes_FindsByPredicate(t *testing.T) {
	tr := buildE2(t)

	leaves := tr.SearchNodes(func(v *NodeView[string]) bool { return v.IsLeaf }).All()
	assert.Len(t, leaves, 2)
}

func TestSearch_NoPruning_VisitsEveryLeafEntry(t *testing.T) {
	tr := buildE2(t)

	var seen int
	tr.Search(func(e EntryView[string]) bool {
		seen++
		return false
	}).All()
	assert.Equal(t, 5, seen)
}
