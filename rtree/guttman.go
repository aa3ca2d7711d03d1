package rtree

import "math"

// ChooseLeafGuttman implements the least-enlargement leaf-choice heuristic
// of spec.md §4.D. Starting at the root, while the current node is
// non-leaf, it picks the child entry requiring least enlargement to
// contain e.rect, breaking ties by smaller current area and then by
// position in the node (first wins) — in that exact order, per the
// source's 0.0.3 changelog tie-handling fix.
func ChooseLeafGuttman[K any](t *Tree[K], e EntryView[K]) NodeRef[K] {
	cur := t.root
	for {
		n := t.getNode(cur)
		if n.isLeaf() {
			return cur
		}

		bestIdx := -1
		var bestEnlargement, bestArea float64
		for i, candidate := range n.entries {
			enlargement := candidate.rect.Enlargement(e.Rect)
			area := candidate.rect.Area()
			if bestIdx == -1 ||
				enlargement < bestEnlargement ||
				(enlargement == bestEnlargement && area < bestArea) {
				bestIdx = i
				bestEnlargement = enlargement
				bestArea = area
			}
		}
		if bestIdx == -1 {
			panicStrategyContractViolation("choose_leaf reached an empty non-leaf node")
		}
		cur = n.entries[bestIdx].child
	}
}

// AdjustTreeGuttman implements spec.md §4.D's adjust_tree: it refreshes
// parent-entry bounding rects on every level of the ascent from n to the
// root — even when nn is nil and no split is propagating, because n's own
// entries may have shrunk during its own split (the defect the source's
// 0.0.3 changelog calls out) — and propagates any split upward, growing a
// new root if the split reaches the tree's current root.
func AdjustTreeGuttman[K any](t *Tree[K], n, nn NodeRef[K]) {
	for {
		curNode := t.getNode(n)

		if n == t.root {
			if nn.IsNil() {
				return
			}
			t.growNewRoot(n, nn)
			return
		}

		parent, idx := t.getOwningEntry(n)
		parent.entries[idx].rect = computeBoundingBox(curNode.entries)

		if nn.IsNil() {
			n = curNode.parent
			nn = NodeRef[K]{}
			continue
		}

		nnNode := t.getNode(nn)
		q := nonLeafEntry(computeBoundingBox(nnNode.entries), nn)
		parentRef := curNode.parent
		parent.entries = append(parent.entries, q)
		nnNode.parent = parentRef

		if len(parent.entries) > t.maxEntries {
			split := t.splitNode(t, parentRef)
			n, nn = parentRef, split
		} else {
			n, nn = parentRef, NodeRef[K]{}
		}
	}
}

// growNewRoot creates a new root one level above n (== the tree's current
// root) containing two non-leaf entries, one owning n and one owning nn,
// and installs it as the tree's root.
func (t *Tree[K]) growNewRoot(n, nn NodeRef[K]) {
	nNode := t.getNode(n)
	nnNode := t.getNode(nn)

	entries := []entry[K]{
		nonLeafEntry(computeBoundingBox(nNode.entries), n),
		nonLeafEntry(computeBoundingBox(nnNode.entries), nn),
	}
	newRoot := t.newNode(entries, nNode.level+1)

	nNode.parent = newRoot
	nnNode.parent = newRoot
	t.root = newRoot
}

// SplitNodeQuadratic implements spec.md §4.D's quadratic split: PickSeeds
// chooses the pair maximizing dead space, then entries are assigned one at
// a time by PickNext (maximizing |d1-d2|, ties broken by smaller group
// cover area, then smaller group size, then first-encountered), with the
// "assign all remaining to the other group" shortcut once a group reaches
// maxEntries-minEntries+1 entries so the other side is guaranteed to reach
// minEntries.
func SplitNodeQuadratic[K any](t *Tree[K], ref NodeRef[K]) NodeRef[K] {
	n := t.getNode(ref)
	entries := n.entries

	i1, i2 := pickSeeds(entries)

	group1 := []entry[K]{entries[i1]}
	group2 := []entry[K]{entries[i2]}
	cover1 := entries[i1].rect
	cover2 := entries[i2].rect

	remaining := make([]entry[K], 0, len(entries)-2)
	for i, e := range entries {
		if i != i1 && i != i2 {
			remaining = append(remaining, e)
		}
	}

	limit := t.maxEntries - t.minEntries + 1

	for len(remaining) > 0 {
		if len(group1) == limit {
			group2 = append(group2, remaining...)
			remaining = nil
			break
		}
		if len(group2) == limit {
			group1 = append(group1, remaining...)
			remaining = nil
			break
		}

		next, toGroup1 := pickNext(cover1, cover2, len(group1), len(group2), remaining)
		e := remaining[next]
		if toGroup1 {
			group1 = append(group1, e)
			cover1 = cover1.Union(e.rect)
		} else {
			group2 = append(group2, e)
			cover2 = cover2.Union(e.rect)
		}
		remaining = append(remaining[:next], remaining[next+1:]...)
	}

	n.entries = group1
	for i := range group1 {
		if !group1[i].child.IsNil() {
			t.getNode(group1[i].child).parent = ref
		}
	}

	sibling := t.newNode(group2, n.level)
	for i := range group2 {
		if !group2[i].child.IsNil() {
			t.getNode(group2[i].child).parent = sibling
		}
	}

	if len(group1) < t.minEntries || len(group2) < t.minEntries {
		panicStrategyContractViolation("split_node produced a group smaller than minEntries")
	}

	return sibling
}

// pickSeeds chooses the pair of entries maximizing dead space: the area
// wasted by grouping them together. Ties are broken by first-encountered
// pair in iteration order.
func pickSeeds[K any](entries []entry[K]) (i1, i2 int) {
	bestWaste := math.Inf(-1)
	i1, i2 = 0, 1
	for i := range entries {
		for j := i + 1; j < len(entries); j++ {
			waste := entries[i].rect.Union(entries[j].rect).Area() -
				entries[i].rect.Area() - entries[j].rect.Area()
			if waste > bestWaste {
				bestWaste = waste
				i1, i2 = i, j
			}
		}
	}
	return i1, i2
}

// pickNext chooses the entry (by index into remaining) maximizing the
// difference in enlargement cost between the two candidate groups, and
// reports which group it should join. Ties are broken by smaller current
// group cover area, then smaller current group entry count, then
// first-encountered.
func pickNext[K any](cover1, cover2 Rect, size1, size2 int, remaining []entry[K]) (idx int, toGroup1 bool) {
	bestDiff := -1.0
	idx = 0
	toGroup1 = true
	for i, e := range remaining {
		d1 := cover1.Enlargement(e.rect)
		d2 := cover2.Enlargement(e.rect)
		diff := d1 - d2
		if diff < 0 {
			diff = -diff
		}
		if diff > bestDiff {
			bestDiff = diff
			idx = i
			toGroup1 = assignToGroup1(d1, d2, cover1, cover2, size1, size2)
		}
	}
	return idx, toGroup1
}

// assignToGroup1 applies the tie-break chain used both when two candidate
// enlargements are equal and when choosing which group a picked entry joins:
// smaller enlargement first, then smaller current cover area, then smaller
// current group size, then group 1 by default.
func assignToGroup1(d1, d2 float64, cover1, cover2 Rect, size1, size2 int) bool {
	if d1 != d2 {
		return d1 < d2
	}
	a1, a2 := cover1.Area(), cover2.Area()
	if a1 != a2 {
		return a1 < a2
	}
	if size1 != size2 {
		return size1 < size2
	}
	return true
}
