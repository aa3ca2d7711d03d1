package rtree

// GetLevels returns every node in the tree grouped by level, with level 0
// (the leaves) first and the root last.
func (t *Tree[K]) GetLevels() [][]NodeRef[K] {
	var levels [][]NodeRef[K]
	it := t.Traverse(nil, nil)
	for {
		view, ok := it.Next()
		if !ok {
			break
		}
		// Levels increase toward the root; the root's level is the
		// highest level number seen, so grow levels from the back.
		for len(levels) <= view.Level {
			levels = append(levels, nil)
		}
		levels[view.Level] = append(levels[view.Level], view.Ref)
	}
	return levels
}

// GetNodes returns every node in the tree.
func (t *Tree[K]) GetNodes() []NodeRef[K] {
	return t.Traverse(nil, nil).All()
}

// GetLeaves returns every leaf node in the tree.
func (t *Tree[K]) GetLeaves() []NodeRef[K] {
	var leaves []NodeRef[K]
	it := t.Traverse(nil, nil)
	for {
		view, ok := it.Next()
		if !ok {
			break
		}
		if view.IsLeaf {
			leaves = append(leaves, view.Ref)
		}
	}
	return leaves
}

// GetLeafEntries returns every leaf entry in the tree.
func (t *Tree[K]) GetLeafEntries() []EntryView[K] {
	var entries []EntryView[K]
	it := t.Traverse(nil, nil)
	for {
		view, ok := it.Next()
		if !ok {
			break
		}
		if view.IsLeaf {
			entries = append(entries, view.Entries...)
		}
	}
	return entries
}
