package rtree

// LeafIterator is a pull-based, single-pass, finite sequence of leaf
// entries, analogous to Iterator but yielding EntryView values instead of
// nodes.
type LeafIterator[K any] struct {
	advance func() (EntryView[K], bool)
}

// Next returns the next leaf entry in the sequence, or (zero, false) once
// exhausted.
func (it *LeafIterator[K]) Next() (EntryView[K], bool) {
	return it.advance()
}

// All drains the iterator into a slice.
func (it *LeafIterator[K]) All() []EntryView[K] {
	var out []EntryView[K]
	for {
		e, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, e)
	}
}

// Query returns every leaf entry whose rect intersects r. It is implemented
// as a pruned traversal: any node whose own bounding cover does not
// intersect r is skipped along with its whole subtree.
func (t *Tree[K]) Query(r Rect) *LeafIterator[K] {
	nodeIt := t.QueryNodes(r)

	var pending []EntryView[K]
	it := &LeafIterator[K]{}
	it.advance = func() (EntryView[K], bool) {
		for {
			if len(pending) > 0 {
				e := pending[0]
				pending = pending[1:]
				return e, true
			}
			view, ok := nodeIt.Next()
			if !ok {
				return EntryView[K]{}, false
			}
			if !view.IsLeaf {
				continue
			}
			for _, e := range view.Entries {
				if e.Rect.Intersects(r) {
					pending = append(pending, e)
				}
			}
		}
	}
	return it
}

// QueryNodes returns every node whose own bounding cover intersects r. It
// cannot be built on top of Traverse: Traverse's cond decides whether to
// descend into the popped node's children, but always yields the popped
// node itself regardless of cond, so a cond built from nodeCover would let
// through any child merely because its parent's cover intersected r. Instead
// QueryNodes tests each child's cached entry rect against r before ever
// pushing that child, so only nodes whose own cover intersects r are pushed
// — and, for the root (which has no parent entry to cache a rect in), its
// on-the-fly computed cover is checked before the walk even starts.
func (t *Tree[K]) QueryNodes(r Rect) *Iterator[K] {
	var stack []NodeRef[K]
	if t.nodeCover(t.root).Intersects(r) {
		stack = []NodeRef[K]{t.root}
	}

	it := &Iterator[K]{t: t}
	it.advance = func() (NodeRef[K], bool) {
		if len(stack) == 0 {
			return NodeRef[K]{}, false
		}
		n := len(stack) - 1
		ref := stack[n]
		stack = stack[:n]

		node := t.getNode(ref)
		for i := len(node.entries) - 1; i >= 0; i-- {
			e := node.entries[i]
			if !e.child.IsNil() && e.rect.Intersects(r) {
				stack = append(stack, e.child)
			}
		}
		return ref, true
	}
	return it
}

// nodeCover returns ref's bounding rect: the cached rect on ref's owning
// entry, or (for the root, which has no owning entry) the union computed
// directly from its own entries.
func (t *Tree[K]) nodeCover(ref NodeRef[K]) Rect {
	if ref == t.root {
		return computeBoundingBox(t.getNode(ref).entries)
	}
	parent, idx := t.getOwningEntry(ref)
	return parent.entries[idx].rect
}

// Search returns every leaf entry for which pred is true. Unlike Query, no
// pruning is performed: pred operates on entries, not node covers, so every
// leaf entry in the tree is visited.
func (t *Tree[K]) Search(pred func(EntryView[K]) bool) *LeafIterator[K] {
	nodeIt := t.Traverse(nil, nil)

	var pending []EntryView[K]
	it := &LeafIterator[K]{}
	it.advance = func() (EntryView[K], bool) {
		for {
			if len(pending) > 0 {
				e := pending[0]
				pending = pending[1:]
				return e, true
			}
			view, ok := nodeIt.Next()
			if !ok {
				return EntryView[K]{}, false
			}
			if !view.IsLeaf {
				continue
			}
			for _, e := range view.Entries {
				if pred(e) {
					pending = append(pending, e)
				}
			}
		}
	}
	return it
}

// SearchNodes returns every node for which pred is true. No pruning is
// performed.
func (t *Tree[K]) SearchNodes(pred func(*NodeView[K]) bool) *Iterator[K] {
	nodeIt := t.Traverse(nil, nil)

	it := &Iterator[K]{t: t}
	it.advance = func() (NodeRef[K], bool) {
		for {
			view, ok := nodeIt.Next()
			if !ok {
				return NodeRef[K]{}, false
			}
			if pred(view) {
				return view.Ref, true
			}
		}
	}
	return it
}
