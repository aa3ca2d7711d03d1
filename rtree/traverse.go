package rtree

// Iterator is a pull-based, single-pass, finite sequence of nodes. Calling
// Next advances the sequence by at most the amount of tree work needed to
// produce one more node; a caller that stops calling Next leaves the rest
// of the traversal undone. An Iterator is not safe to share between
// goroutines and must not outlive a mutation of the tree it was created
// from (spec.md §5).
type Iterator[K any] struct {
	t       *Tree[K]
	fn      func(*NodeView[K])
	advance func() (NodeRef[K], bool)
}

// Next returns the next node in the sequence, or (nil, false) once the
// sequence is exhausted.
func (it *Iterator[K]) Next() (*NodeView[K], bool) {
	ref, ok := it.advance()
	if !ok {
		return nil, false
	}
	view := it.t.NodeView(ref)
	if it.fn != nil {
		it.fn(view)
	}
	return view, true
}

// All drains the iterator into a slice of NodeRefs. Provided for callers
// who don't need the pull-based laziness (e.g. GetNodes/GetLeaves).
func (it *Iterator[K]) All() []NodeRef[K] {
	var out []NodeRef[K]
	for {
		view, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, view.Ref)
	}
}

// Traverse performs a pre-order walk of the tree starting at the root,
// calling fn once for every visited node. If cond is non-nil and returns
// false for a node, that node's descendants are not visited (the node
// itself is still visited and still passed to fn). Traverse returns a lazy
// Iterator: nothing beyond the root is computed until Next is first called.
func (t *Tree[K]) Traverse(fn func(*NodeView[K]), cond func(*NodeView[K]) bool) *Iterator[K] {
	return t.TraverseNode(t.root, fn, cond)
}

// TraverseNode is Traverse starting at an arbitrary node within the tree
// instead of the root.
func (t *Tree[K]) TraverseNode(start NodeRef[K], fn func(*NodeView[K]), cond func(*NodeView[K]) bool) *Iterator[K] {
	stack := []NodeRef[K]{start}
	it := &Iterator[K]{t: t, fn: fn}
	it.advance = func() (NodeRef[K], bool) {
		if len(stack) == 0 {
			return NodeRef[K]{}, false
		}
		n := len(stack) - 1
		ref := stack[n]
		stack = stack[:n]

		if cond == nil || cond(t.NodeView(ref)) {
			node := t.getNode(ref)
			for i := len(node.entries) - 1; i >= 0; i-- {
				if child := node.entries[i].child; !child.IsNil() {
					stack = append(stack, child)
				}
			}
		}
		return ref, true
	}
	return it
}

// TraverseLevelOrder is the breadth-first variant of Traverse: nodes are
// visited level by level, in the insertion order of their parent entries
// within each level.
func (t *Tree[K]) TraverseLevelOrder(fn func(*NodeView[K]), cond func(*NodeView[K]) bool) *Iterator[K] {
	queue := []NodeRef[K]{t.root}
	it := &Iterator[K]{t: t, fn: fn}
	it.advance = func() (NodeRef[K], bool) {
		if len(queue) == 0 {
			return NodeRef[K]{}, false
		}
		ref := queue[0]
		queue = queue[1:]

		if cond == nil || cond(t.NodeView(ref)) {
			node := t.getNode(ref)
			for _, e := range node.entries {
				if !e.child.IsNil() {
					queue = append(queue, e.child)
				}
			}
		}
		return ref, true
	}
	return it
}
