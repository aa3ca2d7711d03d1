package rtree

import "github.com/fmstephe/rtreecore/internal/objectstore"

// NodeRef is a stable, comparable handle to a node stored in a Tree's
// arena. The zero NodeRef refers to no node.
type NodeRef[K any] struct {
	ptr objectstore.Pointer[node[K]]
}

// IsNil reports whether ref refers to no node.
func (ref NodeRef[K]) IsNil() bool {
	return ref.ptr.IsNil()
}

// entry is the triple described in spec.md §3: exactly one of data/child is
// populated. hasData distinguishes a zero-valued K leaf payload from "no
// leaf payload" (child populated instead).
type entry[K any] struct {
	rect    Rect
	data    K
	hasData bool
	child   NodeRef[K]

	// seq is an insertion sequence number, unique among leaf entries,
	// used only internally to relocate a just-inserted entry after a
	// split may have moved it into a new sibling node. It has no
	// significance outside of Insert and carries no meaning for
	// non-leaf entries.
	seq uint64
}

func leafEntry[K any](r Rect, data K, seq uint64) entry[K] {
	return entry[K]{rect: r, data: data, hasData: true, seq: seq}
}

func nonLeafEntry[K any](r Rect, child NodeRef[K]) entry[K] {
	return entry[K]{rect: r, child: child}
}

// isLeafEntry reports whether e carries leaf data rather than a child node.
func (e entry[K]) isLeafEntry() bool {
	return e.child.IsNil()
}

// node is an ordered collection of entries, homogeneous (all leaf or all
// non-leaf), with a non-owning back-reference to its parent node and a
// level that is 0 at the leaves and increases toward the root.
type node[K any] struct {
	entries []entry[K]
	parent  NodeRef[K]
	level   int
}

// isLeaf reports whether n's entries are leaf entries (equivalently: n is at
// level 0). An empty node (only possible for the root) is considered a leaf.
func (n *node[K]) isLeaf() bool {
	return n.level == 0
}

// EntryView is a read-only view of an entry, exposed to callers of Search,
// Query, and the strategy function signatures. It never exposes the arena
// Pointer backing a child node directly — NodeRef is already an opaque,
// comparable handle safe to expose.
type EntryView[K any] struct {
	Rect  Rect
	Data  K
	IsLeaf bool
	Child NodeRef[K]
}

func newEntryView[K any](e entry[K]) EntryView[K] {
	return EntryView[K]{
		Rect:   e.rect,
		Data:   e.data,
		IsLeaf: e.isLeafEntry(),
		Child:  e.child,
	}
}

// EntryRef identifies one entry within one node: the handle returned by
// Insert and usable by an exporter to emit parent references.
type EntryRef[K any] struct {
	Node  NodeRef[K]
	Index int
}

// NodeView is a read-only view of a node's own data, exposed to traversal
// callbacks, strategies, and exporters.
type NodeView[K any] struct {
	Ref     NodeRef[K]
	Parent  NodeRef[K]
	Level   int
	IsLeaf  bool
	Entries []EntryView[K]
}

func newNodeView[K any](ref NodeRef[K], n *node[K]) *NodeView[K] {
	views := make([]EntryView[K], len(n.entries))
	for i, e := range n.entries {
		views[i] = newEntryView(e)
	}
	return &NodeView[K]{
		Ref:     ref,
		Parent:  n.parent,
		Level:   n.level,
		IsLeaf:  n.isLeaf(),
		Entries: views,
	}
}
