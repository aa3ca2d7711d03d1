package rtree

import (
	"fmt"

	"github.com/fmstephe/rtreecore/internal/objectstore"
)

// defaultMaxEntries is this implementation's chosen fanout default. The
// source's own default constant is internal to it, so (per spec.md §9's
// open question) this default is simply documented rather than assumed to
// interoperate with any other port: 8, Guttman's own worked examples use
// small fanouts in this range.
const defaultMaxEntries = 8

// ChooseLeaf selects the leaf node in which a newly-inserted entry should be
// placed, descending from the root. e.IsLeaf is always true and e.Child
// always nil — e is the entry about to be inserted, not yet attached to any
// node.
type ChooseLeaf[K any] func(t *Tree[K], e EntryView[K]) NodeRef[K]

// AdjustTree propagates bounding-box updates (and any split) from n up to
// the root. nn is the sibling produced by a split of n, or the nil NodeRef
// if n did not just split.
type AdjustTree[K any] func(t *Tree[K], n, nn NodeRef[K])

// SplitNode splits an overflowing node n into two, leaving one group's
// entries in n and returning a new sibling node holding the other group.
type SplitNode[K any] func(t *Tree[K], n NodeRef[K]) NodeRef[K]

// Tree is a pluggable in-memory R-tree. The zero Tree is not usable; use
// New.
type Tree[K any] struct {
	nodes *objectstore.Store[node[K]]
	root  NodeRef[K]

	maxEntries int
	minEntries int

	// nextSeq hands out unique entry.seq values to leaf entries, so a
	// just-inserted entry can be relocated after a split without relying
	// on K being comparable. 0 is reserved as "unset".
	nextSeq uint64

	chooseLeaf ChooseLeaf[K]
	adjustTree AdjustTree[K]
	splitNode  SplitNode[K]
}

// Option configures a Tree constructed by New.
type Option[K any] func(*treeConfig[K])

type treeConfig[K any] struct {
	maxEntries    int
	minEntries    int
	minEntriesSet bool
	chooseLeaf    ChooseLeaf[K]
	adjustTree    AdjustTree[K]
	splitNode     SplitNode[K]
}

// WithMaxEntries sets M, the maximum number of entries per node. Default 8.
func WithMaxEntries[K any](m int) Option[K] {
	return func(c *treeConfig[K]) { c.maxEntries = m }
}

// WithMinEntries sets m, the minimum number of entries per non-root node.
// Default ceil(M/2).
func WithMinEntries[K any](m int) Option[K] {
	return func(c *treeConfig[K]) { c.minEntries, c.minEntriesSet = m, true }
}

// WithStrategies overrides the default Guttman strategies.
func WithStrategies[K any](choose ChooseLeaf[K], adjust AdjustTree[K], split SplitNode[K]) Option[K] {
	return func(c *treeConfig[K]) {
		c.chooseLeaf = choose
		c.adjustTree = adjust
		c.splitNode = split
	}
}

// New constructs an empty Tree. With no options, M defaults to 8, m to
// ceil(M/2), and the strategies to the Guttman defaults (ChooseLeafGuttman,
// AdjustTreeGuttman, SplitNodeQuadratic).
func New[K any](opts ...Option[K]) (*Tree[K], error) {
	cfg := treeConfig[K]{
		maxEntries: defaultMaxEntries,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.minEntriesSet {
		cfg.minEntries = ceilDiv(cfg.maxEntries, 2)
	}
	if cfg.chooseLeaf == nil {
		cfg.chooseLeaf = ChooseLeafGuttman[K]
	}
	if cfg.adjustTree == nil {
		cfg.adjustTree = AdjustTreeGuttman[K]
	}
	if cfg.splitNode == nil {
		cfg.splitNode = SplitNodeQuadratic[K]
	}

	if cfg.maxEntries < 2 || cfg.minEntries < 1 || cfg.minEntries > ceilDiv(cfg.maxEntries, 2) {
		return nil, fmt.Errorf("rtree: M=%d m=%d: %w", cfg.maxEntries, cfg.minEntries, ErrInvalidFanout)
	}

	nodes := objectstore.New[node[K]]()
	rootPtr, rootNode := nodes.Alloc()
	rootNode.entries = nil
	rootNode.level = 0

	return &Tree[K]{
		nodes:      nodes,
		root:       NodeRef[K]{ptr: rootPtr},
		maxEntries: cfg.maxEntries,
		minEntries: cfg.minEntries,
		chooseLeaf: cfg.chooseLeaf,
		adjustTree: cfg.adjustTree,
		splitNode:  cfg.splitNode,
	}, nil
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// Root returns a handle to the tree's root node.
func (t *Tree[K]) Root() NodeRef[K] {
	return t.root
}

// MaxEntries returns M.
func (t *Tree[K]) MaxEntries() int {
	return t.maxEntries
}

// MinEntries returns m.
func (t *Tree[K]) MinEntries() int {
	return t.minEntries
}

// getNode resolves a NodeRef to its underlying node. Panics if ref is nil —
// every NodeRef a caller can observe came from this tree and is non-nil.
func (t *Tree[K]) getNode(ref NodeRef[K]) *node[K] {
	return t.nodes.Get(ref.ptr)
}

// NodeView returns a read-only snapshot of the node ref refers to.
func (t *Tree[K]) NodeView(ref NodeRef[K]) *NodeView[K] {
	return newNodeView(ref, t.getNode(ref))
}

// newNode allocates a fresh node with the given entries and level, parented
// to the nil NodeRef (the caller installs the real parent when it creates
// the owning entry).
func (t *Tree[K]) newNode(entries []entry[K], level int) NodeRef[K] {
	ptr, n := t.nodes.Alloc()
	n.entries = entries
	n.level = level
	return NodeRef[K]{ptr: ptr}
}

// computeBoundingBox returns the union of the rects of every entry in n, or
// the zero Rect if n has no entries (only possible for an empty root).
func computeBoundingBox[K any](entries []entry[K]) Rect {
	if len(entries) == 0 {
		return Rect{}
	}
	box := entries[0].rect
	for _, e := range entries[1:] {
		box = box.Union(e.rect)
	}
	return box
}

// getOwningEntry finds the entry in n's parent node whose child is ref, the
// same technique as rtreego's node.getEntry: the non-owning upward link is
// resolved by scanning the owning downward links rather than kept as a
// direct pointer, so it survives the owning slice being replaced wholesale
// during a split.
func (t *Tree[K]) getOwningEntry(ref NodeRef[K]) (parent *node[K], index int) {
	n := t.getNode(ref)
	parent = t.getNode(n.parent)
	for i := range parent.entries {
		if parent.entries[i].child == ref {
			return parent, i
		}
	}
	panicStrategyContractViolation("node's parent entry not found in parent's entries")
	return nil, -1
}

// Insert wraps data in a leaf entry, places it via the tree's ChooseLeaf
// strategy, splits the target leaf if it now overflows, and propagates the
// change to the root via the tree's AdjustTree strategy. Insert fails with
// ErrInvalidRectangle only through NewRect's own validation at the call
// site constructing r; Insert itself never rejects an already-valid Rect.
func (t *Tree[K]) Insert(data K, r Rect) (EntryRef[K], error) {
	t.nextSeq++
	seq := t.nextSeq
	e := leafEntry[K](r, data, seq)

	leaf := t.chooseLeaf(t, newEntryView(e))
	leafNode := t.getNode(leaf)
	leafNode.entries = append(leafNode.entries, e)

	var sibling NodeRef[K]
	if len(leafNode.entries) > t.maxEntries {
		sibling = t.splitNode(t, leaf)
	}

	t.adjustTree(t, leaf, sibling)

	return t.findBySeq(leaf, sibling, seq), nil
}

// findBySeq locates the entry with the given insertion sequence number
// among the entries of n and, if non-nil, nn. It panics if the entry can't
// be found: that would mean Insert's own append or a strategy's split lost
// an entry, which is a strategy/core contract violation, not a case a
// caller can recover from.
func (t *Tree[K]) findBySeq(n, nn NodeRef[K], seq uint64) EntryRef[K] {
	if ref, ok := findBySeqIn(t.getNode(n), seq); ok {
		return EntryRef[K]{Node: n, Index: ref}
	}
	if !nn.IsNil() {
		if ref, ok := findBySeqIn(t.getNode(nn), seq); ok {
			return EntryRef[K]{Node: nn, Index: ref}
		}
	}
	panicStrategyContractViolation("inserted entry not found after split_node/adjust_tree")
	return EntryRef[K]{}
}

func findBySeqIn[K any](n *node[K], seq uint64) (int, bool) {
	for i, e := range n.entries {
		if e.hasData && e.seq == seq {
			return i, true
		}
	}
	return 0, false
}
