// Package rtree implements a pluggable in-memory R-tree spatial index.
//
// An R-tree indexes axis-aligned rectangles (see Rect) so that region
// queries (Query) and arbitrary-predicate search (Search) over a large
// number of inserted items can skip whole subtrees whose bounding cover
// can't possibly match. Three strategies — leaf selection, tree
// adjustment, and node splitting — are swappable at construction time via
// WithStrategies; the defaults (ChooseLeafGuttman, AdjustTreeGuttman,
// SplitNodeQuadratic) implement Guttman's 1984 algorithms.
//
// The tree is single-threaded and synchronous: callers must serialize
// Insert against any in-flight traversal on the same Tree, and there is no
// support for concurrent mutation, disk persistence, bulk loading, or
// deletion.
package rtree
