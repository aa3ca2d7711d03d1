package rtree

import "errors"

// Sentinel errors returned by this package. Wrap with fmt.Errorf("...: %w")
// at the call site that detects the problem; compare with errors.Is.
var (
	// ErrInvalidRectangle is returned when a Rect's bounds fail min <= max
	// on either axis.
	ErrInvalidRectangle = errors.New("rtree: invalid rectangle")

	// ErrInvalidFanout is returned by New when maxEntries/minEntries don't
	// satisfy maxEntries >= 2 && 1 <= minEntries <= ceil(maxEntries/2).
	ErrInvalidFanout = errors.New("rtree: invalid fanout")
)

// errStrategyContractViolation is panicked (never returned as an error) when
// a check catches a strategy breaking its contract: ChooseLeafGuttman
// reaching an empty non-leaf node, SplitNodeQuadratic producing a group
// smaller than minEntries, a node's parent holding no entry for it, or an
// inserted entry missing from both halves after a split. A strategy that
// returns a node outside the tree or leaves a node overflowing is not
// checked. This is a programmer error in a plugged-in strategy, not a
// recoverable runtime condition.
type errStrategyContractViolation struct {
	msg string
}

func (e *errStrategyContractViolation) Error() string {
	return "rtree: strategy contract violation: " + e.msg
}

func panicStrategyContractViolation(msg string) {
	panic(&errStrategyContractViolation{msg: msg})
}
