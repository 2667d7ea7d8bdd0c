package ordatomic

import "errors"

// InvalidOrderingError reports an Ordering that is illegal for the
// attempted operation, such as a Release load or an Acquire store. The
// rejected operation has no effect: the cell's value is unchanged and
// no weaker or stronger ordering is silently substituted.
type InvalidOrderingError struct {
	Op    string // "load", "store", "swap", "compare-and-swap", "fetch-add"
	Order Ordering
}

func (e *InvalidOrderingError) Error() string {
	return "ordatomic: ordering " + e.Order.String() + " is not valid for " + e.Op
}

// ErrAlreadySent is returned by Handoff.Send when a value has already
// been sent on the channel. The first send's effect stands.
var ErrAlreadySent = errors.New("ordatomic: handoff already sent")
