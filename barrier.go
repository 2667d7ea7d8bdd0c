package ordatomic

import "sync/atomic"

// Barrier is an N-party rendezvous: each party calls Wait, and no Wait
// returns until all n parties have arrived.
//
// Arrival is a fetch-add with acquire-release semantics: it publishes
// the writes the arriving goroutine made before Wait and, together with
// the release of the generation word and the waiters' acquire loads of
// it, makes every party's prior writes visible to every party once Wait
// returns. A plain load or store could not do both jobs at once; only a
// read-modify-write has the two sides.
//
// The barrier re-arms itself: the last arriver of a phase resets the
// count and advances the generation, so the same Barrier serves any
// number of phases. A Barrier must not be copied after first use.
type Barrier struct {
	_       noCopy
	n       uint64
	arrived Cell[uint64]
	gen     Cell[uint64]
}

// NewBarrier returns a barrier for n parties. It panics if n < 1.
func NewBarrier(n int) *Barrier {
	if n < 1 {
		panic("ordatomic: barrier party count must be at least 1")
	}
	return &Barrier{n: uint64(n)}
}

// Wait blocks (busy-waits) until all n parties of the current phase
// have called Wait, then returns in every party. After it returns, all
// writes any party made before its Wait are visible to every party.
func (b *Barrier) Wait() {
	gen := atomic.LoadUint64(&b.gen.w)
	if atomic.AddUint64(&b.arrived.w, 1) == b.n {
		// Last arriver: re-arm for the next phase, then release the
		// parties spinning on the generation word. The reset is safe
		// because no party can arrive for the next phase before it
		// observes the generation advance, which happens after.
		atomic.StoreUint64(&b.arrived.w, 0)
		atomic.AddUint64(&b.gen.w, 1)
		return
	}
	var spins int
	for atomic.LoadUint64(&b.gen.w) == gen {
		delay(&spins)
	}
}
