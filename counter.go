package ordatomic

import "sync/atomic"

// Counter is a monotonic counter built on a relaxed-ordered Cell.
// Relaxed is all a standalone counter needs: increments are indivisible
// and every goroutine observes them in one consistent per-cell order,
// but no visibility of any other memory location is implied. To hand
// related data between goroutines, pair the counter with SpinLock or
// Handoff instead of relying on its ordering.
//
// Reads use the relaxed fast path; increments use the machine's atomic
// add, which on Go is stronger than relaxed (there is no weaker
// read-modify-write available), which is permitted: an implementation
// ordering may always exceed the requested one.
//
// The zero Counter is ready to use. A Counter must not be copied after
// first use.
type Counter struct {
	_ noCopy
	n Cell[uint64]
	// Keep the hot word on its own cache line so neighbouring
	// allocations do not false-share with it.
	_ [CacheLineSize - 8]byte
}

// NewCounter returns a counter starting at initial.
func NewCounter(initial uint64) *Counter {
	c := &Counter{}
	c.n.w = initial
	return c
}

// Inc atomically increments the counter and returns the value held
// immediately before the increment.
func (c *Counter) Inc() uint64 {
	return c.Add(1)
}

// Add atomically adds delta and returns the value held immediately
// before the addition, wrapping modulo 2^64.
func (c *Counter) Add(delta uint64) uint64 {
	return atomic.AddUint64(&c.n.w, delta) - delta
}

// Get returns the current count with a relaxed load.
func (c *Counter) Get() uint64 {
	return loadRelaxedUint64(&c.n.w)
}
