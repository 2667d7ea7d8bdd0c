//go:build race

package ordatomic

import "sync/atomic"

// Under the race detector the TSO fast path is disabled and every
// relaxed access goes through sync/atomic, so the detector observes
// each one.
const isTSO = false

// Conservative: atomic load to satisfy the race detector.
//
//go:nosplit
func loadRelaxedUint64(addr *uint64) uint64 {
	return atomic.LoadUint64(addr)
}

// Conservative: atomic store to satisfy the race detector.
//
//go:nosplit
func storeRelaxedUint64(addr *uint64, val uint64) {
	atomic.StoreUint64(addr, val)
}
