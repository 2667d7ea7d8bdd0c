package ordatomic

import "sync/atomic"

// SpinLock is a busy-waiting mutual exclusion lock built on a Cell of
// one boolean "locked" flag. Lock acquires the flag with an acquiring
// compare-and-swap; Unlock clears it with a release store. The pairing
// gives the memory-handoff contract: every plain write the holder made
// between Lock returning and Unlock is visible to the next goroutine
// whose Lock returns.
//
// There is no fairness guarantee and no timeout; under contention a
// spinner can starve. Intended for very small critical sections. The
// zero SpinLock is unlocked and ready to use. A SpinLock must not be
// copied after first use.
type SpinLock struct {
	_     noCopy
	state Cell[bool]
	// Isolate the lock word from neighbouring allocations.
	_ [CacheLineSize - 8]byte
}

// NewSpinLock returns an unlocked SpinLock.
func NewSpinLock() *SpinLock {
	return &SpinLock{}
}

// Lock spins until the lock is acquired. The spin is unbounded; backoff
// (bounded active spinning, then a short sleep) changes no external
// contract.
func (l *SpinLock) Lock() {
	if l.TryLock() {
		return
	}
	var spins int
	for {
		// Optimistic check before the CAS keeps contending spinners
		// from hammering the line in exclusive mode.
		if loadRelaxedUint64(&l.state.w) == packWord(false) && l.TryLock() {
			return
		}
		delay(&spins)
	}
}

// TryLock makes a single attempt to acquire the lock and reports
// whether it succeeded. It never spins.
func (l *SpinLock) TryLock() bool {
	return atomic.CompareAndSwapUint64(&l.state.w, packWord(false), packWord(true))
}

// Unlock releases the lock, publishing the holder's writes to the next
// acquirer. The caller must hold the lock: unlocking an unheld SpinLock
// is a contract violation and the behavior is undefined.
func (l *SpinLock) Unlock() {
	atomic.StoreUint64(&l.state.w, packWord(false))
}
