package ordatomic

import (
	"time"
	_ "unsafe" // for go:linkname
)

// enableSpin controls whether waiting operations spin actively using
// the CPU's PAUSE instruction (via runtime_doSpin) before falling back
// to sleeping. Active spinning wins for short waits but may reduce
// throughput under heavy contention.
const enableSpin = true

// noCopy may be embedded into structs which must not be copied after
// first use; `go vet -copylocks` flags copies of anything containing it.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// delay backs off a busy-wait loop: bounded active spinning first, then
// a short sleep.
func delay(spins *int) {
	const yieldSleep = 500 * time.Microsecond
	if //goland:noinspection ALL
	enableSpin && runtime_canSpin(*spins) {
		runtime_doSpin()
		*spins++
	} else {
		// time.Sleep with a non-zero duration works effectively as
		// backoff under high concurrency.
		time.Sleep(yieldSleep)
		*spins = 0
	}
}

// nolint:all
//
//go:linkname runtime_canSpin sync.runtime_canSpin
//go:nosplit
func runtime_canSpin(i int) bool

// nolint:all
//
//go:linkname runtime_doSpin sync.runtime_doSpin
//go:nosplit
func runtime_doSpin()
