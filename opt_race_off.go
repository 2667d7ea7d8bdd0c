//go:build !race

package ordatomic

import (
	"math/bits"
	"runtime"
	"sync/atomic"
)

// Detect TSO architectures; on TSO, a plain read or write of an aligned
// native word already carries everything a relaxed operation needs:
// indivisibility and the single-location total order.
const isTSO = runtime.GOARCH == "amd64" ||
	runtime.GOARCH == "386" ||
	runtime.GOARCH == "s390x"

// loadRelaxedUint64 is a relaxed load of *addr; plain on 64-bit TSO,
// otherwise atomic.
//
//go:nosplit
func loadRelaxedUint64(addr *uint64) uint64 {
	//goland:noinspection ALL
	if isTSO && bits.UintSize >= 64 {
		return *addr
	} else {
		return atomic.LoadUint64(addr)
	}
}

// storeRelaxedUint64 is a relaxed store to *addr; plain on 64-bit TSO,
// otherwise atomic.
//
//go:nosplit
func storeRelaxedUint64(addr *uint64, val uint64) {
	//goland:noinspection ALL
	if isTSO && bits.UintSize >= 64 {
		*addr = val
	} else {
		atomic.StoreUint64(addr, val)
	}
}
