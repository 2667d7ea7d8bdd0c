//go:build !ordatomic_opt_cachelinesize_32 && !ordatomic_opt_cachelinesize_64 && !ordatomic_opt_cachelinesize_128 && !ordatomic_opt_cachelinesize_256

package ordatomic

import (
	"unsafe"

	"golang.org/x/sys/cpu"
)

// CacheLineSize is used in structure padding to prevent false sharing.
// It's automatically calculated using the `golang.org/x/sys` package,
// and can be pinned with the ordatomic_opt_cachelinesize_* build tags.
const CacheLineSize = unsafe.Sizeof(cpu.CacheLinePad{})
