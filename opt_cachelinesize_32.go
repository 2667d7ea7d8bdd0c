//go:build ordatomic_opt_cachelinesize_32

package ordatomic

// CacheLineSize pinned to 32 bytes by build tag.
const CacheLineSize = 32
