//go:build ordatomic_opt_cachelinesize_64

package ordatomic

// CacheLineSize pinned to 64 bytes by build tag.
const CacheLineSize = 64
