//go:build ordatomic_opt_cachelinesize_128

package ordatomic

// CacheLineSize pinned to 128 bytes by build tag.
const CacheLineSize = 128
