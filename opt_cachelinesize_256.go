//go:build ordatomic_opt_cachelinesize_256

package ordatomic

// CacheLineSize pinned to 256 bytes by build tag.
const CacheLineSize = 256
