// Package ordatomic provides a small set of lock-free synchronization
// primitives built directly on atomic memory operations with explicit
// memory orderings: a generic atomic cell, a relaxed monotonic counter,
// a spin lock, a one-shot handoff channel, and an N-party barrier.
//
// Cell exposes the ordering choice and validates it per operation; the
// higher primitives fix the one ordering their correctness depends on
// and expose no ordering parameter at all.
package ordatomic

import (
	"sync/atomic"
	"unsafe"
)

// Integer constrains the cell types that support FetchAdd: fixed and
// native width integers with wrapping two's-complement arithmetic.
type Integer interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int |
		~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr
}

// Value constrains Cell to word-sized plain data: booleans, integers of
// any fixed width, and pointer-sized handles (uintptr). Pointer types
// are excluded on purpose: the cell stores raw bit patterns in a word
// the garbage collector does not scan.
type Value interface {
	~bool | Integer
}

// Cell is a memory location holding one value of type T, accessible
// only through atomic operations carrying an explicit Ordering. It is
// the foundation the higher primitives in this package are built on.
//
// The value is kept as the bit pattern of T widened into one aligned
// machine word, so every access is a single indivisible instruction:
// no goroutine ever observes a partially written value, and all
// operations on one cell form a single total modification order shared
// by every goroutine, independent of the Ordering used.
//
// The zero Cell holds the zero value of T. A Cell must not be copied
// after first use, and the underlying memory must not be written
// except through the Cell's operations.
type Cell[T Value] struct {
	_ [0]atomic.Uint64 // force 8-byte alignment on 32-bit targets
	w uint64           // bit pattern of T, zero-extended to the word
}

// NewCell returns a cell initialized to v. Construction is plain
// memory access: publish the cell itself (e.g. via a channel or a
// Release store) before sharing it across goroutines.
func NewCell[T Value](v T) *Cell[T] {
	return &Cell[T]{w: packWord(v)}
}

// packWord widens v into a zero-initialized word, so equality on words
// coincides with equality on values of T.
//
//go:nosplit
func packWord[T Value](v T) uint64 {
	var w uint64
	*(*T)(unsafe.Pointer(&w)) = v
	return w
}

//go:nosplit
func unpackWord[T Value](w uint64) T {
	return *(*T)(unsafe.Pointer(&w))
}

// Load returns the current value. order must be Relaxed, Acquire, or
// SeqCst; a load has no write side, so Release and AcqRel are rejected
// with InvalidOrderingError.
func (c *Cell[T]) Load(order Ordering) (T, error) {
	if !order.validFor(opLoad) {
		var zero T
		return zero, &InvalidOrderingError{Op: "load", Order: order}
	}
	if order == Relaxed {
		return unpackWord[T](loadRelaxedUint64(&c.w)), nil
	}
	return unpackWord[T](atomic.LoadUint64(&c.w)), nil
}

// Store writes v. order must be Relaxed, Release, or SeqCst; a store
// has no read side, so Acquire and AcqRel are rejected with
// InvalidOrderingError.
func (c *Cell[T]) Store(v T, order Ordering) error {
	if !order.validFor(opStore) {
		return &InvalidOrderingError{Op: "store", Order: order}
	}
	if order == Relaxed {
		storeRelaxedUint64(&c.w, packWord(v))
		return nil
	}
	atomic.StoreUint64(&c.w, packWord(v))
	return nil
}

// Swap atomically replaces the value with v and returns the previous
// value. Any ordering is legal on a read-modify-write.
func (c *Cell[T]) Swap(v T, order Ordering) (T, error) {
	if !order.validFor(opRMW) {
		var zero T
		return zero, &InvalidOrderingError{Op: "swap", Order: order}
	}
	return unpackWord[T](atomic.SwapUint64(&c.w, packWord(v))), nil
}

// CompareAndSwap atomically replaces the value with new if the current
// value equals expected. It returns the value observed immediately
// before the operation: equal to expected on success, the actual
// current value on failure (in which case the cell is unchanged). Any
// ordering is legal; sync/atomic executes read-modify-writes with
// sequentially consistent strength, a superset of every requested
// ordering.
func (c *Cell[T]) CompareAndSwap(expected, new T, order Ordering) (T, error) {
	if !order.validFor(opRMW) {
		var zero T
		return zero, &InvalidOrderingError{Op: "compare-and-swap", Order: order}
	}
	exp := packWord(expected)
	for {
		if atomic.CompareAndSwapUint64(&c.w, exp, packWord(new)) {
			return expected, nil
		}
		cur := atomic.LoadUint64(&c.w)
		if cur != exp {
			return unpackWord[T](cur), nil
		}
		// The word held exp again by the time of the reload; retry the
		// swap rather than misreporting a failure against exp itself.
	}
}

// FetchAdd atomically adds delta to the cell and returns the value held
// immediately before the addition. The sum wraps at T's width (modular
// arithmetic), so overflow is never an error. Any ordering is legal.
//
// FetchAdd is a free function rather than a method so it can carry the
// tighter Integer constraint.
func FetchAdd[T Integer](c *Cell[T], delta T, order Ordering) (T, error) {
	if !order.validFor(opRMW) {
		var zero T
		return zero, &InvalidOrderingError{Op: "fetch-add", Order: order}
	}
	// The addition is computed in T so narrow types wrap at their own
	// width, then installed with a CAS on the underlying word.
	for {
		old := atomic.LoadUint64(&c.w)
		prev := unpackWord[T](old)
		if atomic.CompareAndSwapUint64(&c.w, old, packWord(prev+delta)) {
			return prev, nil
		}
	}
}
