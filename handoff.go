package ordatomic

import "sync/atomic"

// Handoff is a one-shot single-producer/single-consumer transfer: one
// goroutine publishes exactly one value, one goroutine polls for it.
//
// The payload slot is plain memory. Send writes the slot and then
// release-stores a ready flag; TryRecv acquire-loads the flag and reads
// the slot only after observing true. That single release/acquire pair
// carries the payload and every other plain write the sender made
// before Send, so the two sides never need to synchronize field by
// field.
//
// The zero Handoff is empty and ready to use. A Handoff must not be
// copied after first use. At most one goroutine may send and at most
// one may receive; those roles are the caller's contract.
type Handoff[T any] struct {
	_     noCopy
	sent  Cell[bool]
	ready Cell[bool]
	taken bool // consumer side only; plain because there is one consumer
	val   T
}

// NewHandoff returns an empty channel.
func NewHandoff[T any]() *Handoff[T] {
	return &Handoff[T]{}
}

// Send publishes v to the receiver. Only the first call succeeds; every
// later call returns ErrAlreadySent and leaves the channel untouched,
// so the first value still reaches the receiver.
func (h *Handoff[T]) Send(v T) error {
	// Claim the send permit first, so even a misbehaving second
	// producer can never touch the slot while the receiver may already
	// be reading it.
	if !atomic.CompareAndSwapUint64(&h.sent.w, packWord(false), packWord(true)) {
		return ErrAlreadySent
	}
	h.val = v // plain write, published by the release store below
	atomic.StoreUint64(&h.ready.w, packWord(true))
	return nil
}

// TryRecv polls for the value; it never blocks. Before a send it
// returns the zero value and false. Once it has returned a value, the
// channel is consumed and every later call reports empty again.
func (h *Handoff[T]) TryRecv() (T, bool) {
	var zero T
	if h.taken {
		return zero, false
	}
	if atomic.LoadUint64(&h.ready.w) != packWord(true) {
		return zero, false
	}
	h.taken = true
	v := h.val
	h.val = zero // let a pointerful payload be collected
	return v, true
}
