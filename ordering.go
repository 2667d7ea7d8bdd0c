package ordatomic

import "strconv"

// Ordering selects how strongly an atomic operation constrains the
// reordering of surrounding memory accesses and how far its effects
// propagate to other goroutines.
//
// Regardless of the chosen Ordering, every operation on a single Cell
// participates in one total modification order for that cell: no
// goroutine ever observes a cell's value move backward relative to
// another goroutine's observations. Ordering only governs
// synchronization with other memory locations.
type Ordering int

const (
	// Relaxed guarantees only the single-location total order. It
	// implies no visibility of any other memory location. Sufficient
	// for standalone counters and statistics.
	Relaxed Ordering = iota

	// Acquire is a read-side ordering: a load that observes the value
	// written by a Release store additionally observes every plain
	// write the releasing goroutine made before that store. Legal on
	// loads and read-modify-writes.
	Acquire

	// Release is a write-side ordering: it publishes every plain write
	// made before it to whichever goroutine later performs the
	// matching Acquire load on the same location. Legal on stores and
	// read-modify-writes.
	Release

	// AcqRel combines Acquire and Release and is therefore legal only
	// on read-modify-write operations, which have both a read side and
	// a write side.
	AcqRel

	// SeqCst is the strongest ordering: in addition to acquire-release
	// semantics, all SeqCst operations across all cells appear in one
	// global order identical from every goroutine's perspective.
	SeqCst
)

// opKind classifies cell operations for ordering validation.
type opKind int

const (
	opLoad opKind = iota
	opStore
	opRMW
)

// validFor reports whether the ordering is legal for the operation
// kind: a load has no write side to release with, a store has no read
// side to acquire with, and AcqRel needs both.
func (o Ordering) validFor(k opKind) bool {
	switch k {
	case opLoad:
		return o == Relaxed || o == Acquire || o == SeqCst
	case opStore:
		return o == Relaxed || o == Release || o == SeqCst
	default:
		return o >= Relaxed && o <= SeqCst
	}
}

func (o Ordering) String() string {
	switch o {
	case Relaxed:
		return "Relaxed"
	case Acquire:
		return "Acquire"
	case Release:
		return "Release"
	case AcqRel:
		return "AcqRel"
	case SeqCst:
		return "SeqCst"
	default:
		return "Ordering(" + strconv.Itoa(int(o)) + ")"
	}
}
