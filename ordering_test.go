package ordatomic

import "testing"

func TestOrderingString(t *testing.T) {
	cases := map[Ordering]string{
		Relaxed:      "Relaxed",
		Acquire:      "Acquire",
		Release:      "Release",
		AcqRel:       "AcqRel",
		SeqCst:       "SeqCst",
		Ordering(42): "Ordering(42)",
	}
	for o, want := range cases {
		if got := o.String(); got != want {
			t.Errorf("String: got %q, wanted %q", got, want)
		}
	}
}

func TestOrderingValidFor(t *testing.T) {
	type row struct {
		order Ordering
		load  bool
		store bool
		rmw   bool
	}
	table := []row{
		{Relaxed, true, true, true},
		{Acquire, true, false, true},
		{Release, false, true, true},
		{AcqRel, false, false, true},
		{SeqCst, true, true, true},
	}
	for _, r := range table {
		if got := r.order.validFor(opLoad); got != r.load {
			t.Errorf("%v for load: got %v, wanted %v", r.order, got, r.load)
		}
		if got := r.order.validFor(opStore); got != r.store {
			t.Errorf("%v for store: got %v, wanted %v", r.order, got, r.store)
		}
		if got := r.order.validFor(opRMW); got != r.rmw {
			t.Errorf("%v for rmw: got %v, wanted %v", r.order, got, r.rmw)
		}
	}
}
