package ordatomic

import (
	"errors"
	"runtime"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestHandoffEmptyBeforeSend(t *testing.T) {
	h := NewHandoff[int]()
	if v, ok := h.TryRecv(); ok || v != 0 {
		t.Fatalf("TryRecv before Send: got (%d, %v), wanted (0, false)", v, ok)
	}
}

func TestHandoffSendRecv(t *testing.T) {
	type payload struct {
		ID   uint64
		Name string
		Tags []string
	}
	want := payload{ID: 7, Name: "seven", Tags: []string{"odd", "prime"}}

	h := NewHandoff[payload]()
	if err := h.Send(want); err != nil {
		t.Fatalf("Send: %v", err)
	}
	got, ok := h.TryRecv()
	if !ok {
		t.Fatal("TryRecv after Send: got false")
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("payload mismatch (-want +got):\n%s", diff)
	}
}

func TestHandoffSingleUse(t *testing.T) {
	h := NewHandoff[string]()
	if err := h.Send("once"); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if _, ok := h.TryRecv(); !ok {
		t.Fatal("first TryRecv: got false")
	}
	if v, ok := h.TryRecv(); ok || v != "" {
		t.Fatalf("second TryRecv: got (%q, %v), wanted (\"\", false)", v, ok)
	}
}

func TestHandoffDoubleSendRejected(t *testing.T) {
	h := NewHandoff[int]()
	if err := h.Send(1); err != nil {
		t.Fatalf("first Send: %v", err)
	}
	if err := h.Send(2); !errors.Is(err, ErrAlreadySent) {
		t.Fatalf("second Send: got %v, wanted ErrAlreadySent", err)
	}
	if v, ok := h.TryRecv(); !ok || v != 1 {
		t.Fatalf("TryRecv: got (%d, %v), wanted the first value (1, true)", v, ok)
	}
}

// Release/acquire visibility: every plain write the sender performs
// before Send must be visible to the receiver after it observes the
// ready flag, on every one of many interleaved trials.
func TestHandoffVisibilityStress(t *testing.T) {
	const (
		trials   = 10000
		elements = 8
	)
	for trial := range trials {
		h := NewHandoff[int]()
		data := make([]uint64, elements) // plain memory, never atomic

		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range data {
				data[i] = uint64(trial)*elements + uint64(i)
			}
			if err := h.Send(trial); err != nil {
				t.Error(err)
			}
		}()

		var got int
		for {
			v, ok := h.TryRecv()
			if ok {
				got = v
				break
			}
			runtime.Gosched()
		}
		if got != trial {
			t.Fatalf("trial %d: received %d", trial, got)
		}

		want := make([]uint64, elements)
		for i := range want {
			want[i] = uint64(trial)*elements + uint64(i)
		}
		if diff := cmp.Diff(want, data); diff != "" {
			t.Fatalf("trial %d: plain writes not visible (-want +got):\n%s", trial, diff)
		}
		wg.Wait()
	}
}

// A racing second producer must lose the permit race and leave the
// winner's value intact.
func TestHandoffConcurrentSenders(t *testing.T) {
	const trials = 1000
	for range trials {
		h := NewHandoff[int]()

		var wg sync.WaitGroup
		errs := make([]error, 2)
		wg.Add(2)
		for s := range 2 {
			go func(s int) {
				defer wg.Done()
				errs[s] = h.Send(s + 1)
			}(s)
		}
		wg.Wait()

		var failed int
		for _, err := range errs {
			if errors.Is(err, ErrAlreadySent) {
				failed++
			} else if err != nil {
				t.Fatal(err)
			}
		}
		if failed != 1 {
			t.Fatalf("rejected sends: got %d, wanted 1", failed)
		}

		v, ok := h.TryRecv()
		if !ok || (v != 1 && v != 2) {
			t.Fatalf("TryRecv: got (%d, %v)", v, ok)
		}
		// The delivered value must be the winner's.
		if errs[v-1] != nil {
			t.Fatalf("delivered value %d came from the rejected sender", v)
		}
	}
}
