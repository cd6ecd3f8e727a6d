package catalog_test

import (
	"testing"
	"time"

	"picotest/catalog"
)

type fakeRawPin struct {
	highs int
	lows  int
}

func (f *fakeRawPin) SetHigh() { f.highs++ }
func (f *fakeRawPin) SetLow()  { f.lows++ }

func TestRawToggleUsesFastPath(t *testing.T) {
	ctx, pin, _ := newTestContext()
	raw := &fakeRawPin{}
	ctx.Raw = raw

	r := catalog.NewRawUnpacedToggle("raw flat out")
	if err := r.Run(ctx); err != nil {
		t.Fatal(err)
	}
	if raw.highs != 500 || raw.lows != 500 {
		t.Errorf("raw writes = %d high / %d low, want 500/500", raw.highs, raw.lows)
	}
	if len(pin.Edges()) != 0 {
		t.Errorf("pin interface used %d times despite raw fast path", len(pin.Edges()))
	}
}

func TestRawToggleFallsBackToPin(t *testing.T) {
	ctx, pin, _ := newTestContext()

	r := catalog.NewRawPaddedToggle("raw padded", 10, 9)
	if err := r.Run(ctx); err != nil {
		t.Fatal(err)
	}
	if got := pin.Toggles(); got != 1000 {
		t.Errorf("fallback batch produced %d toggles, want 1000", got)
	}
}

func TestRawPacedToggle(t *testing.T) {
	ctx, _, clock := newTestContext()
	clock.AutoStep = 1
	raw := &fakeRawPin{}
	ctx.Raw = raw

	start := clock.Peek()
	r := catalog.NewRawPacedToggle("raw paced", 20*time.Microsecond)
	if err := r.Run(ctx); err != nil {
		t.Fatal(err)
	}
	if raw.highs != 500 {
		t.Errorf("raw writes = %d, want 500", raw.highs)
	}
	// 1000 busy-waited half periods of 10us each.
	if elapsed := clock.Peek() - start; elapsed < 10000 {
		t.Errorf("batch took %dus of simulated time, want >= 10000us", elapsed)
	}
}
