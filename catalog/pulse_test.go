package catalog_test

import (
	"testing"
	"time"

	"picotest/catalog"
	"picotest/core"
)

func TestPulseTrainShape(t *testing.T) {
	ctx, pin, clock := newTestContext()
	clock.AutoStep = 1
	r := catalog.NewPulseTrain("3 pulses", 3, 10*time.Microsecond, 5*time.Microsecond)

	if r.Spec().Repeat != core.SingleShot {
		t.Fatal("pulse train should be single-shot")
	}
	if err := r.Run(ctx); err != nil {
		t.Fatal(err)
	}

	edges := pin.Edges()
	if len(edges) != 6 {
		t.Fatalf("got %d edges, want 6 (3 pulses)", len(edges))
	}
	for i, e := range edges {
		wantHigh := i%2 == 0
		if e.High != wantHigh {
			t.Errorf("edge %d high=%v, want %v", i, e.High, wantHigh)
		}
	}
	// Each pulse must be at least the requested width.
	for i := 0; i+1 < len(edges); i += 2 {
		if width := edges[i+1].At - edges[i].At; width < 10 {
			t.Errorf("pulse %d width %dus, want >= 10us", i/2, width)
		}
	}
	if pin.Get() {
		t.Error("pulse train must end low")
	}
}

func TestSinglePulse(t *testing.T) {
	ctx, pin, clock := newTestContext()
	clock.AutoStep = 1
	r := catalog.NewPulseTrain("one pulse", 1, 100*time.Microsecond, 0)

	if err := r.Run(ctx); err != nil {
		t.Fatal(err)
	}
	if len(pin.Edges()) != 2 {
		t.Fatalf("got %d edges, want 2", len(pin.Edges()))
	}
	if pin.Get() {
		t.Error("pulse must end low")
	}
}
