package catalog_test

import (
	"testing"
	"time"

	"picotest/catalog"
)

// With a simulated clock whose Sleep is exact, deadline-scheduled edges must
// land on exact multiples of the half period with no drift.
func TestDeadlineToggleEdgeTimes(t *testing.T) {
	ctx, pin, _ := newTestContext()
	r := catalog.NewDeadlineToggle("deadline", 20*time.Microsecond)

	if err := r.Init(ctx); err != nil {
		t.Fatal(err)
	}
	if err := r.Run(ctx); err != nil {
		t.Fatal(err)
	}

	edges := pin.Edges()
	if len(edges) != 1000 {
		t.Fatalf("got %d edges, want 1000", len(edges))
	}
	for i, e := range edges {
		want := uint64(i) * 10
		if e.At != want {
			t.Fatalf("edge %d at %dus, want %dus", i, e.At, want)
		}
	}
}

func TestDeadlineToggleNoDriftAcrossBatches(t *testing.T) {
	ctx, pin, _ := newTestContext()
	r := catalog.NewDeadlineToggle("deadline", 20*time.Microsecond)

	if err := r.Init(ctx); err != nil {
		t.Fatal(err)
	}
	for b := 0; b < 3; b++ {
		if err := r.Run(ctx); err != nil {
			t.Fatal(err)
		}
	}

	edges := pin.Edges()
	last := edges[len(edges)-1]
	want := uint64(len(edges)-1) * 10
	if last.At != want {
		t.Errorf("final edge at %dus, want %dus (drift across batches)", last.At, want)
	}
}
