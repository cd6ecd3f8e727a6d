package catalog_test

import (
	"errors"
	"testing"
	"time"

	"picotest/catalog"
)

type fakeGenerator struct {
	period  time.Duration
	started bool
	stopped bool
}

func (f *fakeGenerator) Start(period time.Duration) error {
	f.period = period
	f.started = true
	return nil
}

func (f *fakeGenerator) Stop() { f.stopped = true }

func TestHardwareSquareAbortsWithoutGenerator(t *testing.T) {
	ctx, _, _ := newTestContext()
	r := catalog.NewHardwareSquare("pio wave", 20*time.Microsecond)

	err := r.Init(ctx)
	if !errors.Is(err, catalog.ErrNoGenerator) {
		t.Fatalf("Init without generator = %v, want ErrNoGenerator", err)
	}
}

func TestHardwareSquareStartsGenerator(t *testing.T) {
	ctx, _, clock := newTestContext()
	gen := &fakeGenerator{}
	ctx.Generator = gen

	r := catalog.NewHardwareSquare("pio wave", 20*time.Microsecond)
	if err := r.Init(ctx); err != nil {
		t.Fatal(err)
	}
	if !gen.started {
		t.Fatal("generator not started")
	}
	if gen.period != 20*time.Microsecond {
		t.Errorf("generator period = %v, want 20us", gen.period)
	}

	// Run is only a supervision nap.
	if err := r.Run(ctx); err != nil {
		t.Fatal(err)
	}
	if clock.Sleeps() != 1 {
		t.Errorf("supervision batch slept %d times, want 1", clock.Sleeps())
	}
}
