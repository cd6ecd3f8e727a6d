package core_test

import (
	"testing"
	"time"

	"picotest/core"
	"picotest/sim"
)

func TestBusyWaitElapses(t *testing.T) {
	clock := sim.NewClock()
	clock.AutoStep = 1 // each Ticks read advances 1us

	start := clock.Peek()
	core.BusyWait(clock, 10*time.Microsecond)
	if elapsed := clock.Peek() - start; elapsed < 10 {
		t.Errorf("busy wait returned after %dus, want >= 10us", elapsed)
	}
}

func TestBusyWaitSubResolution(t *testing.T) {
	clock := sim.NewClock()
	clock.AutoStep = 1

	core.BusyWait(clock, 500*time.Nanosecond)
	if clock.Peek() != 0 {
		t.Errorf("sub-microsecond wait read the clock %d times, want 0", clock.Peek())
	}
}
