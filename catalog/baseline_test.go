package catalog_test

import (
	"testing"

	"picotest/catalog"
	"picotest/core"
	"picotest/sim"
)

// Round-trip through the executor: bring up the context, run the no-op
// baseline, and the pin must read the safe level throughout and afterwards.
func TestBaselineRoundTrip(t *testing.T) {
	clock := sim.NewClock()
	pin := sim.NewPin(clock)

	exec := core.NewExecutor(core.Config{
		Clock: clock,
		Pins:  []core.Pin{pin},
	})

	if state := exec.Execute(catalog.NewBaseline("baseline")); state != core.StateIdle {
		t.Fatalf("terminal state = %v, want idle", state)
	}
	if !pin.Configured() {
		t.Error("baseline run never configured the pin")
	}
	if pin.Get() {
		t.Error("pin not at safe level after baseline run")
	}
	for _, e := range pin.Edges() {
		if e.High {
			t.Fatal("baseline run drove the pin high")
		}
	}
}
