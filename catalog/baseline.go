package catalog

import "picotest/core"

// Baseline does nothing beyond the executor's own bring-up and shutdown. It
// exists to verify the deterministic baseline: configure the pin, run, and
// the pin reads the safe level before, during and after.
type Baseline struct {
	name string
}

func NewBaseline(name string) *Baseline { return &Baseline{name: name} }

func (b *Baseline) Spec() core.RoutineSpec {
	return core.RoutineSpec{Name: b.name, Pins: 1, Repeat: core.SingleShot}
}

func (b *Baseline) Init(ctx *core.TimingContext) error { return nil }
func (b *Baseline) Run(ctx *core.TimingContext) error  { return nil }
