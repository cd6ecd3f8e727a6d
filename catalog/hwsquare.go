package catalog

import (
	"time"

	"picotest/core"
)

// HardwareSquare hands waveform generation to the target's hardware engine
// (PIO on the rp2040) and only supervises it. The CPU contributes no jitter;
// each Run call is a supervision nap so the executor's heartbeat still shows
// the firmware is alive. Aborts on targets without a generator.
type HardwareSquare struct {
	name   string
	period time.Duration
}

func NewHardwareSquare(name string, period time.Duration) *HardwareSquare {
	return &HardwareSquare{name: name, period: period}
}

func (h *HardwareSquare) Spec() core.RoutineSpec {
	return core.RoutineSpec{Name: h.name, Pins: 1, Repeat: core.Continuous}
}

func (h *HardwareSquare) Init(ctx *core.TimingContext) error {
	if ctx.Generator == nil {
		return ErrNoGenerator
	}
	return ctx.Generator.Start(h.period)
}

func (h *HardwareSquare) Run(ctx *core.TimingContext) error {
	ctx.Clock.Sleep(100 * time.Millisecond)
	return nil
}
