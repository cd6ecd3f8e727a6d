package catalog

import (
	"time"

	"picotest/core"
)

// PulseTrain emits a fixed number of pulses of the given width, separated by
// the given gap, then completes. Single-shot: the executor drives the pin low
// and idles afterwards, so the capture ends on the safe baseline.
type PulseTrain struct {
	name  string
	count int
	width time.Duration
	gap   time.Duration
}

func NewPulseTrain(name string, count int, width, gap time.Duration) *PulseTrain {
	return &PulseTrain{name: name, count: count, width: width, gap: gap}
}

func (p *PulseTrain) Spec() core.RoutineSpec {
	return core.RoutineSpec{Name: p.name, Pins: 1, Repeat: core.SingleShot}
}

func (p *PulseTrain) Init(ctx *core.TimingContext) error { return nil }

func (p *PulseTrain) Run(ctx *core.TimingContext) error {
	pin := ctx.Pins[0]
	for i := 0; i < p.count; i++ {
		if i > 0 {
			core.BusyWait(ctx.Clock, p.gap)
		}
		pin.High()
		core.BusyWait(ctx.Clock, p.width)
		pin.Low()
	}
	return nil
}
