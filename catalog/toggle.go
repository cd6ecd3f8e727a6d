package catalog

import (
	"time"

	"picotest/core"
)

// batchToggles is the bounded amount of work one continuous Run call
// performs. Heartbeats and cancellation checks happen at batch boundaries, so
// a batch is also the heartbeat floor: never more than one heartbeat per
// 1000 toggles.
const batchToggles = 1000

// Toggle drives one pin high/low continuously, spending each half period in
// the pause function its constructor installed. This covers the sleep,
// busy-wait, busy+yield, nop-loop and unpaced catalog entries; they differ
// only in how the half period is spent.
type Toggle struct {
	name  string
	pause func(ctx *core.TimingContext)
}

// NewSleepToggle yields to the scheduler for each half period. Expect the
// period to stretch once it drops near the scheduler's tick granularity.
func NewSleepToggle(name string, period time.Duration) *Toggle {
	half := period / 2
	return &Toggle{name: name, pause: func(ctx *core.TimingContext) {
		ctx.Clock.Sleep(half)
	}}
}

// NewBusyToggle spins on the microsecond timer for each half period.
func NewBusyToggle(name string, period time.Duration) *Toggle {
	half := period / 2
	return &Toggle{name: name, pause: func(ctx *core.TimingContext) {
		core.BusyWait(ctx.Clock, half)
	}}
}

// NewBusyYieldToggle spins for the half period, then yields once, showing the
// cost of a cooperative yield on top of a busy wait.
func NewBusyYieldToggle(name string, period time.Duration) *Toggle {
	half := period / 2
	return &Toggle{name: name, pause: func(ctx *core.TimingContext) {
		core.BusyWait(ctx.Clock, half)
		ctx.Clock.Yield()
	}}
}

// NewUnpacedToggle toggles as fast as the Pin interface allows.
func NewUnpacedToggle(name string) *Toggle {
	return &Toggle{name: name}
}

// NewNopToggle spends each half period in a fixed-iteration nop loop.
func NewNopToggle(name string, iterations int) *Toggle {
	return &Toggle{name: name, pause: func(ctx *core.TimingContext) {
		nopWait(iterations)
	}}
}

// NewCalibratedNopToggle spends each half period in a nop loop sized by the
// wait calibration constants.
func NewCalibratedNopToggle(name string, period time.Duration) *Toggle {
	half := period / 2
	return &Toggle{name: name, pause: func(ctx *core.TimingContext) {
		calibratedWait(half)
	}}
}

func (t *Toggle) Spec() core.RoutineSpec {
	return core.RoutineSpec{Name: t.name, Pins: 1, Repeat: core.Continuous}
}

func (t *Toggle) Init(ctx *core.TimingContext) error { return nil }

func (t *Toggle) Run(ctx *core.TimingContext) error {
	pin := ctx.Pins[0]
	if t.pause == nil {
		for i := 0; i < batchToggles; i += 2 {
			pin.High()
			pin.Low()
		}
		return nil
	}
	for i := 0; i < batchToggles; i += 2 {
		pin.High()
		t.pause(ctx)
		pin.Low()
		t.pause(ctx)
	}
	return nil
}

// BoundedToggle performs a fixed total number of toggles at a busy-paced
// period and then completes. Single-shot: the executor idles afterwards, so
// an instrument capture ends on a known quiet baseline.
type BoundedToggle struct {
	name    string
	toggles int
	half    time.Duration
}

func NewBoundedToggle(name string, toggles int, period time.Duration) *BoundedToggle {
	return &BoundedToggle{name: name, toggles: toggles, half: period / 2}
}

func (b *BoundedToggle) Spec() core.RoutineSpec {
	return core.RoutineSpec{Name: b.name, Pins: 1, Repeat: core.SingleShot}
}

func (b *BoundedToggle) Init(ctx *core.TimingContext) error { return nil }

func (b *BoundedToggle) Run(ctx *core.TimingContext) error {
	pin := ctx.Pins[0]
	for i := 0; i < b.toggles; i += 2 {
		pin.High()
		core.BusyWait(ctx.Clock, b.half)
		pin.Low()
		core.BusyWait(ctx.Clock, b.half)
	}
	return nil
}
