package catalog

import (
	"time"

	"picotest/core"
)

// DeadlineToggle schedules each edge at an absolute deadline instead of
// sleeping a relative interval, so per-edge overhead does not accumulate as
// period drift.
type DeadlineToggle struct {
	name string
	half uint64 // microseconds
	next uint64
}

func NewDeadlineToggle(name string, period time.Duration) *DeadlineToggle {
	return &DeadlineToggle{name: name, half: uint64((period / 2).Microseconds())}
}

func (d *DeadlineToggle) Spec() core.RoutineSpec {
	return core.RoutineSpec{Name: d.name, Pins: 1, Repeat: core.Continuous}
}

func (d *DeadlineToggle) Init(ctx *core.TimingContext) error {
	d.next = ctx.Clock.Ticks()
	return nil
}

func (d *DeadlineToggle) Run(ctx *core.TimingContext) error {
	pin := ctx.Pins[0]
	for i := 0; i < batchToggles; i += 2 {
		pin.High()
		d.next += d.half
		sleepUntil(ctx.Clock, d.next)
		pin.Low()
		d.next += d.half
		sleepUntil(ctx.Clock, d.next)
	}
	return nil
}

func sleepUntil(c core.Clock, deadline uint64) {
	now := c.Ticks()
	if deadline <= now {
		return // already late, take the next edge immediately
	}
	c.Sleep(time.Duration(deadline-now) * time.Microsecond)
}
