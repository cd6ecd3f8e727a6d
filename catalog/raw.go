package catalog

import (
	"time"

	"picotest/core"
)

// RawToggle toggles through the context's register-level fast path when the
// target provides one, pacing each half period either by busy-waiting on the
// timer or by a fixed nop-loop padding. Off target (no RawPin) it falls back
// to the Pin interface so the batch semantics stay testable; the raw timing
// itself is only meaningful on hardware.
type RawToggle struct {
	name string

	// half paces by busy-wait when nonzero; otherwise padHigh/padLow nop
	// iterations pad the respective half cycles.
	half    time.Duration
	padHigh int
	padLow  int
}

// NewRawPacedToggle busy-paces raw register writes to the given period,
// isolating the write cost from the call overhead of the Pin interface.
func NewRawPacedToggle(name string, period time.Duration) *RawToggle {
	return &RawToggle{name: name, half: period / 2}
}

// NewRawPaddedToggle pads each half cycle with a fixed number of nop
// iterations. The low half gets one fewer cycle of padding than requested
// whenever padLow < padHigh, mirroring the loop branch landing in that half.
func NewRawPaddedToggle(name string, padHigh, padLow int) *RawToggle {
	return &RawToggle{name: name, padHigh: padHigh, padLow: padLow}
}

// NewRawUnpacedToggle issues back-to-back register writes: the minimum period
// the core can produce without the PIO.
func NewRawUnpacedToggle(name string) *RawToggle {
	return &RawToggle{name: name}
}

func (r *RawToggle) Spec() core.RoutineSpec {
	return core.RoutineSpec{Name: r.name, Pins: 1, Repeat: core.Continuous}
}

func (r *RawToggle) Init(ctx *core.TimingContext) error { return nil }

func (r *RawToggle) Run(ctx *core.TimingContext) error {
	if ctx.Raw == nil {
		return r.runPin(ctx)
	}
	raw := ctx.Raw
	switch {
	case r.half > 0:
		for i := 0; i < batchToggles; i += 2 {
			raw.SetHigh()
			core.BusyWait(ctx.Clock, r.half)
			raw.SetLow()
			core.BusyWait(ctx.Clock, r.half)
		}
	case r.padHigh > 0 || r.padLow > 0:
		for i := 0; i < batchToggles; i += 2 {
			raw.SetHigh()
			nopWait(r.padHigh)
			raw.SetLow()
			nopWait(r.padLow)
		}
	default:
		for i := 0; i < batchToggles; i += 2 {
			raw.SetHigh()
			raw.SetLow()
		}
	}
	return nil
}

func (r *RawToggle) runPin(ctx *core.TimingContext) error {
	pin := ctx.Pins[0]
	for i := 0; i < batchToggles; i += 2 {
		pin.High()
		if r.half > 0 {
			core.BusyWait(ctx.Clock, r.half)
		} else {
			nopWait(r.padHigh)
		}
		pin.Low()
		if r.half > 0 {
			core.BusyWait(ctx.Clock, r.half)
		} else {
			nopWait(r.padLow)
		}
	}
	return nil
}
