//go:build rp2350

package main

import (
	"machine"
	"runtime/volatile"
	"unsafe"

	"picotest/core"
)

// outputPin adapts machine.Pin to the harness pin capability.
type outputPin struct {
	pin machine.Pin
}

func newOutputPin(p machine.Pin) *outputPin { return &outputPin{pin: p} }

func (p *outputPin) ConfigureOutput() error {
	p.pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	return nil
}

func (p *outputPin) Set(high bool) { p.pin.Set(high) }
func (p *outputPin) High()         { p.pin.High() }
func (p *outputPin) Low()          { p.pin.Low() }
func (p *outputPin) Get() bool     { return p.pin.Get() }

// RP2350 SIO output set/clear registers.
// NOTE: offsets differ from the RP2040 because the RP2350 interleaves the
// GPIO_HI_* registers for GPIO32-47:
// - GPIO_OUT_SET: RP2040 0x014, RP2350 0x018
// - GPIO_OUT_CLR: RP2040 0x018, RP2350 0x020
const (
	sioBase       = 0xd0000000
	sioGPIOOutSet = sioBase + 0x018
	sioGPIOOutClr = sioBase + 0x020
)

// rawPin is the register-level fast path: one volatile store per edge.
type rawPin struct {
	mask uint32
	set  *volatile.Register32
	clr  *volatile.Register32
}

func newRawPin(p machine.Pin) *rawPin {
	return &rawPin{
		mask: 1 << uint32(p),
		set:  (*volatile.Register32)(unsafe.Pointer(uintptr(sioGPIOOutSet))),
		clr:  (*volatile.Register32)(unsafe.Pointer(uintptr(sioGPIOOutClr))),
	}
}

//go:inline
func (r *rawPin) SetHigh() { r.set.Set(r.mask) }

//go:inline
func (r *rawPin) SetLow() { r.clr.Set(r.mask) }
