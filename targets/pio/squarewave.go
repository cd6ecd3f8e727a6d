//go:build rp2040

// Package pio provides a PIO-backed square-wave generator. The state machine
// produces the waveform entirely in hardware, so the CPU contributes no
// jitter once it is started.
package pio

import (
	"machine"
	"time"

	rp2pio "github.com/tinygo-org/pio/rp2-pio"

	"picotest/core"
)

const (
	ErrPeriodTooShort = core.Error("square wave period below 2 PIO cycles")
	ErrPeriodTooLong  = core.Error("square wave period exceeds PIO clock divider range")
)

// Two-instruction program: drive the SET pin high for one cycle, low for one
// cycle, wrap. Full-cycle period = 2 state machine cycles x clock divider.
func buildSquareProgram() []uint16 {
	asm := rp2pio.AssemblerV0{SidesetBits: 0}
	return []uint16{
		asm.Set(rp2pio.SetDestPins, 1).Encode(), // 0: set pins, 1
		asm.Set(rp2pio.SetDestPins, 0).Encode(), // 1: set pins, 0
		// .wrap
	}
}

const squarePIOOrigin = 0 // load at offset 0 for stable wrap addresses

// SquareWave drives one pin from PIO0 state machine 0.
type SquareWave struct {
	pio     *rp2pio.PIO
	sm      rp2pio.StateMachine
	pin     machine.Pin
	offset  uint8
	loaded  bool
	running bool
}

// NewSquareWave returns an unstarted generator for pin. The program is loaded
// lazily on the first Start so builds whose routine never uses the PIO leave
// it untouched.
func NewSquareWave(pin machine.Pin) *SquareWave {
	return &SquareWave{
		pio: rp2pio.PIO0,
		sm:  rp2pio.PIO0.StateMachine(0),
		pin: pin,
	}
}

// Start begins emitting a square wave with the given full-cycle period.
func (s *SquareWave) Start(period time.Duration) error {
	whole, frac, err := clkDivForHalf(period / 2)
	if err != nil {
		return err
	}

	if !s.loaded {
		s.sm.TryClaim()
		program := buildSquareProgram()
		offset, err := s.pio.AddProgram(program, squarePIOOrigin)
		if err != nil {
			return err
		}
		s.offset = offset
		s.loaded = true
	}

	s.pin.Configure(machine.PinConfig{Mode: s.pio.PinMode()})

	cfg := rp2pio.DefaultStateMachineConfig()
	cfg.SetSetPins(s.pin, 1)
	cfg.SetWrap(s.offset+1, s.offset)
	cfg.SetClkDivIntFrac(whole, frac)

	// Initialize the state machine FIRST, then pin directions.
	s.sm.Init(s.offset, cfg)
	s.sm.SetPindirsConsecutive(s.pin, 1, true)
	s.sm.SetPinsConsecutive(s.pin, 1, false)

	s.sm.SetEnabled(true)
	s.running = true
	return nil
}

// clkDivForHalf converts a half period into the 16.8 fixed-point clock
// divider that makes one program instruction last that long.
func clkDivForHalf(half time.Duration) (uint16, uint8, error) {
	if half <= 0 {
		return 0, 0, ErrPeriodTooShort
	}
	// cycles = half * sysclk, carried in ns*Hz to keep integer math.
	cycles256 := uint64(half) * uint64(machine.CPUFrequency()) * 256 / 1e9
	if cycles256 < 256 {
		return 0, 0, ErrPeriodTooShort
	}
	if cycles256 > 0xFFFF*256 {
		return 0, 0, ErrPeriodTooLong
	}
	return uint16(cycles256 / 256), uint8(cycles256 % 256), nil
}

// Stop halts generation and hands the pin back as a driven-low GPIO output.
func (s *SquareWave) Stop() {
	if !s.running {
		return
	}
	s.sm.SetEnabled(false)
	s.running = false

	// The pin is still muxed to the PIO; reclaim it so the safe level holds.
	s.pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	s.pin.Low()
}

var _ core.Waveform = (*SquareWave)(nil)
