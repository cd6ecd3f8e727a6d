package core

import "time"

// Waveform is a hardware square-wave generator (PIO-backed on the RP2040).
// Targets without one leave it nil; routines that need it abort.
type Waveform interface {
	// Start begins emitting a square wave of the given full-cycle period on
	// the generator's pin.
	Start(period time.Duration) error

	// Stop halts generation and returns the pin to a driven-low output.
	Stop()
}

// TimingContext bundles the capabilities lent to the active routine: the
// declared pins (exclusively owned for the routine's lifetime), the shared
// monotonic clock, and the log sink. Raw and Generator are optional target
// fast paths and are nil where the platform lacks them.
//
// The executor constructs the context immediately before dispatch and retires
// it (pins forced low) when the routine ends, however it ends.
type TimingContext struct {
	Pins  []Pin
	Clock Clock
	Log   *Logger

	Raw       RawPin
	Generator Waveform
}
