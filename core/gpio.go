// GPIO capability surface for timing routines.
// The harness never touches pin hardware directly; targets adapt machine.Pin
// (or a simulated pin) to these interfaces.
package core

// Pin is a single GPIO output lent to the active routine. The executor
// guarantees the pin is configured and at the safe level (low) before the
// routine sees it, and forces it low again afterwards.
type Pin interface {
	// ConfigureOutput switches the pin to output mode.
	ConfigureOutput() error

	Set(high bool)
	High()
	Low()
	Get() bool
}

// RawPin is the fast path for minimum-period toggling: single-word stores to
// the output set/clear registers, bypassing the Pin method calls. Targets that
// have no register-level access leave it nil and routines fall back to Pin.
type RawPin interface {
	SetHigh()
	SetLow()
}
