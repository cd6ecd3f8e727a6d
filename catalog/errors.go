package catalog

import "picotest/core"

const (
	// ErrNoGenerator aborts PIO-backed entries on targets without a hardware
	// waveform generator (rp2350, host builds).
	ErrNoGenerator = core.Error("hardware waveform generator not available on this target")
)
