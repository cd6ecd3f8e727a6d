package core

import "time"

// Clock is the shared monotonic time reference. On hardware it reads the
// RP2040/RP2350 free-running 1MHz timer; in tests it is simulated.
type Clock interface {
	// Ticks returns microseconds since boot.
	Ticks() uint64

	// Sleep blocks cooperatively for at least d, yielding the core to other
	// tasks while waiting.
	Sleep(d time.Duration)

	// Yield hands the core to other tasks without a timed wait.
	Yield()
}

// BusyWait spins on the clock until d has elapsed. Durations below the timer
// resolution (1us) return immediately; routines that ask for sub-microsecond
// waits degrade to as-fast-as-possible toggling.
func BusyWait(c Clock, d time.Duration) {
	target := uint64(d.Microseconds())
	if target == 0 {
		return
	}
	start := c.Ticks()
	for c.Ticks()-start < target {
	}
}
