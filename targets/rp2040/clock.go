//go:build rp2040

package main

import (
	"runtime"
	"runtime/volatile"
	"time"
	"unsafe"
)

// RP2040 TIMER peripheral: a free-running 64-bit microsecond counter at 1MHz.
// TIMERAWH/TIMERAWL are the raw (unlatched) reads.
const (
	timerBase     = 0x40054000
	timerTIMERAWH = timerBase + 0x24
	timerTIMERAWL = timerBase + 0x28
)

var (
	timerRawH = (*volatile.Register32)(unsafe.Pointer(uintptr(timerTIMERAWH)))
	timerRawL = (*volatile.Register32)(unsafe.Pointer(uintptr(timerTIMERAWL)))
)

// hardwareClock reads the raw timer registers directly, avoiding runtime call
// overhead in busy-wait loops.
type hardwareClock struct{}

func newHardwareClock() *hardwareClock {
	// Discard a few reads so the first timestamps are stable after the
	// runtime's clock init.
	_ = timerRawL.Get()
	_ = timerRawL.Get()
	_ = timerRawL.Get()
	return &hardwareClock{}
}

// Ticks returns the full 64-bit microsecond counter. Read high, low, high
// again to detect a rollover mid-read.
func (hardwareClock) Ticks() uint64 {
	for {
		high1 := timerRawH.Get()
		low := timerRawL.Get()
		high2 := timerRawH.Get()
		if high1 == high2 {
			return (uint64(high1) << 32) | uint64(low)
		}
	}
}

func (hardwareClock) Sleep(d time.Duration) { time.Sleep(d) }

func (hardwareClock) Yield() { runtime.Gosched() }
