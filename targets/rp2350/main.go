//go:build rp2350

package main

import (
	"machine"
	"time"

	"picotest/catalog"
	"picotest/core"
	"picotest/targets/status"
)

const boardName = "Pico 2 (rp2350)"

// All single-gpio catalog entries drive GPIO 2.
const testPin = machine.GPIO2

func main() {
	// Disable the watchdog on boot to clear any state left over from a
	// previous flash.
	if err := machine.Watchdog.Configure(machine.WatchdogConfig{TimeoutMillis: 0}); err != nil {
		return
	}

	// Give the USB serial console time to attach so the first log lines are
	// not lost.
	time.Sleep(2 * time.Second)

	clock := newHardwareClock()
	log := core.NewLogger(machine.Serial, clock)

	sel, routine := catalog.Selected()
	log.Infof("picotest on %s", boardName)
	log.Infof("clock speed: %d Hz", machine.CPUFrequency())
	log.Infof("selected: %s test #%d: %s", sel.Category, sel.ID, sel.Desc)

	// No PIO waveform generator here: the pio backend exists for the rp2040
	// only. Entries 20/21 abort with a named reason on this board.
	exec := core.NewExecutor(core.Config{
		Clock: clock,
		Log:   log,
		Pins:  []core.Pin{newOutputPin(testPin)},
		Raw:   newRawPin(testPin),
	})

	status.Start(sel.Desc, sel.ID, exec.Batches)

	state := exec.Execute(routine)

	// Park. The pins are at the safe level; nothing else runs.
	log.Infof("parked in state %s", state)
	for {
		time.Sleep(time.Second)
	}
}
