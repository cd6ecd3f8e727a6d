// Package sim provides simulated pins and clocks for host-side tests of the
// harness and catalog routines. Nothing here runs on hardware.
package sim

import "time"

// Edge is one recorded pin write, stamped with the clock's ticks when the pin
// has a clock attached.
type Edge struct {
	High bool
	At   uint64
}

// Pin records every level write, including redundant ones, so tests can
// assert the executor's low/configure/low baseline sequence as well as toggle
// counts.
type Pin struct {
	// ConfigErr, when set, is returned by ConfigureOutput to simulate a
	// peripheral bring-up failure.
	ConfigErr error

	clock      *Clock
	level      bool
	configured bool
	edges      []Edge
}

// NewPin returns a pin stamping edges from clock. A nil clock stamps zero.
func NewPin(clock *Clock) *Pin { return &Pin{clock: clock} }

func (p *Pin) ConfigureOutput() error {
	if p.ConfigErr != nil {
		return p.ConfigErr
	}
	p.configured = true
	return nil
}

func (p *Pin) Set(high bool) {
	var at uint64
	if p.clock != nil {
		at = p.clock.Peek()
	}
	p.level = high
	p.edges = append(p.edges, Edge{High: high, At: at})
}

func (p *Pin) High()     { p.Set(true) }
func (p *Pin) Low()      { p.Set(false) }
func (p *Pin) Get() bool { return p.level }

func (p *Pin) Configured() bool { return p.configured }
func (p *Pin) Edges() []Edge    { return p.edges }

// Toggles counts writes that changed the level.
func (p *Pin) Toggles() int {
	n := 0
	last := false
	for _, e := range p.edges {
		if e.High != last {
			n++
			last = e.High
		}
	}
	return n
}

// Clock is a manual microsecond clock. Sleep advances it by the requested
// duration; AutoStep makes busy-wait loops progress by advancing the counter
// on every Ticks read.
type Clock struct {
	// AutoStep is added to the counter on each Ticks call. Leave zero for
	// fully manual control; set 1 when exercising busy-wait routines.
	AutoStep uint64

	ticks  uint64
	sleeps int
	yields int
}

func NewClock() *Clock { return &Clock{} }

func (c *Clock) Ticks() uint64 {
	c.ticks += c.AutoStep
	return c.ticks
}

// Peek reads the counter without the AutoStep side effect.
func (c *Clock) Peek() uint64 { return c.ticks }

func (c *Clock) Sleep(d time.Duration) {
	c.sleeps++
	if d <= 0 {
		return
	}
	us := uint64(d.Microseconds())
	if us == 0 {
		us = 1 // sub-resolution sleeps still move simulated time
	}
	c.ticks += us
}

func (c *Clock) Yield() { c.yields++ }

// Advance moves simulated time forward without counting as a sleep.
func (c *Clock) Advance(d time.Duration) { c.ticks += uint64(d.Microseconds()) }

func (c *Clock) Sleeps() int { return c.sleeps }
func (c *Clock) Yields() int { return c.yields }
