// Package monitor classifies the harness's log stream and tracks heartbeat
// cadence, giving the operator a stall check without an oscilloscope. It is
// driven line by line so it works against any reader and is testable with
// synthetic timestamps.
package monitor

import (
	"strings"
	"time"
)

// Event is the classification of one observed log line.
type Event struct {
	Line string

	Heartbeat bool
	Fatal     bool
	Parked    bool

	// Gap is the time since the previous heartbeat; set on heartbeat lines
	// after the first.
	Gap time.Duration

	// Stalled marks a heartbeat that arrived later than the stall threshold
	// after its predecessor.
	Stalled bool
}

// Tracker accumulates heartbeat and failure state across a run.
type Tracker struct {
	stallAfter time.Duration

	beats    int
	lastBeat time.Time
	fatals   []string
}

// NewTracker returns a tracker flagging heartbeat gaps longer than
// stallAfter. Zero disables stall detection.
func NewTracker(stallAfter time.Duration) *Tracker {
	return &Tracker{stallAfter: stallAfter}
}

// Observe classifies one log line received at the given time.
func (t *Tracker) Observe(line string, at time.Time) Event {
	ev := Event{Line: line}
	msg := message(line)

	switch {
	case strings.HasPrefix(msg, "heartbeat"):
		ev.Heartbeat = true
		if t.beats > 0 {
			ev.Gap = at.Sub(t.lastBeat)
			if t.stallAfter > 0 && ev.Gap > t.stallAfter {
				ev.Stalled = true
			}
		}
		t.beats++
		t.lastBeat = at
	case strings.Contains(line, " FATAL "):
		ev.Fatal = true
		t.fatals = append(t.fatals, msg)
	case strings.HasPrefix(msg, "parked"):
		ev.Parked = true
	}
	return ev
}

// SilentFor reports how long the stream has gone without a heartbeat. Zero
// until the first heartbeat is seen.
func (t *Tracker) SilentFor(now time.Time) time.Duration {
	if t.beats == 0 {
		return 0
	}
	return now.Sub(t.lastBeat)
}

func (t *Tracker) Beats() int { return t.beats }

func (t *Tracker) Fatals() []string { return t.fatals }

// message strips the "[ ticks us] LEVEL " prefix the harness logger emits,
// returning the bare message. Lines without the prefix pass through whole.
func message(line string) string {
	i := strings.Index(line, "] ")
	if i < 0 || !strings.HasPrefix(line, "[") {
		return line
	}
	rest := line[i+2:]
	// Skip the level word and following spaces.
	if j := strings.IndexByte(rest, ' '); j > 0 {
		return strings.TrimLeft(rest[j:], " ")
	}
	return rest
}
