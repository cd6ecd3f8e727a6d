package monitor

import (
	"testing"
	"time"
)

func TestHeartbeatGapTracking(t *testing.T) {
	tr := NewTracker(time.Second)
	base := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)

	ev := tr.Observe("[   1000000us] INFO  heartbeat: 10 batches", base)
	if !ev.Heartbeat || ev.Stalled || ev.Gap != 0 {
		t.Fatalf("first heartbeat event = %+v", ev)
	}

	ev = tr.Observe("[   2000000us] INFO  heartbeat: 20 batches", base.Add(500*time.Millisecond))
	if !ev.Heartbeat || ev.Stalled {
		t.Fatalf("in-budget heartbeat flagged stalled: %+v", ev)
	}
	if ev.Gap != 500*time.Millisecond {
		t.Errorf("gap = %v, want 500ms", ev.Gap)
	}

	ev = tr.Observe("[   4500000us] INFO  heartbeat: 30 batches", base.Add(3*time.Second))
	if !ev.Stalled {
		t.Errorf("late heartbeat not flagged: %+v", ev)
	}
	if ev.Gap != 2500*time.Millisecond {
		t.Errorf("gap = %v, want 2.5s", ev.Gap)
	}

	if tr.Beats() != 3 {
		t.Errorf("Beats() = %d, want 3", tr.Beats())
	}
}

func TestFatalClassification(t *testing.T) {
	tr := NewTracker(0)
	now := time.Now()

	ev := tr.Observe("[    123456us] FATAL init: pad configuration failed", now)
	if !ev.Fatal {
		t.Fatalf("fatal line not classified: %+v", ev)
	}
	if len(tr.Fatals()) != 1 || tr.Fatals()[0] != "init: pad configuration failed" {
		t.Errorf("Fatals() = %q", tr.Fatals())
	}
}

func TestParkedClassification(t *testing.T) {
	tr := NewTracker(0)

	ev := tr.Observe("[   9000000us] INFO  parked in state idle", time.Now())
	if !ev.Parked {
		t.Errorf("parked line not classified: %+v", ev)
	}
}

func TestPlainLinesPassThrough(t *testing.T) {
	tr := NewTracker(0)

	ev := tr.Observe("[         0us] INFO  clock speed: 125000000 Hz", time.Now())
	if ev.Heartbeat || ev.Fatal || ev.Parked {
		t.Errorf("info line misclassified: %+v", ev)
	}

	ev = tr.Observe("garbage without a prefix", time.Now())
	if ev.Heartbeat || ev.Fatal || ev.Parked {
		t.Errorf("unprefixed line misclassified: %+v", ev)
	}
}

func TestSilentFor(t *testing.T) {
	tr := NewTracker(time.Second)
	base := time.Now()

	if tr.SilentFor(base) != 0 {
		t.Error("SilentFor nonzero before any heartbeat")
	}
	tr.Observe("[   1000000us] INFO  heartbeat: 1 batches", base)
	if got := tr.SilentFor(base.Add(4 * time.Second)); got != 4*time.Second {
		t.Errorf("SilentFor = %v, want 4s", got)
	}
}
