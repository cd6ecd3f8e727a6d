package core

import (
	"sync/atomic"
	"time"
)

// State of the executor's lifecycle around the one linked routine.
type State uint8

const (
	StateInit State = iota
	StateRunning
	StateIdle
	StateFatal
)

func (s State) String() string {
	switch s {
	case StateInit:
		return "init"
	case StateRunning:
		return "running"
	case StateIdle:
		return "idle"
	case StateFatal:
		return "fatal"
	}
	return "?"
}

const defaultHeartbeatInterval = time.Second

// Config wires the executor to the target's hardware surface.
type Config struct {
	Clock Clock
	Log   *Logger

	// Pins the target provides; the routine is lent the prefix it declares.
	Pins []Pin

	// Optional fast paths, nil where unavailable.
	Raw       RawPin
	Generator Waveform

	// HeartbeatInterval is the maximum time between heartbeat log lines while
	// a continuous routine runs. Zero selects the 1s default. Heartbeats are
	// emitted at batch boundaries, so the effective interval is the
	// configured value rounded up to a whole batch.
	HeartbeatInterval time.Duration

	// MaxBatches bounds a continuous run. Zero means unbounded, which is what
	// hardware builds use; tests and bounded captures set it.
	MaxBatches uint64
}

// Executor owns hardware bring-up, the execution window, and the shutdown
// policy around exactly one routine. It is the single point that enforces the
// safe pin level: low immediately before the routine runs and again after it
// ends, whatever the outcome.
type Executor struct {
	cfg     Config
	state   State
	batches uint64
}

func NewExecutor(cfg Config) *Executor {
	if cfg.HeartbeatInterval <= 0 {
		cfg.HeartbeatInterval = defaultHeartbeatInterval
	}
	if cfg.Log == nil {
		cfg.Log = NewLogger(nil, cfg.Clock)
	}
	return &Executor{cfg: cfg, state: StateInit}
}

func (e *Executor) State() State { return e.state }

// Batches reports completed continuous batches. Safe to call from another
// goroutine (status display) while the run is in progress.
func (e *Executor) Batches() uint64 { return atomic.LoadUint64(&e.batches) }

// Execute drives the full lifecycle of the routine and returns the terminal
// state, StateIdle or StateFatal. The caller parks the processor afterwards;
// the pins are at the safe level either way.
func (e *Executor) Execute(r Routine) State {
	spec := r.Spec()

	if err := e.bringUp(spec); err != nil {
		return e.fatal("init", err)
	}

	ctx := &TimingContext{
		Pins:      e.cfg.Pins[:spec.Pins],
		Clock:     e.cfg.Clock,
		Log:       e.cfg.Log,
		Raw:       e.cfg.Raw,
		Generator: e.cfg.Generator,
	}

	e.state = StateRunning
	e.cfg.Log.Infof("running %s (%s)", spec.Name, spec.Repeat)

	if err := r.Init(ctx); err != nil {
		return e.fatal("routine init", err)
	}

	switch spec.Repeat {
	case SingleShot:
		if err := r.Run(ctx); err != nil {
			return e.fatal("aborted", err)
		}
	case Continuous:
		lastBeat := e.cfg.Clock.Ticks()
		for {
			if err := r.Run(ctx); err != nil {
				return e.fatal("aborted", err)
			}
			n := atomic.AddUint64(&e.batches, 1)

			now := e.cfg.Clock.Ticks()
			if time.Duration(now-lastBeat)*time.Microsecond >= e.cfg.HeartbeatInterval {
				e.cfg.Log.Infof("heartbeat: %d batches", n)
				lastBeat = now
			}
			if e.cfg.MaxBatches != 0 && n >= e.cfg.MaxBatches {
				e.cfg.Log.Infof("batch budget reached (%d), stopping", n)
				break
			}
		}
	}

	e.shutdown()
	e.state = StateIdle
	e.cfg.Log.Infof("idle: %s complete, pins safe", spec.Name)
	return e.state
}

// bringUp drives every declared pin to the safe level, configures it as an
// output, and forces it low again, so externally captured timing always
// starts from a deterministic low baseline.
func (e *Executor) bringUp(spec RoutineSpec) error {
	if spec.Pins < 1 {
		return ErrNoPins
	}
	if spec.Pins > len(e.cfg.Pins) {
		return ErrPinShortage
	}
	for _, p := range e.cfg.Pins[:spec.Pins] {
		p.Low()
		if err := p.ConfigureOutput(); err != nil {
			return err
		}
		p.Low()
	}
	return nil
}

// shutdown stops any hardware generator and drives all pins to the safe
// level. No component below the executor may leave a pin undefined.
func (e *Executor) shutdown() {
	if e.cfg.Generator != nil {
		e.cfg.Generator.Stop()
	}
	for _, p := range e.cfg.Pins {
		p.Low()
	}
}

func (e *Executor) fatal(stage string, err error) State {
	e.shutdown()
	e.state = StateFatal
	e.cfg.Log.Fatalf("%s: %v", stage, err)
	return e.state
}
