package core

// RepeatPolicy declares whether a routine runs once or is re-invoked by the
// executor until aborted or the batch budget runs out.
type RepeatPolicy uint8

const (
	// SingleShot routines run exactly once; the executor then drives the pins
	// to the safe level and idles.
	SingleShot RepeatPolicy = iota

	// Continuous routines perform one bounded batch of work per Run call and
	// are re-invoked forever. The batch boundary is where the executor emits
	// heartbeats and can still stop the run deterministically.
	Continuous
)

func (p RepeatPolicy) String() string {
	if p == SingleShot {
		return "single-shot"
	}
	return "continuous"
}

// RoutineSpec declares a routine's requirements up front so the executor can
// bring up exactly the peripherals it needs.
type RoutineSpec struct {
	Name string

	// Pins is the number of GPIO outputs the routine needs. The executor
	// lends it exactly this many; touching anything else is a contract
	// violation.
	Pins int

	Repeat RepeatPolicy
}

// Routine is one catalog timing test. Init runs once after hardware bring-up.
// Run is called once (single-shot) or repeatedly (continuous); each call must
// return promptly after a bounded amount of work. A nil return means the run
// (or batch) completed; a non-nil error aborts the whole test and the
// executor shuts the pins down.
type Routine interface {
	Spec() RoutineSpec
	Init(ctx *TimingContext) error
	Run(ctx *TimingContext) error
}
