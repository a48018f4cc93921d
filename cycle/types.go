// Package cycle defines the step and fingerprint contracts, options, result
// types, and sentinel errors for cycle-accelerated simulation.
package cycle

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// DefaultMaxSteps bounds how many real steps Advance, Accumulate and Detect
// execute while waiting for a repeated fingerprint.
const DefaultMaxSteps = 1_000_000

// Sentinel errors for cycle detection and projection.
var (
	// ErrNoCycle is returned when no fingerprint repeats within MaxSteps.
	ErrNoCycle = errors.New("cycle: no cycle found within step bound")

	// ErrStepOrder is returned when a ledger observes a step index that is
	// not strictly greater than the previous one.
	ErrStepOrder = errors.New("cycle: step indices must strictly increase")

	// ErrBeforeCycle is returned when a projection target precedes the cycle start.
	ErrBeforeCycle = errors.New("cycle: target precedes cycle start")

	// ErrInvalidCycle is returned for descriptors with Start < 0 or Length < 1.
	ErrInvalidCycle = errors.New("cycle: invalid cycle descriptor")

	// ErrNegativeSteps is returned when a negative target step count is supplied.
	ErrNegativeSteps = errors.New("cycle: target step count is negative")

	// ErrNilFunc is returned when a step or fingerprint function is nil.
	ErrNilFunc = errors.New("cycle: step and fingerprint functions are required")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("cycle: invalid option supplied")

	// ErrNoBranches is returned when Combine or LCM receive no input.
	ErrNoBranches = errors.New("cycle: no branches to combine")

	// ErrInvalidBranch is returned for branches with Offset < 0 or Period < 1.
	ErrInvalidBranch = errors.New("cycle: invalid branch")

	// ErrUnsynchronized is returned by CombineSynchronized when a branch's
	// first occurrence does not coincide with its period.
	ErrUnsynchronized = errors.New("cycle: branch offset is not synchronized with its period")

	// ErrNoSolution is returned when branch congruences are incompatible.
	ErrNoSolution = errors.New("cycle: branches never coincide")

	// ErrOverflow is returned when a combined or projected answer does not
	// fit in an int.
	ErrOverflow = errors.New("cycle: result overflows int")
)

// Step advances a state by exactly one deterministic transition.
// Implementations may mutate s in place and return it.
type Step[S any] func(s S) S

// Fingerprint maps a state to a comparable snapshot holding exactly the
// information that determines all future steps. Counters that never feed
// back into Step must be left out, or no cycle will ever be observed.
type Fingerprint[S any, F comparable] func(s S) F

// Descriptor locates a cycle: the fingerprint first seen at Start repeats
// at Start+Length, and the sequence is periodic from Start onward.
type Descriptor struct {
	Start  int
	Length int
}

// Validate reports ErrInvalidCycle for Start < 0 or Length < 1.
func (d Descriptor) Validate() error {
	if d.Start < 0 || d.Length < 1 {
		return fmt.Errorf("%w: start=%d length=%d", ErrInvalidCycle, d.Start, d.Length)
	}
	return nil
}

// Result is the outcome of Advance.
type Result[S any] struct {
	// State is the state after exactly Steps logical steps.
	State S

	// Steps echoes the requested target.
	Steps int

	// Cycle is the cycle used for projection, or nil when Steps was
	// reached by direct simulation.
	Cycle *Descriptor

	// Simulated counts the real Step calls executed.
	Simulated int
}

// Accumulated is the outcome of Accumulate: the final state plus the sum of
// the per-step outputs over exactly Steps steps.
type Accumulated[S any, V any] struct {
	Result[S]
	Total V
}

// Summable is implemented by per-step outputs that Accumulate can add and
// multiply by a whole number of repeated cycles. Both return ErrOverflow
// (see CheckedAdd, CheckedMul) instead of wrapping around.
type Summable[V any] interface {
	Add(other V) (V, error)
	Scale(k int) (V, error)
}

// Branch describes an independent sub-system whose target condition holds
// at steps Offset, Offset+Period, Offset+2·Period, ...
type Branch struct {
	Offset int
	Period int
}

// Option configures Advance, Accumulate and Detect.
// An invalid Option is recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds the tunables for a simulation run.
type Options struct {
	// MaxSteps bounds the real steps executed before a cycle is found.
	MaxSteps int

	// Logger receives debug events for detection and projection.
	Logger zerolog.Logger

	err error
}

// DefaultOptions returns Options with:
//   - MaxSteps = DefaultMaxSteps
//   - a no-op logger
func DefaultOptions() Options {
	return Options{
		MaxSteps: DefaultMaxSteps,
		Logger:   zerolog.Nop(),
	}
}

// WithMaxSteps overrides the step bound. n <= 0 is an ErrOptionViolation.
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxSteps must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

// WithLogger installs a logger for detection and projection events.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// buildOptions applies opts over DefaultOptions and returns the first violation.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o, o.err
}
