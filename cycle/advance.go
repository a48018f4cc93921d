package cycle

import "fmt"

// runner carries the mutable state shared by Advance, Accumulate and Detect.
type runner[S any, F comparable] struct {
	opts      Options
	fp        Fingerprint[S, F]
	ledger    *Ledger[F]
	state     S
	simulated int
}

// newRunner validates the shared inputs and seeds the ledger with the
// fingerprint of the initial state at index 0.
func newRunner[S any, F comparable](init S, fp Fingerprint[S, F], opts []Option) (*runner[S, F], error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	r := &runner[S, F]{
		opts:   o,
		fp:     fp,
		ledger: NewLedger[F](),
		state:  init,
	}
	if _, err = r.ledger.Observe(fp(init), 0); err != nil {
		return nil, err
	}

	return r, nil
}

// observe fingerprints the current state as step index n.
func (r *runner[S, F]) observe(n int) (*Descriptor, error) {
	c, err := r.ledger.Observe(r.fp(r.state), n)
	if err != nil {
		return nil, err
	}
	if c != nil {
		r.opts.Logger.Debug().
			Int("start", c.Start).
			Int("length", c.Length).
			Int("detected_at", n).
			Int("ledger_size", r.ledger.Len()).
			Msg("cycle detected")
	}
	return c, nil
}

// guard fails with ErrNoCycle once n exceeds MaxSteps.
func (r *runner[S, F]) guard(n int) error {
	if n <= r.opts.MaxSteps {
		return nil
	}
	r.opts.Logger.Warn().
		Int("max_steps", r.opts.MaxSteps).
		Int("ledger_size", r.ledger.Len()).
		Msg("step bound exhausted without a repeated fingerprint")

	return fmt.Errorf("%w: %d steps", ErrNoCycle, r.opts.MaxSteps)
}

// Advance returns the state reached after exactly total applications of step
// to init.
//
// The fingerprint of init is recorded as index 0 and the fingerprint after
// the n-th step as index n. Targets reached before any fingerprint repeats
// are simulated directly. When the fingerprint at index n repeats the one at
// index p, the state is back at a cycle boundary and only
// Project(total, Descriptor{p, n-p}) further steps are executed.
//
// Returns ErrNilFunc, ErrNegativeSteps, ErrOptionViolation, or ErrNoCycle
// when no fingerprint repeats within MaxSteps steps.
func Advance[S any, F comparable](init S, step Step[S], fp Fingerprint[S, F], total int, opts ...Option) (Result[S], error) {
	if step == nil || fp == nil {
		return Result[S]{}, ErrNilFunc
	}
	if total < 0 {
		return Result[S]{}, fmt.Errorf("%w: %d", ErrNegativeSteps, total)
	}
	r, err := newRunner(init, fp, opts)
	if err != nil {
		return Result[S]{}, err
	}

	res := Result[S]{Steps: total}
	for n := 1; n <= total; n++ {
		if err = r.guard(n); err != nil {
			return res, err
		}
		r.state = step(r.state)
		r.simulated++
		if n == total {
			break
		}

		c, err := r.observe(n)
		if err != nil {
			return res, err
		}
		if c == nil {
			continue
		}

		remaining, err := Project(total, *c)
		if err != nil {
			return res, err
		}
		r.opts.Logger.Debug().
			Int("target", total).
			Int("remaining", remaining).
			Msg("projecting past cycle")
		for i := 0; i < remaining; i++ {
			r.state = step(r.state)
			r.simulated++
		}
		res.Cycle = c
		break
	}

	res.State = r.state
	res.Simulated = r.simulated

	return res, nil
}

// Detect steps init until a fingerprint repeats and returns the cycle of
// its orbit. A Start of 0 means init itself lies on the cycle.
// Returns ErrNilFunc, ErrOptionViolation, or ErrNoCycle.
func Detect[S any, F comparable](init S, step Step[S], fp Fingerprint[S, F], opts ...Option) (Descriptor, error) {
	if step == nil || fp == nil {
		return Descriptor{}, ErrNilFunc
	}
	r, err := newRunner(init, fp, opts)
	if err != nil {
		return Descriptor{}, err
	}

	for n := 1; ; n++ {
		if err = r.guard(n); err != nil {
			return Descriptor{}, err
		}
		r.state = step(r.state)
		c, err := r.observe(n)
		if err != nil {
			return Descriptor{}, err
		}
		if c != nil {
			return *c, nil
		}
	}
}
