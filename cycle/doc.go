// Package cycle accelerates deterministic discrete simulations by detecting
// when their observable state repeats and projecting past every whole cycle
// to an arbitrarily distant target step.
//
// What
//
//   - Step[S]: a total, deterministic transition supplied by the caller.
//   - Fingerprint[S, F]: a comparable snapshot that captures everything the
//     next steps depend on (and nothing else, e.g. no running counters).
//   - Ledger[F]: first-seen index per fingerprint; Observe returns the
//     Descriptor {Start, Length} when a fingerprint repeats.
//   - Project: the number of real steps left after skipping whole cycles,
//     (total - Start) mod Length.
//   - Advance: the state after exactly total steps, simulated directly when
//     the target comes first, projected otherwise.
//   - Accumulate: the sum of per-step outputs over total steps.
//   - Detect: the cycle of an orbit, e.g. to check that a system returns
//     to its initial configuration.
//   - LCM, CombineSynchronized, Combine: the first step at which several
//     independent branches meet their conditions together.
//
// Step accounting
//
//	The fingerprint of the initial state is index 0 and the fingerprint after
//	the n-th executed step is index n. When index n repeats index p the state
//	already equals the state at p, so only Project(total, {p, n-p}) further
//	steps run. Step n itself is never executed a second time.
//
// Multi-branch systems
//
//	Multiplying or taking the LCM of branch periods is only correct when every
//	branch first meets its condition exactly one period in. CombineSynchronized
//	checks that precondition and fails with ErrUnsynchronized; Combine solves
//	the general system t ≡ Offset (mod Period) with non-coprime moduli.
//
// Complexity (T = tail length, L = cycle length, C = cost of Step/Fingerprint)
//
//   - Time:   O((T + L) · C) regardless of the target.
//   - Memory: O(T + L) ledger entries (plus outputs for Accumulate).
//
// Options
//
//   - WithMaxSteps(n): fail with ErrNoCycle after n real steps without a repeat.
//   - WithLogger(l):   zerolog logger for detection and projection events.
//
// Errors
//
//   - ErrNilFunc, ErrNegativeSteps, ErrOptionViolation for bad arguments.
//   - ErrNoCycle when the step bound is exhausted.
//   - ErrStepOrder, ErrBeforeCycle, ErrInvalidCycle for accounting defects.
//   - ErrNoBranches, ErrInvalidBranch, ErrUnsynchronized, ErrNoSolution,
//     ErrOverflow from branch combination or from a projected Accumulate
//     total that does not fit in an int.
package cycle
