package cycle

import "fmt"

// Ledger records the first step index at which each fingerprint was seen.
// Indices must be observed in strictly increasing order; the ledger grows by
// one entry per new fingerprint and is meant to be discarded once a cycle
// has been identified.
type Ledger[F comparable] struct {
	seen map[F]int
	last int
}

// NewLedger returns an empty ledger.
func NewLedger[F comparable]() *Ledger[F] {
	return &Ledger[F]{
		seen: make(map[F]int),
		last: -1,
	}
}

// Observe records fp at step. If fp is new it is stored and (nil, nil) is
// returned. If fp was already recorded at a prior index, the cycle it closes
// is returned; the recorded fingerprints are left unchanged but step still
// counts as observed.
// Returns ErrStepOrder when step is not greater than the last observed index.
// Complexity: O(1) amortized.
func (l *Ledger[F]) Observe(fp F, step int) (*Descriptor, error) {
	if step <= l.last {
		return nil, fmt.Errorf("%w: got %d after %d", ErrStepOrder, step, l.last)
	}
	l.last = step
	if prior, ok := l.seen[fp]; ok {
		return &Descriptor{Start: prior, Length: step - prior}, nil
	}
	l.seen[fp] = step

	return nil, nil
}

// Lookup returns the step index at which fp was first recorded.
func (l *Ledger[F]) Lookup(fp F) (int, bool) {
	step, ok := l.seen[fp]
	return step, ok
}

// Len returns the number of distinct fingerprints recorded.
func (l *Ledger[F]) Len() int {
	return len(l.seen)
}
