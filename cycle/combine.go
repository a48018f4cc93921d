package cycle

import (
	"fmt"
	"math"
	"math/big"
)

// LCM returns the least common multiple of values.
// Returns ErrNoBranches for no input, ErrInvalidBranch for values < 1 and
// ErrOverflow when the result does not fit in an int.
func LCM(values ...int) (int, error) {
	if len(values) == 0 {
		return 0, ErrNoBranches
	}
	acc := big.NewInt(1)
	g := new(big.Int)
	for _, v := range values {
		if v < 1 {
			return 0, fmt.Errorf("%w: period %d", ErrInvalidBranch, v)
		}
		bv := big.NewInt(int64(v))
		g.GCD(nil, nil, acc, bv)
		acc.Div(acc, g).Mul(acc, bv)
	}

	return ToInt(acc)
}

// CombineSynchronized returns the first step at which every branch meets its
// condition, computed as the LCM of the periods.
//
// The shortcut is only sound when each branch first meets its condition
// exactly one period in (Offset == Period), so the precondition is checked
// and ErrUnsynchronized returned when any branch violates it. Use Combine
// for arbitrary offsets.
func CombineSynchronized(branches ...Branch) (int, error) {
	if len(branches) == 0 {
		return 0, ErrNoBranches
	}
	periods := make([]int, len(branches))
	for i, b := range branches {
		if err := b.validate(); err != nil {
			return 0, err
		}
		if b.Offset != b.Period {
			return 0, fmt.Errorf("%w: branch %d offset=%d period=%d", ErrUnsynchronized, i, b.Offset, b.Period)
		}
		periods[i] = b.Period
	}

	return LCM(periods...)
}

// Combine returns the smallest step t >= max(Offset) such that
// t ≡ Offset (mod Period) for every branch, solving the system of
// congruences pairwise (moduli need not be coprime).
//
// Returns ErrNoBranches, ErrInvalidBranch, ErrNoSolution when two branches
// can never coincide, or ErrOverflow.
// Complexity: O(B · log M) big-integer operations.
func Combine(branches ...Branch) (int, error) {
	if len(branches) == 0 {
		return 0, ErrNoBranches
	}

	residue := big.NewInt(0)
	modulus := big.NewInt(1)
	floor := 0
	for i, b := range branches {
		if err := b.validate(); err != nil {
			return 0, err
		}
		if b.Offset > floor {
			floor = b.Offset
		}
		var ok bool
		residue, modulus, ok = merge(residue, modulus, big.NewInt(int64(b.Offset)), big.NewInt(int64(b.Period)))
		if !ok {
			return 0, fmt.Errorf("%w: branch %d (offset=%d period=%d)", ErrNoSolution, i, b.Offset, b.Period)
		}
	}

	// lift the residue to the first solution at or after every offset
	t := new(big.Int).Set(residue)
	lo := big.NewInt(int64(floor))
	if t.Cmp(lo) < 0 {
		gap := new(big.Int).Sub(lo, t)
		k := new(big.Int).Add(gap, modulus)
		k.Sub(k, big.NewInt(1)).Div(k, modulus)
		t.Add(t, k.Mul(k, modulus))
	}

	return ToInt(t)
}

// merge folds x ≡ a2 (mod m2) into x ≡ a1 (mod m1). The returned residue is
// normalized into [0, lcm).
func merge(a1, m1, a2, m2 *big.Int) (*big.Int, *big.Int, bool) {
	g := new(big.Int).GCD(nil, nil, m1, m2)
	diff := new(big.Int).Sub(a2, a1)
	if new(big.Int).Mod(diff, g).Sign() != 0 {
		return nil, nil, false
	}

	lcm := new(big.Int).Div(m1, g)
	lcm.Mul(lcm, m2)

	n := new(big.Int).Div(m2, g)
	if n.Cmp(big.NewInt(1)) == 0 {
		return new(big.Int).Mod(a1, lcm), lcm, true
	}
	inv := new(big.Int).ModInverse(new(big.Int).Div(m1, g), n)
	k := new(big.Int).Div(diff, g)
	k.Mul(k, inv).Mod(k, n)

	x := new(big.Int).Mul(m1, k)
	x.Add(x, a1).Mod(x, lcm)

	return x, lcm, true
}

func (b Branch) validate() error {
	if b.Offset < 0 || b.Period < 1 {
		return fmt.Errorf("%w: offset=%d period=%d", ErrInvalidBranch, b.Offset, b.Period)
	}
	return nil
}

// ToInt converts v to an int, or returns ErrOverflow naming v.
func ToInt(v *big.Int) (int, error) {
	if !v.IsInt64() || v.Int64() > math.MaxInt {
		return 0, fmt.Errorf("%w: %s", ErrOverflow, v.String())
	}
	return int(v.Int64()), nil
}
