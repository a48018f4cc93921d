package cycle

import "fmt"

// Project returns how many real steps remain after skipping every whole
// cycle between c.Start and total:
//
//	(total - c.Start) mod c.Length
//
// A simulation that has just observed the repeat at index c.Start+c.Length
// is back at a cycle boundary; executing exactly the returned number of
// further steps reaches the state at total. The step that closed the cycle
// is never executed again.
//
// Returns ErrInvalidCycle for a malformed descriptor and ErrBeforeCycle
// when total < c.Start.
func Project(total int, c Descriptor) (int, error) {
	if err := c.Validate(); err != nil {
		return 0, err
	}
	if total < c.Start {
		return 0, fmt.Errorf("%w: total=%d start=%d", ErrBeforeCycle, total, c.Start)
	}

	return (total - c.Start) % c.Length, nil
}

// Skipped returns how many whole cycles Project jumps over for total.
func Skipped(total int, c Descriptor) (int, error) {
	if err := c.Validate(); err != nil {
		return 0, err
	}
	if total < c.Start {
		return 0, fmt.Errorf("%w: total=%d start=%d", ErrBeforeCycle, total, c.Start)
	}

	return (total - c.Start) / c.Length, nil
}
