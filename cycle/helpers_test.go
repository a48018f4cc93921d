package cycle_test

import "github.com/katalvlaran/cyclesim/cycle"

// lasso is a synthetic system with a tail of length offset followed by a
// loop of length period: 0, 1, ..., offset, ..., offset+period-1, offset, ...
type lasso struct {
	offset, period int
}

func (l lasso) step(s int) int {
	if s+1 < l.offset+l.period {
		return s + 1
	}
	return l.offset
}

func (l lasso) direct(total int) int {
	s := 0
	for i := 0; i < total; i++ {
		s = l.step(s)
	}
	return s
}

func identity(s int) int { return s }

// tally is a Summable test output.
type tally int

func (t tally) Add(o tally) (tally, error) {
	v, err := cycle.CheckedAdd(int(t), int(o))
	return tally(v), err
}

func (t tally) Scale(k int) (tally, error) {
	v, err := cycle.CheckedMul(int(t), k)
	return tally(v), err
}
