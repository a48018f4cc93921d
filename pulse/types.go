package pulse

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cyclesim/cycle"
)

// Sentinel errors for parsing and analyzing networks.
var (
	// ErrMalformedLine is returned for lines not of the form "name -> a, b".
	ErrMalformedLine = errors.New("pulse: malformed line")
	// ErrDuplicateModule is returned when a module name is declared twice.
	ErrDuplicateModule = errors.New("pulse: duplicate module")
	// ErrNoBroadcaster is returned when no "broadcaster" module is declared.
	ErrNoBroadcaster = errors.New("pulse: no broadcaster module")
	// ErrUnknownModule is returned when a named module does not exist.
	ErrUnknownModule = errors.New("pulse: unknown module")
	// ErrNoHub is returned when a sink is not fed by exactly one conjunction.
	ErrNoHub = errors.New("pulse: sink is not fed by a single conjunction")
	// ErrIrregularBranch is returned when a branch does not fire exactly
	// once per cycle or fires before its cycle starts.
	ErrIrregularBranch = errors.New("pulse: branch does not fire once per cycle")
	// ErrLimit is returned when direct simulation exhausts its press limit.
	ErrLimit = errors.New("pulse: press limit reached")
)

// Pulse is the level carried by a signal.
type Pulse uint8

const (
	// Low is the default level; it toggles flip-flops.
	Low Pulse = iota
	// High is ignored by flip-flops.
	High
)

// String implements fmt.Stringer.
func (p Pulse) String() string {
	switch p {
	case Low:
		return "low"
	case High:
		return "high"
	}
	return fmt.Sprintf("Pulse(%d)", uint8(p))
}

// Kind is the behavior of a module.
type Kind uint8

const (
	// Plain forwards every pulse unchanged (broadcaster, button, sinks).
	Plain Kind = iota
	// FlipFlop ignores High; on Low it toggles and sends High when on.
	FlipFlop
	// Conjunction remembers the last pulse from each input and sends Low
	// only when all remembered pulses are High.
	Conjunction
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Plain:
		return "plain"
	case FlipFlop:
		return "flip-flop"
	case Conjunction:
		return "conjunction"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// ID is the arena index of a module within its Network.
type ID int

// Counts tallies pulses sent during one or more presses.
type Counts struct {
	Low  int
	High int
}

// Add returns the element-wise sum of c and o, or cycle.ErrOverflow.
func (c Counts) Add(o Counts) (Counts, error) {
	low, err := cycle.CheckedAdd(c.Low, o.Low)
	if err != nil {
		return Counts{}, err
	}
	high, err := cycle.CheckedAdd(c.High, o.High)
	if err != nil {
		return Counts{}, err
	}
	return Counts{Low: low, High: high}, nil
}

// Scale returns c repeated k times, or cycle.ErrOverflow.
func (c Counts) Scale(k int) (Counts, error) {
	low, err := cycle.CheckedMul(c.Low, k)
	if err != nil {
		return Counts{}, err
	}
	high, err := cycle.CheckedMul(c.High, k)
	if err != nil {
		return Counts{}, err
	}
	return Counts{Low: low, High: high}, nil
}

// Product returns Low × High, or cycle.ErrOverflow.
func (c Counts) Product() (int, error) {
	return cycle.CheckedMul(c.Low, c.High)
}
