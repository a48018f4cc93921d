package pulse

import (
	"fmt"

	"github.com/katalvlaran/cyclesim/bfs"
	"github.com/katalvlaran/cyclesim/core"
	"github.com/katalvlaran/cyclesim/cycle"
)

func press(n *Network) *Network {
	n.Press()
	return n
}

func pressCounted(n *Network) (*Network, Counts) {
	c := n.Press()
	return n, c
}

func fingerprint(n *Network) string {
	return n.Fingerprint()
}

// PressMany presses the button presses times and returns the pulses sent in
// total. Latch states repeat, so only the tail and one loop are simulated.
func (n *Network) PressMany(presses int, opts ...cycle.Option) (Counts, error) {
	acc, err := cycle.Accumulate(n, pressCounted, fingerprint, presses, opts...)
	if err != nil {
		return Counts{}, fmt.Errorf("pulse: %w", err)
	}
	return acc.Total, nil
}

// Period returns the cycle of latch configurations reached by repeated
// presses from the current state. n is not modified.
func (n *Network) Period(opts ...cycle.Option) (cycle.Descriptor, error) {
	return cycle.Detect(n.Clone(), press, fingerprint, opts...)
}

// PulseProduct parses s, presses the button presses times, and returns
// low pulses × high pulses.
func PulseProduct(s string, presses int, opts ...cycle.Option) (int, error) {
	n, err := Parse(s)
	if err != nil {
		return 0, err
	}
	total, err := n.PressMany(presses, opts...)
	if err != nil {
		return 0, err
	}
	product, err := total.Product()
	if err != nil {
		return 0, fmt.Errorf("pulse: %w", err)
	}
	return product, nil
}

// BranchInfo describes one independent sub-network feeding the hub.
type BranchInfo struct {
	// Feeder is the module whose High pulse to the hub marks the condition.
	Feeder string
	// Members lists the modules simulated for this branch.
	Members []string
	// Cycle is the latch cycle of the sub-network.
	Cycle cycle.Descriptor
	// Branch is the press at which the feeder first fires and its period.
	Branch cycle.Branch
}

// Branches splits the network in front of sink. sink must be fed by a
// single conjunction (the hub); each hub input defines a branch made of
// every module that can reach it without passing through the hub.
//
// Each branch is simulated on its own until its latches repeat, and the
// presses where the feeder sends High to the hub are recorded. The feeder
// must hand the hub a High pulse and take it back with a Low one before the
// press ends, and its firings must form a single progression Offset + k·L
// from the first firing on, L being the latch cycle length. Anything else,
// including a branch that depends on the hub's own output, is reported as
// ErrIrregularBranch.
func (n *Network) Branches(sink string, opts ...cycle.Option) ([]BranchInfo, error) {
	sid, ok := n.byName[sink]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownModule, sink)
	}
	ins := n.modules[sid].inputs
	if len(ins) != 1 || n.modules[ins[0]].kind != Conjunction {
		return nil, fmt.Errorf("%w: %q", ErrNoHub, sink)
	}
	hub := ins[0]
	feeders := n.Wiring().Reverse()

	var out []BranchInfo
	for _, feeder := range n.modules[hub].inputs {
		sub, members, err := n.restrict(feeders, feeder, hub)
		if err != nil {
			return nil, err
		}
		c, err := cycle.Detect(sub.Clone(), press, fingerprint, opts...)
		if err != nil {
			return nil, fmt.Errorf("pulse: branch %q: %w", n.Name(feeder), err)
		}
		b, err := sub.Clone().branch(feeder, hub, c)
		if err != nil {
			return nil, err
		}

		out = append(out, BranchInfo{
			Feeder:  n.Name(feeder),
			Members: members,
			Cycle:   c,
			Branch:  b,
		})
	}

	return out, nil
}

// Wiring returns the directed module graph, one edge per output wire,
// with vertices in ID order.
func (n *Network) Wiring() *core.Graph {
	g := core.NewGraph(core.WithDirected(true), core.WithLoops(), core.WithMultiEdges())
	for _, m := range n.modules {
		_ = g.AddVertex(m.name)
	}
	for _, m := range n.modules {
		for _, e := range m.outputs {
			// names are non-empty and loops/multi-edges are allowed
			_ = g.AddEdge(m.name, n.modules[e.to].name)
		}
	}
	return g
}

// restrict returns a clone limited to the modules that reach feeder
// without passing through hub, plus their names in ID order. reversed is
// the transposed wiring graph.
func (n *Network) restrict(reversed *core.Graph, feeder, hub ID) (*Network, []string, error) {
	hubName := n.Name(hub)
	dependent := ""
	res, err := bfs.BFS(reversed, n.Name(feeder), bfs.WithFilterNeighbor(func(curr, input string) bool {
		if input == hubName {
			dependent = curr
			return false
		}
		return true
	}))
	if err != nil {
		return nil, nil, fmt.Errorf("pulse: branch %q: %w", n.Name(feeder), err)
	}
	if dependent != "" {
		return nil, nil, fmt.Errorf("%w: %q depends on hub %q", ErrIrregularBranch, dependent, hubName)
	}

	active := make([]bool, len(n.modules))
	for _, name := range res.Order {
		active[n.byName[name]] = true
	}
	var members []string
	for id, on := range active {
		if on {
			members = append(members, n.modules[id].name)
		}
	}
	sub := n.Clone()
	sub.active = active

	return sub, members, nil
}

// branch presses n through the tail and one loop of c and derives when
// from fires into to.
func (n *Network) branch(from, to ID, c cycle.Descriptor) (cycle.Branch, error) {
	name := n.Name(from)
	fired := n.firings(from, to, c.Start+c.Length)

	offset := 0
	for p, f := range fired {
		if f.high {
			offset = p + 1
			break
		}
	}
	if offset == 0 {
		return cycle.Branch{}, fmt.Errorf("%w: %q never fires", ErrIrregularBranch, name)
	}
	for i := offset - 1; i < len(fired); i++ {
		p, f := i+1, fired[i]
		if f.high && f.latched {
			return cycle.Branch{}, fmt.Errorf("%w: %q is still high at the end of press %d",
				ErrIrregularBranch, name, p)
		}
		if want := (p-offset)%c.Length == 0; f.high != want {
			return cycle.Branch{}, fmt.Errorf("%w: %q fires at presses off the period %d from %d (press %d)",
				ErrIrregularBranch, name, c.Length, offset, p)
		}
	}

	return cycle.Branch{Offset: offset, Period: c.Length}, nil
}

// firing is what one press sent from a feeder to the hub.
type firing struct {
	// high reports a High pulse during the press.
	high bool
	// latched reports that the last pulse of the press was High.
	latched bool
}

// firings presses n count times and returns, per press, whether from sent
// High to to and whether it left to's memory slot High.
func (n *Network) firings(from, to ID, count int) []firing {
	out := make([]firing, count)
	for p := range out {
		var f firing
		n.PressObserved(func(src, dst ID, pulse Pulse) {
			if src != from || dst != to {
				return
			}
			f.latched = pulse == High
			f.high = f.high || f.latched
		})
		out[p] = f
	}
	return out
}

// PressesUntilLow returns the first press during which sink receives a Low
// pulse, combining per-branch cycles with cycle.Combine so that no
// assumption about branch offsets is needed.
func PressesUntilLow(s, sink string, opts ...cycle.Option) (int, error) {
	n, err := Parse(s)
	if err != nil {
		return 0, err
	}
	infos, err := n.Branches(sink, opts...)
	if err != nil {
		return 0, err
	}
	branches := make([]cycle.Branch, len(infos))
	for i, b := range infos {
		branches[i] = b.Branch
	}
	presses, err := cycle.Combine(branches...)
	if err != nil {
		return 0, fmt.Errorf("pulse: %w", err)
	}
	return presses, nil
}

// PressesUntilLowDirect presses n until sink receives a Low pulse, at most
// limit times. Returns ErrLimit when the limit is exhausted.
func (n *Network) PressesUntilLowDirect(sink string, limit int) (int, error) {
	sid, ok := n.byName[sink]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownModule, sink)
	}
	for p := 1; p <= limit; p++ {
		hit := false
		n.PressObserved(func(_, t ID, pulse Pulse) {
			if t == sid && pulse == Low {
				hit = true
			}
		})
		if hit {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: %d presses", ErrLimit, limit)
}
