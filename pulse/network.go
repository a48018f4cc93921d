package pulse

import (
	"fmt"
	"strings"
)

// Names of the modules every network is driven through.
const (
	ButtonName      = "button"
	BroadcasterName = "broadcaster"
)

// edge is an output wire; slot is the sender's position among the
// receiver's inputs.
type edge struct {
	to   ID
	slot int
}

// module is one arena entry. Wiring (name, kind, outputs, inputs) is shared
// between clones; on and memory are per-network state.
type module struct {
	name    string
	kind    Kind
	outputs []edge
	inputs  []ID

	on     bool
	memory []Pulse
	highs  int
}

// signal is a pulse in flight.
type signal struct {
	from  ID
	to    ID
	slot  int
	pulse Pulse
}

// Network is a set of modules addressed by ID, plus the button that feeds
// the broadcaster.
type Network struct {
	modules     []module
	byName      map[string]ID
	button      ID
	broadcaster ID

	// active, when non-nil, restricts simulation to a sub-network;
	// pulses to inactive modules are dropped.
	active []bool
	queue  []signal
}

// Parse builds a Network from lines of the form
//
//	broadcaster -> a, b
//	%a -> inv
//	&inv -> b
//
// '%' declares a flip-flop, '&' a conjunction, no prefix a plain module.
// Names that are only referenced become plain sinks. IDs follow declaration
// order, then first reference, then the button.
// Returns ErrMalformedLine or ErrDuplicateModule naming the line, or
// ErrNoBroadcaster.
func Parse(s string) (*Network, error) {
	n := &Network{byName: make(map[string]ID)}
	var targets [][]string

	for i, raw := range strings.Split(s, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		decl, outs, ok := strings.Cut(line, "->")
		if !ok {
			return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedLine, i+1, line)
		}
		decl = strings.TrimSpace(decl)
		kind := Plain
		switch {
		case strings.HasPrefix(decl, "%"):
			kind, decl = FlipFlop, decl[1:]
		case strings.HasPrefix(decl, "&"):
			kind, decl = Conjunction, decl[1:]
		}
		if decl == "" || strings.ContainsAny(decl, " \t,") {
			return nil, fmt.Errorf("%w: line %d: bad module name in %q", ErrMalformedLine, i+1, line)
		}
		if _, dup := n.byName[decl]; dup {
			return nil, fmt.Errorf("%w: line %d: %q", ErrDuplicateModule, i+1, decl)
		}

		var names []string
		for _, o := range strings.Split(outs, ",") {
			o = strings.TrimSpace(o)
			if o == "" {
				return nil, fmt.Errorf("%w: line %d: empty output in %q", ErrMalformedLine, i+1, line)
			}
			names = append(names, o)
		}
		n.add(decl, kind)
		targets = append(targets, names)
	}

	bc, ok := n.byName[BroadcasterName]
	if !ok {
		return nil, ErrNoBroadcaster
	}
	n.broadcaster = bc

	declared := len(targets)
	for from := 0; from < declared; from++ {
		for _, name := range targets[from] {
			to, ok := n.byName[name]
			if !ok {
				to = n.add(name, Plain)
			}
			n.connect(ID(from), to)
		}
	}
	if _, taken := n.byName[ButtonName]; taken {
		return nil, fmt.Errorf("%w: %q is reserved", ErrDuplicateModule, ButtonName)
	}
	n.button = n.add(ButtonName, Plain)
	n.connect(n.button, n.broadcaster)

	for i := range n.modules {
		if m := &n.modules[i]; m.kind == Conjunction {
			m.memory = make([]Pulse, len(m.inputs))
		}
	}

	return n, nil
}

func (n *Network) add(name string, kind Kind) ID {
	id := ID(len(n.modules))
	n.modules = append(n.modules, module{name: name, kind: kind})
	n.byName[name] = id
	return id
}

func (n *Network) connect(from, to ID) {
	dst := &n.modules[to]
	n.modules[from].outputs = append(n.modules[from].outputs, edge{to: to, slot: len(dst.inputs)})
	dst.inputs = append(dst.inputs, from)
}

// Lookup returns the ID of the module called name.
func (n *Network) Lookup(name string) (ID, bool) {
	id, ok := n.byName[name]
	return id, ok
}

// Name returns the name of module id.
func (n *Network) Name(id ID) string {
	return n.modules[id].name
}

// Kind returns the kind of module id.
func (n *Network) Kind(id ID) Kind {
	return n.modules[id].kind
}

// Inputs returns the modules wired into id, in wiring order.
func (n *Network) Inputs(id ID) []ID {
	return append([]ID(nil), n.modules[id].inputs...)
}

// Len returns the number of modules, including the button.
func (n *Network) Len() int {
	return len(n.modules)
}

// Press sends one Low pulse from the button to the broadcaster and
// propagates pulses in FIFO order until none remain.
func (n *Network) Press() Counts {
	return n.PressObserved(nil)
}

// PressObserved is Press with observe called for every pulse sent,
// including pulses to modules outside an active sub-network.
func (n *Network) PressObserved(observe func(from, to ID, p Pulse)) Counts {
	var c Counts
	n.queue = n.queue[:0]
	n.emit(n.button, Low, observe, &c)

	for head := 0; head < len(n.queue); head++ {
		s := n.queue[head]
		m := &n.modules[s.to]
		switch m.kind {
		case Plain:
			n.emit(s.to, s.pulse, observe, &c)
		case FlipFlop:
			if s.pulse == High {
				continue
			}
			m.on = !m.on
			out := Low
			if m.on {
				out = High
			}
			n.emit(s.to, out, observe, &c)
		case Conjunction:
			if prev := m.memory[s.slot]; prev != s.pulse {
				m.memory[s.slot] = s.pulse
				if s.pulse == High {
					m.highs++
				} else {
					m.highs--
				}
			}
			out := High
			if m.highs == len(m.memory) {
				out = Low
			}
			n.emit(s.to, out, observe, &c)
		}
	}

	return c
}

// emit sends p from id to every output.
func (n *Network) emit(id ID, p Pulse, observe func(from, to ID, p Pulse), c *Counts) {
	for _, e := range n.modules[id].outputs {
		if observe != nil {
			observe(id, e.to, p)
		}
		if n.active != nil && !n.active[e.to] {
			continue
		}
		if p == High {
			c.High++
		} else {
			c.Low++
		}
		n.queue = append(n.queue, signal{from: id, to: e.to, slot: e.slot, pulse: p})
	}
}

// Fingerprint encodes every flip-flop latch and conjunction memory in ID
// order. Pulse counts are not part of the state.
func (n *Network) Fingerprint() string {
	var b strings.Builder
	for i := range n.modules {
		m := &n.modules[i]
		switch m.kind {
		case FlipFlop:
			if m.on {
				b.WriteByte('1')
			} else {
				b.WriteByte('0')
			}
		case Conjunction:
			b.WriteByte('[')
			for _, p := range m.memory {
				b.WriteByte('0' + byte(p))
			}
			b.WriteByte(']')
		}
	}
	return b.String()
}

// Clone returns a copy with independent latch and memory state.
func (n *Network) Clone() *Network {
	c := &Network{
		modules:     make([]module, len(n.modules)),
		byName:      n.byName,
		button:      n.button,
		broadcaster: n.broadcaster,
		active:      n.active,
	}
	copy(c.modules, n.modules)
	for i := range c.modules {
		if mem := c.modules[i].memory; mem != nil {
			c.modules[i].memory = append([]Pulse(nil), mem...)
		}
	}
	return c
}
