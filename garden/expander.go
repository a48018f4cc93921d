package garden

import "github.com/katalvlaran/cyclesim/grid"

// Expander walks the garden repeated infinitely in every direction, one BFS
// layer at a time. After layer n, Reachable reports the plots reachable in
// exactly n steps.
type Expander struct {
	g        *grid.Grid
	seen     map[grid.Point]struct{}
	frontier []grid.Point
	next     []grid.Point
	layer    int
	// counts[i] is the number of discovered plots at a distance of parity i.
	counts [2]int
}

// Expander returns an Expander positioned at layer 0 (only the start).
func (g *Garden) Expander() *Expander {
	return &Expander{
		g:        g.g,
		seen:     map[grid.Point]struct{}{g.start: {}},
		frontier: []grid.Point{g.start},
		counts:   [2]int{1, 0},
	}
}

// Layer returns the number of layers expanded so far.
func (e *Expander) Layer() int {
	return e.layer
}

// Reachable returns the plots reachable in exactly Layer() steps.
func (e *Expander) Reachable() int {
	return e.counts[e.layer&1]
}

// Next expands one layer and returns the new Reachable count.
// Complexity: O(|frontier|).
func (e *Expander) Next() int {
	e.next = e.next[:0]
	for _, p := range e.frontier {
		for _, d := range grid.Directions {
			q := p.Step(d)
			if !e.g.At(e.g.Wrap(q)).Passable() {
				continue
			}
			if _, ok := e.seen[q]; ok {
				continue
			}
			e.seen[q] = struct{}{}
			e.next = append(e.next, q)
		}
	}
	e.frontier, e.next = e.next, e.frontier
	e.layer++
	e.counts[e.layer&1] += len(e.frontier)

	return e.Reachable()
}
