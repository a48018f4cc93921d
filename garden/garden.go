package garden

import (
	"fmt"

	"github.com/katalvlaran/cyclesim/grid"
)

// Garden is a map of garden plots ('.') and rocks ('#') with one start.
type Garden struct {
	g     *grid.Grid
	start grid.Point
}

// Parse builds a Garden from rows of '.', '#' and exactly one 'S'.
func Parse(s string) (*Garden, error) {
	g, err := grid.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("garden: %w", err)
	}
	if rocks := g.Find(grid.Rolling); len(rocks) > 0 {
		return nil, fmt.Errorf("%w: %q at %v", ErrUnexpectedTile, grid.Rolling, rocks[0])
	}
	starts := g.Find(grid.Start)
	switch len(starts) {
	case 0:
		return nil, ErrNoStart
	case 1:
	default:
		return nil, fmt.Errorf("%w: %v and %v", ErrMultipleStarts, starts[0], starts[1])
	}
	return &Garden{g: g, start: starts[0]}, nil
}

// Start returns the position of the 'S' tile.
func (g *Garden) Start() grid.Point {
	return g.start
}

// Size returns the width and height of one tile of the map.
func (g *Garden) Size() (w, h int) {
	return g.g.Width, g.g.Height
}

// Reachable returns how many plots of the bounded map can be the final
// position of a walk of exactly steps moves from the start.
//
// A plot at distance d is reachable in exactly steps moves iff d <= steps
// and d has the parity of steps, since the walker can step back and forth.
// Complexity: O(W×H).
func (g *Garden) Reachable(steps int) (int, error) {
	if steps < 0 {
		return 0, fmt.Errorf("garden: negative step count %d", steps)
	}
	dist := make([]int, g.g.Width*g.g.Height)
	for i := range dist {
		dist[i] = -1
	}
	dist[g.g.Index(g.start)] = 0
	queue := []grid.Point{g.start}
	count := 0
	for head := 0; head < len(queue); head++ {
		p := queue[head]
		d := dist[g.g.Index(p)]
		if d%2 == steps%2 {
			count++
		}
		if d == steps {
			continue
		}
		for _, q := range g.g.Neighbors(p) {
			if !g.g.At(q).Passable() || dist[g.g.Index(q)] >= 0 {
				continue
			}
			dist[g.g.Index(q)] = d + 1
			queue = append(queue, q)
		}
	}
	return count, nil
}
