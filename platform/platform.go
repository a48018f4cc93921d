// Package platform simulates a tilting platform of rolling rocks and fixed
// cube rocks, including spin cycles projected over huge counts.
package platform

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cyclesim/cycle"
	"github.com/katalvlaran/cyclesim/grid"
)

// ErrUnexpectedTile is returned when the input holds tiles other than
// rolling rocks, cube rocks, and open cells.
var ErrUnexpectedTile = errors.New("platform: unexpected tile")

// SpinOrder is the sequence of tilts in one spin cycle.
var SpinOrder = [4]grid.Direction{grid.North, grid.West, grid.South, grid.East}

// Platform is a grid of Rolling and Wall tiles. Tilts mutate it in place.
type Platform struct {
	g *grid.Grid
}

// Parse builds a Platform from rows of 'O', '#' and '.'.
func Parse(s string) (*Platform, error) {
	g, err := grid.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("platform: %w", err)
	}
	if starts := g.Find(grid.Start); len(starts) > 0 {
		return nil, fmt.Errorf("%w: %q at %v", ErrUnexpectedTile, grid.Start, starts[0])
	}
	return &Platform{g: g}, nil
}

// Tilt slides every rolling rock toward d until it meets a cube rock,
// another rolling rock, or the edge.
// Complexity: O(W×H).
func (p *Platform) Tilt(d grid.Direction) {
	back := d.Opposite().Offset()
	for _, start := range p.edge(d) {
		dest := start
		for cur := start; p.g.InBounds(cur); cur = cur.Add(back) {
			switch p.g.At(cur) {
			case grid.Wall:
				dest = cur.Add(back)
			case grid.Rolling:
				p.g.Set(cur, grid.Open)
				p.g.Set(dest, grid.Rolling)
				dest = dest.Add(back)
			}
		}
	}
}

// edge returns the cells on the side of the platform that faces d.
func (p *Platform) edge(d grid.Direction) []grid.Point {
	var out []grid.Point
	switch d {
	case grid.North, grid.South:
		y := 0
		if d == grid.South {
			y = p.g.Height - 1
		}
		for x := 0; x < p.g.Width; x++ {
			out = append(out, grid.Point{X: x, Y: y})
		}
	case grid.West, grid.East:
		x := 0
		if d == grid.East {
			x = p.g.Width - 1
		}
		for y := 0; y < p.g.Height; y++ {
			out = append(out, grid.Point{X: x, Y: y})
		}
	}
	return out
}

// SpinCycle tilts north, west, south, then east.
func (p *Platform) SpinCycle() {
	for _, d := range SpinOrder {
		p.Tilt(d)
	}
}

// Load sums, over rolling rocks, the distance from the rock's row to the
// south edge, counting the rock's own row.
func (p *Platform) Load() int {
	load := 0
	for _, r := range p.g.Find(grid.Rolling) {
		load += p.g.Height - r.Y
	}
	return load
}

// Fingerprint encodes the rolling rock positions as a bitset. Cube rocks
// never move, so they are left out.
func (p *Platform) Fingerprint() string {
	n := p.g.Width * p.g.Height
	bits := make([]byte, (n+7)/8)
	for _, r := range p.g.Find(grid.Rolling) {
		i := p.g.Index(r)
		bits[i/8] |= 1 << (i % 8)
	}
	return string(bits)
}

// Clone returns an independent copy of p.
func (p *Platform) Clone() *Platform {
	return &Platform{g: p.g.Clone()}
}

// String renders the platform in its input format.
func (p *Platform) String() string {
	return p.g.String()
}

// Spin runs n spin cycles on p, projecting past the first repeated
// arrangement. p is left in the state after n cycles.
func (p *Platform) Spin(n int, opts ...cycle.Option) (cycle.Result[*Platform], error) {
	step := func(q *Platform) *Platform {
		q.SpinCycle()
		return q
	}
	fp := func(q *Platform) string { return q.Fingerprint() }

	return cycle.Advance(p, step, fp, n, opts...)
}

// LoadAfterTilt parses s, tilts it north once, and returns the load.
func LoadAfterTilt(s string) (int, error) {
	p, err := Parse(s)
	if err != nil {
		return 0, err
	}
	p.Tilt(grid.North)
	return p.Load(), nil
}

// LoadAfterCycles parses s, runs n spin cycles, and returns the load.
func LoadAfterCycles(s string, n int, opts ...cycle.Option) (int, error) {
	p, err := Parse(s)
	if err != nil {
		return 0, err
	}
	res, err := p.Spin(n, opts...)
	if err != nil {
		return 0, fmt.Errorf("platform: %w", err)
	}
	return res.State.Load(), nil
}
