package grid

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Grid is a rectangular, row-major grid of tiles.
type Grid struct {
	Width, Height int
	cells         []Tile
}

// Parse builds a Grid from newline-separated rows. Trailing blank lines and
// carriage returns are ignored.
// Widths and columns count runes, not bytes.
// Returns ErrEmptyGrid, ErrNonRectangular, or ErrUnknownTile, each naming
// the offending row (and column).
// Complexity: O(W×H).
func Parse(s string) (*Grid, error) {
	lines := strings.Split(strings.TrimRight(s, "\r\n"), "\n")
	if len(lines) == 0 || len(strings.TrimRight(lines[0], "\r")) == 0 {
		return nil, ErrEmptyGrid
	}
	w := utf8.RuneCountInString(strings.TrimRight(lines[0], "\r"))
	g := &Grid{Width: w, Height: len(lines), cells: make([]Tile, 0, w*len(lines))}
	for y, line := range lines {
		line = strings.TrimRight(line, "\r")
		if n := utf8.RuneCountInString(line); n != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, n, w)
		}
		x := 0
		for _, r := range line {
			t, err := ParseTile(r)
			if err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", y, x, err)
			}
			g.cells = append(g.cells, t)
			x++
		}
	}

	return g, nil
}

// InBounds reports whether p lies within the grid.
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Index maps p to its row-major index y*Width + x.
func (g *Grid) Index(p Point) int {
	return p.Y*g.Width + p.X
}

// Coordinate converts a row-major index back to a Point.
func (g *Grid) Coordinate(i int) Point {
	return Point{i % g.Width, i / g.Width}
}

// At returns the tile at p. p must be in bounds.
func (g *Grid) At(p Point) Tile {
	return g.cells[g.Index(p)]
}

// Set stores t at p. p must be in bounds.
func (g *Grid) Set(p Point, t Tile) {
	g.cells[g.Index(p)] = t
}

// Wrap maps any point of the infinitely repeated grid onto the base tile.
func (g *Grid) Wrap(p Point) Point {
	return Point{mod(p.X, g.Width), mod(p.Y, g.Height)}
}

// Find returns every point holding t, in row-major order.
func (g *Grid) Find(t Tile) []Point {
	var out []Point
	for i, c := range g.cells {
		if c == t {
			out = append(out, g.Coordinate(i))
		}
	}
	return out
}

// Neighbors returns the in-bounds orthogonal neighbors of p in
// Directions order.
func (g *Grid) Neighbors(p Point) []Point {
	out := make([]Point, 0, 4)
	for _, d := range Directions {
		if q := p.Step(d); g.InBounds(q) {
			out = append(out, q)
		}
	}
	return out
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	cells := make([]Tile, len(g.cells))
	copy(cells, g.cells)
	return &Grid{Width: g.Width, Height: g.Height, cells: cells}
}

// String renders g in the same format Parse accepts, one row per line.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.Width + 1) * g.Height)
	for i, c := range g.cells {
		b.WriteByte(byte(c))
		if (i+1)%g.Width == 0 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func mod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}
