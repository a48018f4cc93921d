package grid_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cyclesim/grid"
)

// TestParse_Errors verifies that Parse rejects empty, ragged, and unknown input.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		err   error
	}{
		{"Empty", "", grid.ErrEmptyGrid},
		{"OnlyNewlines", "\n\n", grid.ErrEmptyGrid},
		{"NonRectangular", "..#\n.#\n", grid.ErrNonRectangular},
		{"UnknownTile", "..\n.x\n", grid.ErrUnknownTile},
		{"WideRune", "...\n.Į.\n", grid.ErrUnknownTile},
		{"WideRuneCountsOnce", "..\nĮ.\n", grid.ErrUnknownTile},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.Parse(tc.input)
			if !errors.Is(err, tc.err) {
				t.Errorf("Parse(%q) error = %v; want %v", tc.input, err, tc.err)
			}
		})
	}
}

// TestParse_RuneColumns reports columns in runes.
func TestParse_RuneColumns(t *testing.T) {
	_, err := grid.Parse("...\n.Įx\n")
	require.ErrorIs(t, err, grid.ErrUnknownTile)
	assert.Contains(t, err.Error(), "row 1 col 1")

	_, err = grid.Parse("..\nĮĮĮ\n")
	require.ErrorIs(t, err, grid.ErrNonRectangular)
	assert.Contains(t, err.Error(), "row 1 has 3 cells, want 2")
}

// TestParse_RoundTrip parses a grid with every tile and renders it back.
func TestParse_RoundTrip(t *testing.T) {
	in := "O.#\r\n.S.\r\n#..\r\n"
	g, err := grid.Parse(in)
	require.NoError(t, err)

	assert.Equal(t, 3, g.Width)
	assert.Equal(t, 3, g.Height)
	assert.Equal(t, grid.Rolling, g.At(grid.Point{X: 0, Y: 0}))
	assert.Equal(t, grid.Wall, g.At(grid.Point{X: 2, Y: 0}))
	assert.Equal(t, grid.Start, g.At(grid.Point{X: 1, Y: 1}))
	assert.Equal(t, "O.#\n.S.\n#..\n", g.String())
	assert.Equal(t, []grid.Point{{X: 2, Y: 0}, {X: 0, Y: 2}}, g.Find(grid.Wall))
}

// TestIndexCoordinate checks the row-major mapping both ways.
func TestIndexCoordinate(t *testing.T) {
	g, err := grid.Parse("....\n....\n....\n")
	require.NoError(t, err)
	for i := 0; i < g.Width*g.Height; i++ {
		p := g.Coordinate(i)
		assert.True(t, g.InBounds(p))
		assert.Equal(t, i, g.Index(p))
	}
	for _, p := range []grid.Point{{X: -1, Y: 0}, {X: 4, Y: 0}, {X: 0, Y: 3}, {X: 0, Y: -1}} {
		assert.False(t, g.InBounds(p), "InBounds(%v)", p)
	}
}

// TestWrap maps points of the infinite tiling onto the base tile.
func TestWrap(t *testing.T) {
	g, err := grid.Parse("...\n...\n")
	require.NoError(t, err)
	cases := []struct{ in, want grid.Point }{
		{grid.Point{X: 0, Y: 0}, grid.Point{X: 0, Y: 0}},
		{grid.Point{X: 3, Y: 2}, grid.Point{X: 0, Y: 0}},
		{grid.Point{X: -1, Y: -1}, grid.Point{X: 2, Y: 1}},
		{grid.Point{X: -7, Y: 5}, grid.Point{X: 2, Y: 1}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, g.Wrap(tc.in), "Wrap(%v)", tc.in)
	}
}

// TestNeighbors drops out-of-bounds cells at the corner.
func TestNeighbors(t *testing.T) {
	g, err := grid.Parse("...\n...\n")
	require.NoError(t, err)
	assert.Equal(t, []grid.Point{{X: 1, Y: 0}, {X: 0, Y: 1}}, g.Neighbors(grid.Point{}))
	assert.Len(t, g.Neighbors(grid.Point{X: 1, Y: 0}), 3)
}

// TestClone ensures the copy does not share storage.
func TestClone(t *testing.T) {
	g, err := grid.Parse("O.\n..\n")
	require.NoError(t, err)
	c := g.Clone()
	c.Set(grid.Point{}, grid.Open)
	assert.Equal(t, grid.Rolling, g.At(grid.Point{}))
	assert.Equal(t, grid.Open, c.At(grid.Point{}))
}

// TestDirection covers offsets, opposites, and names.
func TestDirection(t *testing.T) {
	origin := grid.Point{X: 5, Y: 5}
	for _, d := range grid.Directions {
		assert.Equal(t, origin, origin.Step(d).Step(d.Opposite()), "%v round trip", d)
	}
	assert.Equal(t, grid.Point{X: 5, Y: 4}, origin.Step(grid.North))
	assert.Equal(t, grid.Point{X: 6, Y: 5}, origin.Step(grid.East))
	assert.Equal(t, "south", grid.South.String())
	assert.Equal(t, grid.West, grid.East.Opposite())
}

// TestParseTile accepts the closed set only.
func TestParseTile(t *testing.T) {
	for _, r := range ".#OS" {
		tile, err := grid.ParseTile(r)
		require.NoError(t, err)
		assert.Equal(t, byte(r), byte(tile))
	}
	_, err := grid.ParseTile('o')
	assert.True(t, errors.Is(err, grid.ErrUnknownTile))
	assert.True(t, grid.Start.Passable())
	assert.False(t, grid.Wall.Passable())
}
