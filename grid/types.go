// Package grid defines the shared direction and tile variants, points, and
// sentinel errors for rectangular text grids.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid parsing.
var (
	// ErrEmptyGrid indicates input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrUnknownTile indicates a rune outside the Tile set.
	ErrUnknownTile = errors.New("grid: unknown tile")
)

// Direction is one of the four orthogonal headings.
type Direction uint8

const (
	// North points to decreasing Y.
	North Direction = iota
	// East points to increasing X.
	East
	// South points to increasing Y.
	South
	// West points to decreasing X.
	West
)

// Directions lists every Direction in clockwise order starting at North.
var Directions = [4]Direction{North, East, South, West}

var offsets = [4]Point{
	North: {0, -1},
	East:  {1, 0},
	South: {0, 1},
	West:  {-1, 0},
}

// Offset returns the unit vector for d.
func (d Direction) Offset() Point {
	return offsets[d&3]
}

// Opposite returns the heading rotated by 180 degrees.
func (d Direction) Opposite() Direction {
	return (d + 2) & 3
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// Point is a cell coordinate; X grows east, Y grows south.
type Point struct {
	X, Y int
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Step returns the neighbor of p in direction d.
func (p Point) Step(d Direction) Point {
	return p.Add(d.Offset())
}

// Tile is the content of a single grid cell.
type Tile byte

const (
	// Open is an empty cell that pieces and walkers may enter.
	Open Tile = '.'
	// Wall is a fixed obstacle: a cube rock or a garden rock.
	Wall Tile = '#'
	// Rolling is a movable piece that slides when the grid is tilted.
	Rolling Tile = 'O'
	// Start marks a walker's starting cell; it behaves as Open.
	Start Tile = 'S'
)

// ParseTile maps a rune to its Tile, or returns ErrUnknownTile.
func ParseTile(r rune) (Tile, error) {
	switch t := Tile(r); t {
	case Open, Wall, Rolling, Start:
		if rune(t) == r {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTile, r)
}

// Passable reports whether a walker may stand on t.
func (t Tile) Passable() bool {
	return t == Open || t == Start
}
