// Package grid holds the closed variant sets and the rectangular tile grid
// shared by the grid-based simulations.
//
// What:
//
//   - Direction: North, East, South, West with unit offsets and Opposite.
//   - Tile: Open '.', Wall '#', Rolling 'O', Start 'S'; ParseTile rejects
//     anything else.
//   - Grid: row-major storage parsed from text, with InBounds, Index,
//     Coordinate, Neighbors, Find, and Wrap for maps that repeat forever
//     in every direction.
//
// Complexity:
//
//   - Parse, Find, Clone, String: O(W×H).
//   - InBounds, Index, Coordinate, At, Set, Wrap: O(1).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrUnknownTile: a rune outside the Tile set; wrapped with its row and column.
package grid
