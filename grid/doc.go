// Package grid models a square board of cells as an unweighted graph for
// shortest-path search.
//
// What:
//
//   - Grid is a fixed N×N, row-major, 0-indexed arrangement of *Cell.
//   - Every Cell carries exactly one Role (Empty, Barrier, Start, End,
//     Visited, Path) and an ordered list of open neighbours.
//   - ComputeNeighbors rebuilds the adjacency from the current barrier set
//     using 4-directional connectivity in the fixed order down, up, right, left.
//   - Parse and Format read and write a small ASCII map alphabet.
//
// Why:
//
//   - Keeps the traversal engine independent from any display: the engine only
//     needs Cell identities and their neighbour lists.
//   - Identity is a comparable Coord, so visited sets and predecessor maps are
//     plain Go maps with O(1) lookups.
//
// Complexity:
//
//   - New, Reset, ComputeNeighbors: O(N²) time and memory.
//   - Cell, At, InBounds: O(1).
//
// Neighbour lists go stale whenever a Barrier is added or removed; callers must
// run ComputeNeighbors again before searching.
//
// Errors:
//
//   - ErrEmptyGrid:   fewer than one row.
//   - ErrCellSize:    non-positive cell size.
//   - ErrOutOfBounds: coordinate outside the grid.
//   - ErrNonSquare:   parsed map is not N×N.
//   - ErrBadSymbol:   parsed map contains an unknown symbol.
package grid
