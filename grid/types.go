// Package grid defines the cell identity, role and sentinel errors used by the
// grid, the traversal engine and the path reconstructor.
package grid

import (
	"fmt"

	"github.com/pkg/errors"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates a grid with no rows.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row")
	// ErrCellSize indicates a non-positive cell size.
	ErrCellSize = errors.New("grid: cell size must be positive")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrNonSquare indicates a parsed map whose rows and columns differ.
	ErrNonSquare = errors.New("grid: map must be square")
	// ErrBadSymbol indicates an unknown symbol in a parsed map.
	ErrBadSymbol = errors.New("grid: unknown map symbol")
)

// Coord is the immutable identity of a cell.
type Coord struct {
	Row, Col int
}

// String formats the coordinate as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Role is the single state a cell is in. Roles are mutually exclusive.
type Role uint8

const (
	// Empty is an open, unmarked cell.
	Empty Role = iota
	// Barrier removes the cell from every neighbour list.
	Barrier
	// Start is the search origin.
	Start
	// End is the search target.
	End
	// Visited marks a cell discovered by a search.
	Visited
	// Path marks a cell on the reconstructed route.
	Path
)

var roleNames = [...]string{
	Empty:   "empty",
	Barrier: "barrier",
	Start:   "start",
	End:     "end",
	Visited: "visited",
	Path:    "path",
}

// String returns the lower-case role name.
func (r Role) String() string {
	if int(r) < len(roleNames) {
		return roleNames[r]
	}
	return fmt.Sprintf("role(%d)", uint8(r))
}

// Cell is a single grid position. Its identity never changes; its role and
// neighbour list do.
type Cell struct {
	coord     Coord
	x, y      int
	role      Role
	neighbors []*Cell
}

// Coord returns the cell identity.
func (c *Cell) Coord() Coord { return c.coord }

// Row returns the cell row.
func (c *Cell) Row() int { return c.coord.Row }

// Col returns the cell column.
func (c *Cell) Col() int { return c.coord.Col }

// X returns the pixel offset of the cell, row × cell size.
func (c *Cell) X() int { return c.x }

// Y returns the pixel offset of the cell, col × cell size.
func (c *Cell) Y() int { return c.y }

// Role returns the current role.
func (c *Cell) Role() Role { return c.role }

// SetRole replaces the current role. Changing to or from Barrier invalidates
// neighbour lists until ComputeNeighbors runs again.
func (c *Cell) SetRole(r Role) { c.role = r }

// Is reports whether the cell currently holds role r.
func (c *Cell) Is(r Role) bool { return c.role == r }

// IsBarrier reports whether the cell is impassable.
func (c *Cell) IsBarrier() bool { return c.role == Barrier }

// Neighbors returns the open neighbours computed by the last ComputeNeighbors,
// in the order down, up, right, left. The slice must not be modified.
func (c *Cell) Neighbors() []*Cell { return c.neighbors }

// String formats the cell as "(row,col):role".
func (c *Cell) String() string {
	return c.coord.String() + ":" + c.role.String()
}
