package grid

import (
	"github.com/pkg/errors"
)

// neighborOffsets lists the 4-directional moves in the order neighbours are
// stored: down, up, right, left. The order decides which of several equally
// short paths a search returns.
var neighborOffsets = [4][2]int{
	{1, 0},  // down
	{-1, 0}, // up
	{0, 1},  // right
	{0, -1}, // left
}

// Grid is a fixed N×N board of cells.
type Grid struct {
	rows     int
	cellSize int
	cells    [][]*Cell
}

// New allocates a rows×rows grid of Empty cells. Each cell is positioned at
// (row×cellSize, col×cellSize).
// Returns ErrEmptyGrid if rows < 1 and ErrCellSize if cellSize < 1.
// Complexity: O(N²) time and memory.
func New(rows, cellSize int) (*Grid, error) {
	if rows < 1 {
		return nil, errors.Wrapf(ErrEmptyGrid, "rows=%d", rows)
	}
	if cellSize < 1 {
		return nil, errors.Wrapf(ErrCellSize, "cellSize=%d", cellSize)
	}
	g := &Grid{rows: rows, cellSize: cellSize}
	g.allocate()

	return g, nil
}

// allocate builds a fresh cell matrix, dropping every role and neighbour list.
func (g *Grid) allocate() {
	g.cells = make([][]*Cell, g.rows)
	for r := 0; r < g.rows; r++ {
		g.cells[r] = make([]*Cell, g.rows)
		for c := 0; c < g.rows; c++ {
			g.cells[r][c] = &Cell{
				coord: Coord{Row: r, Col: c},
				x:     r * g.cellSize,
				y:     c * g.cellSize,
			}
		}
	}
}

// Rows returns N, the number of rows (and columns).
func (g *Grid) Rows() int { return g.rows }

// CellSize returns the pixel size of one cell.
func (g *Grid) CellSize() int { return g.cellSize }

// Len returns the number of cells, N×N.
func (g *Grid) Len() int { return g.rows * g.rows }

// InBounds reports whether (row,col) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.rows
}

// At returns the cell at (row,col), or nil when outside the grid.
func (g *Grid) At(row, col int) *Cell {
	if !g.InBounds(row, col) {
		return nil
	}
	return g.cells[row][col]
}

// Cell returns the cell identified by c or ErrOutOfBounds.
func (g *Grid) Cell(c Coord) (*Cell, error) {
	cell := g.At(c.Row, c.Col)
	if cell == nil {
		return nil, errors.Wrapf(ErrOutOfBounds, "%v in %dx%d grid", c, g.rows, g.rows)
	}
	return cell, nil
}

// Contains reports whether cell is one of this grid's cells (pointer identity).
func (g *Grid) Contains(cell *Cell) bool {
	if cell == nil {
		return false
	}
	return g.At(cell.coord.Row, cell.coord.Col) == cell
}

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(*Cell)) {
	for _, row := range g.cells {
		for _, cell := range row {
			fn(cell)
		}
	}
}

// Find returns every cell holding role r, in row-major order.
func (g *Grid) Find(r Role) []*Cell {
	var out []*Cell
	g.Each(func(c *Cell) {
		if c.role == r {
			out = append(out, c)
		}
	})
	return out
}

// Count returns the number of cells holding role r.
func (g *Grid) Count(r Role) int {
	n := 0
	g.Each(func(c *Cell) {
		if c.role == r {
			n++
		}
	})
	return n
}

// ComputeNeighbors rebuilds every cell's open-neighbour list from the current
// barrier set. Candidates are the in-bounds, non-Barrier cells one step down,
// up, right and left, stored in that order. No diagonal adjacency.
// Must run after any barrier change and before a search.
// Complexity: O(N²).
func (g *Grid) ComputeNeighbors() {
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.rows; c++ {
			cell := g.cells[r][c]
			nbrs := make([]*Cell, 0, len(neighborOffsets))
			for _, d := range neighborOffsets {
				n := g.At(r+d[0], c+d[1])
				if n == nil || n.role == Barrier {
					continue
				}
				nbrs = append(nbrs, n)
			}
			cell.neighbors = nbrs
		}
	}
}

// Reset returns the grid to its freshly created state: every cell Empty, no
// neighbour lists.
func (g *Grid) Reset() {
	g.allocate()
}

// ClearRoles sets every cell holding one of roles back to Empty.
func (g *Grid) ClearRoles(roles ...Role) {
	var mask [len(roleNames)]bool
	for _, r := range roles {
		if int(r) < len(mask) {
			mask[r] = true
		}
	}
	g.Each(func(c *Cell) {
		if int(c.role) < len(mask) && mask[c.role] {
			c.role = Empty
		}
	})
}

// IsBorder reports whether c lies on row 0, col 0, row N-1 or col N-1.
func (g *Grid) IsBorder(c Coord) bool {
	last := g.rows - 1
	return c.Row == 0 || c.Col == 0 || c.Row == last || c.Col == last
}

// SealBorder turns every border cell into a Barrier, whatever its role.
func (g *Grid) SealBorder() {
	g.Each(func(c *Cell) {
		if g.IsBorder(c.coord) {
			c.role = Barrier
		}
	})
}
