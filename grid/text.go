package grid

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Map symbols used by Parse and Format.
const (
	SymbolEmpty   = '.'
	SymbolBarrier = '#'
	SymbolStart   = 'S'
	SymbolEnd     = 'E'
	SymbolVisited = '+'
	SymbolPath    = '*'
)

var roleSymbols = [...]rune{
	Empty:   SymbolEmpty,
	Barrier: SymbolBarrier,
	Start:   SymbolStart,
	End:     SymbolEnd,
	Visited: SymbolVisited,
	Path:    SymbolPath,
}

// Symbol returns the map symbol for r, or '?' for an unknown role.
func (r Role) Symbol() rune {
	if int(r) < len(roleSymbols) {
		return roleSymbols[r]
	}
	return '?'
}

// roleOf maps a map symbol back to its role.
func roleOf(sym rune) (Role, bool) {
	for r, s := range roleSymbols {
		if s == sym {
			return Role(r), true
		}
	}
	return Empty, false
}

// Parse reads an N×N ASCII map, one row per line, and returns the grid it
// describes. Blank lines and surrounding whitespace are ignored.
// Returns ErrEmptyGrid, ErrNonSquare or ErrBadSymbol for malformed input.
func Parse(r io.Reader, cellSize int) (*Grid, error) {
	var lines [][]rune
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		lines = append(lines, []rune(line))
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "grid: read map")
	}
	if len(lines) == 0 {
		return nil, ErrEmptyGrid
	}

	n := len(lines)
	for i, line := range lines {
		if len(line) != n {
			return nil, errors.Wrapf(ErrNonSquare, "line %d has %d cells, want %d", i+1, len(line), n)
		}
	}

	g, err := New(n, cellSize)
	if err != nil {
		return nil, err
	}
	for row, line := range lines {
		for col, sym := range line {
			role, ok := roleOf(sym)
			if !ok {
				return nil, errors.Wrapf(ErrBadSymbol, "%q at %v", sym, Coord{Row: row, Col: col})
			}
			g.cells[row][col].role = role
		}
	}

	return g, nil
}

// Format writes the grid as an ASCII map using the Parse alphabet.
func (g *Grid) Format(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, row := range g.cells {
		for _, cell := range row {
			if _, err := bw.WriteRune(cell.role.Symbol()); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// String returns the ASCII map of the grid.
func (g *Grid) String() string {
	var sb strings.Builder
	_ = g.Format(&sb)
	return sb.String()
}
