// Package session holds the interactive state around a grid: the chosen start
// and end cells, barrier editing rules, and the "search in progress" guard.
//
// It is the explicit context object a front end drives. Mouse and keyboard
// handling map onto Place, Erase, Clear and Search; the grid, bfs and route
// packages never see any display state.
package session

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/route"
)

// Sentinel errors for session operations.
var (
	// ErrSearchInProgress is returned for edits or searches while a search runs.
	ErrSearchInProgress = errors.New("session: search already started")
	// ErrNotReady is returned when Search runs without both start and end.
	ErrNotReady = errors.New("session: start and end must both be placed")
	// ErrInvalidLayout is returned by FromGrid when the grid does not hold
	// exactly one start and one end.
	ErrInvalidLayout = errors.New("session: grid needs exactly one start and one end")
)

// Options configures a Session.
type Options struct {
	Rows       int
	CellSize   int
	SealBorder bool // keep the outer ring as barriers
}

// Outcome describes one finished (or cancelled) search.
type Outcome struct {
	ID        uuid.UUID
	Found     bool
	Cancelled bool
	Path      []grid.Coord
	Visited   int
	Duration  time.Duration
}

// Session owns a grid and the user's selections on it. It is not safe for
// concurrent use; a single front-end loop drives it.
type Session struct {
	opts    Options
	grid    *grid.Grid
	start   *grid.Cell
	end     *grid.Cell
	started bool
}

// New creates a session over a fresh opts.Rows × opts.Rows grid.
func New(opts Options) (*Session, error) {
	g, err := grid.New(opts.Rows, opts.CellSize)
	if err != nil {
		return nil, err
	}
	s := &Session{opts: opts, grid: g}
	s.seal()

	return s, nil
}

// FromGrid adopts an existing grid, typically a parsed map, taking its single
// Start and End cells as the selection.
func FromGrid(g *grid.Grid, opts Options) (*Session, error) {
	if g == nil {
		return nil, errors.Wrap(ErrInvalidLayout, "nil grid")
	}
	starts, ends := g.Find(grid.Start), g.Find(grid.End)
	if len(starts) != 1 || len(ends) != 1 {
		return nil, errors.Wrapf(ErrInvalidLayout, "found %d start and %d end cells", len(starts), len(ends))
	}
	opts.Rows, opts.CellSize = g.Rows(), g.CellSize()
	s := &Session{opts: opts, grid: g, start: starts[0], end: ends[0]}

	return s, nil
}

// Grid returns the session grid.
func (s *Session) Grid() *grid.Grid { return s.grid }

// Start returns the selected start cell or nil.
func (s *Session) Start() *grid.Cell { return s.start }

// End returns the selected end cell or nil.
func (s *Session) End() *grid.Cell { return s.end }

// Busy reports whether a search is running.
func (s *Session) Busy() bool { return s.started }

// seal applies the border convention when enabled.
func (s *Session) seal() {
	if s.opts.SealBorder {
		s.grid.SealBorder()
	}
}

// locked reports whether c may not be edited: the border is fixed while
// sealing is on.
func (s *Session) locked(c grid.Coord) bool {
	return s.opts.SealBorder && s.grid.IsBorder(c)
}

// Place applies a primary click on c: the first open click chooses the start,
// the next chooses the end, later clicks raise barriers. Clicking the current
// start or end does nothing.
func (s *Session) Place(c grid.Coord) error {
	if s.started {
		return ErrSearchInProgress
	}
	cell, err := s.grid.Cell(c)
	if err != nil {
		return err
	}
	if s.locked(c) {
		return nil
	}

	switch {
	case s.start == nil && cell != s.end && !cell.IsBarrier():
		s.start = cell
		cell.SetRole(grid.Start)
	case s.end == nil && cell != s.start && !cell.IsBarrier():
		s.end = cell
		cell.SetRole(grid.End)
	case cell != s.start && cell != s.end:
		cell.SetRole(grid.Barrier)
	}
	return nil
}

// Erase applies a secondary click on c: the cell becomes Empty and drops out of
// the start/end selection.
func (s *Session) Erase(c grid.Coord) error {
	if s.started {
		return ErrSearchInProgress
	}
	cell, err := s.grid.Cell(c)
	if err != nil {
		return err
	}
	if s.locked(c) {
		return nil
	}

	switch cell {
	case s.start:
		s.start = nil
	case s.end:
		s.end = nil
	}
	cell.SetRole(grid.Empty)
	return nil
}

// Clear discards every mark and selection, leaving a fresh grid.
func (s *Session) Clear() error {
	if s.started {
		return ErrSearchInProgress
	}
	s.grid.Reset()
	s.start, s.end = nil, nil
	s.seal()
	klog.V(1).Infof("grid cleared (%dx%d)", s.grid.Rows(), s.grid.Rows())
	return nil
}

// Search runs BFS from the selected start to the selected end, marking
// discovered cells Visited and the reconstructed route Path. redraw, when not
// nil, runs after each expanded frontier cell and after each path cell is
// marked; it may cancel ctx to abort. Marks from a previous search are cleared
// first. Cancellation yields an Outcome with Cancelled set and no error.
func (s *Session) Search(ctx context.Context, redraw func()) (*Outcome, error) {
	if s.started {
		return nil, ErrSearchInProgress
	}
	if s.start == nil || s.end == nil {
		return nil, ErrNotReady
	}
	if redraw == nil {
		redraw = func() {}
	}
	s.started = true
	defer func() { s.started = false }()

	out := &Outcome{ID: uuid.New()}
	begin := time.Now()

	s.grid.ClearRoles(grid.Visited, grid.Path)
	s.seal()
	s.grid.ComputeNeighbors()

	start, end := s.start, s.end
	res, err := bfs.Search(s.grid, start, end,
		bfs.WithContext(ctx),
		bfs.WithOnVisit(func(c *grid.Cell) {
			if c != end {
				c.SetRole(grid.Visited)
			}
		}),
		bfs.WithOnDequeue(func(*grid.Cell) { redraw() }),
	)
	if err != nil {
		klog.Warningf("search %s rejected: %v", out.ID, err)
		return nil, err
	}

	out.Visited = len(res.Visited)
	out.Cancelled = !res.Found && ctx.Err() != nil
	if res.Found {
		path, err := res.Path()
		if err != nil {
			if errors.Is(err, route.ErrCorruptPredecessorMap) {
				klog.Errorf("search %s: %v", out.ID, err)
			}
			return nil, err
		}
		out.Found = true
		out.Path = path
		s.mark(path, redraw)
	}
	out.Duration = time.Since(begin)

	klog.Infof("search %s %v -> %v: found=%t cancelled=%t visited=%d path=%d in %v",
		out.ID, start.Coord(), end.Coord(), out.Found, out.Cancelled, out.Visited, len(out.Path), out.Duration)

	return out, nil
}

// mark paints path cells in forward order, redrawing after each.
func (s *Session) mark(path []grid.Coord, redraw func()) {
	for _, c := range path {
		s.grid.At(c.Row, c.Col).SetRole(grid.Path)
		redraw()
	}
}
