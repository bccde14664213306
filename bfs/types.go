// Package bfs provides tunable options, result type and error definitions
// for breadth-first search over a grid.Grid.
package bfs

import (
	"context"

	"github.com/pkg/errors"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/route"
)

// Sentinel errors for BFS execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("bfs: grid is nil")

	// ErrInvalidConfiguration is returned when start or end is missing,
	// duplicated, foreign to the grid, equal to each other, or a barrier.
	ErrInvalidConfiguration = errors.New("bfs: invalid configuration")
)

// Option configures BFS behavior via functional arguments.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cooperative cancellation between dequeues.
	Ctx context.Context

	// OnVisit is called once for every newly discovered cell, in discovery
	// order. It is never called for the start cell. It must not mutate the
	// grid's barrier set.
	OnVisit func(cell *grid.Cell)

	// OnDequeue is called each time a cell is taken off the frontier, before
	// its neighbours are expanded.
	OnDequeue func(cell *grid.Cell)
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - no-op hooks (OnVisit, OnDequeue)
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:       context.Background(),
		OnVisit:   func(*grid.Cell) {},
		OnDequeue: func(*grid.Cell) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on discovery.
func WithOnVisit(fn func(cell *grid.Cell)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(cell *grid.Cell)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// BFSResult holds the outcome of a search:
//   - Found: whether End was discovered.
//   - Predecessor: map from discovered cell to the cell that discovered it.
//   - Visited: every discovered cell, Start included.
//   - Order: discovered cells in discovery sequence, Start first.
//
// The maps are owned by the caller once Search returns.
type BFSResult struct {
	Found       bool
	Start, End  grid.Coord
	Predecessor route.Predecessors
	Visited     map[grid.Coord]struct{}
	Order       []grid.Coord
}

// Reached reports whether c was discovered.
func (r *BFSResult) Reached(c grid.Coord) bool {
	_, ok := r.Visited[c]
	return ok
}

// Path reconstructs the cells strictly between Start and End.
// Returns route.ErrNoPathFound if the search did not find End.
func (r *BFSResult) Path() ([]grid.Coord, error) {
	if !r.Found {
		return nil, errors.Wrapf(route.ErrNoPathFound, "%v -> %v", r.Start, r.End)
	}
	return route.Reconstruct(r.Predecessor, r.Start, r.End)
}
