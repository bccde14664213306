package bfs

import (
	"github.com/emirpasic/gods/queues/linkedlistqueue"
	"github.com/pkg/errors"

	"github.com/katalvlaran/gridpath/grid"
)

// walker encapsulates mutable BFS state.
type walker struct {
	opts  BFSOptions
	end   *grid.Cell
	queue *linkedlistqueue.Queue
	res   *BFSResult
}

// Search runs breadth-first search on g from start until end is discovered or
// the reachable region is exhausted, applying any number of functional Options.
//
// Neighbour lists are taken as computed by the last g.ComputeNeighbors call.
// The search stops the moment end is discovered, without finishing the current
// frontier level. A cancelled context stops the search between dequeues and
// yields Found == false with the partial data and a nil error.
//
// Returns ErrGridNil for a nil grid and ErrInvalidConfiguration for a missing,
// duplicated, foreign or barrier endpoint, or start == end.
func Search(g *grid.Grid, start, end *grid.Cell, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := validate(g, start, end); err != nil {
		return nil, err
	}

	n := g.Len()
	w := &walker{
		opts:  o,
		end:   end,
		queue: linkedlistqueue.New(),
		res: &BFSResult{
			Start:       start.Coord(),
			End:         end.Coord(),
			Predecessor: make(map[grid.Coord]grid.Coord, n),
			Visited:     make(map[grid.Coord]struct{}, n),
			Order:       make([]grid.Coord, 0, n),
		},
	}

	w.mark(start)
	w.queue.Enqueue(start)
	w.loop()

	return w.res, nil
}

// validate checks the endpoint preconditions before any traversal work.
func validate(g *grid.Grid, start, end *grid.Cell) error {
	switch {
	case start == nil || end == nil:
		return errors.Wrap(ErrInvalidConfiguration, "start and end are required")
	case !g.Contains(start):
		return errors.Wrapf(ErrInvalidConfiguration, "start %v is not a cell of the grid", start.Coord())
	case !g.Contains(end):
		return errors.Wrapf(ErrInvalidConfiguration, "end %v is not a cell of the grid", end.Coord())
	case start == end:
		return errors.Wrapf(ErrInvalidConfiguration, "start and end are the same cell %v", start.Coord())
	case start.IsBarrier():
		return errors.Wrapf(ErrInvalidConfiguration, "start %v is a barrier", start.Coord())
	case end.IsBarrier():
		return errors.Wrapf(ErrInvalidConfiguration, "end %v is a barrier", end.Coord())
	}

	var err error
	g.Each(func(c *grid.Cell) {
		if err != nil {
			return
		}
		if c.Is(grid.Start) && c != start {
			err = errors.Wrapf(ErrInvalidConfiguration, "second start cell at %v", c.Coord())
		} else if c.Is(grid.End) && c != end {
			err = errors.Wrapf(ErrInvalidConfiguration, "second end cell at %v", c.Coord())
		}
	})
	return err
}

// mark records c as visited in discovery order.
func (w *walker) mark(c *grid.Cell) {
	w.res.Visited[c.Coord()] = struct{}{}
	w.res.Order = append(w.res.Order, c.Coord())
}

// loop processes the frontier until it empties, end is found, or the context
// is cancelled.
func (w *walker) loop() {
	for !w.queue.Empty() {
		// cancellation check (once per dequeue)
		select {
		case <-w.opts.Ctx.Done():
			return
		default:
		}

		v := w.dequeue()
		if w.expand(v) {
			w.res.Found = true
			return
		}
	}
}

// dequeue pops the oldest frontier cell and invokes OnDequeue.
func (w *walker) dequeue() *grid.Cell {
	item, _ := w.queue.Dequeue()
	v := item.(*grid.Cell)
	w.opts.OnDequeue(v)
	return v
}

// expand discovers every unvisited neighbour of v in list order and reports
// whether end was among them.
func (w *walker) expand(v *grid.Cell) bool {
	for _, nbr := range v.Neighbors() {
		if _, seen := w.res.Visited[nbr.Coord()]; seen {
			continue
		}
		w.mark(nbr)
		w.res.Predecessor[nbr.Coord()] = v.Coord()
		w.queue.Enqueue(nbr)
		w.opts.OnVisit(nbr)
		if nbr == w.end {
			return true
		}
	}
	return false
}
