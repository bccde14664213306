// Package route turns the predecessor links recorded by a breadth-first search
// into an ordered path between two grid cells.
//
// Reconstruct walks backward from the end cell, pushing every intermediate
// cell onto a stack, then pops the stack to emit the cells in forward
// (start → end) order. Both endpoints are excluded from the result: they keep
// their own roles on the grid.
//
// The walk is bounded by the size of the predecessor map. A map produced by a
// finished BFS is acyclic and always reaches the start well within that bound;
// exceeding it, or dead-ending before the start, means the map is corrupt.
//
// Errors:
//
//   - ErrNoPathFound:           end has no predecessor entry (unreachable).
//   - ErrCorruptPredecessorMap: the walk cycles or dead-ends.
package route

import (
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/pkg/errors"

	"github.com/katalvlaran/gridpath/grid"
)

var (
	// ErrNoPathFound is returned when the end cell was never reached.
	ErrNoPathFound = errors.New("route: no path found")

	// ErrCorruptPredecessorMap is returned when the predecessor chain does not
	// lead back to the start.
	ErrCorruptPredecessorMap = errors.New("route: corrupt predecessor map")
)

// Predecessors maps each discovered cell to the cell that discovered it.
type Predecessors map[grid.Coord]grid.Coord

// Reconstruct returns the cells strictly between start and end, in traversal
// order. Adjacent endpoints, and start == end, yield an empty path.
// Complexity: O(L) time and memory, L = path length.
func Reconstruct(pred Predecessors, start, end grid.Coord) ([]grid.Coord, error) {
	if start == end {
		return []grid.Coord{}, nil
	}
	cur, ok := pred[end]
	if !ok {
		return nil, errors.Wrapf(ErrNoPathFound, "%v -> %v", start, end)
	}

	stack := arraystack.New()
	limit := len(pred)
	for steps := 1; cur != start; steps++ {
		if steps >= limit {
			return nil, errors.Wrapf(ErrCorruptPredecessorMap, "walk from %v exceeded %d steps", end, limit)
		}
		stack.Push(cur)
		next, ok := pred[cur]
		if !ok {
			return nil, errors.Wrapf(ErrCorruptPredecessorMap, "%v has no predecessor", cur)
		}
		cur = next
	}

	path := make([]grid.Coord, 0, stack.Size())
	for !stack.Empty() {
		v, _ := stack.Pop()
		path = append(path, v.(grid.Coord))
	}

	return path, nil
}

// Length returns the number of edges travelled along a reconstructed path,
// counting the hops out of start and into end.
func Length(path []grid.Coord) int {
	return len(path) + 1
}
