// Package bfs provides breadth-first search over a grid.Grid, returning the
// predecessor links, visited set and discovery order needed to draw and
// reconstruct an unweighted shortest path.
//
// What
//
//   - Explore cells in non-decreasing distance (edge count) from a start cell.
//   - Stop the moment the end cell is discovered (early termination).
//   - Returns a BFSResult containing:
//   - Found: whether the end cell was discovered
//   - Predecessor: map from cell → the cell that discovered it
//   - Visited: set of discovered cells
//   - Order: discovery sequence
//   - Supports functional hooks at two stages:
//   - OnVisit   (once per newly discovered cell; for progressive display)
//   - OnDequeue (each time a cell leaves the frontier)
//
// Why
//
//   - BFS over an unweighted grid yields a path with the minimum number of
//     moves in O(V + E) time.
//   - Hooks let a display layer animate the search without touching it.
//
// Determinism
//
//	Neighbour lists are ordered down, up, right, left (see grid.ComputeNeighbors)
//	and the frontier is FIFO, so identical grids always produce identical
//	predecessor maps and therefore identical paths.
//
// Complexity (V = N² cells, E ≤ 4V)
//
//   - Time:   O(V + E)
//   - Memory: O(V)       (frontier, Predecessor map, Visited set)
//
// Usage
//
//	g.ComputeNeighbors()
//	res, err := bfs.Search(g, start, end,
//	    bfs.WithContext(ctx),
//	    bfs.WithOnVisit(func(c *grid.Cell) { /* draw c */ }),
//	)
//	if err != nil {
//	    // ErrGridNil or ErrInvalidConfiguration
//	}
//	if res.Found {
//	    path, _ := res.Path() // cells strictly between start and end
//	}
//
// Cancellation
//
//	The context is checked once per dequeue. Cancellation is not an error: the
//	search returns Found == false together with whatever it gathered so far.
//
// Errors
//
//   - ErrGridNil               if the grid pointer is nil.
//   - ErrInvalidConfiguration  if start/end is nil, foreign, equal, a barrier,
//     or another cell also holds the Start or End role.
package bfs
