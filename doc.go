// Package gridpath is an interactive playground for breadth-first shortest
// paths on a square grid: place a start, an end and some walls, then watch
// the frontier spread and the path light up.
//
// What is gridpath?
//
//	A small, dependency-light toolkit split into a core and a front end:
//		• grid/     square grid of cells with roles, 4-neighbour adjacency,
//		             border sealing and a plain-text map codec
//		• bfs/      breadth-first traversal with visit hooks, early stop on
//		             the end cell and context cancellation
//		• route/    predecessor-map path reconstruction with a corruption bound
//		• session/  editing rules and the search lifecycle of one demo run
//		• tui/      tcell front end: mouse editing, animated search
//		• config/   environment and .env configuration
//		• cmd/gridpath  cobra CLI: interactive mode and `solve` for map files
//
// The core (grid, bfs, route) never renders, sleeps or logs. Presentation
// hooks in through bfs.WithOnVisit and bfs.WithOnDequeue.
//
// Quick ASCII example:
//
//	S . # .        S + # .
//	. . # .   =>   * + # .
//	. . . E        * * * E
//
// Roles on the right: S start, E end, # barrier, + visited, * path.
//
//	go install github.com/katalvlaran/gridpath/cmd/gridpath@latest
package gridpath
