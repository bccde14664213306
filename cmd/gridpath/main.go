// Command gridpath is an interactive breadth-first search demonstrator: mark a
// start, an end and barriers on a grid in the terminal and watch BFS find the
// shortest route. `gridpath solve` runs the same search on an ASCII map.
package main

import (
	"os"

	"github.com/plan-systems/klog"
)

func main() {
	err := newRootCmd().Execute()
	klog.Flush()
	if err != nil {
		os.Exit(1)
	}
}
