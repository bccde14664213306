package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/route"
	"github.com/katalvlaran/gridpath/session"
)

// errNoPath makes `gridpath solve` exit non-zero when the end is unreachable.
var errNoPath = errors.New("no path between start and end")

func newSolveCmd(root *rootOptions) *cobra.Command {
	var showVisited bool
	cmd := &cobra.Command{
		Use:   "solve [map-file]",
		Short: "Find the shortest path on an ASCII map",
		Long: `solve reads a square ASCII map from map-file (or stdin) and prints it back
with the shortest path drawn in.

Map symbols:
  .  empty      #  barrier
  S  start      E  end

Output adds * for path cells and, with --show-visited, + for searched cells.
The map border is used as given unless --seal-border is passed explicitly.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(root.cfg.LogFile, root.verbosity, false)
			seal := cmd.Flags().Changed("seal-border") && root.cfg.SealBorder
			return runSolve(cmd, args, root.cfg, seal, showVisited)
		},
	}
	cmd.Flags().BoolVar(&showVisited, "show-visited", false, "mark every searched cell with +")
	return cmd
}

// runSolve parses the map, runs one search and writes the result to the
// command's output.
func runSolve(cmd *cobra.Command, args []string, cfg config.Config, seal, showVisited bool) error {
	var in io.Reader = cmd.InOrStdin()
	name := "stdin"
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in, name = f, args[0]
	}

	g, err := grid.Parse(in, cfg.CellSize)
	if err != nil {
		return errors.Wrapf(err, "parse %s", name)
	}
	sess, err := session.FromGrid(g, session.Options{SealBorder: seal})
	if err != nil {
		return errors.Wrapf(err, "parse %s", name)
	}
	klog.V(1).Infof("solving %s: %dx%d grid", name, g.Rows(), g.Rows())

	out, err := sess.Search(cmd.Context(), nil)
	if err != nil {
		return err
	}
	if !showVisited {
		g.ClearRoles(grid.Visited)
	}

	w := cmd.OutOrStdout()
	if err := g.Format(w); err != nil {
		return err
	}
	if !out.Found {
		fmt.Fprintf(w, "no path (%d cells searched)\n", out.Visited)
		return errNoPath
	}
	fmt.Fprintf(w, "path: %d moves, %d cells searched in %v\n",
		route.Length(out.Path), out.Visited, out.Duration.Round(time.Microsecond))
	return nil
}
