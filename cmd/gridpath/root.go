package main

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/session"
	"github.com/katalvlaran/gridpath/tui"
)

// rootOptions holds flag values shared by every command.
type rootOptions struct {
	envFile    string
	rows       int
	cellSize   int
	delay      time.Duration
	sealBorder bool
	logFile    string
	verbosity  int

	cfg config.Config
}

func newRootCmd() *cobra.Command {
	o := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "gridpath",
		Short: "Watch breadth-first search find the shortest path on a grid",
		Long: `gridpath opens an interactive grid in the terminal.

Left click places the start, then the end, then barriers (drag to paint).
Right click erases. SPACE runs breadth-first search and highlights the
shortest path; c clears the grid; q quits.

Settings come from flags, GRIDPATH_* environment variables or a .env file.

Examples:
  # 30×30 grid, slow animation
  gridpath --rows 30 --delay 50ms

  # Solve an ASCII map without the UI
  gridpath solve maze.txt`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		PersistentPreRunE: o.load,
		RunE: func(cmd *cobra.Command, _ []string) error {
			setupLogging(o.cfg.LogFile, o.verbosity, true)
			return runInteractive(cmd.Context(), o.cfg)
		},
	}

	f := cmd.PersistentFlags()
	f.StringVar(&o.envFile, "env-file", "", "dotenv file with GRIDPATH_* settings (default .env)")
	f.StringVar(&o.logFile, "log-file", "", "write logs to this file")
	f.IntVarP(&o.verbosity, "verbose", "v", 0, "log verbosity")
	f.IntVar(&o.rows, "rows", config.DefaultRows, "cells per side")
	f.IntVar(&o.cellSize, "cell-size", config.DefaultCellSize, "pixel size of one cell")
	f.DurationVar(&o.delay, "delay", config.DefaultStepDelay, "pause after each search step")
	f.BoolVar(&o.sealBorder, "seal-border", true, "keep the outer ring of cells as barriers")

	cmd.AddCommand(newSolveCmd(o))
	return cmd
}

// load reads the environment configuration and applies explicitly set flags
// on top of it.
func (o *rootOptions) load(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(o.envFile)
	if err != nil {
		return err
	}
	f := cmd.Flags()
	if f.Changed("rows") {
		cfg.Rows = o.rows
	}
	if f.Changed("cell-size") {
		cfg.CellSize = o.cellSize
	}
	if f.Changed("delay") {
		cfg.StepDelay = o.delay
	}
	if f.Changed("seal-border") {
		cfg.SealBorder = o.sealBorder
	}
	if f.Changed("log-file") {
		cfg.LogFile = o.logFile
	}
	o.cfg = cfg
	return cfg.Validate()
}

// runInteractive opens the terminal and runs the UI until the user quits or
// the process is interrupted.
func runInteractive(ctx context.Context, cfg config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	sess, err := session.New(session.Options{
		Rows:       cfg.Rows,
		CellSize:   cfg.CellSize,
		SealBorder: cfg.SealBorder,
	})
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "failed to open terminal")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "failed to initialise terminal")
	}
	defer screen.Fini()

	klog.Infof("interactive session: %dx%d grid, step delay %v, sealed border %t",
		cfg.Rows, cfg.Rows, cfg.StepDelay, cfg.SealBorder)
	return tui.New(screen, sess, tui.Options{StepDelay: cfg.StepDelay}).Run(ctx)
}
