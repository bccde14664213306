// Package tui is a terminal front end for a session: it draws the grid with
// tcell, maps mouse clicks to cells and keys to session actions, and animates
// searches through the session's redraw hook.
//
// Controls:
//
//	left click / drag   place start, then end, then barriers
//	right click / drag  erase
//	SPACE               search
//	c                   clear the grid
//	q, Esc, Ctrl-C      quit (also aborts a running search)
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/route"
	"github.com/katalvlaran/gridpath/session"
)

// CellWidth is the number of terminal columns one grid cell occupies.
const CellWidth = 2

const help = "SPACE search  c clear  q quit"

// Options tunes the front end.
type Options struct {
	// StepDelay pauses after every redraw during a search.
	StepDelay time.Duration
}

// App binds a tcell screen to a session.
type App struct {
	screen tcell.Screen
	sess   *session.Session
	opts   Options
	events chan tcell.Event
	status string
}

// New returns an App drawing sess on an initialised screen.
func New(screen tcell.Screen, sess *session.Session, opts Options) *App {
	return &App{
		screen: screen,
		sess:   sess,
		opts:   opts,
		events: make(chan tcell.Event, 64),
		status: "place start and end, then press SPACE",
	}
}

// Status returns the text shown under the grid.
func (a *App) Status() string { return a.status }

// Run pumps terminal events until the user quits or ctx ends.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := context.WithCancel(ctx)
	defer stop()

	a.screen.EnableMouse()
	go a.pump(ctx)
	a.Draw()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-a.events:
			if a.Handle(ctx, ev) {
				return nil
			}
			a.Draw()
		}
	}
}

// pump forwards screen events to the App loop. It ends when the screen is
// finalised or ctx is cancelled.
func (a *App) pump(ctx context.Context) {
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case a.events <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// Handle applies one event and reports whether the App should quit.
func (a *App) Handle(ctx context.Context, ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
	case *tcell.EventKey:
		if isQuit(ev) {
			return true
		}
		if ev.Key() != tcell.KeyRune {
			return false
		}
		switch ev.Rune() {
		case ' ':
			return a.search(ctx)
		case 'c', 'C':
			a.report(a.sess.Clear(), "cleared")
		}
	case *tcell.EventMouse:
		c, ok := a.cellAt(ev.Position())
		if !ok {
			return false
		}
		switch btn := ev.Buttons(); {
		case btn&tcell.ButtonPrimary != 0:
			a.report(a.sess.Place(c), "")
		case btn&tcell.ButtonSecondary != 0:
			a.report(a.sess.Erase(c), "")
		}
	}
	return false
}

// isQuit reports whether ev asks to leave the program.
func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

// cellAt maps a screen position to a grid coordinate.
func (a *App) cellAt(x, y int) (grid.Coord, bool) {
	c := grid.Coord{Row: y, Col: x / CellWidth}
	if x < 0 || !a.sess.Grid().InBounds(c.Row, c.Col) {
		return c, false
	}
	return c, true
}

// search runs the session search, animating every step. A quit key pressed
// while searching aborts the search and the App.
func (a *App) search(ctx context.Context) bool {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	quit := false
	out, err := a.sess.Search(ctx, func() {
		a.Draw()
		if a.drain() {
			quit = true
			cancel()
		}
		a.pause(ctx)
	})
	switch {
	case err != nil:
		a.report(err, "")
	case out.Found:
		a.status = fmt.Sprintf("path: %d moves, %d cells searched", route.Length(out.Path), out.Visited)
	case out.Cancelled:
		a.status = "search aborted"
	default:
		a.status = fmt.Sprintf("no path, %d cells searched", out.Visited)
	}
	return quit
}

// drain consumes pending events during a search and reports whether one of
// them was a quit request. Edits are dropped: the grid is locked while a
// search runs.
func (a *App) drain() bool {
	for {
		select {
		case ev := <-a.events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if isQuit(ev) {
					return true
				}
			case *tcell.EventResize:
				a.screen.Sync()
			}
		default:
			return false
		}
	}
}

// pause sleeps for the step delay unless ctx ends first.
func (a *App) pause(ctx context.Context) {
	if a.opts.StepDelay <= 0 {
		return
	}
	t := time.NewTimer(a.opts.StepDelay)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}

// report records err (or ok when err is nil and ok is set) in the status line.
func (a *App) report(err error, ok string) {
	switch {
	case err == nil && ok != "":
		a.status = ok
	case errors.Is(err, session.ErrNotReady), errors.Is(err, session.ErrSearchInProgress):
		a.status = err.Error()
	case err != nil:
		klog.Warningf("tui: %v", err)
		a.status = err.Error()
	}
}
