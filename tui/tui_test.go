package tui

import (
	"context"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/session"
)

func newApp(t *testing.T, rows int) (*App, tcell.SimulationScreen) {
	t.Helper()
	scr := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, scr.Init())
	t.Cleanup(scr.Fini)
	scr.SetSize(80, 24)

	sess, err := session.New(session.Options{Rows: rows, CellSize: 1, SealBorder: true})
	require.NoError(t, err)
	return New(scr, sess, Options{}), scr
}

func click(row, col int, btn tcell.ButtonMask) *tcell.EventMouse {
	return tcell.NewEventMouse(col*CellWidth+1, row, btn, tcell.ModNone)
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

// screenLine returns the runes drawn on row y.
func screenLine(scr tcell.SimulationScreen, y int) string {
	cells, w, _ := scr.GetContents()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		if rs := cells[y*w+x].Runes; len(rs) > 0 {
			sb.WriteRune(rs[0])
		} else {
			sb.WriteRune(' ')
		}
	}
	return strings.TrimRight(sb.String(), " ")
}

func TestHandle_MouseEditing(t *testing.T) {
	app, _ := newApp(t, 8)
	ctx := context.Background()

	assert.False(t, app.Handle(ctx, click(1, 1, tcell.ButtonPrimary)))
	assert.False(t, app.Handle(ctx, click(6, 6, tcell.ButtonPrimary)))
	assert.False(t, app.Handle(ctx, click(3, 4, tcell.ButtonPrimary)))

	g := app.sess.Grid()
	assert.Equal(t, grid.Start, g.At(1, 1).Role())
	assert.Equal(t, grid.End, g.At(6, 6).Role())
	assert.Equal(t, grid.Barrier, g.At(3, 4).Role())

	assert.False(t, app.Handle(ctx, click(3, 4, tcell.ButtonSecondary)))
	assert.Equal(t, grid.Empty, g.At(3, 4).Role())

	// outside the grid: ignored
	assert.False(t, app.Handle(ctx, click(20, 2, tcell.ButtonPrimary)))
	assert.False(t, app.Handle(ctx, tcell.NewEventMouse(70, 2, tcell.ButtonPrimary, tcell.ModNone)))
}

func TestHandle_SearchAndClear(t *testing.T) {
	app, scr := newApp(t, 8)
	ctx := context.Background()

	app.Handle(ctx, key(' '))
	assert.Equal(t, session.ErrNotReady.Error(), app.Status())

	app.Handle(ctx, click(1, 1, tcell.ButtonPrimary))
	app.Handle(ctx, click(6, 6, tcell.ButtonPrimary))
	assert.False(t, app.Handle(ctx, key(' ')))
	assert.Equal(t, "path: 10 moves, ", app.Status()[:len("path: 10 moves, ")])
	assert.Equal(t, 9, app.sess.Grid().Count(grid.Path))

	app.Draw()
	assert.Contains(t, screenLine(scr, 8), "path: 10 moves")

	app.Handle(ctx, key('c'))
	assert.Equal(t, "cleared", app.Status())
	assert.Zero(t, app.sess.Grid().Count(grid.Path))
	assert.Nil(t, app.sess.Start())
}

func TestHandle_NoPath(t *testing.T) {
	app, _ := newApp(t, 6)
	ctx := context.Background()
	for _, c := range [][2]int{{1, 1}, {4, 4}, {3, 4}, {4, 3}} {
		app.Handle(ctx, click(c[0], c[1], tcell.ButtonPrimary))
	}
	app.Handle(ctx, key(' '))
	assert.True(t, strings.HasPrefix(app.Status(), "no path"), app.Status())
}

func TestHandle_Quit(t *testing.T) {
	app, _ := newApp(t, 5)
	ctx := context.Background()
	assert.True(t, app.Handle(ctx, key('q')))
	assert.True(t, app.Handle(ctx, tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	assert.True(t, app.Handle(ctx, tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone)))
	assert.False(t, app.Handle(ctx, tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone)))
}

func TestHandle_QuitDuringSearch(t *testing.T) {
	app, _ := newApp(t, 12)
	ctx := context.Background()
	app.Handle(ctx, click(1, 1, tcell.ButtonPrimary))
	app.Handle(ctx, click(10, 10, tcell.ButtonPrimary))

	// queued before SPACE is handled: drained by the first redraw
	app.events <- click(5, 5, tcell.ButtonPrimary)
	app.events <- key('q')

	assert.True(t, app.Handle(ctx, key(' ')))
	assert.Equal(t, "search aborted", app.Status())
	assert.Equal(t, grid.Empty, app.sess.Grid().At(5, 5).Role())
	assert.False(t, app.sess.Busy())
}

func TestDraw_Colors(t *testing.T) {
	_, bg, _ := StyleFor(grid.Path).Decompose()
	assert.Equal(t, tcell.ColorLimeGreen, bg)
	_, bg, _ = StyleFor(grid.Barrier).Decompose()
	assert.Equal(t, tcell.ColorBlack, bg)
	_, bg, _ = StyleFor(grid.Role(77)).Decompose()
	assert.Equal(t, tcell.ColorDefault, bg)
}

func TestDraw_StatusLine(t *testing.T) {
	app, scr := newApp(t, 4)
	app.Draw()
	assert.True(t, strings.HasPrefix(screenLine(scr, 4), help), screenLine(scr, 4))
}
