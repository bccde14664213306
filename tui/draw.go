package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/gridpath/grid"
)

var roleColors = map[grid.Role]tcell.Color{
	grid.Empty:   tcell.ColorWhite,
	grid.Barrier: tcell.ColorBlack,
	grid.Start:   tcell.ColorTeal,
	grid.End:     tcell.ColorRed,
	grid.Visited: tcell.ColorGray,
	grid.Path:    tcell.ColorLimeGreen,
}

// StyleFor returns the style a cell with role r is painted with.
func StyleFor(r grid.Role) tcell.Style {
	bg, ok := roleColors[r]
	if !ok {
		bg = tcell.ColorDefault
	}
	return tcell.StyleDefault.Background(bg).Foreground(tcell.ColorGray)
}

// Draw paints the whole grid and the status line, then shows the screen.
func (a *App) Draw() {
	a.screen.Clear()
	g := a.sess.Grid()
	g.Each(func(c *grid.Cell) {
		st := StyleFor(c.Role())
		x := c.Col() * CellWidth
		for i := 0; i < CellWidth; i++ {
			a.screen.SetContent(x+i, c.Row(), ' ', nil, st)
		}
	})
	a.text(0, g.Rows(), help+" | "+a.status)
	a.screen.Show()
}

// text writes s starting at (x,y) in the default style.
func (a *App) text(x, y int, s string) {
	for _, r := range s {
		a.screen.SetContent(x, y, r, nil, tcell.StyleDefault)
		x++
	}
}
