package session_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/session"
)

func at(r, c int) grid.Coord { return grid.Coord{Row: r, Col: c} }

func newSession(t *testing.T, rows int, seal bool) *session.Session {
	t.Helper()
	s, err := session.New(session.Options{Rows: rows, CellSize: 10, SealBorder: seal})
	require.NoError(t, err)
	return s
}

func role(s *session.Session, c grid.Coord) grid.Role {
	return s.Grid().At(c.Row, c.Col).Role()
}

func TestNew(t *testing.T) {
	_, err := session.New(session.Options{Rows: 0, CellSize: 10})
	require.ErrorIs(t, err, grid.ErrEmptyGrid)

	s := newSession(t, 5, true)
	assert.Equal(t, 16, s.Grid().Count(grid.Barrier))
	assert.Nil(t, s.Start())
	assert.Nil(t, s.End())
	assert.False(t, s.Busy())

	open := newSession(t, 5, false)
	assert.Zero(t, open.Grid().Count(grid.Barrier))
}

func TestPlace_Sequence(t *testing.T) {
	s := newSession(t, 6, true)

	require.NoError(t, s.Place(at(1, 1)))
	require.NoError(t, s.Place(at(1, 1))) // clicking the start again is a no-op
	require.NoError(t, s.Place(at(4, 4)))
	require.NoError(t, s.Place(at(2, 2)))
	require.NoError(t, s.Place(at(4, 4)))

	assert.Equal(t, at(1, 1), s.Start().Coord())
	assert.Equal(t, at(4, 4), s.End().Coord())
	assert.Equal(t, grid.Start, role(s, at(1, 1)))
	assert.Equal(t, grid.End, role(s, at(4, 4)))
	assert.Equal(t, grid.Barrier, role(s, at(2, 2)))
}

func TestPlace_BarrierNeverBecomesEndpoint(t *testing.T) {
	s := newSession(t, 6, false)
	s.Grid().At(2, 2).SetRole(grid.Barrier)

	require.NoError(t, s.Place(at(2, 2)))
	assert.Nil(t, s.Start())
	assert.Equal(t, grid.Barrier, role(s, at(2, 2)))
}

func TestPlace_BorderLocked(t *testing.T) {
	s := newSession(t, 6, true)
	require.NoError(t, s.Place(at(0, 3)))
	assert.Nil(t, s.Start())
	require.NoError(t, s.Erase(at(0, 3)))
	assert.Equal(t, grid.Barrier, role(s, at(0, 3)))

	unsealed := newSession(t, 6, false)
	require.NoError(t, unsealed.Place(at(0, 3)))
	assert.Equal(t, at(0, 3), unsealed.Start().Coord())
}

func TestPlace_OutOfBounds(t *testing.T) {
	s := newSession(t, 4, true)
	require.ErrorIs(t, s.Place(at(9, 9)), grid.ErrOutOfBounds)
	require.ErrorIs(t, s.Erase(at(-1, 0)), grid.ErrOutOfBounds)
}

func TestErase(t *testing.T) {
	s := newSession(t, 6, true)
	require.NoError(t, s.Place(at(1, 1)))
	require.NoError(t, s.Place(at(4, 4)))
	require.NoError(t, s.Place(at(2, 2)))

	require.NoError(t, s.Erase(at(1, 1)))
	require.NoError(t, s.Erase(at(2, 2)))
	assert.Nil(t, s.Start())
	assert.Equal(t, grid.Empty, role(s, at(1, 1)))
	assert.Equal(t, grid.Empty, role(s, at(2, 2)))

	// the next click picks a new start; the end is kept
	require.NoError(t, s.Place(at(3, 1)))
	assert.Equal(t, at(3, 1), s.Start().Coord())
	assert.Equal(t, at(4, 4), s.End().Coord())

	require.NoError(t, s.Erase(at(4, 4)))
	assert.Nil(t, s.End())
}

func TestClear(t *testing.T) {
	s := newSession(t, 6, true)
	require.NoError(t, s.Place(at(1, 1)))
	require.NoError(t, s.Place(at(4, 4)))
	require.NoError(t, s.Place(at(2, 2)))

	require.NoError(t, s.Clear())
	assert.Nil(t, s.Start())
	assert.Nil(t, s.End())
	assert.Equal(t, 20, s.Grid().Count(grid.Barrier))
	assert.Equal(t, 16, s.Grid().Count(grid.Empty))
}

func TestSearch_NotReady(t *testing.T) {
	s := newSession(t, 6, true)
	_, err := s.Search(context.Background(), nil)
	require.ErrorIs(t, err, session.ErrNotReady)

	require.NoError(t, s.Place(at(1, 1)))
	_, err = s.Search(context.Background(), nil)
	require.ErrorIs(t, err, session.ErrNotReady)
}

func TestSearch_FoundMarksGrid(t *testing.T) {
	s := newSession(t, 7, true)
	require.NoError(t, s.Place(at(1, 1)))
	require.NoError(t, s.Place(at(5, 5)))

	redraws := 0
	out, err := s.Search(context.Background(), func() { redraws++ })
	require.NoError(t, err)

	assert.True(t, out.Found)
	assert.False(t, out.Cancelled)
	assert.Len(t, out.Path, 7)
	assert.NotEqual(t, [16]byte{}, [16]byte(out.ID))
	for _, c := range out.Path {
		assert.Equal(t, grid.Path, role(s, c))
	}
	assert.Equal(t, grid.Start, role(s, at(1, 1)))
	assert.Equal(t, grid.End, role(s, at(5, 5)))
	assert.Equal(t, 7, s.Grid().Count(grid.Path))
	assert.Equal(t, out.Visited-2-7, s.Grid().Count(grid.Visited))
	assert.Greater(t, redraws, len(out.Path))
	assert.False(t, s.Busy())
}

func TestSearch_RerunClearsTrail(t *testing.T) {
	s := newSession(t, 7, true)
	require.NoError(t, s.Place(at(1, 1)))
	require.NoError(t, s.Place(at(5, 5)))

	first, err := s.Search(context.Background(), nil)
	require.NoError(t, err)

	// wall off the end and search again: the old path must disappear
	for _, c := range []grid.Coord{at(4, 5), at(5, 4)} {
		require.NoError(t, s.Place(c))
	}
	second, err := s.Search(context.Background(), nil)
	require.NoError(t, err)

	assert.True(t, first.Found)
	assert.False(t, second.Found)
	assert.Zero(t, s.Grid().Count(grid.Path))
	assert.NotEqual(t, first.ID, second.ID)
}

func TestSearch_Deterministic(t *testing.T) {
	s := newSession(t, 9, true)
	require.NoError(t, s.Place(at(1, 1)))
	require.NoError(t, s.Place(at(7, 6)))
	require.NoError(t, s.Place(at(3, 3)))
	require.NoError(t, s.Place(at(4, 3)))

	first, err := s.Search(context.Background(), nil)
	require.NoError(t, err)
	second, err := s.Search(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, first.Path, second.Path)
	assert.Equal(t, first.Visited, second.Visited)
}

func TestSearch_GuardsReentry(t *testing.T) {
	s := newSession(t, 6, true)
	require.NoError(t, s.Place(at(1, 1)))
	require.NoError(t, s.Place(at(4, 4)))

	var inner, edit error
	_, err := s.Search(context.Background(), func() {
		if inner == nil {
			_, inner = s.Search(context.Background(), nil)
			edit = s.Place(at(2, 2))
		}
		assert.True(t, s.Busy())
	})
	require.NoError(t, err)
	require.ErrorIs(t, inner, session.ErrSearchInProgress)
	require.ErrorIs(t, edit, session.ErrSearchInProgress)
	require.NoError(t, s.Clear())
}

func TestSearch_Cancelled(t *testing.T) {
	s := newSession(t, 12, true)
	require.NoError(t, s.Place(at(1, 1)))
	require.NoError(t, s.Place(at(10, 10)))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	steps := 0
	out, err := s.Search(ctx, func() {
		steps++
		if steps == 3 {
			cancel()
		}
	})
	require.NoError(t, err)
	assert.False(t, out.Found)
	assert.True(t, out.Cancelled)
	assert.Equal(t, 3, steps)
	assert.False(t, s.Busy())
}

func TestSearch_Unreachable(t *testing.T) {
	s := newSession(t, 7, true)
	require.NoError(t, s.Place(at(1, 1)))
	require.NoError(t, s.Place(at(3, 3)))
	for _, c := range []grid.Coord{at(2, 3), at(4, 3), at(3, 2), at(3, 4)} {
		require.NoError(t, s.Place(c))
	}
	out, err := s.Search(context.Background(), nil)
	require.NoError(t, err)
	assert.False(t, out.Found)
	assert.False(t, out.Cancelled)
	assert.Empty(t, out.Path)
}

func TestFromGrid(t *testing.T) {
	g, err := grid.Parse(strings.NewReader(`
S..
.#.
..E
`), 1)
	require.NoError(t, err)
	s, err := session.FromGrid(g, session.Options{})
	require.NoError(t, err)
	assert.Equal(t, at(0, 0), s.Start().Coord())
	assert.Equal(t, at(2, 2), s.End().Coord())

	out, err := s.Search(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, []grid.Coord{at(1, 0), at(2, 0), at(2, 1)}, out.Path)
	assert.Equal(t, "S++\n*#+\n**E\n", g.String())
}

func TestFromGrid_InvalidLayout(t *testing.T) {
	for _, src := range []string{"S.\n..\n", "SE\nE.\n", "..\n..\n"} {
		g, err := grid.Parse(strings.NewReader(src), 1)
		require.NoError(t, err)
		_, err = session.FromGrid(g, session.Options{})
		require.ErrorIs(t, err, session.ErrInvalidLayout, src)
	}
	_, err := session.FromGrid(nil, session.Options{})
	require.ErrorIs(t, err, session.ErrInvalidLayout)
}
