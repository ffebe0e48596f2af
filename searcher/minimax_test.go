package searcher

import (
	"context"
	"math"
	"testing"

	"othello/game"

	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, s string) game.Board {
	t.Helper()
	b, err := game.ParseBoard(s)
	require.NoError(t, err)
	return b
}

func TestNewMinimax(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		m := NewMinimax()

		require.Equal(t, 3, m.Depth())
	})

	t.Run("ignores invalid depth", func(t *testing.T) {
		m := NewMinimax(WithDepth(0), WithDepth(-2))

		require.Equal(t, 3, m.Depth())
	})

	t.Run("custom depth", func(t *testing.T) {
		m := NewMinimax(WithDepth(2))

		require.Equal(t, 2, m.Depth())
	})
}

func TestBestMoveLeaves(t *testing.T) {
	t.Run("depth zero evaluates without moving", func(t *testing.T) {
		m := NewMinimax(WithMetrics())
		b, err := game.NewBoard().Play(game.Black, game.Coord{Row: 2, Col: 3})
		require.NoError(t, err)

		score, _, ok := m.BestMove(context.Background(), b, 0, game.White, game.White)

		require.False(t, ok, "Depth zero should not pick a move")
		require.Equal(t, game.EvaluatePosition(b, game.White), score)
	})

	t.Run("finished game evaluates once", func(t *testing.T) {
		var g game.Grid
		for i := range g {
			for j := range g[i] {
				g[i][j] = game.Black
			}
		}
		calls := 0
		m := NewMinimax(WithEvaluationFn(func(b game.Board, c game.Color) float64 {
			calls++
			return 42
		}))

		score, _, ok := m.BestMove(context.Background(), game.BoardFromGrid(g), 3, game.White, game.White)

		require.False(t, ok)
		require.Equal(t, 42.0, score)
		require.Equal(t, 1, calls, "Stuck positions should not recurse")
	})
}

func TestBestMoveSearch(t *testing.T) {
	t.Run("ties keep the first move", func(t *testing.T) {
		m := NewMinimax()

		_, move, ok := m.BestMove(context.Background(), game.NewBoard(), 1, game.Black, game.Black)

		require.True(t, ok)
		require.Equal(t, game.Coord{Row: 3, Col: 2}, move, "All opening moves score the same")
	})

	t.Run("maximizes at depth one", func(t *testing.T) {
		m := NewMinimax()
		b := game.NewBoard()

		score, move, ok := m.BestMove(context.Background(), b, 1, game.Black, game.Black)

		require.True(t, ok)
		best := math.Inf(-1)
		for _, candidate := range b.LegalMoves(game.Black) {
			child, err := b.Play(game.Black, candidate)
			require.NoError(t, err)
			best = math.Max(best, game.EvaluatePosition(child, game.Black))
		}
		require.Equal(t, best, score)
		require.True(t, b.IsLegal(game.Black, move))
	})

	t.Run("minimizes on opponent plies", func(t *testing.T) {
		m := NewMinimax()
		b := game.NewBoard()

		score, move, ok := m.BestMove(context.Background(), b, 2, game.Black, game.Black)

		require.True(t, ok)
		best := math.Inf(-1)
		var bestMove game.Coord
		for _, candidate := range b.LegalMoves(game.Black) {
			child, err := b.Play(game.Black, candidate)
			require.NoError(t, err)
			worst := math.Inf(1)
			for _, reply := range child.LegalMoves(game.White) {
				grandChild, err := child.Play(game.White, reply)
				require.NoError(t, err)
				worst = math.Min(worst, game.EvaluatePosition(grandChild, game.Black))
			}
			if worst > best {
				best = worst
				bestMove = candidate
			}
		}
		require.Equal(t, best, score)
		require.Equal(t, bestMove, move)
	})

	t.Run("does not modify the caller's board", func(t *testing.T) {
		m := NewMinimax()
		b := game.NewBoard()
		before := b

		m.BestMove(context.Background(), b, 3, game.Black, game.Black)

		require.Equal(t, before, b)
	})

	t.Run("counts visited positions", func(t *testing.T) {
		calls := 0
		m := NewMinimax(WithMetrics(), WithDepth(1), WithEvaluationFn(func(b game.Board, c game.Color) float64 {
			calls++
			return 0
		}))

		move, ok, metric := m.FindMove(context.Background(), game.NewGame())

		require.True(t, ok)
		require.Equal(t, game.Coord{Row: 3, Col: 2}, move)
		require.Equal(t, 4, calls, "One evaluation per opening move")
		require.Equal(t, 4, metric.Leaves)
		require.Equal(t, 1, metric.Nodes)
		require.Equal(t, 1, metric.Depth)
		require.False(t, metric.Cutoff)
	})
}

func TestBestMovePass(t *testing.T) {
	b := parse(t, `
wb......
........
........
........
........
........
........
........`)
	m := NewMinimax(WithMetrics())
	m.metrics.Start(2)

	score, _, ok := m.BestMove(context.Background(), b, 2, game.Black, game.Black)
	metric := m.metrics.Complete(score)

	require.False(t, ok, "Black has to pass")
	after, err := b.Play(game.White, game.Coord{Row: 0, Col: 2})
	require.NoError(t, err)
	require.Equal(t, game.EvaluatePosition(after, game.Black), score, "White's only reply should be searched after the pass")
	require.Equal(t, 1, metric.Passes)
}

func TestFindMove(t *testing.T) {
	t.Run("no move on finished game", func(t *testing.T) {
		var b game.Board
		b.Set(game.Coord{Row: 0, Col: 0}, game.White)
		m := NewMinimax()

		_, ok, _ := m.FindMove(context.Background(), game.NewGameFrom(b, game.Black))

		require.False(t, ok)
	})

	t.Run("expired deadline still returns a legal move", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		m := NewMinimax(WithMetrics())
		state := game.NewGame()

		move, ok, metric := m.FindMove(ctx, state)

		require.True(t, ok)
		require.True(t, state.Board().IsLegal(game.Black, move))
		require.True(t, metric.Cutoff)
		require.Equal(t, 4, metric.Leaves, "Only the root should be expanded")
	})

	t.Run("plays for white", func(t *testing.T) {
		state := game.NewGame()
		require.NoError(t, state.Play(game.Coord{Row: 2, Col: 3}))
		m := NewMinimax(WithDepth(2))

		move, ok, _ := m.FindMove(context.Background(), state)

		require.True(t, ok)
		require.True(t, state.Board().IsLegal(game.White, move))
	})
}
