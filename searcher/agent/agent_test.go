package agent

import (
	"context"
	"testing"

	"othello/game"
	"othello/searcher"

	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	t.Run("registers in order", func(t *testing.T) {
		r := DefaultRegistry(3, 1)

		require.Equal(t, []string{"canary", "shallow", "random"}, r.Names())
		require.True(t, r.Has("random"))
		require.False(t, r.Has("missing"))
	})

	t.Run("rejects duplicates", func(t *testing.T) {
		r := NewRegistry()
		factory := func() Agent { return NewRandomAgent(1) }

		require.NoError(t, r.Register("bot", factory))
		require.Error(t, r.Register("bot", factory), "Same name should not register twice")
		require.Error(t, r.Register("", factory))
		require.Error(t, r.Register("nil", nil))
		require.Panics(t, func() { r.MustRegister("bot", factory) })
	})

	t.Run("unknown bot", func(t *testing.T) {
		_, err := NewRegistry().New("ghost")

		require.Error(t, err)
	})

	t.Run("names are a copy", func(t *testing.T) {
		r := DefaultRegistry(3, 1)
		names := r.Names()
		names[0] = "changed"

		require.Equal(t, "canary", r.Names()[0])
	})

	t.Run("factories build fresh agents", func(t *testing.T) {
		r := DefaultRegistry(2, 1)
		for _, name := range r.Names() {
			a, err := r.New(name)
			require.NoError(t, err)

			move, ok, _ := a.FindMove(context.Background(), game.NewGame())

			require.True(t, ok, "%s should find an opening move", name)
			require.True(t, game.NewBoard().IsLegal(game.Black, move), "%s played an illegal move", name)
		}
	})
}

func TestRandomAgent(t *testing.T) {
	t.Run("same seed replays the same moves", func(t *testing.T) {
		a1 := NewRandomAgent(5)
		a2 := NewRandomAgent(5)
		state := game.NewGame()

		for i := 0; i < 10; i++ {
			m1, ok1, _ := a1.FindMove(context.Background(), state)
			m2, ok2, _ := a2.FindMove(context.Background(), state)
			require.True(t, ok1)
			require.True(t, ok2)
			require.Equal(t, m1, m2)
		}
	})

	t.Run("no move when stuck", func(t *testing.T) {
		var b game.Board
		b.Set(game.Coord{Row: 0, Col: 0}, game.Black)

		_, ok, _ := NewRandomAgent(1).FindMove(context.Background(), game.NewGameFrom(b, game.White))

		require.False(t, ok)
	})
}

func TestMinimaxAgent(t *testing.T) {
	state := game.NewGame()
	before := state.Copy()
	a := NewMinimaxAgent(searcher.NewMinimax(searcher.WithDepth(2), searcher.WithMetrics()))

	move, ok, metric := a.FindMove(context.Background(), state)

	require.True(t, ok)
	require.True(t, state.Board().IsLegal(game.Black, move))
	require.Equal(t, before, state, "Agent should not modify the game")
	require.Equal(t, 2, metric.Depth)
	require.Positive(t, metric.Leaves)
}
