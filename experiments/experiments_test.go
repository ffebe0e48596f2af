package experiments

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"othello/searcher/agent"

	"github.com/stretchr/testify/require"
)

func randomRegistry(names ...string) *agent.Registry {
	r := agent.NewRegistry()
	for i, name := range names {
		seed := uint64(i + 1)
		r.MustRegister(name, func() agent.Agent { return agent.NewRandomAgent(seed) })
	}
	return r
}

func TestParseSetup(t *testing.T) {
	t.Run("overrides defaults", func(t *testing.T) {
		setup, err := ParseSetup([]byte(`
name: smoke
bots: [shallow, random]
games: 4
max_turns: 80
`))

		require.NoError(t, err)
		require.Equal(t, "smoke", setup.Name)
		require.Equal(t, []string{"shallow", "random"}, setup.Bots)
		require.Equal(t, 4, setup.Games)
		require.Equal(t, 80, setup.MaxTurns)
		require.Equal(t, 3, setup.Depth, "Unset fields keep their defaults")
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		_, err := ParseSetup([]byte("bots: [unclosed"))

		require.Error(t, err)
	})

	t.Run("load from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "setup.yaml")
		require.NoError(t, os.WriteFile(path, []byte("games: 2\n"), 0644))

		setup, err := LoadSetup(path)

		require.NoError(t, err)
		require.Equal(t, 2, setup.Games)

		_, err = LoadSetup(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
	})
}

func TestSetupValidate(t *testing.T) {
	registry := agent.DefaultRegistry(3, 1)

	require.NoError(t, DefaultSetup().Validate(registry))

	setup := DefaultSetup()
	setup.Bots = []string{"canary"}
	require.Error(t, setup.Validate(registry), "One bot cannot play a matchup")

	setup = DefaultSetup()
	setup.Bots = []string{"canary", "ghost"}
	require.Error(t, setup.Validate(registry))

	setup = DefaultSetup()
	setup.Games = 0
	require.Error(t, setup.Validate(registry))
}

func TestMatchups(t *testing.T) {
	setup := Setup{Bots: []string{"a", "b", "c", "d"}}

	require.Equal(t, [][2]string{{"a", "b"}, {"b", "c"}, {"c", "d"}}, setup.Matchups())
}

func TestRun(t *testing.T) {
	t.Run("plays and records every game", func(t *testing.T) {
		setup := DefaultSetup()
		setup.Bots = []string{"r1", "r2", "r3"}
		setup.Games = 2
		setup.Output = t.TempDir()

		summary, err := Run(context.Background(), setup, randomRegistry("r1", "r2", "r3"))

		require.NoError(t, err)
		require.Len(t, summary.Games, 4, "Two matchups of two games")
		wins := summary.Draws
		for _, w := range summary.Wins {
			wins += w
		}
		require.Equal(t, 4, wins)
		require.Zero(t, summary.Forfeits)

		require.Equal(t, "r1", summary.Games[0].Black)
		require.Equal(t, "r2", summary.Games[1].Black, "Colors should alternate")

		f, err := os.Open(filepath.Join(summary.Dir, "game_records.csv"))
		require.NoError(t, err)
		defer f.Close()
		rows, err := csv.NewReader(f).ReadAll()
		require.NoError(t, err)
		require.Len(t, rows, 5, "Header plus one row per game")
		require.Equal(t, "id", rows[0][0])

		require.FileExists(t, filepath.Join(summary.Dir, "move_records.csv"))
		require.FileExists(t, filepath.Join(summary.Dir, "setup.json"))
	})

	t.Run("games stopped at the turn limit have no winner", func(t *testing.T) {
		setup := DefaultSetup()
		setup.Bots = []string{"r1", "r2"}
		setup.Games = 2
		setup.MaxTurns = 4

		summary, err := Run(context.Background(), setup, randomRegistry("r1", "r2"))

		require.NoError(t, err)
		require.Equal(t, 2, summary.Unfinished)
		require.Zero(t, summary.Draws)
		require.Empty(t, summary.Wins)
		for _, g := range summary.Games {
			require.Empty(t, g.Winner)
		}
	})

	t.Run("invalid setup", func(t *testing.T) {
		setup := DefaultSetup()

		_, err := Run(context.Background(), setup, randomRegistry("r1"))

		require.Error(t, err)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		setup := DefaultSetup()
		setup.Bots = []string{"r1", "r2"}

		_, err := Run(ctx, setup, randomRegistry("r1", "r2"))

		require.ErrorIs(t, err, context.Canceled)
	})
}
