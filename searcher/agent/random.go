package agent

import (
	"context"
	"math/rand/v2"

	"othello/experiments/metrics"
	"othello/game"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns an agent playing a uniformly random legal move. The same seed
// replays the same choices.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (a *randomAgent) FindMove(ctx context.Context, state *game.GameState) (game.Coord, bool, metrics.SearchMetric) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.Coord{}, false, metrics.SearchMetric{}
	}
	return moves[a.rng.IntN(len(moves))], true, metrics.SearchMetric{}
}
