package agent

import (
	"context"

	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"
)

type minimaxAgent struct {
	minimax *searcher.Minimax
}

// NewMinimaxAgent returns an agent playing the best move found by minimax.
func NewMinimaxAgent(minimax *searcher.Minimax) Agent {
	return minimaxAgent{minimax: minimax}
}

func (a minimaxAgent) FindMove(ctx context.Context, state *game.GameState) (game.Coord, bool, metrics.SearchMetric) {
	// The searcher gets its own copy so a bot can never touch the caller's state
	return a.minimax.FindMove(ctx, state.Copy())
}
