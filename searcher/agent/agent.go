package agent

import (
	"context"

	"othello/experiments/metrics"
	"othello/game"
)

type Agent interface {
	// FindMove returns a move for the side to move of state and performance metrics (if collected).
	// It returns false only when that side has no legal move.
	FindMove(ctx context.Context, state *game.GameState) (game.Coord, bool, metrics.SearchMetric)
}
