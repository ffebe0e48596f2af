package searcher

import (
	"context"
	"time"

	"othello/experiments/metrics"
	"othello/game"
	"othello/meta"

	"github.com/rs/zerolog/log"
)

type Option func(m *Minimax)

// Minimax is a fixed-depth minimax searcher without pruning. It is not safe for
// concurrent use since it owns a single metrics collector.
type Minimax struct {
	depth    int
	duration time.Duration
	evaluate game.Evaluate
	metrics  metrics.Collector
}

func WithDepth(depth int) Option {
	return func(m *Minimax) {
		if depth > 0 {
			m.depth = depth
		}
	}
}

// WithDuration bounds the wall-clock time of FindMove. Positions reached after the
// deadline are scored by the evaluation function instead of being expanded.
func WithDuration(duration time.Duration) Option {
	return func(m *Minimax) {
		if duration > 0 {
			m.duration = duration
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *Minimax) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		depth:    meta.DefaultDepth,
		evaluate: game.EvaluatePosition,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

func (m *Minimax) Depth() int {
	return m.depth
}

// FindMove searches from the side to move of state and returns the best move, or false
// when that side has no legal move.
func (m *Minimax) FindMove(ctx context.Context, state *game.GameState) (game.Coord, bool, metrics.SearchMetric) {
	if m.duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.duration)
		defer cancel()
	}

	m.metrics.Start(m.depth)
	player := state.Player()
	score, move, ok := m.BestMove(ctx, state.Board(), m.depth, player, player)
	metric := m.metrics.Complete(score)

	if ok {
		log.Debug().Msgf("%v chose %v with score %.3f at depth %d", player, move, score, m.depth)
	}
	return move, ok, metric
}

// BestMove returns the minimax score of board with mover to move, searched depth plies
// deep and scored from the maximizing color's perspective, along with the move that
// achieves it. Ties keep the first move found. No move is returned at leaves or when
// mover has to pass.
func (m *Minimax) BestMove(ctx context.Context, board game.Board, depth int, mover, maximizing game.Color) (float64, game.Coord, bool) {
	return m.search(ctx, board, depth, 0, mover, maximizing)
}

func (m *Minimax) search(ctx context.Context, board game.Board, depth, ply int, mover, maximizing game.Color) (float64, game.Coord, bool) {
	state := game.NewGameFrom(board, mover)
	if depth <= 0 || state.Outcome().Terminal() {
		m.metrics.AddLeaf()
		return m.evaluate(board, maximizing), game.Coord{}, false
	}
	// The root is always expanded so a legal move is returned even past the deadline
	if ply > 0 && ctx.Err() != nil {
		m.metrics.SetCutoff()
		m.metrics.AddLeaf()
		return m.evaluate(board, maximizing), game.Coord{}, false
	}

	m.metrics.AddNode()
	moves := board.LegalMoves(mover)
	if len(moves) == 0 {
		m.metrics.AddPass()
		score, _, _ := m.search(ctx, board, depth-1, ply+1, mover.Opponent(), maximizing)
		return score, game.Coord{}, false
	}

	maximize := mover == maximizing
	var best float64
	var bestMove game.Coord
	for i, move := range moves {
		// Each child gets its own copy of the board
		child, err := board.Play(mover, move)
		if err != nil {
			panic(err)
		}
		score, _, _ := m.search(ctx, child, depth-1, ply+1, mover.Opponent(), maximizing)
		if i == 0 || (maximize && score > best) || (!maximize && score < best) {
			best = score
			bestMove = move
		}
	}
	return best, bestMove, true
}
