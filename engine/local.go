package engine

import (
	"context"
	"fmt"
	"time"

	"othello/experiments/metrics"
	"othello/game"
	"othello/meta"
	"othello/searcher/agent"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

// Player is a named bot taking one side of a game.
type Player struct {
	Name  string
	Agent agent.Agent
}

type Option func(e *Engine)

// WithGrid starts the game from grid instead of the standard opening.
func WithGrid(grid game.Grid) Option {
	return func(e *Engine) {
		e.grid = grid
	}
}

func WithMaxTurns(turns int) Option {
	return func(e *Engine) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

// Engine holds the canonical grid of one game and alternates two players on it.
// Black moves first.
type Engine struct {
	grid     game.Grid
	players  [2]Player
	colors   [2]game.Color
	maxTurns int
}

type Result struct {
	Black   string
	White   string
	Winner  string // Bot name or meta.DRAW
	Outcome game.Outcome
	Forfeit bool     // The loser played an illegal move or none at all
	Details []string // Human readable protocol of the game
	Grid    game.Grid
	Game    metrics.GameMetric
	Moves   []metrics.MoveMetric
}

func LocalEngine(black, white Player, options ...Option) *Engine {
	if black.Agent == nil || white.Agent == nil {
		panic("both players need an agent")
	}
	if black.Name == white.Name {
		// Names identify the winner so they must differ
		black.Name += " (black)"
		white.Name += " (white)"
	}

	e := &Engine{
		grid:     game.NewBoard().Grid(),
		players:  [2]Player{black, white},
		colors:   [2]game.Color{game.Black, game.White},
		maxTurns: meta.MAX_TURNS,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run plays the game to its end. A side without moves passes; the game ends when both
// sides pass in a row, when a bot fails to return a legal move, or after the turn limit.
func (e *Engine) Run(ctx context.Context) Result {
	result := Result{
		Black: e.players[0].Name,
		White: e.players[1].Name,
	}
	details := func(format string, args ...any) {
		result.Details = append(result.Details, fmt.Sprintf(format, args...))
	}
	start := time.Now()

	log.Info().Msgf("%s (black) vs %s (white)", result.Black, result.White)

	turn := 0
	stopped := false
	turnCount := 1
	for ; turnCount <= e.maxTurns; turnCount++ {
		player := e.players[turn]
		color := e.colors[turn]

		fields := availableFields(e.grid, color)
		if len(fields) == 0 {
			details("bot %s cannot move", player.Name)
			if !stopped {
				stopped = true
				turn = 1 - turn
				continue
			}
			details("neither bot can move")
			details("game over")
			break
		}

		state := game.NewGameFrom(game.BoardFromGrid(e.grid), color)
		move, ok, searchMetric := player.Agent.FindMove(ctx, state)
		if ok {
			details("bot %s plays %v as %v", player.Name, move, color)
		} else {
			details("bot %s did not move", player.Name)
		}

		if !ok || !move.InBounds() || !slices.Contains(fields, move) {
			details("bot %s made a mistake", player.Name)
			details("game over")
			log.Warn().Msgf("bot %s returned illegal move %v (ok=%t), forfeiting", player.Name, move, ok)
			winner := e.players[1-turn]
			result.Forfeit = true
			result.Winner = winner.Name
			result.Outcome = outcomeFor(e.colors[1-turn])
			return e.finish(result, start, turnCount)
		}

		redrawn := redraw(&e.grid, move, color)
		details("fields %v flipped from %v to %v", redrawn, color.Opponent(), color)
		log.Debug().Msgf("turn %d: %s plays %v flipping %d", turnCount, player.Name, move, len(redrawn))

		result.Moves = append(result.Moves, metrics.MoveMetric{
			Step:         turnCount,
			Player:       color,
			Move:         move,
			Position:     game.BoardFromGrid(e.grid).Hash(),
			SearchMetric: searchMetric,
		})

		turn = 1 - turn
		stopped = false
	}

	counts := countFields(e.grid)
	unfinished := len(availableFields(e.grid, game.Black)) > 0 || len(availableFields(e.grid, game.White)) > 0
	if turnCount > e.maxTurns && unfinished {
		// The game has not ended, so there is no winner to report
		log.Warn().Msgf("stopped after %d turns", e.maxTurns)
		details("stopped after %d turns", e.maxTurns)
		details("%d fields black, %d fields white", counts[game.Black], counts[game.White])
		result.Outcome = game.InProgress
		return e.finish(result, start, turnCount)
	}

	details("%d fields black, %d fields white", counts[game.Black], counts[game.White])
	switch {
	case counts[game.Black] > counts[game.White]:
		result.Winner = result.Black
		result.Outcome = game.BlackWins
	case counts[game.Black] < counts[game.White]:
		result.Winner = result.White
		result.Outcome = game.WhiteWins
	default:
		result.Winner = meta.DRAW
		result.Outcome = game.Draw
	}
	return e.finish(result, start, turnCount)
}

func (e *Engine) finish(result Result, start time.Time, turns int) Result {
	counts := countFields(e.grid)
	end := time.Now()
	result.Grid = e.grid
	result.Game = metrics.GameMetric{
		Black:      result.Black,
		White:      result.White,
		Winner:     result.Winner,
		Outcome:    result.Outcome,
		BlackDiscs: counts[game.Black],
		WhiteDiscs: counts[game.White],
		Forfeit:    result.Forfeit,
		StartTime:  start,
		EndTime:    end,
		Duration:   end.Sub(start),
		TotalMoves: len(result.Moves),
	}

	log.Info().Msgf("game over after %d turns: %s (%d-%d), winner: %s",
		min(turns, e.maxTurns), result.Outcome, counts[game.Black], counts[game.White], result.Winner)
	return result
}

func outcomeFor(winner game.Color) game.Outcome {
	if winner == game.Black {
		return game.BlackWins
	}
	return game.WhiteWins
}
