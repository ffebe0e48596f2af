package experiments

import (
	"context"
	"fmt"

	"othello/engine"
	"othello/experiments/metrics"
	"othello/meta"
	"othello/searcher/agent"

	"github.com/rs/zerolog/log"
)

// Summary tallies the results of a tournament.
type Summary struct {
	Wins       map[string]int
	Draws      int
	Forfeits   int
	Unfinished int // Games stopped at the turn limit
	Games      []metrics.GameRecord
	Moves      []metrics.MoveRecord
	Dir        string // Where records were written, if anywhere
}

// Run plays every matchup of setup with bots built from registry. Colors alternate
// between games of the same matchup, the first listed bot starting as black.
func Run(ctx context.Context, setup Setup, registry *agent.Registry) (Summary, error) {
	if err := setup.Validate(registry); err != nil {
		return Summary{}, err
	}

	summary := Summary{Wins: make(map[string]int)}
	matchUps := setup.Matchups()
	count := 0

	log.Info().Msgf("starting %s experiment...", setup.Name)

	for mi, matchup := range matchUps {
		log.Info().Msgf("starting matchup %d of %d between %s and %s...", mi+1, len(matchUps), matchup[0], matchup[1])

		for i := 0; i < setup.Games; i++ {
			if err := ctx.Err(); err != nil {
				return summary, err
			}

			black, white := matchup[0], matchup[1]
			if i%2 == 1 {
				black, white = white, black
			}
			log.Info().Msgf("starting matchup %d of %d game %d of %d...", mi+1, len(matchUps), i+1, setup.Games)

			result, err := runGame(ctx, registry, black, white, setup.MaxTurns)
			if err != nil {
				return summary, err
			}
			count++
			summary.Games = append(summary.Games, metrics.GameRecord{
				ID:         count,
				Matchup:    mi + 1,
				GameMetric: result.Game,
			})
			for _, mm := range result.Moves {
				summary.Moves = append(summary.Moves, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}
			switch result.Winner {
			case "":
				summary.Unfinished++
			case meta.DRAW:
				summary.Draws++
			default:
				summary.Wins[result.Winner]++
			}
			if result.Forfeit {
				summary.Forfeits++
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %s", mi+1, len(matchUps), i+1, result.Winner)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(matchUps))
	}

	log.Info().Msgf("completed %s experiment", setup.Name)

	if setup.Output == "" {
		return summary, nil
	}
	dir, err := writeRecords(setup, summary)
	if err != nil {
		return summary, err
	}
	summary.Dir = dir
	return summary, nil
}

func runGame(ctx context.Context, registry *agent.Registry, black, white string, maxTurns int) (engine.Result, error) {
	blackAgent, err := registry.New(black)
	if err != nil {
		return engine.Result{}, err
	}
	whiteAgent, err := registry.New(white)
	if err != nil {
		return engine.Result{}, err
	}

	e := engine.LocalEngine(
		engine.Player{Name: black, Agent: blackAgent},
		engine.Player{Name: white, Agent: whiteAgent},
		engine.WithMaxTurns(maxTurns),
	)
	return e.Run(ctx), nil
}

func writeRecords(setup Setup, summary Summary) (string, error) {
	writer, err := metrics.NewWriter(setup.Output, setup.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteSetup(setup); err != nil {
		return "", fmt.Errorf("failed to store setup: %w", err)
	}
	log.Info().Msg("stored setup")

	if err := writer.WriteGameRecords(summary.Games); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(summary.Moves); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}
