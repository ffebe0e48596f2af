package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"othello/experiments"
	"othello/meta"
	"othello/searcher/agent"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

func main() {
	config := flag.String("config", "", "YAML tournament setup")
	bots := flag.String("bots", "", "Comma separated bots, each plays the next one")
	games := flag.Int("games", 0, "Games per matchup")
	depth := flag.Int("depth", 0, fmt.Sprintf("Minimax search depth (default %d)", meta.DefaultDepth))
	seed := flag.Uint64("seed", 0, "Seed for random bots")
	out := flag.String("out", "", "Directory for game and move records")
	verbose := flag.Bool("v", false, "Log every move")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	setup := experiments.DefaultSetup()
	if *config != "" {
		var err error
		setup, err = experiments.LoadSetup(*config)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load setup")
		}
	}
	if *bots != "" {
		setup.Bots = strings.Split(*bots, ",")
	}
	if *games > 0 {
		setup.Games = *games
	}
	if *depth > 0 {
		setup.Depth = *depth
	}
	if *seed > 0 {
		setup.Seed = *seed
	}
	if *out != "" {
		setup.Output = *out
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	registry := agent.DefaultRegistry(setup.Depth, setup.Seed)
	summary, err := experiments.Run(ctx, setup, registry)
	if err != nil {
		stop()
		log.Fatal().Err(err).Msg("tournament failed")
	}

	names := make([]string, 0, len(summary.Wins))
	for name := range summary.Wins {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		fmt.Printf("%s: %d wins\n", name, summary.Wins[name])
	}
	fmt.Printf("draws: %d, forfeits: %d, unfinished: %d\n", summary.Draws, summary.Forfeits, summary.Unfinished)
	if summary.Dir != "" {
		fmt.Printf("records written to %s\n", summary.Dir)
	}
}
