package experiments

import (
	"fmt"
	"os"

	"othello/meta"
	"othello/searcher/agent"

	"gopkg.in/yaml.v3"
)

// Setup describes a tournament. It is read from YAML, e.g.
//
//	bots: [canary, shallow, random]
//	games: 2
//	depth: 3
//	seed: 1
//	output: experiments
type Setup struct {
	Name     string   `yaml:"name" json:"name"`
	Bots     []string `yaml:"bots" json:"bots"`
	Games    int      `yaml:"games" json:"games"` // per matchup
	Depth    int      `yaml:"depth" json:"depth"`
	Seed     uint64   `yaml:"seed" json:"seed"`
	MaxTurns int      `yaml:"max_turns" json:"maxTurns"`
	Output   string   `yaml:"output" json:"output"` // Records are not written when empty
}

func DefaultSetup() Setup {
	return Setup{
		Name:     "tournament",
		Bots:     []string{"canary", "shallow", "random"},
		Games:    meta.GAMES,
		Depth:    meta.DefaultDepth,
		Seed:     1,
		MaxTurns: meta.MAX_TURNS,
	}
}

// ParseSetup decodes YAML over the defaults.
func ParseSetup(data []byte) (Setup, error) {
	setup := DefaultSetup()
	if err := yaml.Unmarshal(data, &setup); err != nil {
		return Setup{}, fmt.Errorf("failed to parse setup: %w", err)
	}
	return setup, nil
}

func LoadSetup(path string) (Setup, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Setup{}, fmt.Errorf("failed to read setup %s: %w", path, err)
	}
	return ParseSetup(data)
}

// Validate checks the setup against the bots known to registry.
func (s Setup) Validate(registry *agent.Registry) error {
	if len(s.Bots) < 2 {
		return fmt.Errorf("need at least two bots, got %d", len(s.Bots))
	}
	for _, name := range s.Bots {
		if !registry.Has(name) {
			return fmt.Errorf("unknown bot %q, registered bots: %v", name, registry.Names())
		}
	}
	if s.Games <= 0 {
		return fmt.Errorf("games per matchup must be positive, got %d", s.Games)
	}
	if s.Depth <= 0 {
		return fmt.Errorf("search depth must be positive, got %d", s.Depth)
	}
	return nil
}

// Matchups pairs every bot with the next one in the list.
func (s Setup) Matchups() [][2]string {
	var matchups [][2]string
	for k := 0; k+1 < len(s.Bots); k++ {
		matchups = append(matchups, [2]string{s.Bots[k], s.Bots[k+1]})
	}
	return matchups
}
