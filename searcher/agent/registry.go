package agent

import (
	"fmt"

	"othello/meta"
	"othello/searcher"

	"golang.org/x/exp/slices"
)

// Factory builds a fresh agent for a single game.
type Factory func() Agent

// Registry maps bot names to their factories. Bots are registered explicitly at startup.
type Registry struct {
	names     []string
	factories map[string]Factory
}

func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// DefaultRegistry registers the built-in bots: canary (minimax at the default depth),
// shallow (minimax at a lower depth) and random.
func DefaultRegistry(depth int, seed uint64) *Registry {
	r := NewRegistry()
	r.MustRegister("canary", func() Agent {
		return NewMinimaxAgent(searcher.NewMinimax(searcher.WithDepth(depth), searcher.WithMetrics()))
	})
	r.MustRegister("shallow", func() Agent {
		return NewMinimaxAgent(searcher.NewMinimax(searcher.WithDepth(meta.ShallowDepth), searcher.WithMetrics()))
	})
	r.MustRegister("random", func() Agent {
		return NewRandomAgent(seed)
	})
	return r
}

func (r *Registry) Register(name string, factory Factory) error {
	if name == "" {
		return fmt.Errorf("cannot register bot: empty name")
	}
	if factory == nil {
		return fmt.Errorf("cannot register bot %q: nil factory", name)
	}
	if _, ok := r.factories[name]; ok {
		return fmt.Errorf("cannot register bot %q: already registered", name)
	}
	r.factories[name] = factory
	r.names = append(r.names, name)
	return nil
}

func (r *Registry) MustRegister(name string, factory Factory) {
	if err := r.Register(name, factory); err != nil {
		panic(err)
	}
}

// New builds an agent by name.
func (r *Registry) New(name string) (Agent, error) {
	factory, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("unknown bot %q, registered bots: %v", name, r.names)
	}
	return factory(), nil
}

func (r *Registry) Has(name string) bool {
	return slices.Contains(r.names, name)
}

// Names returns the registered names in registration order.
func (r *Registry) Names() []string {
	return slices.Clone(r.names)
}
