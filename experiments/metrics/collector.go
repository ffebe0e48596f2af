package metrics

import (
	"sync/atomic"
	"time"

	"othello/game"
)

type SearchMetric struct {
	Depth    int
	Duration time.Duration
	Nodes    int // Positions expanded
	Leaves   int // Positions scored by the evaluation function
	Passes   int // Positions where the side to move had to pass
	Cutoff   bool
	Score    float64
}

type MoveMetric struct {
	Step     int
	Player   game.Color
	Move     game.Coord
	Position game.StateHash // Board after the move
	SearchMetric
}

type GameMetric struct {
	Black      string
	White      string
	Winner     string // Bot name, "draw", or empty when stopped at the turn limit
	Outcome    game.Outcome
	BlackDiscs int
	WhiteDiscs int
	Forfeit    bool
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}

type Collector interface {
	Start(depth int)
	AddNode()
	AddLeaf()
	AddPass()
	SetCutoff()
	Complete(score float64) SearchMetric
}

type collector struct {
	depth     int
	startTime time.Time
	nodes     atomic.Int32
	leaves    atomic.Int32
	passes    atomic.Int32
	cutoff    atomic.Bool
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depth int) {
	m.startTime = time.Now()
	m.depth = depth
	m.nodes.Store(0)
	m.leaves.Store(0)
	m.passes.Store(0)
	m.cutoff.Store(false)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddLeaf() {
	m.leaves.Add(1)
}

func (m *collector) AddPass() {
	m.passes.Add(1)
}

func (m *collector) SetCutoff() {
	m.cutoff.Store(true)
}

func (m *collector) Complete(score float64) SearchMetric {
	return SearchMetric{
		Depth:    m.depth,
		Duration: time.Since(m.startTime),
		Nodes:    int(m.nodes.Load()),
		Leaves:   int(m.leaves.Load()),
		Passes:   int(m.passes.Load()),
		Cutoff:   m.cutoff.Load(),
		Score:    score,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth int)                     {}
func (m *dummyCollector) AddNode()                            {}
func (m *dummyCollector) AddLeaf()                            {}
func (m *dummyCollector) AddPass()                            {}
func (m *dummyCollector) SetCutoff()                          {}
func (m *dummyCollector) Complete(score float64) SearchMetric { return SearchMetric{Score: score} }
