package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Difficulty string
	Duration   time.Duration
	Candidates int // legal moves at the root
	Nodes      int // positions whose legal moves were generated
	Clones     int // boards projected one ply deeper
}

type MoveMetric struct {
	Step   int
	Player string // color
	Origin string // "x,y", empty on a pass
	Flips  int
	SearchMetric
}

type GameMetric struct {
	StartingPlayer string
	Winner         string // color, "tie" on equal counts
	Black          int
	White          int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
	Passes         int
}

type Collector interface {
	Start(difficulty string, candidates int)
	AddNode()
	AddClone()
	Complete() SearchMetric
}

type collector struct {
	difficulty string
	candidates int
	startTime  time.Time
	nodes      atomic.Int32
	clones     atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(difficulty string, candidates int) {
	m.startTime = time.Now()
	m.difficulty = difficulty
	m.candidates = candidates
	m.nodes.Store(0)
	m.clones.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddClone() {
	m.clones.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Difficulty: m.difficulty,
		Duration:   time.Since(m.startTime),
		Candidates: m.candidates,
		Nodes:      int(m.nodes.Load()),
		Clones:     int(m.clones.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(difficulty string, candidates int) {}
func (m *dummyCollector) AddNode()                                {}
func (m *dummyCollector) AddClone()                               {}
func (m *dummyCollector) Complete() SearchMetric                  { return SearchMetric{} }
