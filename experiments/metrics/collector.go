package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Duration time.Duration `json:"search_duration"`
	Nodes    int           `json:"nodes"`   // Positions visited
	Leaves   int           `json:"leaves"`  // Finished games reached
	Cutoffs  int           `json:"cutoffs"` // Alpha-beta prunes
	Value    int           `json:"value"`   // Minimax value of the chosen move
}

type MoveMetric struct {
	Step   int `json:"step"`
	Player int `json:"player"` // 1 or 2
	Move   int `json:"move"`
	SearchMetric
}

type GameMetric struct {
	ID           string        `json:"id"`
	BoardSize    int           `json:"board_size"`
	Penalties    bool          `json:"penalties"`
	Result       int           `json:"result"` // score1 - score2
	Score1       int           `json:"score1"`
	Score2       int           `json:"score2"`
	Winner       int           `json:"winner"` // 0 on a draw
	StartTime    time.Time     `json:"start_time"`
	EndTime      time.Time     `json:"end_time"`
	Duration     time.Duration `json:"duration"`
	TotalMoves   int           `json:"total_moves"`
	PenaltyMoves int           `json:"penalty_moves"`
}

type Collector interface {
	Start()
	AddNode()
	AddLeaf()
	AddCutoff()
	Complete(value int) SearchMetric
}

type collector struct {
	startTime time.Time
	nodes     atomic.Int32
	leaves    atomic.Int32
	cutoffs   atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start() {
	m.startTime = time.Now()
	m.nodes.Store(0)
	m.leaves.Store(0)
	m.cutoffs.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddLeaf() {
	m.leaves.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) Complete(value int) SearchMetric {
	return SearchMetric{
		Duration: time.Since(m.startTime),
		Nodes:    int(m.nodes.Load()),
		Leaves:   int(m.leaves.Load()),
		Cutoffs:  int(m.cutoffs.Load()),
		Value:    value,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()                          {}
func (m *dummyCollector) AddNode()                        {}
func (m *dummyCollector) AddLeaf()                        {}
func (m *dummyCollector) AddCutoff()                      {}
func (m *dummyCollector) Complete(value int) SearchMetric { return SearchMetric{Value: value} }
