// Package obs collects lightweight pipeline counters.
package obs

import (
	"sync/atomic"

	"main/internal/bus"
)

// Metrics counts records flowing through each pipeline stage. All methods are
// nil-safe so metrics can be left unwired in tests.
type Metrics struct {
	pricesIn    uint64
	booksIn     uint64
	tradesIn    uint64
	inquiriesIn uint64
	malformed   uint64

	algoOrders    uint64
	executions    uint64
	streams       uint64
	positions     uint64
	riskUpdates   uint64
	guiWrites     uint64
	inquiriesDone uint64
}

// Snapshot is a point-in-time view of the counters.
type Snapshot struct {
	PricesIn    uint64
	BooksIn     uint64
	TradesIn    uint64
	InquiriesIn uint64
	Malformed   uint64

	AlgoOrders    uint64
	Executions    uint64
	Streams       uint64
	Positions     uint64
	RiskUpdates   uint64
	GUIWrites     uint64
	InquiriesDone uint64
}

func NewMetrics() *Metrics {
	return &Metrics{}
}

func (m *Metrics) inc(p *uint64) {
	if m == nil {
		return
	}
	atomic.AddUint64(p, 1)
}

func (m *Metrics) IncPriceIn()     { m.inc(&m.pricesIn) }
func (m *Metrics) IncBookIn()      { m.inc(&m.booksIn) }
func (m *Metrics) IncTradeIn()     { m.inc(&m.tradesIn) }
func (m *Metrics) IncInquiryIn()   { m.inc(&m.inquiriesIn) }
func (m *Metrics) IncMalformed()   { m.inc(&m.malformed) }
func (m *Metrics) IncAlgoOrder()   { m.inc(&m.algoOrders) }
func (m *Metrics) IncExecution()   { m.inc(&m.executions) }
func (m *Metrics) IncStream()      { m.inc(&m.streams) }
func (m *Metrics) IncPosition()    { m.inc(&m.positions) }
func (m *Metrics) IncRiskUpdate()  { m.inc(&m.riskUpdates) }
func (m *Metrics) IncGUIWrite()    { m.inc(&m.guiWrites) }
func (m *Metrics) IncInquiryDone() { m.inc(&m.inquiriesDone) }

// Snapshot captures the current counter values.
func (m *Metrics) Snapshot() Snapshot {
	if m == nil {
		return Snapshot{}
	}
	return Snapshot{
		PricesIn:    atomic.LoadUint64(&m.pricesIn),
		BooksIn:     atomic.LoadUint64(&m.booksIn),
		TradesIn:    atomic.LoadUint64(&m.tradesIn),
		InquiriesIn: atomic.LoadUint64(&m.inquiriesIn),
		Malformed:   atomic.LoadUint64(&m.malformed),

		AlgoOrders:    atomic.LoadUint64(&m.algoOrders),
		Executions:    atomic.LoadUint64(&m.executions),
		Streams:       atomic.LoadUint64(&m.streams),
		Positions:     atomic.LoadUint64(&m.positions),
		RiskUpdates:   atomic.LoadUint64(&m.riskUpdates),
		GUIWrites:     atomic.LoadUint64(&m.guiWrites),
		InquiriesDone: atomic.LoadUint64(&m.inquiriesDone),
	}
}

// FanoutCounter is a service listener that bumps one counter per add event.
type FanoutCounter[V any] struct {
	bus.NopListener[V]
	hit func()
}

func NewFanoutCounter[V any](hit func()) *FanoutCounter[V] {
	return &FanoutCounter[V]{hit: hit}
}

func (c *FanoutCounter[V]) ProcessAdd(V) {
	c.hit()
}
