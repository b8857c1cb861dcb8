// Package booking books trades against trading books and distributes them to
// position keeping.
package booking

import (
	"fmt"

	"github.com/shopspring/decimal"

	"main/internal/bus"
	"main/internal/execution"
	"main/internal/model"
	"main/internal/model/enum"
)

// Trade is a booked trade in a particular trading book. Keyed on trade id,
// which is unique across the service and distinct from the product id.
type Trade struct {
	Product  model.Bond
	TradeID  string
	Price    decimal.Decimal
	Book     string
	Quantity int64
	Side     enum.TradeSide
}

// Service stores trades by trade id and fans booked trades out.
type Service struct {
	*bus.Service[Trade]
}

func NewService() *Service {
	return &Service{bus.New(func(t Trade) string { return t.TradeID })}
}

// BookTrade stores the trade and notifies position keeping.
func (s *Service) BookTrade(t Trade) {
	s.OnMessage(t)
}

// tradingBooks rotate round-robin across executed trades.
var tradingBooks = [3]string{"TRSY1", "TRSY2", "TRSY3"}

// ExecutionListener converts execution reports into trades: an order that
// crossed into the bid sold, one that crossed into the offer bought. The full
// quantity (visible plus hidden) books into a rotating trading book.
type ExecutionListener struct {
	bus.NopListener[execution.Report]
	svc   *Service
	count int64
}

func NewExecutionListener(svc *Service) *ExecutionListener {
	return &ExecutionListener{svc: svc}
}

func (l *ExecutionListener) ProcessAdd(r execution.Report) {
	l.count++

	side := enum.TradeSideBuy
	if r.Order.Side == enum.PricingSideBid {
		side = enum.TradeSideSell
	}

	tradeID := r.Order.OrderID
	if tradeID == "" {
		// algo child orders carry no order id; mint one so trade keys stay unique
		tradeID = fmt.Sprintf("ALGO%06d", l.count)
	}

	l.svc.BookTrade(Trade{
		Product:  r.Order.Product,
		TradeID:  tradeID,
		Price:    r.Order.Price,
		Book:     tradingBooks[l.count%3],
		Quantity: r.Order.VisibleQuantity + r.Order.HiddenQuantity,
		Side:     side,
	})
}
