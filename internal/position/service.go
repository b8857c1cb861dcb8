// Package position accumulates signed positions per product across trading
// books.
package position

import (
	"sort"
	"strconv"

	"main/internal/booking"
	"main/internal/bus"
	"main/internal/model"
	"main/internal/model/enum"
)

// Position is the per-book quantity held in one product.
type Position struct {
	Product model.Bond
	Books   map[string]int64
}

// Quantity returns the position held in one trading book.
func (p Position) Quantity(book string) int64 {
	return p.Books[book]
}

// Aggregate sums the position across all trading books.
func (p Position) Aggregate() int64 {
	var total int64
	for _, qty := range p.Books {
		total += qty
	}
	return total
}

// Row renders the position for historical sinks: product id then book and
// quantity pairs in book order.
func (p Position) Row() []string {
	books := make([]string, 0, len(p.Books))
	for book := range p.Books {
		books = append(books, book)
	}
	sort.Strings(books)

	row := make([]string, 0, 1+2*len(books))
	row = append(row, p.Product.ID)
	for _, book := range books {
		row = append(row, book, strconv.FormatInt(p.Books[book], 10))
	}
	return row
}

// Service stores the latest position per product and fans updates out.
type Service struct {
	*bus.Service[Position]
}

func NewService() *Service {
	return &Service{bus.New(func(p Position) string { return p.Product.ID })}
}

// AddTrade applies one booked trade: buys add, sells subtract, into the
// trade's book. The updated position fans out to risk and historical sinks.
func (s *Service) AddTrade(t booking.Trade) {
	pos, ok := s.Get(t.Product.ID)
	if !ok {
		pos = Position{Product: t.Product, Books: make(map[string]int64)}
	}

	signed := t.Quantity
	if t.Side == enum.TradeSideSell {
		signed = -signed
	}
	pos.Books[t.Book] += signed

	s.OnMessage(pos)
}

// TradeListener feeds booked trades into position keeping.
type TradeListener struct {
	bus.NopListener[booking.Trade]
	svc *Service
}

func NewTradeListener(svc *Service) *TradeListener {
	return &TradeListener{svc: svc}
}

func (l *TradeListener) ProcessAdd(t booking.Trade) {
	l.svc.AddTrade(t)
}
