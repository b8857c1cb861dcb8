package marketdata

import (
	"github.com/yanun0323/errors"

	"main/internal/bus"
	"main/pkg/exception"
)

// DefaultBookDepth is the number of price levels per side in one snapshot.
const DefaultBookDepth = 10

// Service stores the latest order book per product and fans book updates out.
type Service struct {
	*bus.Service[OrderBook]
	depth int
}

func NewService(depth int) *Service {
	if depth <= 0 {
		depth = DefaultBookDepth
	}
	return &Service{
		Service: bus.New(func(b OrderBook) string { return b.Product.ID }),
		depth:   depth,
	}
}

// BookDepth returns the snapshot depth per side.
func (s *Service) BookDepth() int {
	return s.depth
}

// RecordBook upserts the book and notifies listeners.
func (s *Service) RecordBook(b OrderBook) {
	s.OnMessage(b)
}

// BestBidOffer extracts the best bid and offer of the stored book.
func (s *Service) BestBidOffer(productID string) (BidOffer, error) {
	book, ok := s.Get(productID)
	if !ok {
		return BidOffer{}, errors.Wrap(exception.ErrUnknownKey, "order book "+productID)
	}
	return book.BestBidOffer()
}

// AggregateDepth collapses each stack of the stored book to one synthetic
// order per price level and replaces the stored book with the result. Order
// identity within a level is lost; only price-level depth survives. Applying
// it twice yields the same price-level set.
func (s *Service) AggregateDepth(productID string) (OrderBook, error) {
	book, ok := s.Get(productID)
	if !ok {
		return OrderBook{}, errors.Wrap(exception.ErrUnknownKey, "order book "+productID)
	}
	aggregated := OrderBook{
		Product:    book.Product,
		BidStack:   aggregateStack(book.BidStack),
		OfferStack: aggregateStack(book.OfferStack),
	}
	s.Put(aggregated)
	return aggregated, nil
}
