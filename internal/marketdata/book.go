// Package marketdata models product-keyed two-sided order books and
// distributes full-book snapshots.
package marketdata

import (
	"github.com/shopspring/decimal"
	"github.com/yanun0323/errors"

	"main/internal/model"
	"main/internal/model/enum"
	"main/pkg/exception"
)

// Order is a single resting order in a book stack.
type Order struct {
	Price    decimal.Decimal
	Quantity int64
	Side     enum.PricingSide
}

// OrderBook is a full two-sided snapshot for one product. Books are replaced
// wholesale on every update; individual orders are never mutated in place.
type OrderBook struct {
	Product    model.Bond
	BidStack   []Order
	OfferStack []Order
}

// BidOffer is the best bid and best offer extracted from a book.
type BidOffer struct {
	Bid   Order
	Offer Order
}

// BestBidOffer scans both stacks for the maximum bid price and minimum offer
// price. Ties resolve to the first order seen in stack order. An empty stack
// is a caller error, never silently defaulted.
func (b OrderBook) BestBidOffer() (BidOffer, error) {
	if len(b.BidStack) == 0 {
		return BidOffer{}, errors.Wrap(exception.ErrEmptyBookSide, "bid stack of "+b.Product.ID)
	}
	if len(b.OfferStack) == 0 {
		return BidOffer{}, errors.Wrap(exception.ErrEmptyBookSide, "offer stack of "+b.Product.ID)
	}

	best := BidOffer{Bid: b.BidStack[0], Offer: b.OfferStack[0]}
	for _, o := range b.BidStack[1:] {
		if o.Price.GreaterThan(best.Bid.Price) {
			best.Bid = o
		}
	}
	for _, o := range b.OfferStack[1:] {
		if o.Price.LessThan(best.Offer.Price) {
			best.Offer = o
		}
	}
	return best, nil
}

// aggregateStack merges orders sharing a price into one synthetic order of the
// summed quantity, preserving first-seen price order and the originating side.
func aggregateStack(stack []Order) []Order {
	idx := make(map[string]int, len(stack))
	out := make([]Order, 0, len(stack))
	for _, o := range stack {
		key := o.Price.String()
		if i, ok := idx[key]; ok {
			out[i].Quantity += o.Quantity
			continue
		}
		idx[key] = len(out)
		out = append(out, o)
	}
	return out
}
