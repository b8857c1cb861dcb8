// Package pricing distributes mid/spread prices per product.
package pricing

import (
	"github.com/shopspring/decimal"

	"main/internal/bus"
	"main/internal/model"
)

// Price is a mid price with the bid/offer spread around it.
type Price struct {
	Product        model.Bond
	Mid            decimal.Decimal
	BidOfferSpread decimal.Decimal
}

// Row renders the price for historical sinks.
func (p Price) Row() []string {
	return []string{p.Product.ID, model.PriceText(p.Mid), model.PriceText(p.BidOfferSpread)}
}

// Service stores the latest price per product and fans updates out.
type Service struct {
	*bus.Service[Price]
}

func NewService() *Service {
	return &Service{bus.New(func(p Price) string { return p.Product.ID })}
}
