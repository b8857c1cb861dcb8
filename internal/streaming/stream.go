// Package streaming holds the two-way quote engine and the streaming service
// that publishes its price streams.
package streaming

import (
	"strconv"

	"github.com/shopspring/decimal"

	"main/internal/model"
	"main/internal/model/enum"
)

// PriceStreamOrder is one side of a streamed two-way quote.
type PriceStreamOrder struct {
	Price           decimal.Decimal
	VisibleQuantity int64
	HiddenQuantity  int64
	Side            enum.PricingSide
}

// Row renders the order for historical sinks.
func (o PriceStreamOrder) Row() []string {
	return []string{
		model.PriceText(o.Price),
		strconv.FormatInt(o.VisibleQuantity, 10),
		strconv.FormatInt(o.HiddenQuantity, 10),
		o.Side.String(),
	}
}

// PriceStream is a two-way quote: always exactly one bid and one offer.
type PriceStream struct {
	Product model.Bond
	Bid     PriceStreamOrder
	Offer   PriceStreamOrder
}

// Row renders the stream for historical sinks.
func (p PriceStream) Row() []string {
	row := make([]string, 0, 9)
	row = append(row, p.Product.ID)
	row = append(row, p.Bid.Row()...)
	row = append(row, p.Offer.Row()...)
	return row
}
