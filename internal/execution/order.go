// Package execution holds the spread-crossing algo engine and the downstream
// execution service that releases its child orders to a venue.
package execution

import (
	"strconv"

	"github.com/shopspring/decimal"

	"main/internal/model"
	"main/internal/model/enum"
)

// Order is an executable child order derived from an order book update.
type Order struct {
	Product         model.Bond
	Side            enum.PricingSide
	OrderID         string
	Type            enum.OrderType
	Price           decimal.Decimal
	VisibleQuantity int64
	HiddenQuantity  int64
	ParentOrderID   string
	IsChild         bool
}

// Row renders the order for historical sinks.
func (o Order) Row() []string {
	child := "NO"
	if o.IsChild {
		child = "YES"
	}
	return []string{
		o.Product.ID,
		o.Side.String(),
		o.OrderID,
		o.Type.String(),
		model.PriceText(o.Price),
		strconv.FormatInt(o.VisibleQuantity, 10),
		strconv.FormatInt(o.HiddenQuantity, 10),
		o.ParentOrderID,
		child,
	}
}

// AlgoOrder is an order the algo engine wants executed on a target venue.
type AlgoOrder struct {
	Order  Order
	Market enum.Market
}

// Report is an order released to a venue by the execution service.
type Report struct {
	Order Order
	Venue enum.Market
}

// Row renders the report for historical sinks, venue last.
func (r Report) Row() []string {
	return append(r.Order.Row(), r.Venue.String())
}
