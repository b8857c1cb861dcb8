package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bond is the traded product. Every service in the pipeline keys its data on
// the bond's product identifier.
type Bond struct {
	ID       string // cusip-style identifier, e.g. "BONDNO5"
	Ticker   string // e.g. "US10Y"
	Coupon   decimal.Decimal
	Maturity time.Time
}

func (b Bond) ProductID() string {
	return b.ID
}
