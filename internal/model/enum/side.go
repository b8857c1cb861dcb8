package enum

import "main/pkg/exception"

// PricingSide is the side of a market data or quoted order.
type PricingSide uint8

const (
	_pricing_side_beg PricingSide = iota
	PricingSideBid
	PricingSideOffer
	_pricing_side_end
)

func (s PricingSide) IsAvailable() bool {
	return s > _pricing_side_beg && s < _pricing_side_end
}

func (s PricingSide) String() string {
	switch s {
	case PricingSideBid:
		return "BID"
	case PricingSideOffer:
		return "OFFER"
	default:
		return "UNKNOWN"
	}
}

func ParsePricingSide(s string) (PricingSide, error) {
	switch s {
	case "BID":
		return PricingSideBid, nil
	case "OFFER":
		return PricingSideOffer, nil
	default:
		return 0, exception.ErrMalformedRecord
	}
}

// TradeSide is the direction of a booked trade or customer inquiry.
type TradeSide uint8

const (
	_trade_side_beg TradeSide = iota
	TradeSideBuy
	TradeSideSell
	_trade_side_end
)

func (s TradeSide) IsAvailable() bool {
	return s > _trade_side_beg && s < _trade_side_end
}

func (s TradeSide) String() string {
	switch s {
	case TradeSideBuy:
		return "BUY"
	case TradeSideSell:
		return "SELL"
	default:
		return "UNKNOWN"
	}
}

func ParseTradeSide(s string) (TradeSide, error) {
	switch s {
	case "BUY":
		return TradeSideBuy, nil
	case "SELL":
		return TradeSideSell, nil
	default:
		return 0, exception.ErrMalformedRecord
	}
}
