package enum

import "main/pkg/exception"

// Market is the execution venue.
type Market uint8

const (
	_market_beg Market = iota
	MarketBrokerTec
	MarketESpeed
	MarketCME
	_market_end
)

func (m Market) IsAvailable() bool {
	return m > _market_beg && m < _market_end
}

func (m Market) String() string {
	switch m {
	case MarketBrokerTec:
		return "BROKERTEC"
	case MarketESpeed:
		return "ESPEED"
	case MarketCME:
		return "CME"
	default:
		return "UNKNOWN"
	}
}

func ParseMarket(s string) (Market, error) {
	switch s {
	case "BROKERTEC":
		return MarketBrokerTec, nil
	case "ESPEED":
		return MarketESpeed, nil
	case "CME":
		return MarketCME, nil
	default:
		return 0, exception.ErrMalformedRecord
	}
}
