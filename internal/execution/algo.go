package execution

import (
	"github.com/shopspring/decimal"
	"github.com/yanun0323/logs"

	"main/internal/bus"
	"main/internal/marketdata"
	"main/internal/model/enum"
)

// crossableSpread is the widest market the engine will trade: 1/128 point.
var crossableSpread = decimal.New(1, 0).Div(decimal.NewFromInt(128))

// AlgoService turns order book updates into child execution orders. When the
// best spread is no wider than 1/128 it crosses the spread, alternating sides
// on a per-engine counter: even counts sell into the bid, odd counts buy the
// offer. The counter is shared across products by design; interleaved
// multi-product updates alternate on the one sequence rather than per product.
type AlgoService struct {
	*bus.Service[AlgoOrder]
	venue enum.Market
	count int64
}

// NewAlgoService creates an engine emitting orders for the given venue.
func NewAlgoService(venue enum.Market) *AlgoService {
	return &AlgoService{
		Service: bus.New(func(a AlgoOrder) string { return a.Order.Product.ID }),
		venue:   venue,
	}
}

// Execute inspects one book update and emits at most one child order. A book
// with an empty side is a caller error.
func (s *AlgoService) Execute(book marketdata.OrderBook) error {
	best, err := book.BestBidOffer()
	if err != nil {
		return err
	}

	if best.Offer.Price.Sub(best.Bid.Price).GreaterThan(crossableSpread) {
		// market too wide to trade
		return nil
	}

	var crossed marketdata.Order
	if s.count%2 == 0 {
		crossed = best.Bid
	} else {
		crossed = best.Offer
	}
	s.count++

	s.OnMessage(AlgoOrder{
		Order: Order{
			Product:         book.Product,
			Side:            crossed.Side,
			Type:            enum.OrderTypeMarket,
			Price:           crossed.Price,
			VisibleQuantity: crossed.Quantity,
			IsChild:         true,
		},
		Market: s.venue,
	})
	return nil
}

// BookListener feeds order book updates into the engine.
type BookListener struct {
	bus.NopListener[marketdata.OrderBook]
	svc *AlgoService
}

func NewBookListener(svc *AlgoService) *BookListener {
	return &BookListener{svc: svc}
}

func (l *BookListener) ProcessAdd(book marketdata.OrderBook) {
	if err := l.svc.Execute(book); err != nil {
		logs.Errorf("algo execute %s, err: %+v", book.Product.ID, err)
	}
}
