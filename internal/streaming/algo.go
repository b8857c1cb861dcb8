package streaming

import (
	"github.com/shopspring/decimal"

	"main/internal/bus"
	"main/internal/model/enum"
	"main/internal/pricing"
)

const quoteSizeTier = 1_000_000

var two = decimal.NewFromInt(2)

// AlgoService quotes a two-way stream around every price update. The visible
// size alternates between one and two million on a per-engine counter and the
// hidden size is always twice the visible. Every update produces a stream;
// there is no qualification gate.
type AlgoService struct {
	*bus.Service[PriceStream]
	count int64
}

func NewAlgoService() *AlgoService {
	return &AlgoService{
		Service: bus.New(func(p PriceStream) string { return p.Product.ID }),
	}
}

// PublishPrice derives one two-sided stream from a mid/spread price update.
func (s *AlgoService) PublishPrice(p pricing.Price) {
	half := p.BidOfferSpread.Div(two)
	visible := (s.count%2 + 1) * quoteSizeTier
	s.count++

	s.OnMessage(PriceStream{
		Product: p.Product,
		Bid: PriceStreamOrder{
			Price:           p.Mid.Sub(half),
			VisibleQuantity: visible,
			HiddenQuantity:  visible * 2,
			Side:            enum.PricingSideBid,
		},
		Offer: PriceStreamOrder{
			Price:           p.Mid.Add(half),
			VisibleQuantity: visible,
			HiddenQuantity:  visible * 2,
			Side:            enum.PricingSideOffer,
		},
	})
}

// PriceListener feeds price updates into the quote engine.
type PriceListener struct {
	bus.NopListener[pricing.Price]
	svc *AlgoService
}

func NewPriceListener(svc *AlgoService) *PriceListener {
	return &PriceListener{svc: svc}
}

func (l *PriceListener) ProcessAdd(p pricing.Price) {
	l.svc.PublishPrice(p)
}
