package streaming

import "main/internal/bus"

// Service publishes algo streams to downstream consumers (historical sink).
type Service struct {
	*bus.Service[PriceStream]
}

func NewService() *Service {
	return &Service{bus.New(func(p PriceStream) string { return p.Product.ID })}
}

// PublishPrice stores and fans one stream out.
func (s *Service) PublishPrice(p PriceStream) {
	s.OnMessage(p)
}

// AlgoListener forwards engine streams into the streaming service.
type AlgoListener struct {
	bus.NopListener[PriceStream]
	svc *Service
}

func NewAlgoListener(svc *Service) *AlgoListener {
	return &AlgoListener{svc: svc}
}

func (l *AlgoListener) ProcessAdd(p PriceStream) {
	l.svc.PublishPrice(p)
}
