package execution

import (
	"main/internal/bus"
	"main/internal/model/enum"
)

// Service releases algo child orders to its downstream venue and fans the
// resulting execution reports out to trade booking and historical sinks.
type Service struct {
	*bus.Service[Report]
	venue enum.Market
}

// NewService creates an execution service stamping reports with venue.
func NewService(venue enum.Market) *Service {
	return &Service{
		Service: bus.New(func(r Report) string { return r.Order.Product.ID }),
		venue:   venue,
	}
}

// ExecuteOrder releases one order on the service's venue.
func (s *Service) ExecuteOrder(o Order) {
	s.OnMessage(Report{Order: o, Venue: s.venue})
}

// AlgoListener forwards engine output into the execution service.
type AlgoListener struct {
	bus.NopListener[AlgoOrder]
	svc *Service
}

func NewAlgoListener(svc *Service) *AlgoListener {
	return &AlgoListener{svc: svc}
}

func (l *AlgoListener) ProcessAdd(a AlgoOrder) {
	l.svc.ExecuteOrder(a.Order)
}
