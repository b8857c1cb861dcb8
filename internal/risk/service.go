// Package risk vends PV01 sensitivities per product and bucketed across
// sectors.
package risk

import (
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/yanun0323/logs"

	"main/internal/bus"
	"main/internal/model"
	"main/internal/position"
	"main/internal/refdata"
)

// PV01 is the price value of a one-basis-point move for the quantity held in
// one product.
type PV01 struct {
	Product  model.Bond
	Value    decimal.Decimal // per-unit sensitivity
	Quantity int64
}

// Row renders the risk entry for historical sinks.
func (p PV01) Row() []string {
	return []string{p.Product.ID, p.Value.String(), strconv.FormatInt(p.Quantity, 10)}
}

// Sector buckets a group of products so their risk can be aggregated.
type Sector struct {
	Name     string
	Products []model.Bond
}

// SectorRisk is the summed pv01×quantity over a sector.
type SectorRisk struct {
	Sector Sector
	Value  decimal.Decimal
}

// Service stores the latest PV01 per product and fans risk updates out.
type Service struct {
	*bus.Service[PV01]
}

func NewService() *Service {
	return &Service{bus.New(func(p PV01) string { return p.Product.ID })}
}

// AddPosition re-risks one product from its updated aggregate position.
func (s *Service) AddPosition(p position.Position) error {
	value, err := refdata.PV01(p.Product.ID)
	if err != nil {
		return err
	}
	s.OnMessage(PV01{Product: p.Product, Value: value, Quantity: p.Aggregate()})
	return nil
}

// BucketedRisk aggregates pv01×quantity across the sector's products.
// Products with no risked position yet contribute zero.
func (s *Service) BucketedRisk(sector Sector) SectorRisk {
	total := decimal.Zero
	for _, product := range sector.Products {
		pv, ok := s.Get(product.ID)
		if !ok {
			continue
		}
		total = total.Add(pv.Value.Mul(decimal.NewFromInt(pv.Quantity)))
	}
	return SectorRisk{Sector: sector, Value: total}
}

// PositionListener feeds position updates into risk.
type PositionListener struct {
	bus.NopListener[position.Position]
	svc *Service
}

func NewPositionListener(svc *Service) *PositionListener {
	return &PositionListener{svc: svc}
}

func (l *PositionListener) ProcessAdd(p position.Position) {
	if err := l.svc.AddPosition(p); err != nil {
		logs.Errorf("risk position %s, err: %+v", p.Product.ID, err)
	}
}
