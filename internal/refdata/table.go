// Package refdata holds the static bond reference tables: on-the-run treasury
// identifiers per maturity and PV01 sensitivities per identifier. Both are
// process-lifetime constants.
package refdata

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/yanun0323/errors"

	"main/internal/model"
	"main/pkg/exception"
)

type entry struct {
	maturityYears int
	maturity      time.Time
	pv01          decimal.Decimal
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var bonds = map[string]entry{
	"BONDNO1": {2, day(2025, time.November, 30), decimal.RequireFromString("0.019851")},
	"BONDNO2": {3, day(2026, time.November, 15), decimal.RequireFromString("0.029309")},
	"BONDNO3": {5, day(2028, time.November, 30), decimal.RequireFromString("0.048643")},
	"BONDNO4": {7, day(2030, time.November, 30), decimal.RequireFromString("0.065843")},
	"BONDNO5": {10, day(2033, time.November, 15), decimal.RequireFromString("0.087939")},
	"BONDNO6": {20, day(2043, time.November, 30), decimal.RequireFromString("0.012346")},
	"BONDNO7": {30, day(2053, time.November, 15), decimal.RequireFromString("0.018469")},
}

var cusipByMaturity = map[int]string{
	2:  "BONDNO1",
	3:  "BONDNO2",
	5:  "BONDNO3",
	7:  "BONDNO4",
	10: "BONDNO5",
	20: "BONDNO6",
	30: "BONDNO7",
}

// Bond resolves a product identifier to the full bond definition.
func Bond(productID string) (model.Bond, error) {
	e, ok := bonds[productID]
	if !ok {
		return model.Bond{}, errors.Wrap(exception.ErrUnknownProductID, productID)
	}
	return model.Bond{
		ID:       productID,
		Ticker:   "US" + strconv.Itoa(e.maturityYears) + "Y",
		Maturity: e.maturity,
	}, nil
}

// BondByMaturity resolves a maturity in years (2,3,5,7,10,20,30) to a bond.
func BondByMaturity(years int) (model.Bond, error) {
	id, ok := cusipByMaturity[years]
	if !ok {
		return model.Bond{}, errors.Wrap(exception.ErrUnknownProductID, strconv.Itoa(years)+"Y")
	}
	return Bond(id)
}

// PV01 returns the per-unit PV01 sensitivity for a product.
func PV01(productID string) (decimal.Decimal, error) {
	e, ok := bonds[productID]
	if !ok {
		return decimal.Decimal{}, errors.Wrap(exception.ErrUnknownProductID, productID)
	}
	return e.pv01, nil
}

// ProductIDs lists every known product identifier in maturity order.
func ProductIDs() []string {
	out := make([]string, 0, len(cusipByMaturity))
	for _, years := range []int{2, 3, 5, 7, 10, 20, 30} {
		out = append(out, cusipByMaturity[years])
	}
	return out
}
