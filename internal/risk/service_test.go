package risk

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"main/internal/model"
	"main/internal/position"
	"main/internal/refdata"
	"main/pkg/exception"
)

func pos(t *testing.T, productID string, qty int64) position.Position {
	t.Helper()
	b, err := refdata.Bond(productID)
	require.NoError(t, err)
	return position.Position{Product: b, Books: map[string]int64{"TRSY1": qty}}
}

func TestAddPosition(t *testing.T) {
	svc := NewService()

	require.NoError(t, svc.AddPosition(pos(t, "BONDNO1", 1_000_000)))

	pv, ok := svc.Get("BONDNO1")
	require.True(t, ok)
	assert.Equal(t, "0.019851", pv.Value.String())
	assert.Equal(t, int64(1_000_000), pv.Quantity)

	// a later position replaces the quantity outright
	require.NoError(t, svc.AddPosition(pos(t, "BONDNO1", -500_000)))
	pv, _ = svc.Get("BONDNO1")
	assert.Equal(t, int64(-500_000), pv.Quantity)
}

func TestAddPositionUnknownProduct(t *testing.T) {
	svc := NewService()
	p := position.Position{Product: model.Bond{ID: "BONDNO99"}, Books: map[string]int64{}}
	assert.ErrorIs(t, svc.AddPosition(p), exception.ErrUnknownProductID)
}

func TestBucketedRisk(t *testing.T) {
	svc := NewService()
	require.NoError(t, svc.AddPosition(pos(t, "BONDNO1", 1_000_000)))
	require.NoError(t, svc.AddPosition(pos(t, "BONDNO2", -2_000_000)))

	frontEnd := Sector{
		Name: "FrontEnd",
		Products: []model.Bond{
			{ID: "BONDNO1"},
			{ID: "BONDNO2"},
			{ID: "BONDNO3"}, // no position yet, contributes zero
		},
	}

	got := svc.BucketedRisk(frontEnd)
	// 0.019851*1000000 + 0.029309*-2000000
	want := decimal.RequireFromString("-38767")
	assert.True(t, got.Value.Equal(want), "got %s want %s", got.Value, want)
	assert.Equal(t, "FrontEnd", got.Sector.Name)
}

func TestBucketedRiskEmptySector(t *testing.T) {
	svc := NewService()
	got := svc.BucketedRisk(Sector{Name: "Belly"})
	assert.True(t, got.Value.IsZero())
}
