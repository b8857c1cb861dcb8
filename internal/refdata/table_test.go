package refdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"main/pkg/exception"
)

func TestBondLookup(t *testing.T) {
	b, err := Bond("BONDNO5")
	require.NoError(t, err)
	assert.Equal(t, "BONDNO5", b.ID)
	assert.Equal(t, "US10Y", b.Ticker)

	_, err = Bond("BONDNO99")
	assert.ErrorIs(t, err, exception.ErrUnknownProductID)
}

func TestBondByMaturity(t *testing.T) {
	b, err := BondByMaturity(2)
	require.NoError(t, err)
	assert.Equal(t, "BONDNO1", b.ID)

	_, err = BondByMaturity(15)
	assert.ErrorIs(t, err, exception.ErrUnknownProductID)
}

func TestPV01(t *testing.T) {
	pv, err := PV01("BONDNO1")
	require.NoError(t, err)
	assert.Equal(t, "0.019851", pv.String())

	_, err = PV01("BONDNO99")
	assert.ErrorIs(t, err, exception.ErrUnknownProductID)
}

func TestProductIDs(t *testing.T) {
	assert.Equal(t, []string{
		"BONDNO1", "BONDNO2", "BONDNO3", "BONDNO4", "BONDNO5", "BONDNO6", "BONDNO7",
	}, ProductIDs())
}
