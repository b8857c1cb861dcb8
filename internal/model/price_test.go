package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrice(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"100-00", "100"},
		{"100-16", "100.5"},
		{"100-16+", "100.515625"},
		{"99-31+", "99.986328125"},
		{"99-312", "99.9765625"},
		{"0-001", "0.00390625"},
		{"100-317", "100.99609375"},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParsePrice(tc.in)
			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.RequireFromString(tc.want)),
				"got %s want %s", got, tc.want)
		})
	}
}

func TestParsePriceMalformed(t *testing.T) {
	for _, in := range []string{
		"", "100", "-16", "100-3", "100-32", "100-168", "100-16++", "abc-16", "100-ab",
	} {
		t.Run(in, func(t *testing.T) {
			_, err := ParsePrice(in)
			assert.Error(t, err)
		})
	}
}

func TestFormatPriceRoundTrip(t *testing.T) {
	for _, in := range []string{"100-00", "100-16", "100-16+", "99-31+", "99-312", "100-317"} {
		t.Run(in, func(t *testing.T) {
			d, err := ParsePrice(in)
			require.NoError(t, err)
			out, err := FormatPrice(d)
			require.NoError(t, err)
			assert.Equal(t, in, out)
		})
	}
}

func TestFormatPriceOffGrid(t *testing.T) {
	_, err := FormatPrice(decimal.RequireFromString("100.001"))
	assert.Error(t, err)

	_, err = FormatPrice(decimal.NewFromInt(-1))
	assert.Error(t, err)
}

func TestPriceText(t *testing.T) {
	assert.Equal(t, "100-16", PriceText(decimal.RequireFromString("100.5")))
	// off-grid values fall back to the decimal form
	assert.Equal(t, "100.001", PriceText(decimal.RequireFromString("100.001")))
}
