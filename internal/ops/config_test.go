package ops

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"main/internal/model/enum"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

const minimalConfig = `{
	"inputs": {
		"prices": "prices.txt",
		"trades": "trades.txt",
		"marketData": "marketdata.txt",
		"inquiries": "inquiries.txt"
	}
}`

func TestLoadAppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	assert.Equal(t, ".", cfg.OutputDir)
	assert.Equal(t, 10, cfg.BookDepth)
	assert.Equal(t, int64(300), cfg.GUIThrottleMS)
	assert.Equal(t, 100, cfg.GUIMaxUpdates)
	assert.Equal(t, enum.MarketBrokerTec, cfg.AlgoVenue)
	assert.Nil(t, cfg.Postgres)
}

func TestLoadFullConfig(t *testing.T) {
	cfg, err := Load(writeConfig(t, `{
		"inputs": {
			"prices": "p.txt",
			"trades": "t.txt",
			"marketData": "m.txt",
			"inquiries": "i.txt"
		},
		"outputDir": "out",
		"bookDepth": 5,
		"gui": {"throttleMs": 500, "maxUpdates": 20},
		"algoVenue": "ESPEED",
		"postgres": {"host": "db", "port": 5433, "database": "trading"}
	}`))
	require.NoError(t, err)

	assert.Equal(t, "out", cfg.OutputDir)
	assert.Equal(t, 5, cfg.BookDepth)
	assert.Equal(t, int64(500), cfg.GUIThrottleMS)
	assert.Equal(t, 20, cfg.GUIMaxUpdates)
	assert.Equal(t, enum.MarketESpeed, cfg.AlgoVenue)
	require.NotNil(t, cfg.Postgres)
	assert.Equal(t, "db", cfg.Postgres.Host)
	assert.Equal(t, 5433, cfg.Postgres.Port)
	assert.Equal(t, "trading", cfg.Postgres.Database)
}

func TestLoadRejectsBadConfigs(t *testing.T) {
	testCases := []struct {
		desc string
		body string
	}{
		{"missing input", `{"inputs": {"prices": "p.txt"}}`},
		{"bad venue", `{
			"inputs": {"prices": "p", "trades": "t", "marketData": "m", "inquiries": "i"},
			"algoVenue": "NASDAQ"
		}`},
		{"negative depth", `{
			"inputs": {"prices": "p", "trades": "t", "marketData": "m", "inquiries": "i"},
			"bookDepth": -1
		}`},
		{"not json", `depth: 5`},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.body))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
