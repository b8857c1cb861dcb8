// Package ops loads and resolves the runtime configuration.
package ops

import (
	"fmt"
	"os"

	"github.com/bytedance/sonic"

	"main/internal/gui"
	"main/internal/marketdata"
	"main/internal/model/enum"
	"main/pkg/conn"
)

// FileConfig mirrors the JSON config layout.
type FileConfig struct {
	Inputs    InputsConfig    `json:"inputs"`
	OutputDir string          `json:"outputDir"`
	BookDepth int             `json:"bookDepth"`
	GUI       GUIConfig       `json:"gui"`
	AlgoVenue string          `json:"algoVenue"`
	Postgres  *PostgresConfig `json:"postgres"`
}

// InputsConfig names the four input files driving the pipeline.
type InputsConfig struct {
	Prices     string `json:"prices"`
	Trades     string `json:"trades"`
	MarketData string `json:"marketData"`
	Inquiries  string `json:"inquiries"`
}

// GUIConfig tunes the display throttle.
type GUIConfig struct {
	ThrottleMS int64 `json:"throttleMs"`
	MaxUpdates int   `json:"maxUpdates"`
}

// PostgresConfig enables the optional historical store.
type PostgresConfig struct {
	Host       string `json:"host"`
	Port       int    `json:"port"`
	User       string `json:"user"`
	Password   string `json:"password"`
	Database   string `json:"database"`
	SSLMode    string `json:"sslMode"`
	ConnString string `json:"connString"`
}

// Loaded is the resolved configuration ready for use.
type Loaded struct {
	Inputs        InputsConfig
	OutputDir     string
	BookDepth     int
	GUIThrottleMS int64
	GUIMaxUpdates int
	AlgoVenue     enum.Market
	Postgres      *conn.Option
}

// Load reads a JSON config file and resolves defaults.
func Load(path string) (Loaded, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Loaded{}, err
	}
	var cfg FileConfig
	if err := sonic.Unmarshal(data, &cfg); err != nil {
		return Loaded{}, err
	}
	return resolve(cfg)
}

func resolve(cfg FileConfig) (Loaded, error) {
	if err := validateInputs(cfg.Inputs); err != nil {
		return Loaded{}, err
	}

	outputDir := cfg.OutputDir
	if outputDir == "" {
		outputDir = "."
	}

	bookDepth := cfg.BookDepth
	if bookDepth == 0 {
		bookDepth = marketdata.DefaultBookDepth
	}
	if bookDepth < 0 {
		return Loaded{}, fmt.Errorf("bookDepth must be > 0")
	}

	throttle := cfg.GUI.ThrottleMS
	if throttle == 0 {
		throttle = gui.DefaultThrottleMS
	}
	if throttle < 0 {
		return Loaded{}, fmt.Errorf("gui throttleMs must be > 0")
	}

	maxUpdates := cfg.GUI.MaxUpdates
	if maxUpdates == 0 {
		maxUpdates = gui.DefaultMaxUpdates
	}
	if maxUpdates < 0 {
		return Loaded{}, fmt.Errorf("gui maxUpdates must be > 0")
	}

	venue := enum.MarketBrokerTec
	if cfg.AlgoVenue != "" {
		parsed, err := enum.ParseMarket(cfg.AlgoVenue)
		if err != nil {
			return Loaded{}, err
		}
		venue = parsed
	}

	var pg *conn.Option
	if cfg.Postgres != nil {
		pg = &conn.Option{
			Host:       cfg.Postgres.Host,
			Port:       cfg.Postgres.Port,
			User:       cfg.Postgres.User,
			Password:   cfg.Postgres.Password,
			Database:   cfg.Postgres.Database,
			SSLMode:    cfg.Postgres.SSLMode,
			ConnString: cfg.Postgres.ConnString,
		}
	}

	return Loaded{
		Inputs:        cfg.Inputs,
		OutputDir:     outputDir,
		BookDepth:     bookDepth,
		GUIThrottleMS: throttle,
		GUIMaxUpdates: maxUpdates,
		AlgoVenue:     venue,
		Postgres:      pg,
	}, nil
}

func validateInputs(in InputsConfig) error {
	if in.Prices == "" {
		return fmt.Errorf("inputs.prices is empty")
	}
	if in.Trades == "" {
		return fmt.Errorf("inputs.trades is empty")
	}
	if in.MarketData == "" {
		return fmt.Errorf("inputs.marketData is empty")
	}
	if in.Inquiries == "" {
		return fmt.Errorf("inputs.inquiries is empty")
	}
	return nil
}
