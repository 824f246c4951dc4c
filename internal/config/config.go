// Package config loads basket settings from built-in defaults, an optional
// YAML file and BASKET_* environment variables, in that order of precedence
// (environment wins).
//
//	mining:
//	  min_support: 0.2
//	  min_confidence: 0.5
//	  algorithm: eclat
//	data:
//	  transactions_csv: data/sample_transactions.csv
//	server:
//	  addr: ":8080"
//
// BASKET_MINING_MIN_SUPPORT=0.3 overrides mining.min_support.
package config

import "time"

// Algorithm names accepted in mining.algorithm.
const (
	AlgorithmApriori = "apriori"
	AlgorithmEclat   = "eclat"
)

// Config is the root configuration.
type Config struct {
	Mining  MiningConfig  `koanf:"mining"`
	Data    DataConfig    `koanf:"data"`
	Server  ServerConfig  `koanf:"server"`
	Logging LoggingConfig `koanf:"logging"`
}

// MiningConfig holds the default thresholds and miner switches.
type MiningConfig struct {
	MinSupport    float64 `koanf:"min_support"`
	MinConfidence float64 `koanf:"min_confidence"`
	Algorithm     string  `koanf:"algorithm"`
	Strict        bool    `koanf:"strict"`
	SubsetPruning bool    `koanf:"subset_pruning"`
	MaxLength     int     `koanf:"max_length"` // 0 = no cap
}

// DataConfig holds file locations.
type DataConfig struct {
	TransactionsCSV string `koanf:"transactions_csv"`
	ProductsCSV     string `koanf:"products_csv"` // empty = built-in catalog
	CleanedCSV      string `koanf:"cleaned_csv"`
	BoltPath        string `koanf:"bolt_path"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Addr        string   `koanf:"addr"`
	CORSOrigins []string `koanf:"cors_origins"`

	// MaxItemsetLength caps the itemset size a request may mine; 0 = no cap.
	MaxItemsetLength int `koanf:"max_itemset_length"`
	// MineTimeout bounds each mining request; 0 = no deadline.
	MineTimeout time.Duration `koanf:"mine_timeout"`
}

// LoggingConfig mirrors logging.Config.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Mining: MiningConfig{
			MinSupport:    0.2,
			MinConfidence: 0.5,
			Algorithm:     AlgorithmApriori,
		},
		Data: DataConfig{
			TransactionsCSV: "data/sample_transactions.csv",
			ProductsCSV:     "",
			CleanedCSV:      "data/cleaned_transactions.csv",
			BoltPath:        "data/basket.db",
		},
		Server: ServerConfig{
			Addr:             ":8080",
			CORSOrigins:      []string{"*"},
			MaxItemsetLength: 4,
			MineTimeout:      30 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
