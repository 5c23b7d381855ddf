package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds runtime settings loaded from environment variables (which
// godotenv may have populated from .env files first).
type Config struct {
	// SolscanURL is the base URL of the network stats / validator API.
	SolscanURL string `env:"SOLSTAKE_SOLSCAN_URL" envDefault:"https://api.solscan.io"`
	// CoinGeckoURL is the base URL of the spot price API.
	CoinGeckoURL string `env:"SOLSTAKE_COINGECKO_URL" envDefault:"https://api.coingecko.com"`
	// APIKey, when set, is passed as a bearer token to the Solscan API.
	APIKey string `env:"SOLANA_API_KEY"`

	HTTPTimeout time.Duration `env:"SOLSTAKE_HTTP_TIMEOUT" envDefault:"30s"`

	// Daemon mode settings.
	MetricsAddr     string        `env:"SOLSTAKE_METRICS_ADDR" envDefault:":9183"`
	RefreshInterval time.Duration `env:"SOLSTAKE_REFRESH_INTERVAL" envDefault:"5m"`
}

func New() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing environment config: %w", err)
	}
	return cfg, nil
}
