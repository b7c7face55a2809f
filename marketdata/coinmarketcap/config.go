package coinmarketcap

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
)

//
// Config holds the client settings that can be supplied through the environment. Variables are
// prefixed with CMC_, e.g. CMC_PRO_API_KEY and CMC_TIMEOUT.
//
type Config struct {
	APIKey  string        `envconfig:"PRO_API_KEY" required:"true"`
	BaseURL string        `envconfig:"BASE_URL" default:"https://pro-api.coinmarketcap.com/v1/"`
	Timeout time.Duration `envconfig:"TIMEOUT" default:"30s"`
	Debug   bool          `envconfig:"DEBUG" default:"false"`
}

//
// LoadConfig reads a Config from the environment.
//
func LoadConfig() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("CMC", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	return &cfg, nil
}

//
// Options translates the configuration into client options.
//
func (o *Config) Options() []Option {
	return []Option{
		WithBaseURL(o.BaseURL),
		WithHTTPTimeout(o.Timeout),
		WithDebugLogging(o.Debug),
	}
}

//
// NewClientFromEnv instantiates a client configured from the environment. Any additional options are
// applied after the environment-derived ones.
//
func NewClientFromEnv(logger zerolog.Logger, opts ...Option) (*Client, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("base_url", cfg.BaseURL).
		Dur("timeout", cfg.Timeout).
		Bool("debug", cfg.Debug).
		Msg("Loaded CoinMarketCap client configuration.")

	all := append(cfg.Options(), WithLogger(logger))

	return NewClient(cfg.APIKey, append(all, opts...)...)
}
