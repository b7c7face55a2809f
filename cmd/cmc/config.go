package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/lukehollenback/coinmarketcap/marketdata/coinmarketcap"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

//
// config holds the CLI settings. Values are read, in increasing order of precedence, from the
// defaults, the config file, a .env file, CMC_* environment variables, and command-line flags.
//
type config struct {
	APIKey   string        `mapstructure:"api_key"`
	BaseURL  string        `mapstructure:"base_url"`
	Timeout  time.Duration `mapstructure:"timeout"`
	Debug    bool          `mapstructure:"debug"`
	Convert  string        `mapstructure:"convert"`
	LogLevel string        `mapstructure:"log_level"`
	NoColor  bool          `mapstructure:"no_color"`
}

//
// loadConfig loads the CLI configuration. If path is empty, config.yaml is looked up in ~/.cmc and
// is not required to exist.
//
func loadConfig(cmd *cobra.Command, path string, envFile string) (*config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("error loading %s: %w", envFile, err)
		}
	}

	v := viper.New()

	v.SetDefault("api_key", "")
	v.SetDefault("base_url", coinmarketcap.BaseURL)
	v.SetDefault("timeout", coinmarketcap.DefaultTimeout)
	v.SetDefault("debug", false)
	v.SetDefault("convert", "USD")
	v.SetDefault("log_level", "info")
	v.SetDefault("no_color", false)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".cmc"))
		}
	}

	v.SetEnvPrefix("CMC")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	//
	// The API key shares its variable name with the library's environment configuration.
	//
	if err := v.BindEnv("api_key", "CMC_PRO_API_KEY", "CMC_API_KEY"); err != nil {
		return nil, err
	}

	for key, flag := range map[string]string{
		"convert":   "convert",
		"log_level": "log-level",
		"no_color":  "no-color",
		"debug":     "debug",
	} {
		if f := cmd.Flags().Lookup(flag); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, err
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	cfg.Convert = strings.ToUpper(cfg.Convert)

	return &cfg, nil
}

//
// clientOptions translates the configuration into client options.
//
func (o *config) clientOptions() []coinmarketcap.Option {
	return []coinmarketcap.Option{
		coinmarketcap.WithBaseURL(o.BaseURL),
		coinmarketcap.WithHTTPTimeout(o.Timeout),
		coinmarketcap.WithDebugLogging(o.Debug),
		coinmarketcap.WithUserAgent("cmc/" + version),
	}
}
