//
// Command cmc queries the CoinMarketCap Pro API from the command line.
//
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/logrusorgru/aurora"
	"github.com/lukehollenback/coinmarketcap/constants"
	"github.com/lukehollenback/coinmarketcap/marketdata/coinmarketcap"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Build-time variables (set via -ldflags).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := newRootCmd(nil).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, aurora.Red(err))
		os.Exit(1)
	}
}

//
// app carries the state shared by every subcommand once the root command has loaded the
// configuration.
//
type app struct {
	cfg    *config
	api    coinmarketcap.API
	logger zerolog.Logger
	au     aurora.Aurora

	//
	// newAPI builds the client from the loaded configuration. It is swapped out in tests.
	//
	newAPI func(cfg *config, logger zerolog.Logger) (coinmarketcap.API, error)
}

func defaultAPI(cfg *config, logger zerolog.Logger) (coinmarketcap.API, error) {
	return coinmarketcap.NewClient(cfg.APIKey, append(cfg.clientOptions(), coinmarketcap.WithLogger(logger))...)
}

//
// newRootCmd assembles the command tree. If newAPI is nil, a real client is constructed from the
// loaded configuration.
//
func newRootCmd(newAPI func(cfg *config, logger zerolog.Logger) (coinmarketcap.API, error)) *cobra.Command {
	o := &app{newAPI: newAPI}
	if o.newAPI == nil {
		o.newAPI = defaultAPI
	}

	root := &cobra.Command{
		Use:           "cmc",
		Short:         "Query the CoinMarketCap Pro API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.setup(cmd)
		},
	}

	root.PersistentFlags().String("config", "", "config file path (default: ~/.cmc/config.yaml)")
	root.PersistentFlags().String("env-file", ".env", "dotenv file to load before reading the environment")
	root.PersistentFlags().String("convert", "USD", "currency to convert market values into")
	root.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	root.PersistentFlags().Bool("no-color", false, "disable coloured output")
	root.PersistentFlags().Bool("debug", false, "dump every HTTP request and response to the log")

	root.AddCommand(
		o.versionCmd(),
		o.listingsCmd(),
		o.listingsHistoricalCmd(),
		o.quoteCmd(),
		o.quoteHistoricalCmd(),
		o.pairsCmd(),
		o.ohlcvCmd(),
		o.metricsCmd(),
		o.snapshotCmd(),
	)

	return root
}

//
// setup loads the configuration, sets up logging, and constructs the API client.
//
func (o *app) setup(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	envFile, _ := cmd.Flags().GetString("env-file")

	cfg, err := loadConfig(cmd, path, envFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	o.cfg = cfg
	o.au = aurora.NewAurora(!cfg.NoColor)
	o.logger = newLogger(cmd.ErrOrStderr(), cfg)

	//
	// The version command works without credentials.
	//
	if cmd.Name() == "version" {
		return nil
	}

	if cfg.APIKey == "" {
		return fmt.Errorf("no API key configured: set CMC_PRO_API_KEY or api_key in the config file")
	}

	o.api, err = o.newAPI(cfg, o.logger)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	return nil
}

func newLogger(w io.Writer, cfg *config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	if cfg.Debug && level > zerolog.DebugLevel {
		level = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: cfg.NoColor}).
		Level(level).
		With().
		Timestamp().
		Str(constants.ComponentKey, "cli").
		Logger()
}

func (o *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "cmc %s\n", version)
			fmt.Fprintf(out, "  commit:  %s\n", commit)
			fmt.Fprintf(out, "  built:   %s\n", date)
		},
	}
}
