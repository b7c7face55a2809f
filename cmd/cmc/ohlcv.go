package main

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/lukehollenback/coinmarketcap/export"
	"github.com/lukehollenback/coinmarketcap/marketdata/coinmarketcap"
	"github.com/lukehollenback/coinmarketcap/marketdata/indicator"
	"github.com/spf13/cobra"
)

func (o *app) ohlcvCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ohlcv SYMBOL",
		Short: "Show historical OHLCV candles of a cryptocurrency",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values := url.Values{"convert": {o.cfg.Convert}, "symbol": {strings.ToUpper(args[0])}}

			start, _ := cmd.Flags().GetString("start")
			end, _ := cmd.Flags().GetString("end")
			period, _ := cmd.Flags().GetString("period")
			interval, _ := cmd.Flags().GetString("interval")
			count, _ := cmd.Flags().GetInt("count")
			length, _ := cmd.Flags().GetInt("sma")
			exponential, _ := cmd.Flags().GetBool("ema")
			csvPath, _ := cmd.Flags().GetString("csv")
			crossoverSpec, _ := cmd.Flags().GetString("crossover")

			kind := indicator.Simple
			if exponential {
				kind = indicator.Exponential
			}

			var crossover *indicator.Crossover

			if crossoverSpec != "" {
				if csvPath != "" {
					return fmt.Errorf("--crossover cannot be combined with --csv")
				}

				shortLen, longLen, err := parseCrossover(crossoverSpec)
				if err != nil {
					return err
				}

				if crossover, err = indicator.NewCrossover(kind, shortLen, longLen, o.logger); err != nil {
					return err
				}
			}

			if err := setTime(values, "time_start", start); err != nil {
				return err
			}

			if err := setTime(values, "time_end", end); err != nil {
				return err
			}

			setString(values, "time_period", period)
			setString(values, "interval", interval)
			setInt(values, "count", count)

			var params coinmarketcap.OhlcvHistoricalParameters
			if err := o.decodeParams(cmd, values, &params); err != nil {
				return err
			}

			resp, err := o.api.GetOhlcvHistorical(cmd.Context(), params)
			if err != nil {
				return err
			}

			candles := resp.Data.Candles(o.convertKey(params.Convert))

			//
			// Calculate the moving average, if one was asked for.
			//
			var (
				points []indicator.Point
				column string
			)

			if length > 0 {
				points, err = indicator.Series(candles, kind, length)
				if err != nil {
					return err
				}

				if points == nil {
					points = []indicator.Point{}
				}

				column = fmt.Sprintf("%s%d", kind, length)

				o.logger.Debug().Str("average", column).Int("points", len(points)).Msg("Calculated moving average.")
			}

			if csvPath != "" {
				return export.WriteCandlesFile(csvPath, candles, column, points, o.logger)
			}

			header := []string{"OPEN TIME", "OPEN", "HIGH", "LOW", "CLOSE", "VOLUME"}
			if column != "" {
				header = append(header, column)
			}

			if crossover != nil {
				header = append(header, "SIGNAL")
			}

			byClose := make(map[string]string, len(points))
			for _, p := range points {
				byClose[timestamp(p.Time)] = money(p.Value)
			}

			t := newTable(cmd.OutOrStdout(), header...)

			for _, c := range candles {
				row := []string{
					timestamp(*c.StartTime()),
					money(*c.Open()), money(*c.High()), money(*c.Low()), money(*c.Close()), money(*c.Volume()),
				}

				if column != "" {
					avg, ok := byClose[timestamp(*c.EndTime())]
					if !ok {
						avg = "-"
					}

					row = append(row, avg)
				}

				if crossover != nil {
					row = append(row, o.signal(crossover.Add(*c.Close())))
				}

				t.row(row...)
			}

			return t.flush()
		},
	}

	cmd.Flags().String("start", "", "start of the range (YYYY-MM-DD or RFC 3339)")
	cmd.Flags().String("end", "", "end of the range (YYYY-MM-DD or RFC 3339)")
	cmd.Flags().String("period", "", "candle period (daily or hourly)")
	cmd.Flags().String("interval", "", "sampling interval (e.g. daily, weekly)")
	cmd.Flags().Int("count", 0, "number of candles")
	cmd.Flags().Int("sma", 0, "add a moving average over this many candles")
	cmd.Flags().String("crossover", "", "flag short/long moving average crossovers, as SHORT,LONG (e.g. 5,15)")
	cmd.Flags().Bool("ema", false, "make the moving averages exponential")
	cmd.Flags().String("csv", "", "write the candles to this CSV file instead of printing them")
	addParamFlag(cmd)

	return cmd
}

//
// parseCrossover parses a SHORT,LONG pair of moving average lengths.
//
func parseCrossover(spec string) (int, int, error) {
	shortRaw, longRaw, ok := strings.Cut(spec, ",")
	if !ok {
		return 0, 0, fmt.Errorf("invalid --crossover %q: expected SHORT,LONG", spec)
	}

	shortLen, err := strconv.Atoi(strings.TrimSpace(shortRaw))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid --crossover short length %q: %w", shortRaw, err)
	}

	longLen, err := strconv.Atoi(strings.TrimSpace(longRaw))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid --crossover long length %q: %w", longRaw, err)
	}

	return shortLen, longLen, nil
}
