package main

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/lukehollenback/coinmarketcap/marketdata/coinmarketcap"
	"github.com/spf13/cobra"
)

func (o *app) listingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "listings",
		Short: "List cryptocurrencies with their latest market data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			values := url.Values{"convert": {o.cfg.Convert}}

			start, _ := cmd.Flags().GetInt("start")
			limit, _ := cmd.Flags().GetInt("limit")
			sort, _ := cmd.Flags().GetString("sort")
			sortDir, _ := cmd.Flags().GetString("sort-dir")
			kind, _ := cmd.Flags().GetString("type")

			setInt(values, "start", start)
			setInt(values, "limit", limit)
			setString(values, "sort", sort)
			setString(values, "sort_dir", sortDir)
			setString(values, "cryptocurrency_type", kind)

			var params coinmarketcap.ListingLatestParameters
			if err := o.decodeParams(cmd, values, &params); err != nil {
				return err
			}

			resp, err := o.api.GetLatestListings(cmd.Context(), params)
			if err != nil {
				return err
			}

			convert := o.convertKey(params.Convert)

			t := newTable(cmd.OutOrStdout(), "RANK", "SYMBOL", "NAME", "PRICE", "MARKET CAP", "24H")

			for _, c := range resp.Data {
				q := c.Quote[convert]
				t.row(fmt.Sprint(c.CMCRank), c.Symbol, c.Name, money(q.Price), money(q.MarketCap), o.percent(q.PercentChange24h))
			}

			return t.flush()
		},
	}

	cmd.Flags().Int("start", 0, "offset (1-based) of the first listing")
	cmd.Flags().Int("limit", 10, "number of listings")
	cmd.Flags().String("sort", "", "field to sort by (e.g. market_cap, volume_24h)")
	cmd.Flags().String("sort-dir", "", "sort direction (asc or desc)")
	cmd.Flags().String("type", "", "cryptocurrency type (all, coins, or tokens)")
	addParamFlag(cmd)

	return cmd
}

func (o *app) listingsHistoricalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "listings-historical",
		Short: "List cryptocurrencies with market data as of a date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			values := url.Values{"convert": {o.cfg.Convert}}

			day, _ := cmd.Flags().GetString("date")
			limit, _ := cmd.Flags().GetInt("limit")

			if err := setTime(values, "date", day); err != nil {
				return err
			}

			setInt(values, "limit", limit)

			var params coinmarketcap.ListingHistoricalParameters
			if err := o.decodeParams(cmd, values, &params); err != nil {
				return err
			}

			resp, err := o.api.GetHistoricalListings(cmd.Context(), params)
			if err != nil {
				return err
			}

			convert := o.convertKey(params.Convert)

			t := newTable(cmd.OutOrStdout(), "RANK", "SYMBOL", "NAME", "PRICE", "MARKET CAP", "24H")

			for _, c := range resp.Data {
				q := c.Quote[convert]
				t.row(fmt.Sprint(c.CMCRank), c.Symbol, c.Name, money(q.Price), money(q.MarketCap), o.percent(q.PercentChange24h))
			}

			return t.flush()
		},
	}

	cmd.Flags().String("date", "", "date of the snapshot (YYYY-MM-DD or RFC 3339)")
	cmd.Flags().Int("limit", 10, "number of listings")
	_ = cmd.MarkFlagRequired("date")
	addParamFlag(cmd)

	return cmd
}

func (o *app) quoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quote SYMBOL...",
		Short: "Show the latest quote of one or more cryptocurrencies",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			symbols := upper(args)
			values := url.Values{"convert": {o.cfg.Convert}, "symbol": {strings.Join(symbols, ",")}}

			var params coinmarketcap.LatestQuoteParameters
			if err := o.decodeParams(cmd, values, &params); err != nil {
				return err
			}

			resp, err := o.api.GetLatestQuote(cmd.Context(), params)
			if err != nil {
				return err
			}

			convert := o.convertKey(params.Convert)

			t := newTable(cmd.OutOrStdout(), "SYMBOL", "NAME", "PRICE", "VOLUME 24H", "MARKET CAP", "1H", "24H", "7D")

			for _, symbol := range symbols {
				c, ok := resp.Data[symbol]
				if !ok {
					o.logger.Warn().Str("symbol", symbol).Msg("No quote returned.")

					continue
				}

				q := c.Quote[convert]
				t.row(
					c.Symbol, c.Name, money(q.Price), money(q.Volume24h), money(q.MarketCap),
					o.percent(q.PercentChange1h), o.percent(q.PercentChange24h), o.percent(q.PercentChange7d),
				)
			}

			return t.flush()
		},
	}

	addParamFlag(cmd)

	return cmd
}

func (o *app) quoteHistoricalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quote-historical SYMBOL",
		Short: "Show historical quotes of a cryptocurrency",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values := url.Values{"convert": {o.cfg.Convert}, "symbol": {strings.ToUpper(args[0])}}

			start, _ := cmd.Flags().GetString("start")
			end, _ := cmd.Flags().GetString("end")
			interval, _ := cmd.Flags().GetString("interval")
			count, _ := cmd.Flags().GetInt("count")

			if err := setTime(values, "time_start", start); err != nil {
				return err
			}

			if err := setTime(values, "time_end", end); err != nil {
				return err
			}

			setString(values, "interval", interval)
			setInt(values, "count", count)

			var params coinmarketcap.HistoricalQuoteParameters
			if err := o.decodeParams(cmd, values, &params); err != nil {
				return err
			}

			resp, err := o.api.GetHistoricalQuote(cmd.Context(), params)
			if err != nil {
				return err
			}

			convert := o.convertKey(params.Convert)

			t := newTable(cmd.OutOrStdout(), "TIMESTAMP", "PRICE", "VOLUME 24H", "MARKET CAP", "24H")

			for _, s := range resp.Data.Quotes {
				q := s.Quote[convert]
				t.row(timestamp(s.Timestamp), money(q.Price), money(q.Volume24h), money(q.MarketCap), o.percent(q.PercentChange24h))
			}

			return t.flush()
		},
	}

	cmd.Flags().String("start", "", "start of the range (YYYY-MM-DD or RFC 3339)")
	cmd.Flags().String("end", "", "end of the range (YYYY-MM-DD or RFC 3339)")
	cmd.Flags().String("interval", "", "sampling interval (e.g. 1h, daily, weekly)")
	cmd.Flags().Int("count", 0, "number of samples")
	addParamFlag(cmd)

	return cmd
}

func (o *app) pairsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pairs SYMBOL",
		Short: "List the market pairs of a cryptocurrency",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values := url.Values{"convert": {o.cfg.Convert}, "symbol": {strings.ToUpper(args[0])}}

			limit, _ := cmd.Flags().GetInt("limit")
			category, _ := cmd.Flags().GetString("category")

			setInt(values, "limit", limit)
			setString(values, "category", category)

			var params coinmarketcap.MarketPairsLatestParameters
			if err := o.decodeParams(cmd, values, &params); err != nil {
				return err
			}

			resp, err := o.api.GetMarketPairLatest(cmd.Context(), params)
			if err != nil {
				return err
			}

			convert := o.convertKey(params.Convert)

			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s): %d market pairs\n", resp.Data.Name, resp.Data.Symbol, resp.Data.NumMarketPairs)

			t := newTable(cmd.OutOrStdout(), "EXCHANGE", "PAIR", "CATEGORY", "PRICE", "VOLUME 24H")

			for _, p := range resp.Data.MarketPairs {
				q := p.Quote[convert]
				t.row(p.Exchange.Name, p.MarketPair, p.Category, money(q.Price), money(q.Volume24h))
			}

			return t.flush()
		},
	}

	cmd.Flags().Int("limit", 10, "number of market pairs")
	cmd.Flags().String("category", "", "market category (spot, derivatives, otc, or all)")
	addParamFlag(cmd)

	return cmd
}

func (o *app) metricsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "metrics",
		Short: "Show aggregate market metrics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			values := url.Values{"convert": {o.cfg.Convert}}

			var params coinmarketcap.AggregateMarketMetricsParams
			if err := o.decodeParams(cmd, values, &params); err != nil {
				return err
			}

			resp, err := o.api.GetAggregateMarketMetrics(cmd.Context(), params)
			if err != nil {
				return err
			}

			convert := o.convertKey(params.Convert)

			return o.printMetrics(cmd, &resp.Data, convert)
		},
	}

	addParamFlag(cmd)

	return cmd
}

func (o *app) printMetrics(cmd *cobra.Command, m *coinmarketcap.AggregateMarketMetrics, convert string) error {
	q := m.Quote[convert]

	t := newTable(cmd.OutOrStdout(), "METRIC", "VALUE")
	t.row("Active cryptocurrencies", fmt.Sprint(m.ActiveCryptocurrencies))
	t.row("Active exchanges", fmt.Sprint(m.ActiveExchanges))
	t.row("Active market pairs", fmt.Sprint(m.ActiveMarketPairs))
	t.row("BTC dominance", m.BtcDominance.StringFixed(2)+"%")
	t.row("ETH dominance", m.EthDominance.StringFixed(2)+"%")
	t.row("Total market cap ("+convert+")", money(q.TotalMarketCap))
	t.row("Total volume 24h ("+convert+")", money(q.TotalVolume24h))
	t.row("Last updated", timestamp(m.LastUpdated))

	return t.flush()
}

func upper(in []string) []string {
	ret := make([]string, len(in))
	for i, s := range in {
		ret[i] = strings.ToUpper(s)
	}

	return ret
}
