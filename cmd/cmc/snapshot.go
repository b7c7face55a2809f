package main

import (
	"fmt"
	"strings"

	"github.com/lukehollenback/coinmarketcap/marketdata/coinmarketcap"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

//
// snapshotCmd fetches the aggregate metrics, the top listings, and the quotes of any requested
// symbols concurrently, and prints them together.
//
func (o *app) snapshotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot [SYMBOL...]",
		Short: "Show market metrics, top listings, and quotes in one go",
		RunE: func(cmd *cobra.Command, args []string) error {
			top, _ := cmd.Flags().GetInt("top")
			symbols := upper(args)
			convert := []string{o.cfg.Convert}

			var (
				metrics  *coinmarketcap.Response[coinmarketcap.AggregateMarketMetrics]
				listings *coinmarketcap.Response[[]coinmarketcap.CryptocurrencyWithLatestQuote]
				quotes   *coinmarketcap.Response[map[string]coinmarketcap.CryptocurrencyWithLatestQuote]
			)

			g, gctx := errgroup.WithContext(cmd.Context())

			g.Go(func() (err error) {
				metrics, err = o.api.GetAggregateMarketMetrics(gctx, coinmarketcap.AggregateMarketMetricsParams{Convert: convert})
				if err != nil {
					return fmt.Errorf("metrics: %w", err)
				}

				return nil
			})

			g.Go(func() (err error) {
				listings, err = o.api.GetLatestListings(gctx, coinmarketcap.ListingLatestParameters{Limit: top, Convert: convert})
				if err != nil {
					return fmt.Errorf("listings: %w", err)
				}

				return nil
			})

			if len(symbols) > 0 {
				g.Go(func() (err error) {
					quotes, err = o.api.GetLatestQuote(gctx, coinmarketcap.LatestQuoteParameters{Symbol: symbols, Convert: convert})
					if err != nil {
						return fmt.Errorf("quotes: %w", err)
					}

					return nil
				})
			}

			if err := g.Wait(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			fmt.Fprintln(out, o.au.Bold("Market"))

			if err := o.printMetrics(cmd, &metrics.Data, o.cfg.Convert); err != nil {
				return err
			}

			fmt.Fprintln(out)
			fmt.Fprintln(out, o.au.Bold(fmt.Sprintf("Top %d", len(listings.Data))))

			t := newTable(out, "RANK", "SYMBOL", "PRICE", "24H")
			for _, c := range listings.Data {
				q := c.Quote[o.cfg.Convert]
				t.row(fmt.Sprint(c.CMCRank), c.Symbol, money(q.Price), o.percent(q.PercentChange24h))
			}

			if err := t.flush(); err != nil {
				return err
			}

			if quotes == nil {
				return nil
			}

			fmt.Fprintln(out)
			fmt.Fprintln(out, o.au.Bold(strings.Join(symbols, ", ")))

			t = newTable(out, "SYMBOL", "PRICE", "24H")
			for _, symbol := range symbols {
				if c, ok := quotes.Data[symbol]; ok {
					q := c.Quote[o.cfg.Convert]
					t.row(symbol, money(q.Price), o.percent(q.PercentChange24h))
				}
			}

			return t.flush()
		},
	}

	cmd.Flags().Int("top", 5, "number of top listings to include")

	return cmd
}
