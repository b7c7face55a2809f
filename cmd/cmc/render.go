package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/lukehollenback/coinmarketcap/marketdata/indicator"
	"github.com/shopspring/decimal"
)

//
// table writes tab-aligned rows. Only the final column of a row may carry colour codes, since they
// would otherwise throw off the alignment.
//
type table struct {
	w *tabwriter.Writer
}

func newTable(out io.Writer, header ...string) *table {
	o := &table{w: tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)}
	o.row(header...)

	return o
}

func (o *table) row(cells ...string) {
	fmt.Fprintln(o.w, strings.Join(cells, "\t"))
}

func (o *table) flush() error {
	return o.w.Flush()
}

//
// percent renders a percent change, green when it is positive and red when it is negative.
//
func (o *app) percent(d decimal.NullDecimal) string {
	if !d.Valid {
		return "n/a"
	}

	s := d.Decimal.StringFixed(2) + "%"

	switch {
	case d.Decimal.IsPositive():
		return o.au.Green("+" + s).String()
	case d.Decimal.IsNegative():
		return o.au.Red(s).String()
	}

	return s
}

//
// signal renders a crossover signal, green for an uptrend and red for a downtrend.
//
func (o *app) signal(s indicator.Signal) string {
	switch s {
	case indicator.UptrendDetected:
		return o.au.Bold(o.au.Green("UP")).String()
	case indicator.DowntrendDetected:
		return o.au.Bold(o.au.Red("DOWN")).String()
	}

	return "-"
}

func money(d decimal.Decimal) string {
	if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return d.StringFixed(2)
	}

	return d.String()
}

func nullMoney(d decimal.NullDecimal) string {
	if !d.Valid {
		return "n/a"
	}

	return money(d.Decimal)
}

func timestamp(t time.Time) string {
	if t.IsZero() {
		return "-"
	}

	return t.UTC().Format(time.RFC3339)
}
