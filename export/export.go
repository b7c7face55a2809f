//
// Package export renders candle series as CSV.
//
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/lukehollenback/coinmarketcap/marketdata"
	"github.com/lukehollenback/coinmarketcap/marketdata/indicator"
	"github.com/rs/zerolog"
)

const (
	TimeOpenKey  = "TimeOpen"
	TimeCloseKey = "TimeClose"
	OpenKey      = "Open"
	HighKey      = "High"
	LowKey       = "Low"
	CloseKey     = "Close"
	VolumeKey    = "Volume"
	MarketCapKey = "MarketCap"
)

//
// CandleWriter writes candles as CSV rows, optionally followed by a moving average column.
//
type CandleWriter struct {
	writer *csv.Writer
	column string
}

//
// NewCandleWriter instantiates a candle writer and writes out the header row. If column is not empty,
// an extra column with that name is added for moving average values.
//
func NewCandleWriter(w io.Writer, column string) (*CandleWriter, error) {
	o := &CandleWriter{writer: csv.NewWriter(w), column: column}

	header := []string{TimeOpenKey, TimeCloseKey, OpenKey, HighKey, LowKey, CloseKey, VolumeKey, MarketCapKey}
	if column != "" {
		header = append(header, column)
	}

	if err := o.writer.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write header row: %w", err)
	}

	return o, nil
}

//
// Write writes out a single candle. The average is only written if the writer has a moving average
// column and ok is true; otherwise the cell is left empty.
//
func (o *CandleWriter) Write(c marketdata.Candle, average indicator.Point, ok bool) error {
	row := []string{
		c.StartTime().UTC().Format(time.RFC3339),
		c.EndTime().UTC().Format(time.RFC3339),
		c.Open().String(),
		c.High().String(),
		c.Low().String(),
		c.Close().String(),
		c.Volume().String(),
		c.MarketCap().String(),
	}

	if o.column != "" {
		cell := ""
		if ok {
			cell = average.Value.String()
		}

		row = append(row, cell)
	}

	return o.writer.Write(row)
}

//
// Flush flushes the buffered rows to the underlying writer.
//
func (o *CandleWriter) Flush() error {
	o.writer.Flush()

	return o.writer.Error()
}

//
// WriteCandles writes out the header row and every candle. Points are matched to candles by closing
// time, as returned by indicator.Series. Pass a nil points slice to omit the moving average column.
//
func WriteCandles(w io.Writer, candles []marketdata.Candle, column string, points []indicator.Point) error {
	if points == nil {
		column = ""
	}

	writer, err := NewCandleWriter(w, column)
	if err != nil {
		return err
	}

	byClose := make(map[time.Time]indicator.Point, len(points))
	for _, p := range points {
		byClose[p.Time.UTC()] = p
	}

	for _, c := range candles {
		p, ok := byClose[c.EndTime().UTC()]

		if err := writer.Write(c, p, ok); err != nil {
			return fmt.Errorf("failed to write candle row: %w", err)
		}
	}

	return writer.Flush()
}

//
// WriteCandlesFile creates (or truncates) the file at path and writes the candles out to it.
//
func WriteCandlesFile(path string, candles []marketdata.Candle, column string, points []indicator.Point, logger zerolog.Logger) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	logger.Info().Str("path", path).Int("rows", len(candles)).Msg("Outputting CSV.")

	if err := WriteCandles(f, candles, column, points); err != nil {
		_ = f.Close()

		return err
	}

	if err := f.Close(); err != nil {
		logger.Error().Err(err).Str("path", path).Msg("Failed to close handle on output file.")

		return err
	}

	return nil
}
