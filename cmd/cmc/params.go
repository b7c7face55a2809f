package main

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/lukehollenback/coinmarketcap/marketdata/coinmarketcap"
	"github.com/spf13/cobra"
)

//
// addParamFlag registers the repeatable --param flag that lets any endpoint parameter be set by its
// query key, e.g. --param aux=platform,tags.
//
func addParamFlag(cmd *cobra.Command) {
	cmd.Flags().StringArray("param", nil, "extra endpoint parameter as key=value (repeatable)")
}

//
// decodeParams merges the --param flags over the provided values and decodes the result into the
// parameter struct pointed to by dst.
//
func (o *app) decodeParams(cmd *cobra.Command, values url.Values, dst any) error {
	extra, _ := cmd.Flags().GetStringArray("param")

	for _, kv := range extra {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			return fmt.Errorf("invalid --param %q: expected key=value", kv)
		}

		values.Set(key, value)
	}

	if err := coinmarketcap.DecodeQuery(values, dst); err != nil {
		return err
	}

	//
	// Anything that does not survive a round trip was not a parameter of the endpoint.
	//
	encoded, err := coinmarketcap.EncodeQuery(dst)
	if err != nil {
		return err
	}

	for key := range values {
		if _, ok := encoded[key]; !ok && values.Get(key) != "" {
			o.logger.Warn().Str("param", key).Str("command", cmd.Name()).Msg("Ignoring unknown parameter.")
		}
	}

	return nil
}

//
// convertKey returns the currency that response quotes are keyed by: the first requested convert
// currency, or the configured one if none was requested.
//
func (o *app) convertKey(convert []string) string {
	if len(convert) > 0 && convert[0] != "" {
		return convert[0]
	}

	return o.cfg.Convert
}

//
// setTime normalizes a date (2006-01-02) or RFC 3339 timestamp flag into the query value format. An
// empty flag leaves the values alone.
//
func setTime(values url.Values, key string, raw string) error {
	if raw == "" {
		return nil
	}

	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			values.Set(key, t.UTC().Format(time.RFC3339Nano))

			return nil
		}
	}

	return fmt.Errorf("invalid %s %q: expected YYYY-MM-DD or an RFC 3339 timestamp", key, raw)
}

//
// setInt sets an integer value if it is not zero.
//
func setInt(values url.Values, key string, n int) {
	if n != 0 {
		values.Set(key, fmt.Sprint(n))
	}
}

//
// setString sets a string value if it is not empty.
//
func setString(values url.Values, key string, s string) {
	if s != "" {
		values.Set(key, s)
	}
}
