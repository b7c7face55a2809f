package coinmarketcap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("CMC_PRO_API_KEY", "env-key")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.APIKey)
	assert.Equal(t, BaseURL, cfg.BaseURL)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
	assert.False(t, cfg.Debug)
}

func TestLoadConfigRequiresAPIKey(t *testing.T) {
	t.Setenv("CMC_PRO_API_KEY", "")
	require.NoError(t, os.Unsetenv("CMC_PRO_API_KEY"))

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfigRejectsBadTimeout(t *testing.T) {
	t.Setenv("CMC_PRO_API_KEY", "env-key")
	t.Setenv("CMC_TIMEOUT", "soon")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestNewClientFromEnv(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "env-key", r.Header.Get(APIKeyHeader))

		_, _ = w.Write([]byte(`{"status":{"error_code":0},"data":{"active_cryptocurrencies":42}}`))
	}))
	t.Cleanup(srv.Close)

	t.Setenv("CMC_PRO_API_KEY", "env-key")
	t.Setenv("CMC_BASE_URL", srv.URL)
	t.Setenv("CMC_TIMEOUT", "5s")

	client, err := NewClientFromEnv(zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, client.http.Timeout)

	resp, err := client.GetAggregateMarketMetrics(context.Background(), AggregateMarketMetricsParams{})
	require.NoError(t, err)
	assert.Equal(t, 42, resp.Data.ActiveCryptocurrencies)
}
