package coinmarketcap

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeSuccess           = "success"
	outcomeBadRequest        = "bad_request"
	outcomeBadServerResponse = "bad_server_response"
	outcomeTransportError    = "transport_error"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cmc_client",
			Name:      "requests_total",
			Help:      "Calls made against the CoinMarketCap API, by endpoint and outcome.",
		},
		[]string{"endpoint", "outcome"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "cmc_client",
			Name:      "request_duration_seconds",
			Help:      "Round-trip latency of calls against the CoinMarketCap API.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	creditsUsedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cmc_client",
			Name:      "credits_used_total",
			Help:      "API credits reported as consumed in response status blocks.",
		},
		[]string{"endpoint"},
	)
)

//
// outcomeOf maps the error returned from a call onto the label used in requestsTotal.
//
func outcomeOf(err error) string {
	switch {
	case err == nil:
		return outcomeSuccess
	case IsBadRequest(err):
		return outcomeBadRequest
	case IsBadServerResponse(err):
		return outcomeBadServerResponse
	default:
		return outcomeTransportError
	}
}
