// Package observability exposes Prometheus metrics for the dashboard.
package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RequestsTotal counts HTTP requests by route.
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skimmer_http_requests_total",
			Help: "HTTP requests served, by route",
		},
		[]string{"route"},
	)

	// ProductsServed counts product rows rendered or returned by the API.
	ProductsServed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "skimmer_products_served_total",
			Help: "Product rows rendered or returned by the API",
		},
	)

	// ProductsUpserted counts rows written by seed and import runs.
	ProductsUpserted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "skimmer_products_upserted_total",
			Help: "Product rows written by seed and import runs",
		},
	)
)

func init() {
	prometheus.MustRegister(RequestsTotal, ProductsServed, ProductsUpserted)
}

// Handler returns the /metrics endpoint handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
