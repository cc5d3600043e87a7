// Package metrics exposes Prometheus collectors for the tracker.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// MutationsTotal counts audit-logged mutations by action tag.
	MutationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "campops",
		Name:      "mutations_total",
		Help:      "Number of audit-logged mutations by action.",
	}, []string{"action"})

	// IncidentsTotal counts reported incidents.
	IncidentsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "campops",
		Name:      "incidents_total",
		Help:      "Number of incident reports recorded.",
	})

	// ImportedRowsTotal counts rows loaded by the CSV importer per collection.
	ImportedRowsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "campops",
		Name:      "imported_rows_total",
		Help:      "Number of rows loaded from spreadsheet exports.",
	}, []string{"collection"})

	// DailyResetsTotal counts assignment-table truncations by the daily reset.
	DailyResetsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "campops",
		Name:      "daily_resets_total",
		Help:      "Number of daily assignment resets performed.",
	})
)

// Handler returns the HTTP handler serving the metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
