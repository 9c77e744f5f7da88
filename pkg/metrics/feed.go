package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	feedQueryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "claimdesk",
		Subsystem: "feed",
		Name:      "query_duration_seconds",
		Help:      "Duration of feed page fetches, including the count query.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"outcome"})

	feedRowsReturned = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "claimdesk",
		Subsystem: "feed",
		Name:      "rows_returned",
		Help:      "Rows returned per feed page.",
		Buckets:   []float64{0, 1, 5, 10, 20, 50, 100},
	})
)

// ObserveFeedQuery records one feed fetch.
func ObserveFeedQuery(start time.Time, rows int, err error) {
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	feedQueryDuration.WithLabelValues(outcome).Observe(time.Since(start).Seconds())
	if err == nil {
		feedRowsReturned.Observe(float64(rows))
	}
}
