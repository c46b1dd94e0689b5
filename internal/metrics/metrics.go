package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

var (
	ErrorsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracker_errors_total",
			Help: "Total number of occurred errors.",
		},
		[]string{"type"},
	)
	SyncDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "tracker_sync_duration_seconds",
			Help:    "Duration of each full sync pass in seconds.",
			Buckets: []float64{1, 5, 15, 60, 300},
		},
	)
	PushedInterviewsCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "tracker_interviews_pushed_total",
			Help: "Total number of local interviews pushed to the server.",
		},
	)
	PulledRecordsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracker_records_pulled_total",
			Help: "Total number of records upserted from server pulls.",
		},
		[]string{"entity"},
	)
	DeletedRecordsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracker_records_deleted_total",
			Help: "Total number of local records removed because the server no longer has them.",
		},
		[]string{"entity"},
	)
)

func StartMetricsServer() {

	prometheus.MustRegister(ErrorsCounter)
	prometheus.MustRegister(SyncDuration)
	prometheus.MustRegister(PushedInterviewsCounter)
	prometheus.MustRegister(PulledRecordsCounter)
	prometheus.MustRegister(DeletedRecordsCounter)

	http.Handle("/metrics", promhttp.Handler())
	go func() {
		log.Fatal(http.ListenAndServe(":8080", nil))
	}()
}
