package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	frames   *prometheus.CounterVec
	rejected prometheus.Counter
	stored   prometheus.Counter
	known    prometheus.Counter
	reports  *prometheus.CounterVec
	duration prometheus.Histogram
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		frames: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "yabs",
			Subsystem: "processor",
			Name:      "frames_total",
			Help:      "Canonicalized frames by language.",
		}, []string{"lang"}),
		rejected: f.NewCounter(prometheus.CounterOpts{
			Namespace: "yabs",
			Subsystem: "processor",
			Name:      "frames_rejected_total",
			Help:      "Frames that could not be decoded.",
		}),
		stored: f.NewCounter(prometheus.CounterOpts{
			Namespace: "yabs",
			Subsystem: "processor",
			Name:      "frames_stored_total",
			Help:      "Frames seen for the first time and stored.",
		}),
		known: f.NewCounter(prometheus.CounterOpts{
			Namespace: "yabs",
			Subsystem: "processor",
			Name:      "frames_known_total",
			Help:      "Frames whose fingerprint was already stored.",
		}),
		reports: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "yabs",
			Subsystem: "processor",
			Name:      "reports_total",
			Help:      "Processed reports by result.",
		}, []string{"result"}),
		duration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "yabs",
			Subsystem: "processor",
			Name:      "report_duration_seconds",
			Help:      "Time spent on one report.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}
