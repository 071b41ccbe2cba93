package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AnswerResolutions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "advisor_answer_resolutions_total",
			Help: "Total number of resolved questions by the tier that produced the answer",
		},
		[]string{"tier"},
	)

	AnswerResolutionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "advisor_answer_resolution_duration_seconds",
			Help:    "Time spent resolving one question",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
		},
	)

	TableReloads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "advisor_table_reloads_total",
			Help: "Total number of administrative table reloads",
		},
		[]string{"table", "status"},
	)

	TableEntries = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "advisor_table_entries",
			Help: "Number of entries in each loaded table",
		},
		[]string{"table"},
	)

	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "advisor_answer_cache_lookups_total",
			Help: "Answer cache lookups by result",
		},
		[]string{"result"},
	)
)
