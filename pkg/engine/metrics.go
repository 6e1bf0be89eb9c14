package engine

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	stepTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gol_engine_steps_total",
		Help: "Generations computed, by neighbor-counting path",
	}, []string{"path"})

	stepDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "gol_engine_step_duration_seconds",
		Help:    "Time to compute and apply one generation",
		Buckets: prometheus.ExponentialBuckets(0.00005, 2, 14), // 50µs to ~400ms
	}, []string{"path"})

	cellsChanged = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gol_engine_cells_changed_total",
		Help: "Cells born or killed by stepping",
	}, []string{"kind"})

	historyOverflows = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gol_engine_history_overflows_total",
		Help: "Times the rewind history hit its depth limit and was emptied",
	})

	rewinds = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gol_engine_rewinds_total",
		Help: "Rewind and checkpoint restores, by source and outcome",
	}, []string{"source", "outcome"})
)
