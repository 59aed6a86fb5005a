package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ETLRuns = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hragent_etl_runs_total",
		Help: "Total number of completed ETL pipeline runs.",
	})

	ETLDuplicatesDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hragent_etl_duplicates_dropped_total",
		Help: "Total number of duplicate rows dropped during deduplication.",
	})

	CyclesStarted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hragent_verification_cycles_started_total",
		Help: "Total number of verification cycles started.",
	})

	CycleVerdicts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hragent_verification_verdicts_total",
		Help: "Total number of completed cycles, labelled by verdict.",
	}, []string{"verdict"})

	ResponderFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hragent_responder_failures_total",
		Help: "Total number of cycles aborted by a responder gateway failure.",
	})
)
