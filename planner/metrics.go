package planner

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Plan outcomes used as the "outcome" label.
const (
	outcomeOK            = "ok"
	outcomeSameStation   = "same_station"
	outcomeNotFound      = "station_not_found"
	outcomeNoConnections = "no_connections"
	outcomeError         = "error"
)

// Cache lookup results used as the "result" label.
const (
	cacheResultHit    = "hit"
	cacheResultMiss   = "miss"
	cacheResultShared = "shared"
)

var (
	plansTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "journey_planner_plans_total",
		Help: "Journey plan computations by outcome",
	}, []string{"outcome"})

	planDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "journey_planner_plan_duration_seconds",
		Help:    "Duration of journey plan computations",
		Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
	})

	searchIterations = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "journey_planner_search_iterations",
		Help:    "Frontier pops per search",
		Buckets: prometheus.ExponentialBuckets(10, 4, 8),
	})

	searchTruncated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "journey_planner_search_truncated_total",
		Help: "Searches ended by a budget rather than an empty frontier",
	})

	cacheRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "journey_planner_cache_requests_total",
		Help: "Result cache lookups by result",
	}, []string{"result"})

	cacheEntries = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "journey_planner_cache_entries",
		Help: "Entries currently held by the result cache",
	})

	cacheInvalidations = promauto.NewCounter(prometheus.CounterOpts{
		Name: "journey_planner_cache_invalidations_total",
		Help: "Explicit result cache invalidations",
	})
)
