package source

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	datasetReloads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "journey_planner_dataset_reloads_total",
		Help: "Dataset reload attempts by result",
	}, []string{"result"})

	datasetStations = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "journey_planner_dataset_stations",
		Help: "Stations in the currently loaded network",
	})

	datasetConnections = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "journey_planner_dataset_connections",
		Help: "Connections in the currently loaded network",
	})
)
