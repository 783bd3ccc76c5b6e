// Package server exposes the journey planner over HTTP.
//
// Routes:
//
//	GET  /api/health             service and dataset status
//	GET  /api/journeys           plan journeys (?from=&to=&results=&format=json|xml)
//	GET  /api/stations           list stations
//	GET  /api/stations/:code     look up one station
//	POST /api/admin/reload       reload the dataset and drop cached plans
//	GET  /metrics                Prometheus metrics
package server
