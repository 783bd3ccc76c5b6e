// Command journey-planner plans journeys on a fixed-route transit network.
//
// Usage:
//
//	journey-planner serve                      start the HTTP API
//	journey-planner plan FROM TO [-n N]        print journeys between two stations
//	journey-planner stations                   list the stations of the network
//	journey-planner snapshot OUT               write the loaded network as a gob snapshot
//
// The dataset and search budgets come from config.yml (see --config).
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
