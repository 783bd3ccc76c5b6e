package planner_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/journey-planner/network"
	"github.com/theoremus-urban-solutions/journey-planner/planner"
)

// interchangeNetwork is R1: A-B-C and R2: B-D-E with B shared.
func interchangeNetwork(t *testing.T) *network.Network {
	t.Helper()
	return mustNetwork(t,
		[]string{"A", "B", "C", "D", "E"},
		network.Line{ID: "R1", Name: "R1", Stops: []string{"A", "B", "C"}},
		network.Line{ID: "R2", Name: "R2", Stops: []string{"B", "D", "E"}},
	)
}

// meshNetwork has several interchanges and cycles.
func meshNetwork(t *testing.T) *network.Network {
	t.Helper()
	return mustNetwork(t,
		[]string{"A", "B", "C", "D", "E", "F", "G", "H", "I"},
		network.Line{ID: "L1", Name: "L1", Stops: []string{"A", "B", "C", "D", "E"}},
		network.Line{ID: "L2", Name: "L2", Stops: []string{"F", "B", "G", "H"}},
		network.Line{ID: "L3", Name: "L3", Stops: []string{"H", "D", "I"}},
		network.Line{ID: "L4", Name: "L4", Stops: []string{"A", "G", "I"}},
		network.Line{ID: "L5", Name: "L5", Stops: []string{"E", "I", "F", "A"}},
	)
}

func mustNetwork(t *testing.T, codes []string, lines ...network.Line) *network.Network {
	t.Helper()
	stations := make([]network.Station, len(codes))
	for i, c := range codes {
		stations[i] = network.Station{Code: c, Name: "Station " + c}
	}
	n, err := network.New(stations, lines)
	require.NoError(t, err)
	return n
}

func newPlanner(n *network.Network) *planner.Planner {
	return planner.New(n, n, planner.Options{})
}

func graphOf(t *testing.T, n *network.Network) *planner.Graph {
	t.Helper()
	conns, err := n.Connections(context.Background())
	require.NoError(t, err)
	return planner.BuildGraph(conns)
}
