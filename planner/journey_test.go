package planner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/journey-planner/network"
	"github.com/theoremus-urban-solutions/journey-planner/planner"
)

func station(code string) network.Station {
	return network.Station{Code: code, Name: "Station " + code}
}

func TestReconstruct_MergesSameLineHops(t *testing.T) {
	g := graphOf(t, mustNetwork(t, []string{"A", "B", "C", "D"},
		network.Line{ID: "1", Name: "Red", Stops: []string{"A", "B", "C"}},
		network.Line{ID: "2", Name: "Blue", Stops: []string{"C", "D"}},
	))
	arena := planner.Arena{
		{Station: "A", Parent: -1},
		{Station: "B", LineID: "1", LineName: "Red", Depth: 1, Parent: 0},
		{Station: "C", LineID: "1", LineName: "Red", Depth: 2, Parent: 1},
		{Station: "D", LineID: "2", LineName: "Blue", Depth: 3, Parent: 2},
	}

	segs := planner.Reconstruct(g, arena, 3)

	assert.Equal(t, []planner.Segment{
		{Origin: station("A"), Destination: station("C"), LineID: "1", Line: "Red", Stops: 2},
		{Origin: station("C"), Destination: station("D"), LineID: "2", Line: "Blue", Stops: 1},
	}, segs)
}

func TestReconstruct_RootOnly(t *testing.T) {
	g := planner.BuildGraph(nil)
	arena := planner.Arena{{Station: "A", Parent: -1}}

	assert.Empty(t, planner.Reconstruct(g, arena, 0))
}

func TestReconstruct_SameNameDifferentIDMerges(t *testing.T) {
	g := graphOf(t, mustNetwork(t, []string{"A", "B", "C"},
		network.Line{ID: "r1-out", Name: "R1", Stops: []string{"A", "B"}},
		network.Line{ID: "r1-in", Name: "R1", Stops: []string{"B", "C"}},
	))
	arena := planner.Arena{
		{Station: "A", Parent: -1},
		{Station: "B", LineID: "r1-out", LineName: "R1", Depth: 1, Parent: 0},
		{Station: "C", LineID: "r1-in", LineName: "R1", Depth: 2, Parent: 1},
	}

	segs := planner.Reconstruct(g, arena, 2)

	require.Len(t, segs, 1)
	assert.Equal(t, 2, segs[0].Stops)
	assert.Equal(t, "A", segs[0].Origin.Code)
	assert.Equal(t, "C", segs[0].Destination.Code)
}

func TestNewJourney_Totals(t *testing.T) {
	j := planner.NewJourney([]planner.Segment{
		{Origin: station("A"), Destination: station("B"), Line: "R1", Stops: 1},
		{Origin: station("B"), Destination: station("E"), Line: "R2", Stops: 2},
	})

	assert.Equal(t, "A", j.Origin.Code)
	assert.Equal(t, "E", j.Destination.Code)
	assert.Equal(t, 3, j.TotalStops)
	assert.Equal(t, 1, j.Changes)
}

func TestRank_OrdersByChangesThenStopsStably(t *testing.T) {
	mk := func(label string, changes, stops int) planner.Journey {
		return planner.Journey{Origin: station(label), Changes: changes, TotalStops: stops}
	}
	journeys := []planner.Journey{
		mk("a", 2, 3),
		mk("b", 0, 9),
		mk("c", 1, 4),
		mk("d", 0, 5),
		mk("e", 1, 4),
		mk("f", 0, 9),
	}

	planner.Rank(journeys)

	var order []string
	for _, j := range journeys {
		order = append(order, j.Origin.Code)
	}
	assert.Equal(t, []string{"d", "b", "f", "c", "e", "a"}, order)
}
