package planner

import (
	"slices"

	"github.com/theoremus-urban-solutions/journey-planner/network"
)

// Segment is a contiguous ride on a single line.
type Segment struct {
	Origin      network.Station `json:"origin"`
	Destination network.Station `json:"destination"`
	LineID      string          `json:"line_id"`
	Line        string          `json:"line"`
	Stops       int             `json:"stops"`
}

// Journey is an ordered, non-empty sequence of segments.
type Journey struct {
	Origin      network.Station `json:"origin"`
	Destination network.Station `json:"destination"`
	Segments    []Segment       `json:"segments"`
	TotalStops  int             `json:"total_stops"`
	Changes     int             `json:"changes"`
}

// NewJourney derives the journey endpoints and totals from segs.
// segs must not be empty.
func NewJourney(segs []Segment) Journey {
	j := Journey{
		Origin:      segs[0].Origin,
		Destination: segs[len(segs)-1].Destination,
		Segments:    segs,
		Changes:     len(segs) - 1,
	}
	for _, s := range segs {
		j.TotalStops += s.Stops
	}
	return j
}

// Reconstruct walks the node at leaf back to the root and returns its
// segments in travel order. Consecutive hops on the same line are merged.
func Reconstruct(g *Graph, arena Arena, leaf int) []Segment {
	// built back to front: rev[len(rev)-1] is the earliest segment so far
	var rev []Segment
	for i := leaf; arena[i].Parent >= 0; i = arena[i].Parent {
		n := arena[i]
		from := g.Station(arena[n.Parent].Station)
		if len(rev) > 0 && rev[len(rev)-1].Line == n.LineName {
			front := &rev[len(rev)-1]
			front.Origin = from
			front.Stops++
			continue
		}
		rev = append(rev, Segment{
			Origin:      from,
			Destination: g.Station(n.Station),
			LineID:      n.LineID,
			Line:        n.LineName,
			Stops:       1,
		})
	}
	slices.Reverse(rev)
	return rev
}

// Rank sorts journeys by ascending changes, then ascending total stops.
// Ties keep discovery order.
func Rank(journeys []Journey) {
	slices.SortStableFunc(journeys, func(a, b Journey) int {
		if a.Changes != b.Changes {
			return a.Changes - b.Changes
		}
		return a.TotalStops - b.TotalStops
	})
}
