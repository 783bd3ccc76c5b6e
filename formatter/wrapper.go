package formatter

import (
	"time"

	"github.com/theoremus-urban-solutions/journey-planner/network"
	"github.com/theoremus-urban-solutions/journey-planner/planner"
)

// PlanResponse is the envelope returned for a journey request.
type PlanResponse struct {
	Origin      network.Station   `json:"origin"`
	Destination network.Station   `json:"destination"`
	Journeys    []planner.Journey `json:"journeys"`
	GeneratedAt string            `json:"generated_at"`
}

// WrapPlanResponse builds the envelope for journeys planned between origin
// and destination. A nil journey list is reported as empty.
func WrapPlanResponse(origin, destination network.Station, journeys []planner.Journey, at time.Time) *PlanResponse {
	if journeys == nil {
		journeys = []planner.Journey{}
	}
	return &PlanResponse{
		Origin:      origin,
		Destination: destination,
		Journeys:    journeys,
		GeneratedAt: at.UTC().Format(time.RFC3339),
	}
}
