package planner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/theoremus-urban-solutions/journey-planner/network"
)

// JourneyPlanner is the Plan entry point shared by Planner and Cache.
type JourneyPlanner interface {
	Plan(ctx context.Context, originCode, destinationCode string, resultCount int) ([]Journey, error)
}

// Planner computes journeys from its two data collaborators. It holds no
// per-request state.
type Planner struct {
	connections network.ConnectionSource
	stations    network.StationLookup
	opts        Options
	log         *slog.Logger
}

// New creates a Planner. Zero option fields take the package defaults.
func New(connections network.ConnectionSource, stations network.StationLookup, opts Options) *Planner {
	opts = opts.withDefaults()
	return &Planner{
		connections: connections,
		stations:    stations,
		opts:        opts,
		log:         opts.Logger,
	}
}

// Options returns the effective options.
func (p *Planner) Options() Options { return p.opts }

// Plan returns up to resultCount journeys from originCode to destinationCode,
// ordered by changes then stops. Codes are case-insensitive. A request where
// both codes resolve to the same station yields an empty list.
//
// Errors: *StationNotFoundError for an unknown code (origin checked first),
// *NoConnectionsError when the origin has no edge, or a wrapped collaborator
// error.
func (p *Planner) Plan(ctx context.Context, originCode, destinationCode string, resultCount int) ([]Journey, error) {
	start := time.Now()
	journeys, outcome, err := p.plan(ctx, originCode, destinationCode, resultCount)
	planDuration.Observe(time.Since(start).Seconds())
	plansTotal.WithLabelValues(outcome).Inc()
	return journeys, err
}

func (p *Planner) plan(ctx context.Context, originCode, destinationCode string, resultCount int) ([]Journey, string, error) {
	n := p.opts.ResultCount(resultCount)

	origin, err := p.resolve(ctx, originCode)
	if err != nil {
		return nil, outcomeFor(err), err
	}
	dest, err := p.resolve(ctx, destinationCode)
	if err != nil {
		return nil, outcomeFor(err), err
	}
	if origin.Code == dest.Code {
		return []Journey{}, outcomeSameStation, nil
	}

	conns, err := p.connections.Connections(ctx)
	if err != nil {
		return nil, outcomeError, fmt.Errorf("planner: load connections: %w", err)
	}
	g := BuildGraph(conns)

	res, err := Enumerate(g, origin.Code, dest.Code, Budget{
		MaxDepth:      p.opts.MaxDepth,
		MaxIterations: p.opts.MaxIterations,
		MaxLeaves:     n * p.opts.Oversample,
	})
	if err != nil {
		return nil, outcomeFor(err), err
	}
	searchIterations.Observe(float64(res.Iterations))
	if res.Truncated {
		searchTruncated.Inc()
	}

	journeys := make([]Journey, 0, len(res.Leaves))
	for _, leaf := range res.Leaves {
		segs := Reconstruct(g, res.Arena, leaf)
		if len(segs) == 0 {
			continue
		}
		j := NewJourney(segs)
		j.Origin, j.Destination = origin, dest
		journeys = append(journeys, j)
	}
	Rank(journeys)
	if len(journeys) > n {
		journeys = journeys[:n]
	}

	p.log.Debug("journeys planned",
		slog.String("origin", origin.Code),
		slog.String("destination", dest.Code),
		slog.Int("requested", n),
		slog.Int("leaves", len(res.Leaves)),
		slog.Int("iterations", res.Iterations),
		slog.Int("arena_nodes", len(res.Arena)),
		slog.Bool("truncated", res.Truncated),
		slog.Int("journeys", len(journeys)),
	)
	return journeys, outcomeOK, nil
}

// resolve normalizes code and looks it up.
func (p *Planner) resolve(ctx context.Context, code string) (network.Station, error) {
	code = network.NormalizeCode(code)
	s, ok, err := p.stations.Station(ctx, code)
	if err != nil {
		return network.Station{}, fmt.Errorf("planner: lookup station %s: %w", code, err)
	}
	if !ok {
		return network.Station{}, &StationNotFoundError{Code: code}
	}
	return s, nil
}

func outcomeFor(err error) string {
	switch {
	case errors.Is(err, ErrStationNotFound):
		return outcomeNotFound
	case errors.Is(err, ErrNoConnectionsFromStation):
		return outcomeNoConnections
	default:
		return outcomeError
	}
}
