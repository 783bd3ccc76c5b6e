package planner

import "log/slog"

// Default search and result settings.
const (
	DefaultMaxDepth       = 40
	DefaultMaxIterations  = 200000
	DefaultOversample     = 5
	DefaultResultCount    = 3
	DefaultMaxResultCount = 10
)

// Options configures a Planner. Zero fields take the package defaults.
type Options struct {
	// MaxDepth bounds journeys to this many stops.
	MaxDepth int

	// MaxIterations bounds the frontier pops of one search.
	MaxIterations int

	// Oversample multiplies the requested result count to get the number of
	// raw destination leaves collected before ranking.
	Oversample int

	// DefaultResults is used when a request asks for zero or fewer results.
	DefaultResults int

	// MaxResults clamps larger requests.
	MaxResults int

	// Logger receives debug output for each plan. Defaults to slog.Default().
	Logger *slog.Logger
}

// DefaultOptions returns Options populated with the package defaults.
func DefaultOptions() Options {
	return Options{
		MaxDepth:       DefaultMaxDepth,
		MaxIterations:  DefaultMaxIterations,
		Oversample:     DefaultOversample,
		DefaultResults: DefaultResultCount,
		MaxResults:     DefaultMaxResultCount,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.MaxDepth <= 0 {
		o.MaxDepth = d.MaxDepth
	}
	if o.MaxIterations <= 0 {
		o.MaxIterations = d.MaxIterations
	}
	if o.Oversample <= 0 {
		o.Oversample = d.Oversample
	}
	if o.MaxResults <= 0 {
		o.MaxResults = d.MaxResults
	}
	if o.DefaultResults <= 0 {
		o.DefaultResults = d.DefaultResults
	}
	o.DefaultResults = min(o.DefaultResults, o.MaxResults)
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}

// ResultCount maps a requested result count into [1, MaxResults].
func (o Options) ResultCount(n int) int {
	o = o.withDefaults()
	if n <= 0 {
		return o.DefaultResults
	}
	return min(n, o.MaxResults)
}
