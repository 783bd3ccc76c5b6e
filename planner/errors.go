package planner

import (
	"errors"
	"fmt"
)

var (
	// ErrStationNotFound matches StationNotFoundError via errors.Is.
	ErrStationNotFound = errors.New("planner: station not found")

	// ErrNoConnectionsFromStation matches NoConnectionsError via errors.Is.
	ErrNoConnectionsFromStation = errors.New("planner: no connections from station")
)

// StationNotFoundError reports a code that does not resolve to a station.
type StationNotFoundError struct{ Code string }

func (e *StationNotFoundError) Error() string {
	return fmt.Sprintf("planner: station not found: %s", e.Code)
}

// Is reports whether target is ErrStationNotFound.
func (e *StationNotFoundError) Is(target error) bool { return target == ErrStationNotFound }

// NoConnectionsError reports an origin station without any edge in the graph.
// It indicates a data problem rather than an absence of routes.
type NoConnectionsError struct{ Code string }

func (e *NoConnectionsError) Error() string {
	return fmt.Sprintf("planner: no connections from station: %s", e.Code)
}

// Is reports whether target is ErrNoConnectionsFromStation.
func (e *NoConnectionsError) Is(target error) bool { return target == ErrNoConnectionsFromStation }
