package network

import (
	"context"
	"strings"
)

// Station is a stop of the network identified by a stable code.
type Station struct {
	Code string `json:"code" yaml:"code" validate:"required"`
	Name string `json:"name" yaml:"name" validate:"required"`
}

// Line is a named service route visiting Stops (station codes) in order.
type Line struct {
	ID    string   `json:"id" yaml:"id" validate:"required"`
	Name  string   `json:"name" yaml:"name"`
	Stops []string `json:"stops" yaml:"stops" validate:"min=2,dive,required"`
}

// Connection is a direct hop between two adjacent stops of a line.
// FromPosition and ToPosition are 1-based stop positions on the line.
type Connection struct {
	From         Station
	To           Station
	LineID       string
	LineName     string
	FromPosition int
	ToPosition   int
}

// ConnectionSource supplies the full list of station-to-station connections.
type ConnectionSource interface {
	Connections(ctx context.Context) ([]Connection, error)
}

// StationLookup resolves a station code. The bool result reports whether the
// station exists; the error is reserved for failures of the lookup itself.
type StationLookup interface {
	Station(ctx context.Context, code string) (Station, bool, error)
}

// NormalizeCode trims and upper-cases a station code.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
