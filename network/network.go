package network

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrDuplicateStation is returned when two stations share a code.
	ErrDuplicateStation = errors.New("network: duplicate station code")

	// ErrUnknownStop is returned when a line visits a code with no station.
	ErrUnknownStop = errors.New("network: line references unknown station")

	// ErrShortLine is returned for lines with fewer than two stops.
	ErrShortLine = errors.New("network: line needs at least two stops")
)

// Network is an immutable in-memory transit network.
//
// Thread safety: safe for concurrent use once constructed.
type Network struct {
	stations    []Station
	lines       []Line
	byCode      map[string]Station
	connections []Connection
}

// New validates stations and lines and derives the adjacent-stop connections.
// Station codes are normalized; lines keep their given order so the derived
// connection list is deterministic.
func New(stations []Station, lines []Line) (*Network, error) {
	n := &Network{
		stations: make([]Station, 0, len(stations)),
		lines:    make([]Line, 0, len(lines)),
		byCode:   make(map[string]Station, len(stations)),
	}
	for _, s := range stations {
		s.Code = NormalizeCode(s.Code)
		if _, dup := n.byCode[s.Code]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateStation, s.Code)
		}
		n.byCode[s.Code] = s
		n.stations = append(n.stations, s)
	}
	for _, l := range lines {
		if len(l.Stops) < 2 {
			return nil, fmt.Errorf("%w: line %s", ErrShortLine, l.ID)
		}
		if l.Name == "" {
			l.Name = l.ID
		}
		stops := make([]string, len(l.Stops))
		for i, code := range l.Stops {
			code = NormalizeCode(code)
			if _, ok := n.byCode[code]; !ok {
				return nil, fmt.Errorf("%w: line %s stop %s", ErrUnknownStop, l.ID, code)
			}
			stops[i] = code
		}
		l.Stops = stops
		n.lines = append(n.lines, l)
		for i := 0; i+1 < len(stops); i++ {
			n.connections = append(n.connections, Connection{
				From:         n.byCode[stops[i]],
				To:           n.byCode[stops[i+1]],
				LineID:       l.ID,
				LineName:     l.Name,
				FromPosition: i + 1,
				ToPosition:   i + 2,
			})
		}
	}
	return n, nil
}

// Connections returns a copy of the derived connection list.
func (n *Network) Connections(_ context.Context) ([]Connection, error) {
	out := make([]Connection, len(n.connections))
	copy(out, n.connections)
	return out, nil
}

// Station looks up a station by code, ignoring case.
func (n *Network) Station(_ context.Context, code string) (Station, bool, error) {
	s, ok := n.byCode[NormalizeCode(code)]
	return s, ok, nil
}

// Stations returns the stations in insertion order.
func (n *Network) Stations() []Station {
	out := make([]Station, len(n.stations))
	copy(out, n.stations)
	return out
}

// Lines returns the lines in insertion order.
func (n *Network) Lines() []Line {
	out := make([]Line, len(n.lines))
	copy(out, n.lines)
	return out
}

// StationCount returns the number of stations.
func (n *Network) StationCount() int { return len(n.stations) }

// ConnectionCount returns the number of derived connections.
func (n *Network) ConnectionCount() int { return len(n.connections) }
