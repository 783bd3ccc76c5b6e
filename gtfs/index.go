package gtfs

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/theoremus-urban-solutions/journey-planner/network"
)

// ErrMissingFile is returned when a feed lacks one of the files the index needs.
var ErrMissingFile = errors.New("gtfs: required file missing from feed")

// requiredFiles must all be present in a feed.
var requiredFiles = []string{"stops.txt", "trips.txt", "stop_times.txt"}

// maxParentDepth bounds parent_station chains (platform -> station -> area).
const maxParentDepth = 4

type stop struct {
	code   string
	name   string
	parent string
}

type route struct {
	shortName string
	longName  string
}

// Index stores the GTFS static data needed to derive a transit network.
type Index struct {
	agencyName  string              // agency_name of the first agency
	stops       map[string]stop     // stop_id -> stop
	routes      map[string]route    // route_id -> names
	tripToRoute map[string]string   // trip_id -> route_id
	tripStopSeq map[string][]string // trip_id -> ordered stop_ids
	seenFiles   map[string]bool     // lower-cased file names consumed
}

// NewIndex creates an empty index.
func NewIndex() *Index {
	return &Index{
		stops:       map[string]stop{},
		routes:      map[string]route{},
		tripToRoute: map[string]string{},
		tripStopSeq: map[string][]string{},
		seenFiles:   map[string]bool{},
	}
}

// Accessor methods

func (g *Index) AgencyName() string { return g.agencyName }

func (g *Index) StopName(stopID string) string { return g.stops[stopID].name }

func (g *Index) RouteIDForTrip(tripID string) string { return g.tripToRoute[tripID] }

// TripStopSequence returns the stop_ids of a trip ordered by stop_sequence.
func (g *Index) TripStopSequence(tripID string) []string {
	return append([]string(nil), g.tripStopSeq[tripID]...)
}

// RouteName returns route_short_name, else route_long_name, else routeID.
func (g *Index) RouteName(routeID string) string {
	r := g.routes[routeID]
	switch {
	case r.shortName != "":
		return r.shortName
	case r.longName != "":
		return r.longName
	default:
		return routeID
	}
}

func (g *Index) StopCount() int { return len(g.stops) }

func (g *Index) RouteCount() int { return len(g.routes) }

func (g *Index) TripCount() int { return len(g.tripStopSeq) }

// validate reports the first required file that was not consumed.
func (g *Index) validate() error {
	for _, name := range requiredFiles {
		if !g.seenFiles[name] {
			return fmt.Errorf("%w: %s", ErrMissingFile, name)
		}
	}
	return nil
}

// rootStop follows parent_station links to the top-level stop.
func (g *Index) rootStop(stopID string) string {
	for range maxParentDepth {
		s, ok := g.stops[stopID]
		if !ok || s.parent == "" {
			return stopID
		}
		if _, ok := g.stops[s.parent]; !ok {
			return stopID
		}
		stopID = s.parent
	}
	return stopID
}

// stationCode is stop_code when present, stop_id otherwise.
func (g *Index) stationCode(stopID string) string {
	if s, ok := g.stops[stopID]; ok && s.code != "" {
		return network.NormalizeCode(s.code)
	}
	return network.NormalizeCode(stopID)
}

// Network derives a transit network from the index.
//
// Every top-level stop becomes a station; child stops (platforms) are folded
// into their parent so they act as one interchange. Each distinct stop
// pattern of a route becomes one line named after the route. Trips are
// visited in trip_id order so the result is deterministic.
func (g *Index) Network() (*network.Network, error) {
	stopIDs := make([]string, 0, len(g.stops))
	for id := range g.stops {
		stopIDs = append(stopIDs, id)
	}
	sort.Strings(stopIDs)

	// stop_id -> station code, shared by stops with the same stop_code
	codeOf := make(map[string]string, len(stopIDs))
	stations := make([]network.Station, 0, len(stopIDs))
	seen := make(map[string]bool, len(stopIDs))
	for _, id := range stopIDs {
		root := g.rootStop(id)
		code := g.stationCode(root)
		codeOf[id] = code
		if root != id || seen[code] {
			continue
		}
		seen[code] = true
		name := g.stops[root].name
		if name == "" {
			name = code
		}
		stations = append(stations, network.Station{Code: code, Name: name})
	}

	tripIDs := make([]string, 0, len(g.tripStopSeq))
	for id := range g.tripStopSeq {
		tripIDs = append(tripIDs, id)
	}
	sort.Strings(tripIDs)

	var lines []network.Line
	seenPattern := map[string]bool{}
	perRoute := map[string]int{}
	for _, tripID := range tripIDs {
		routeID, ok := g.tripToRoute[tripID]
		if !ok {
			continue
		}
		for _, pattern := range g.patterns(tripID, codeOf) {
			if len(pattern) < 2 {
				continue
			}
			key := routeID + "\x00" + strings.Join(pattern, "\x00")
			if seenPattern[key] {
				continue
			}
			seenPattern[key] = true
			perRoute[routeID]++
			lines = append(lines, network.Line{
				ID:    routeID + ":" + strconv.Itoa(perRoute[routeID]),
				Name:  g.RouteName(routeID),
				Stops: pattern,
			})
		}
	}

	n, err := network.New(stations, lines)
	if err != nil {
		return nil, fmt.Errorf("gtfs: build network: %w", err)
	}
	return n, nil
}

// patterns maps a trip's stops to station codes and collapses consecutive
// repeats, which occur when two platforms of one station follow each other.
// A stop missing from stops.txt breaks the trip into separate runs so its
// neighbours are never joined by a hop the vehicle does not make.
func (g *Index) patterns(tripID string, codeOf map[string]string) [][]string {
	var runs [][]string
	var cur []string
	for _, stopID := range g.tripStopSeq[tripID] {
		code, ok := codeOf[stopID]
		if !ok {
			if len(cur) > 0 {
				runs = append(runs, cur)
				cur = nil
			}
			continue
		}
		if len(cur) > 0 && cur[len(cur)-1] == code {
			continue
		}
		cur = append(cur, code)
	}
	if len(cur) > 0 {
		runs = append(runs, cur)
	}
	return runs
}
