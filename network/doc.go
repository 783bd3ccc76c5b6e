/*
Package network holds the reference data of a fixed-route transit network:
stations, lines with their ordered stops, and the adjacent-stop connections
derived from them.

A Network is immutable once built and serves as both collaborators the
planner consumes:

	net, err := network.New(stations, lines)
	if err != nil {
	    log.Fatal(err)
	}

	conns, _ := net.Connections(ctx)          // ConnectionSource
	st, ok, _ := net.Station(ctx, "abc")      // StationLookup, case-insensitive

# Sources

Networks are usually produced by the gtfs package from a GTFS static feed.
Small or hand-maintained networks can be described in YAML:

	stations:
	  - code: A
	    name: Alpha
	  - code: B
	    name: Bravo
	lines:
	  - id: R1
	    name: Red
	    stops: [A, B]

Parsed networks can be written to a gob snapshot so later starts skip the
feed parsing entirely (see SerializeNetwork and DeserializeNetwork).
*/
package network
