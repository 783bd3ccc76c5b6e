/*
Package gtfs loads GTFS static feeds and derives a transit network from them.

Only the files describing the network topology are read: agency.txt,
routes.txt, trips.txt, stops.txt and stop_times.txt. Times, calendars and
shapes are ignored.

# Basic Usage

Load from a local file and build the network:

	index, err := gtfs.NewIndexFromFile("gtfs.zip")
	if err != nil {
	    log.Fatal(err)
	}
	net, err := index.Network()

Load from raw bytes or an io.ReaderAt:

	index, err := gtfs.NewIndexFromBytes(gtfsZipBytes)

	file, _ := os.Open("gtfs.zip")
	defer file.Close()
	stat, _ := file.Stat()
	index, err := gtfs.NewIndexFromReader(file, stat.Size())

Download from a URL:

	index, err := gtfs.NewIndexFromURL(ctx, "https://example.org/gtfs.zip", nil)

# Network Derivation

  - Station code is stop_code, falling back to stop_id, upper-cased.
  - Stops with a parent_station are folded into the parent station.
  - Line name is route_short_name, else route_long_name, else route_id.
  - Each distinct stop pattern of a route becomes its own line, with
    ID "<route_id>:<n>". Both directions of a route share the route name
    and therefore count as the same line when planning.

Parse the feed once and keep the network in memory. Building it from a large
feed takes seconds.
*/
package gtfs
