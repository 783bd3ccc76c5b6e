// Package planner finds and ranks journeys between two stations of a
// fixed-route transit network.
//
// The pipeline for a single request is:
//
//	connections -> BuildGraph -> Enumerate -> Reconstruct (per leaf) -> Rank -> top N
//
// BuildGraph turns the flat connection list into an adjacency structure with a
// reverse edge for every connection. Enumerate runs a bounded breadth-first
// search whose visited state is keyed on (station, arriving line), so a
// station reached again on a different line is explored again. Search nodes
// live in an Arena and point at their parent by index. Reconstruct walks a
// leaf back to the root and merges consecutive hops on the same line into one
// Segment. Rank orders journeys by changes, then by stops.
//
// Planner wires the pipeline to its two collaborators, a
// network.ConnectionSource and a network.StationLookup. Cache wraps any
// JourneyPlanner with single-flight memoization that lives until Invalidate.
//
// # Budgets
//
// The search is bounded by MaxDepth (stops per journey), MaxIterations
// (frontier pops) and a leaf cap of resultCount*Oversample. Hitting a budget
// is not an error: the journeys found so far are ranked and returned. The
// oversampling factor is a quality/performance knob and does not guarantee the
// globally best journeys on large networks.
//
// # Thread safety
//
// Planner and Cache are safe for concurrent use. Each Plan call builds its
// own graph, arena and visited table.
package planner
