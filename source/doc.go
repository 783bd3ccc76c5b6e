// Package source loads the transit network from its configured dataset and
// keeps it current.
//
// Load reads a GTFS zip, a YAML network file or a gob snapshot. Dataset holds
// the loaded network behind an atomic pointer and serves it to the planner
// through the network.ConnectionSource and network.StationLookup interfaces.
// Reload swaps in a freshly loaded network and notifies listeners, which is
// how the journey cache learns that its entries are stale. Watcher triggers
// Reload when the dataset file changes on disk.
package source
