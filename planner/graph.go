package planner

import "github.com/theoremus-urban-solutions/journey-planner/network"

// Edge is an outgoing hop of the graph.
type Edge struct {
	To       string
	LineID   string
	LineName string
}

// Graph maps a station code to its outgoing edges in insertion order.
// It is read-only after BuildGraph returns.
type Graph struct {
	adj   map[string][]Edge
	names map[string]string
}

// BuildGraph converts connections into an adjacency structure. For every
// connection both the forward edge and a reverse edge with the same line are
// inserted, so lines can be ridden in either direction.
func BuildGraph(conns []network.Connection) *Graph {
	g := &Graph{
		adj:   make(map[string][]Edge),
		names: make(map[string]string),
	}
	for _, c := range conns {
		g.adj[c.From.Code] = append(g.adj[c.From.Code], Edge{To: c.To.Code, LineID: c.LineID, LineName: c.LineName})
		g.adj[c.To.Code] = append(g.adj[c.To.Code], Edge{To: c.From.Code, LineID: c.LineID, LineName: c.LineName})
		g.names[c.From.Code] = c.From.Name
		g.names[c.To.Code] = c.To.Name
	}
	return g
}

// Edges returns the outgoing edges of code. The slice must not be modified.
func (g *Graph) Edges(code string) []Edge { return g.adj[code] }

// Station returns the station for code as seen on the connections.
func (g *Graph) Station(code string) network.Station {
	return network.Station{Code: code, Name: g.names[code]}
}

// StationCount returns the number of stations with at least one edge.
func (g *Graph) StationCount() int { return len(g.adj) }

// EdgeCount returns the number of directed edges.
func (g *Graph) EdgeCount() int {
	n := 0
	for _, edges := range g.adj {
		n += len(edges)
	}
	return n
}
