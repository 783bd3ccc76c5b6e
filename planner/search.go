package planner

// Budget bounds the work of a single enumeration.
type Budget struct {
	// MaxDepth is the deepest node (in stops from the origin) that is still
	// considered. Deeper nodes are dropped when popped.
	MaxDepth int

	// MaxIterations caps the number of frontier pops.
	MaxIterations int

	// MaxLeaves stops the search once this many destination leaves are found.
	MaxLeaves int
}

// Node is a search-tree node. Parent is the arena index of the parent node,
// or -1 for the root. The root has no arriving line.
type Node struct {
	Station  string
	LineID   string
	LineName string
	Depth    int
	Parent   int
}

// Arena is the flat table of search nodes of one enumeration.
type Arena []Node

// SearchResult is the outcome of Enumerate.
type SearchResult struct {
	Arena Arena

	// Leaves are arena indices of nodes at the destination, in discovery order.
	Leaves []int

	Iterations int

	// Truncated reports that a budget, not an empty frontier, ended the search.
	Truncated bool
}

// visitKey identifies a station reached on a given line.
type visitKey struct {
	station string
	line    string
}

// walker encapsulates mutable search state.
type walker struct {
	graph  *Graph
	dest   string
	budget Budget
	arena  Arena
	queue  []int
	head   int
	seen   map[visitKey]int
	res    *SearchResult
}

// Enumerate runs a bounded breadth-first search from origin and collects
// every node at which dest is reached. Visited state is keyed on
// (station, arriving line name); a key is enqueued again only when it is
// reached at a strictly smaller depth than recorded.
//
// Returns a NoConnectionsError when origin has no outgoing edge.
func Enumerate(g *Graph, origin, dest string, b Budget) (*SearchResult, error) {
	if len(g.Edges(origin)) == 0 {
		return nil, &NoConnectionsError{Code: origin}
	}
	w := &walker{
		graph:  g,
		dest:   dest,
		budget: b,
		arena:  make(Arena, 0, 64),
		queue:  make([]int, 0, 64),
		seen:   make(map[visitKey]int),
		res:    &SearchResult{},
	}
	w.enqueue(Node{Station: origin, Depth: 0, Parent: -1})
	w.loop()
	w.res.Arena = w.arena
	return w.res, nil
}

func (w *walker) enqueue(n Node) {
	w.arena = append(w.arena, n)
	w.queue = append(w.queue, len(w.arena)-1)
}

// loop pops the frontier until it is empty or a budget is spent.
func (w *walker) loop() {
	for w.head < len(w.queue) {
		if w.res.Iterations >= w.budget.MaxIterations || len(w.res.Leaves) >= w.budget.MaxLeaves {
			w.res.Truncated = true
			return
		}
		w.res.Iterations++

		idx := w.queue[w.head]
		w.head++
		n := w.arena[idx]

		if n.Depth > w.budget.MaxDepth {
			continue
		}
		if n.Station == w.dest {
			w.res.Leaves = append(w.res.Leaves, idx)
			continue
		}
		w.expand(idx, n)
	}
}

// expand enqueues the children of the node at idx.
func (w *walker) expand(idx int, n Node) {
	next := n.Depth + 1
	for _, e := range w.graph.Edges(n.Station) {
		k := visitKey{station: e.To, line: e.LineName}
		if d, ok := w.seen[k]; ok && d <= next {
			continue
		}
		w.seen[k] = next
		w.enqueue(Node{Station: e.To, LineID: e.LineID, LineName: e.LineName, Depth: next, Parent: idx})
	}
}
