// Package routegraph holds the undirected city adjacency structure and the
// shortest-path search over it. Edges are unweighted; every hop costs 1.
package routegraph

import "container/heap"

// Graph is an undirected adjacency list keyed by city name.
// It is not safe for concurrent use; the owning store serializes access.
type Graph struct {
	adjacency map[string][]string
}

// New creates an empty Graph.
func New() *Graph {
	return &Graph{adjacency: make(map[string][]string)}
}

// AddEdge connects a and b in both directions. Re-adding an existing edge is
// a no-op.
func (g *Graph) AddEdge(a, b string) {
	g.addNeighbor(a, b)
	g.addNeighbor(b, a)
}

func (g *Graph) addNeighbor(from, to string) {
	for _, n := range g.adjacency[from] {
		if n == to {
			return
		}
	}
	g.adjacency[from] = append(g.adjacency[from], to)
}

// Neighbors returns the adjacency list for name, or nil if unknown.
func (g *Graph) Neighbors(name string) []string {
	return g.adjacency[name]
}

// Has reports whether name appears in the graph.
func (g *Graph) Has(name string) bool {
	_, ok := g.adjacency[name]
	return ok
}

// frontierNode is a pending entry in the search frontier.
type frontierNode struct {
	name string
	cost int
	seq  int // insertion order, breaks cost ties deterministically
}

type frontier []frontierNode

func (f frontier) Len() int { return len(f) }
func (f frontier) Less(i, j int) bool {
	if f[i].cost != f[j].cost {
		return f[i].cost < f[j].cost
	}
	return f[i].seq < f[j].seq
}
func (f frontier) Swap(i, j int)      { f[i], f[j] = f[j], f[i] }
func (f *frontier) Push(x interface{}) { *f = append(*f, x.(frontierNode)) }
func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]
	return item
}

const unreachable = 1 << 30

// ShortestPath runs a uniform-cost search from start to end and returns the
// path in traversal order. known seeds the cost table; nodes first seen
// during relaxation start at infinite cost. The result is empty when either
// endpoint is absent from the graph or end cannot be reached; when start and
// end coincide the path is the single node.
func (g *Graph) ShortestPath(start, end string, known []string) []string {
	if !g.Has(start) || !g.Has(end) {
		return nil
	}

	costs := make(map[string]int, len(known))
	for _, name := range known {
		costs[name] = unreachable
	}
	parent := make(map[string]string)

	costs[start] = 0
	pq := &frontier{{name: start, cost: 0, seq: 0}}
	heap.Init(pq)
	seq := 1

	for pq.Len() > 0 {
		node := heap.Pop(pq).(frontierNode)
		if node.cost > costOf(costs, node.name) {
			continue // stale frontier entry
		}
		if node.name == end {
			break
		}

		for _, neighbor := range g.adjacency[node.name] {
			next := costOf(costs, node.name) + 1
			if next < costOf(costs, neighbor) {
				costs[neighbor] = next
				parent[neighbor] = node.name
				heap.Push(pq, frontierNode{name: neighbor, cost: next, seq: seq})
				seq++
			}
		}
	}

	if _, ok := parent[end]; !ok && start != end {
		return nil
	}

	var path []string
	for curr := end; curr != start; curr = parent[curr] {
		path = append(path, curr)
	}
	path = append(path, start)

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

func costOf(costs map[string]int, name string) int {
	if c, ok := costs[name]; ok {
		return c
	}
	return unreachable
}
