package converters

import (
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/avgdist/core"
)

// ToGonum copies g into a gonum undirected simple graph. Every vertex in
// [0, VertexCount()) becomes a node with the same ID, isolated ones included.
// Complexity: O(V + E).
func ToGonum(g *core.Graph) *simple.UndirectedGraph {
	out := simple.NewUndirectedGraph()
	if g == nil {
		return out
	}
	for v := 0; v < g.VertexCount(); v++ {
		out.AddNode(simple.Node(v))
	}
	for u := 0; u < g.VertexCount(); u++ {
		for _, v := range g.AdjacentTo(u) {
			// each undirected edge is listed from both ends; keep u < v
			if u < v {
				out.SetEdge(simple.Edge{F: simple.Node(u), T: simple.Node(v)})
			}
		}
	}
	return out
}
