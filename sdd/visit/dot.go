package visit

import (
	"fmt"

	"github.com/emicklei/dot"

	"github.com/gosdd/gosdd/order"
	"github.com/gosdd/gosdd/sdd"
)

// RenderDOT builds a Graphviz graph for s using github.com/emicklei/dot,
// sharing one graph node per canonical SDD node (so a diagram with
// extensive sharing renders as the DAG it actually is, not an unrolled
// tree). This implements the "DOT rendering traverses ... via the visit
// contract" provided-interface from spec.md §6; it is inspection
// tooling for gosddctl, not a reimplementation of the excluded example
// applications.
func RenderDOT[Id comparable](s sdd.SDD, o *order.Order[Id]) *dot.Graph {
	g := dot.NewGraph(dot.Directed)
	nodes := make(map[sdd.SDD]dot.Node)
	render(g, s, o, nodes)
	return g
}

func render[Id comparable](g *dot.Graph, s sdd.SDD, o *order.Order[Id], nodes map[sdd.SDD]dot.Node) dot.Node {
	if n, ok := nodes[s]; ok {
		return n
	}

	var n dot.Node
	switch {
	case s.IsZero():
		n = g.Node(fmt.Sprintf("n%d", len(nodes))).Label("0").Attr("shape", "square")
	case s.IsOne():
		n = g.Node(fmt.Sprintf("n%d", len(nodes))).Label("1").Attr("shape", "square")
	case s.IsFlat():
		label := "flat"
		if id, err := o.Identifier(); err == nil {
			label = fmt.Sprintf("%v", id)
		}
		n = g.Node(fmt.Sprintf("n%d", len(nodes))).Label(label)
		nodes[s] = n
		next, _ := o.Next()
		for _, arc := range s.FlatArcs() {
			succ := render(g, arc.Successor, next, nodes)
			g.Edge(n, succ).Label(fmt.Sprintf("%d elems", arc.Values.Size()))
		}
		return n
	case s.IsHierarchical():
		label := "hier"
		if id, err := o.Identifier(); err == nil {
			label = fmt.Sprintf("%v", id)
		}
		n = g.Node(fmt.Sprintf("n%d", len(nodes))).Label(label).Attr("shape", "doubleoctagon")
		nodes[s] = n
		next, _ := o.Next()
		nested, _ := o.Nested()
		for _, arc := range s.HierArcs() {
			nestedNode := render(g, arc.Nested, nested, nodes)
			succ := render(g, arc.Successor, next, nodes)
			g.Edge(n, nestedNode).Attr("style", "dashed")
			g.Edge(n, succ)
		}
		return n
	}
	nodes[s] = n
	return n
}
