package memdag

import (
	"fmt"
	"io"
	"os"

	"github.com/dominikbraun/graph"
	"github.com/dominikbraun/graph/draw"
	"github.com/lunfardo314/txdag/ledger"
	"github.com/lunfardo314/txdag/util"
)

var (
	fontsizeAttribute    = graph.VertexAttribute("fontsize", "10")
	simpleNodeAttributes = []func(*graph.VertexProperties){
		fontsizeAttribute,
		graph.VertexAttribute("colorscheme", "blues3"),
		graph.VertexAttribute("style", "filled"),
		graph.VertexAttribute("color", "2"),
		graph.VertexAttribute("fillcolor", "1"),
	}
	rootNodeAttributes = []func(*graph.VertexProperties){
		fontsizeAttribute,
		graph.VertexAttribute("shape", "box"),
		graph.VertexAttribute("colorscheme", "bugn9"),
		graph.VertexAttribute("style", "filled"),
		graph.VertexAttribute("color", "9"),
		graph.VertexAttribute("fillcolor", "1"),
	}
	lastTxAttribute       = graph.VertexAttribute("penwidth", "3")
	mostReferredAttribute = graph.VertexAttribute("fillcolor", "3")
)

func vertexName(id ledger.TransactionID) string {
	return id.String()
}

func (g *Graph) makeGraphNode(tx *ledger.Transaction, gr graph.Graph[string, string]) {
	var attr []func(*graph.VertexProperties)
	if tx.IsRoot() {
		attr = append(attr, rootNodeAttributes...)
	} else {
		attr = append(attr, simpleNodeAttributes...)
	}
	attr = append(attr, graph.VertexAttribute("xlabel", fmt.Sprintf("t=%d d=%d r=%d",
		tx.Timestamp, tx.Metrics.Depth, tx.Metrics.InReference)))

	if id, ok := g.summary.LastTransaction(); ok && id == tx.ID {
		attr = append(attr, lastTxAttribute)
	}
	if id, ok := g.summary.MostInReferenceTransaction(); ok && id == tx.ID {
		attr = append(attr, mostReferredAttribute)
	}
	err := gr.AddVertex(vertexName(tx.ID), attr...)
	util.AssertNoError(err)
}

// makeGraphEdges one edge per distinct parent. Double reference to the same parent is labeled 'x2'
func makeGraphEdges(tx *ledger.Transaction, gr graph.Graph[string, string]) {
	if tx.Parents == nil {
		return
	}
	id := vertexName(tx.ID)
	if tx.Parents.Left == tx.Parents.Right {
		err := gr.AddEdge(id, vertexName(tx.Parents.Left), graph.EdgeAttribute("label", "x2"))
		util.AssertNoError(err)
		return
	}
	err := gr.AddEdge(id, vertexName(tx.Parents.Left))
	util.AssertNoError(err)
	err = gr.AddEdge(id, vertexName(tx.Parents.Right), graph.EdgeAttribute("style", "dashed"))
	util.AssertNoError(err)
}

// MakeGraph makes graph of all transactions. Edges point from child to parent
func (g *Graph) MakeGraph() graph.Graph[string, string] {
	ret := graph.New(graph.StringHash, graph.Directed(), graph.Acyclic())

	g.ForEach(func(tx *ledger.Transaction) bool {
		g.makeGraphNode(tx, ret)
		return true
	})
	g.ForEach(func(tx *ledger.Transaction) bool {
		makeGraphEdges(tx, ret)
		return true
	})
	return ret
}

// MakeGraphPastCone makes graph of the transaction with all its ancestors.
// Returns error if the transaction is not in the graph
func (g *Graph) MakeGraphPastCone(id ledger.TransactionID) (graph.Graph[string, string], error) {
	cone := g.PastCone(id)
	if len(cone) == 0 {
		return nil, fmt.Errorf("MakeGraphPastCone: transaction %d not found", id)
	}
	ret := graph.New(graph.StringHash, graph.Directed(), graph.Acyclic())
	for _, vid := range cone {
		g.makeGraphNode(g.mustGet(vid), ret)
	}
	for _, vid := range cone {
		makeGraphEdges(g.mustGet(vid), ret)
	}
	return ret, nil
}

// WriteDOT writes graph in the DOT format
func WriteDOT(gr graph.Graph[string, string], w io.Writer) error {
	return draw.DOT(gr, w)
}

// SaveGraph saves the whole graph as DOT into the file <fname>.gv
func (g *Graph) SaveGraph(fname string) error {
	return saveDOT(g.MakeGraph(), fname)
}

// SaveGraphPastCone saves past cone of the transaction as DOT into the file <fname>.gv
func (g *Graph) SaveGraphPastCone(id ledger.TransactionID, fname string) error {
	gr, err := g.MakeGraphPastCone(id)
	if err != nil {
		return err
	}
	return saveDOT(gr, fname)
}

func saveDOT(gr graph.Graph[string, string], fname string) error {
	dotFile, err := os.Create(fname + ".gv")
	if err != nil {
		return err
	}
	if err = WriteDOT(gr, dotFile); err != nil {
		_ = dotFile.Close()
		return err
	}
	return dotFile.Close()
}
