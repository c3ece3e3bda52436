package memdag

import (
	"github.com/lunfardo314/txdag/ledger"
	"github.com/lunfardo314/txdag/util"
)

// Graph is the in-memory DAG of transactions.
// Transactions are only appended. The only mutation of an admitted transaction is increment of its
// in-reference counter when it is referenced by a new transaction.
// Graph is not thread safe: it must be owned by a single writer
type Graph struct {
	// capacityHint is used only to pre-size the map of vertices. It is not a limit
	capacityHint int
	vertices     map[ledger.TransactionID]*ledger.Transaction
	summary      Summary
}

// New creates graph with the root transaction. The map is pre-allocated for capacityHint
// non-root transactions. Negative capacity hint is treated as 0
func New(capacityHint int) *Graph {
	if capacityHint < 0 {
		capacityHint = 0
	}
	ret := &Graph{
		capacityHint: capacityHint,
		vertices:     make(map[ledger.TransactionID]*ledger.Transaction, capacityHint+1),
	}
	ret.commit(ledger.RootTransaction())
	return ret
}

func (g *Graph) contains(id ledger.TransactionID) bool {
	_, found := g.vertices[id]
	return found
}

// commit stores copy of the transaction unconditionally
func (g *Graph) commit(tx *ledger.Transaction) {
	g.vertices[tx.ID] = tx.Clone()
}

// mustGet is used only for ids which are known to be in the graph
func (g *Graph) mustGet(id ledger.TransactionID) *ledger.Transaction {
	ret, found := g.vertices[id]
	util.Assertf(found, "memdag: transaction %d must exist in the graph", id)
	return ret
}

// Size number of transactions including the root
func (g *Graph) Size() int {
	return len(g.vertices)
}

// Get returns copy of the transaction
func (g *Graph) Get(id ledger.TransactionID) (ledger.Transaction, bool) {
	tx, found := g.vertices[id]
	if !found {
		return ledger.Transaction{}, false
	}
	return *tx.Clone(), true
}

// Contains checks if transaction with the id is in the graph
func (g *Graph) Contains(id ledger.TransactionID) bool {
	return g.contains(id)
}

// Summary returns last and most referenced transactions seen so far
func (g *Graph) Summary() Summary {
	return g.summary
}

// CapacityHint is the advisory size the graph was created with
func (g *Graph) CapacityHint() int {
	return g.capacityHint
}
