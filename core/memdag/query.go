package memdag

import (
	"github.com/gammazero/deque"
	"github.com/lunfardo314/txdag/ledger"
	"github.com/lunfardo314/txdag/util"
	"github.com/lunfardo314/txdag/util/set"
)

// TransactionIDs all ids in ascending order
func (g *Graph) TransactionIDs() []ledger.TransactionID {
	return util.KeysSorted(g.vertices)
}

// ForEach traverses all transactions in ascending order of ids until fun returns false.
// The callback must not modify the transaction
func (g *Graph) ForEach(fun func(tx *ledger.Transaction) bool) {
	for _, id := range g.TransactionIDs() {
		if !fun(g.vertices[id]) {
			return
		}
	}
}

// PastCone returns ids of the transaction and all its ancestors in breadth-first order.
// Returns nil if transaction is not in the graph
func (g *Graph) PastCone(id ledger.TransactionID) []ledger.TransactionID {
	if !g.contains(id) {
		return nil
	}
	visited := set.New[ledger.TransactionID](id)
	ret := make([]ledger.TransactionID, 0)

	queue := new(deque.Deque[ledger.TransactionID])
	queue.PushBack(id)
	for queue.Len() > 0 {
		cur := queue.PopFront()
		ret = append(ret, cur)

		tx := g.mustGet(cur)
		if tx.Parents == nil {
			continue
		}
		for _, parent := range []ledger.TransactionID{tx.Parents.Left, tx.Parents.Right} {
			if visited.Insert(parent) > 0 {
				queue.PushBack(parent)
			}
		}
	}
	return ret
}
