package memdag

import (
	"fmt"

	"github.com/lunfardo314/txdag/ledger"
)

// Add validates the transaction and admits it into the graph:
//   - increments in-reference counters of both parents, left first
//   - sets metrics of the transaction (also in the tx passed by the caller): depth, zero in-reference
//   - updates the summary
//
// On error nothing in the graph is changed
func (g *Graph) Add(tx *ledger.Transaction) error {
	if err := g.checkBeforeAdd(tx); err != nil {
		return err
	}
	g.updateMetrics(tx)
	g.commit(tx)
	return nil
}

func (g *Graph) checkBeforeAdd(tx *ledger.Transaction) error {
	if g.contains(tx.ID) {
		return &DuplicatedIDError{ID: tx.ID}
	}
	if tx.Parents == nil {
		return ErrParentNotSpecified
	}
	if !g.contains(tx.Parents.Left) {
		return fmt.Errorf("%w: left parent %d of %d", ErrParentNotFound, tx.Parents.Left, tx.ID)
	}
	if !g.contains(tx.Parents.Right) {
		return fmt.Errorf("%w: right parent %d of %d", ErrParentNotFound, tx.Parents.Right, tx.ID)
	}
	return nil
}

// updateMetrics is called only after checkBeforeAdd, so both parents must exist.
// When left and right is the same transaction, it is incremented twice and the right snapshot
// includes both increments
func (g *Graph) updateMetrics(tx *ledger.Transaction) {
	left := g.mustGet(tx.Parents.Left)
	left.Metrics.InReference++
	leftSnapshot := parentSnapshot{id: left.ID, metrics: left.Metrics}

	right := g.mustGet(tx.Parents.Right)
	right.Metrics.InReference++
	rightSnapshot := parentSnapshot{id: right.ID, metrics: right.Metrics}

	tx.Metrics = ledger.Metrics{
		Depth: min(leftSnapshot.metrics.Depth, rightSnapshot.metrics.Depth) + 1,
	}

	g.updateLastTransaction(tx)
	g.updateMostInReferenceTransaction(leftSnapshot)
	g.updateMostInReferenceTransaction(rightSnapshot)
}
