package memdag

import (
	"fmt"

	"github.com/lunfardo314/txdag/ledger"
)

// Summary contains graph-wide metrics. It is updated only by Graph.Add.
// Both ids are unset until the first transaction is added
type Summary struct {
	lastTransaction               ledger.TransactionID
	lastTransactionSet            bool
	mostInReferenceTransaction    ledger.TransactionID
	mostInReferenceTransactionSet bool
}

// parentSnapshot is id and metrics of the parent taken right after increment of its in-reference counter
type parentSnapshot struct {
	id      ledger.TransactionID
	metrics ledger.Metrics
}

// LastTransaction the transaction with the largest timestamp. On equal timestamps the earliest admitted wins
func (s Summary) LastTransaction() (ledger.TransactionID, bool) {
	return s.lastTransaction, s.lastTransactionSet
}

// MostInReferenceTransaction the transaction with the largest in-reference counter.
// On equal counters the one which reached the value first wins
func (s Summary) MostInReferenceTransaction() (ledger.TransactionID, bool) {
	return s.mostInReferenceTransaction, s.mostInReferenceTransactionSet
}

func (s Summary) String() string {
	return fmt.Sprintf("last transaction: %s, most referenced transaction: %s",
		optionalIDString(s.LastTransaction()), optionalIDString(s.MostInReferenceTransaction()))
}

func optionalIDString(id ledger.TransactionID, set bool) string {
	if !set {
		return "<none>"
	}
	return id.String()
}

// updateLastTransaction replaces the last transaction only when the new timestamp is strictly greater
func (g *Graph) updateLastTransaction(tx *ledger.Transaction) {
	if !g.summary.lastTransactionSet || g.mustGet(g.summary.lastTransaction).Timestamp < tx.Timestamp {
		g.summary.lastTransaction = tx.ID
		g.summary.lastTransactionSet = true
	}
}

// updateMostInReferenceTransaction replaces the most referenced transaction only when the counter of the
// snapshot is strictly greater than the current counter of the recorded transaction
func (g *Graph) updateMostInReferenceTransaction(snap parentSnapshot) {
	if !g.summary.mostInReferenceTransactionSet ||
		g.mustGet(g.summary.mostInReferenceTransaction).Metrics.InReference < snap.metrics.InReference {
		g.summary.mostInReferenceTransaction = snap.id
		g.summary.mostInReferenceTransactionSet = true
	}
}
