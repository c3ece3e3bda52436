package ledger

import (
	"fmt"
	"strconv"
)

type (
	// TransactionID is a sequential identifier of the transaction in the DAG
	TransactionID uint32

	// Transaction is a vertex of the DAG. All transactions except the root reference exactly two parents,
	// possibly the same one twice. Metrics are placeholders until the transaction is admitted into the DAG
	Transaction struct {
		ID        TransactionID
		Timestamp uint32
		Parents   *Parents
		Metrics   Metrics
	}

	Parents struct {
		Left  TransactionID
		Right TransactionID
	}

	Metrics struct {
		// Depth is 0 for the root, otherwise min(depth(left), depth(right)) + 1 at the time of admission
		Depth uint32
		// InReference counts references from later admitted transactions, once per occurrence
		InReference uint32
	}

	// TxData is parents and timestamp of a non-root transaction, without the ID.
	// IDs are assigned by position when the DAG is built from a sequence of TxData
	TxData struct {
		Left      TransactionID
		Right     TransactionID
		Timestamp uint32
	}
)

const RootTransactionID = TransactionID(1)

// NewTransaction makes a non-root transaction with zero metrics
func NewTransaction(id, leftParent, rightParent TransactionID, timestamp uint32) *Transaction {
	return &Transaction{
		ID:        id,
		Timestamp: timestamp,
		Parents: &Parents{
			Left:  leftParent,
			Right: rightParent,
		},
	}
}

// RootTransaction returns new copy of the root transaction
func RootTransaction() *Transaction {
	return &Transaction{
		ID:        RootTransactionID,
		Timestamp: 0,
	}
}

func (d TxData) Transaction(id TransactionID) *Transaction {
	return NewTransaction(id, d.Left, d.Right, d.Timestamp)
}

func (id TransactionID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

func (tx *Transaction) IsRoot() bool {
	return tx.ID == RootTransactionID && tx.Parents == nil
}

// Clone returns deep copy
func (tx *Transaction) Clone() *Transaction {
	ret := *tx
	if tx.Parents != nil {
		p := *tx.Parents
		ret.Parents = &p
	}
	return &ret
}

func (m Metrics) String() string {
	return fmt.Sprintf("(depth=%d,in_reference=%d)", m.Depth, m.InReference)
}

func (tx *Transaction) String() string {
	if tx.Parents == nil {
		return fmt.Sprintf("- id=%d() info=(t=%d, metrics=%s)", tx.ID, tx.Timestamp, tx.Metrics.String())
	}
	return fmt.Sprintf("- id=%d(left=%d right=%d) info=(t=%d, metrics=%s)",
		tx.ID, tx.Parents.Left, tx.Parents.Right, tx.Timestamp, tx.Metrics.String())
}

// ShortString is used in logs
func (tx *Transaction) ShortString() string {
	if tx.Parents == nil {
		return fmt.Sprintf("%d(root)", tx.ID)
	}
	return fmt.Sprintf("%d(%d,%d)@%d", tx.ID, tx.Parents.Left, tx.Parents.Right, tx.Timestamp)
}
