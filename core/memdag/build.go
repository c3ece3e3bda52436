package memdag

import (
	"fmt"

	"github.com/lunfardo314/txdag/ledger"
)

// FirstNonRootID is the ID assigned to the first transaction by Build
const FirstNonRootID = ledger.RootTransactionID + 1

// Build creates the graph from the sequence of transaction data. Transaction with index i
// in the sequence receives ID i+2. Build fails on the first transaction which cannot be added,
// the partially built graph is discarded
func Build(data []ledger.TxData) (*Graph, error) {
	ret := New(len(data))
	for i := range data {
		tx := data[i].Transaction(FirstNonRootID + ledger.TransactionID(i))
		if err := ret.Add(tx); err != nil {
			return nil, fmt.Errorf("memdag.Build: transaction #%d (id=%d): %w", i, tx.ID, err)
		}
	}
	return ret, nil
}
