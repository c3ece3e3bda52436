package memdag

import (
	"github.com/lunfardo314/txdag/ledger"
	"github.com/lunfardo314/txdag/util"
	"github.com/lunfardo314/txdag/util/lines"
)

func (g *Graph) Info(verbose ...bool) string {
	return g.InfoLines(verbose...).String()
}

// InfoLines header and summary. Verbose lists all transactions ordered by id
func (g *Graph) InfoLines(verbose ...bool) *lines.Lines {
	ln := lines.New()
	ln.Add("MemDAG:: transactions: %s, capacity hint: %s", util.Th(g.Size()), util.Th(g.capacityHint))

	if len(verbose) > 0 && verbose[0] {
		ln.Add("---- all transactions (verbose)")
		g.ForEach(func(tx *ledger.Transaction) bool {
			ln.Add("%s", tx.String())
			return true
		})
	}
	ln.Add("%s", g.summary.String())
	return ln
}
