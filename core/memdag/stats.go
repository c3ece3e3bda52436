package memdag

import (
	"fmt"

	"github.com/lunfardo314/txdag/ledger"
	"github.com/lunfardo314/txdag/util"
	"github.com/lunfardo314/txdag/util/set"
)

// Stats are statistics over the whole graph. The root does not count in depth statistics
type Stats struct {
	NumTransactions int       `yaml:"num_transactions"`
	MaxDepth        uint32    `yaml:"max_depth"`
	AvgDepth        float64   `yaml:"avg_depth"`
	DepthQuartiles  [3]uint32 `yaml:"depth_quartiles"`
	AvgTxPerDepth   float64   `yaml:"avg_tx_per_depth"`
	AvgInReference  float64   `yaml:"avg_in_reference"`
}

func (g *Graph) Stats() (ret Stats) {
	ret.NumTransactions = g.Size()

	depths := make([]uint32, 0, g.Size()-1)
	levels := set.New[uint32]()
	inRefs := make([]uint32, 0, g.Size())
	g.ForEach(func(tx *ledger.Transaction) bool {
		inRefs = append(inRefs, tx.Metrics.InReference)
		if tx.IsRoot() {
			return true
		}
		depths = append(depths, tx.Metrics.Depth)
		levels.Insert(tx.Metrics.Depth)
		ret.MaxDepth = util.Max(ret.MaxDepth, tx.Metrics.Depth)
		return true
	})
	ret.AvgDepth = util.Average(depths)
	ret.DepthQuartiles = util.Quartiles(depths)
	if len(levels) > 0 {
		ret.AvgTxPerDepth = float64(len(depths)) / float64(len(levels))
	}
	ret.AvgInReference = util.Average(inRefs)
	return
}

func (s Stats) String() string {
	return fmt.Sprintf("AVG DAG DEPTH: %.3f\nAVG TXS PER DEPTH: %.3f\nAVG REF: %.3f\nMAX DEPTH: %d\nDEPTH QUARTILES: %v",
		s.AvgDepth, s.AvgTxPerDepth, s.AvgInReference, s.MaxDepth, s.DepthQuartiles)
}
