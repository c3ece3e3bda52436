package txinput

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/lunfardo314/txdag/core/memdag"
	"github.com/lunfardo314/txdag/global"
	"github.com/lunfardo314/txdag/ledger"
	"github.com/lunfardo314/txdag/util"
)

const TraceTag = "load"

type LoadResult struct {
	Graph    *memdag.Graph
	Duration time.Duration
}

// Load parses input and builds the graph
func Load(r io.Reader, env global.Logging) (*LoadResult, error) {
	start := time.Now()
	data, err := Parse(r)
	if err != nil {
		env.Log().Errorf("txinput.Load: parse error: %v", err)
		return nil, err
	}
	env.Tracef(TraceTag, "parsed %d transactions", len(data))
	env.Tracef(TraceTag, "transactions:\n%s", func() string {
		ln := make([]string, 0, len(data))
		for i := range data {
			ln = append(ln, data[i].Transaction(memdag.FirstNonRootID+ledger.TransactionID(i)).ShortString())
		}
		return fmt.Sprintf("%v", ln)
	})

	g, err := memdag.Build(data)
	if err != nil {
		env.Log().Errorf("txinput.Load: %v", err)
		return nil, err
	}
	ret := &LoadResult{
		Graph:    g,
		Duration: time.Since(start),
	}
	env.Log().Infof("loaded %s transactions in %v", util.Th(g.Size()), ret.Duration)
	return ret, nil
}

func LoadFile(fname string, env global.Logging) (*LoadResult, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	return Load(f, env)
}
