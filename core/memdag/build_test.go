package memdag

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lunfardo314/txdag/ledger"
	"github.com/lunfardo314/txdag/util"
	"github.com/stretchr/testify/require"
)

var testData = []ledger.TxData{
	{Left: 1, Right: 1, Timestamp: 5},
	{Left: 1, Right: 2, Timestamp: 3},
}

func TestBuild(t *testing.T) {
	t.Run("build matches step by step", func(t *testing.T) {
		g, err := Build(testData)
		require.NoError(t, err)
		require.EqualValues(t, 3, g.Size())
		require.EqualValues(t, []ledger.TransactionID{1, 2, 3}, g.TransactionIDs())

		require.EqualValues(t, ledger.Metrics{Depth: 0, InReference: 3}, mustGetTx(t, g, 1).Metrics)
		require.EqualValues(t, ledger.Metrics{Depth: 1, InReference: 1}, mustGetTx(t, g, 2).Metrics)
		require.EqualValues(t, ledger.Metrics{Depth: 1, InReference: 0}, mustGetTx(t, g, 3).Metrics)
		requireSummary(t, g, 2, 1)

		// same as step by step
		g1 := New(len(testData))
		require.NoError(t, g1.Add(ledger.NewTransaction(2, 1, 1, 5)))
		require.NoError(t, g1.Add(ledger.NewTransaction(3, 1, 2, 3)))
		require.EqualValues(t, g1, g)
	})
	t.Run("ids in order", func(t *testing.T) {
		g, err := Build([]ledger.TxData{
			{Left: 1, Right: 1, Timestamp: 1},
			{Left: 2, Right: 2, Timestamp: 0},
			{Left: 3, Right: 2, Timestamp: 9},
		})
		require.NoError(t, err)
		require.EqualValues(t, []ledger.TransactionID{1, 2, 3, 4}, g.TransactionIDs())
		tx := mustGetTx(t, g, 4)
		require.EqualValues(t, ledger.Parents{Left: 3, Right: 2}, *tx.Parents)
		require.EqualValues(t, 9, tx.Timestamp)
		require.EqualValues(t, 2, tx.Metrics.Depth)
		require.EqualValues(t, 3, g.CapacityHint())
	})
	t.Run("empty", func(t *testing.T) {
		g, err := Build(nil)
		require.NoError(t, err)
		require.EqualValues(t, 1, g.Size())
	})
	t.Run("fail on forward reference", func(t *testing.T) {
		g, err := Build([]ledger.TxData{
			{Left: 1, Right: 1, Timestamp: 1},
			{Left: 4, Right: 1, Timestamp: 1},
			{Left: 1, Right: 1, Timestamp: 1},
		})
		require.Nil(t, g)
		require.True(t, errors.Is(err, ErrParentNotFound))
		util.RequireErrorWith(t, err, "#1", "id=3")
	})
	t.Run("fail on self reference", func(t *testing.T) {
		g, err := Build([]ledger.TxData{{Left: 2, Right: 2, Timestamp: 1}})
		require.Nil(t, g)
		require.True(t, errors.Is(err, ErrParentNotFound))
	})
}

func TestPastCone(t *testing.T) {
	g, err := Build([]ledger.TxData{
		{Left: 1, Right: 1, Timestamp: 1}, // 2
		{Left: 1, Right: 1, Timestamp: 1}, // 3
		{Left: 2, Right: 2, Timestamp: 1}, // 4
		{Left: 4, Right: 3, Timestamp: 1}, // 5
	})
	require.NoError(t, err)

	require.EqualValues(t, []ledger.TransactionID{1}, g.PastCone(1))
	require.EqualValues(t, []ledger.TransactionID{4, 2, 1}, g.PastCone(4))
	require.EqualValues(t, []ledger.TransactionID{5, 4, 3, 2, 1}, g.PastCone(5))
	require.EqualValues(t, []ledger.TransactionID{3, 1}, g.PastCone(3))
	require.Nil(t, g.PastCone(10))
}

func TestForEach(t *testing.T) {
	g, err := Build(testData)
	require.NoError(t, err)

	ids := make([]ledger.TransactionID, 0)
	g.ForEach(func(tx *ledger.Transaction) bool {
		ids = append(ids, tx.ID)
		return true
	})
	require.EqualValues(t, []ledger.TransactionID{1, 2, 3}, ids)

	count := 0
	g.ForEach(func(tx *ledger.Transaction) bool {
		count++
		return tx.ID < 2
	})
	require.EqualValues(t, 2, count)

	require.True(t, g.Contains(3))
	require.False(t, g.Contains(4))
	_, found := g.Get(4)
	require.False(t, found)
}

func TestStats(t *testing.T) {
	t.Run("root only", func(t *testing.T) {
		st := New(0).Stats()
		require.EqualValues(t, Stats{NumTransactions: 1}, st)
	})
	t.Run("5 transactions", func(t *testing.T) {
		g, err := Build([]ledger.TxData{
			{Left: 1, Right: 1, Timestamp: 0}, // 2, depth 1
			{Left: 1, Right: 2, Timestamp: 0}, // 3, depth 1
			{Left: 2, Right: 2, Timestamp: 1}, // 4, depth 2
			{Left: 3, Right: 3, Timestamp: 3}, // 5, depth 2
			{Left: 3, Right: 4, Timestamp: 5}, // 6, depth 2
		})
		require.NoError(t, err)
		st := g.Stats()
		require.EqualValues(t, 6, st.NumTransactions)
		require.EqualValues(t, 2, st.MaxDepth)
		require.InDelta(t, 8.0/5, st.AvgDepth, 1e-9)
		require.InDelta(t, 5.0/2, st.AvgTxPerDepth, 1e-9)
		require.InDelta(t, 10.0/6, st.AvgInReference, 1e-9)
		require.EqualValues(t, [3]uint32{1, 2, 2}, st.DepthQuartiles)

		str := st.String()
		require.True(t, strings.Contains(str, "AVG DAG DEPTH: 1.600"))
		require.True(t, strings.Contains(str, "AVG TXS PER DEPTH: 2.500"))
		require.True(t, strings.Contains(str, "AVG REF: 1.667"))
	})
}

func TestInfo(t *testing.T) {
	g, err := Build(testData)
	require.NoError(t, err)

	short := g.Info()
	t.Logf("\n%s", short)
	require.EqualValues(t, 2, len(strings.Split(short, "\n")))
	require.True(t, strings.HasPrefix(short, "MemDAG:: transactions: 3, capacity hint: 2"))

	verbose := g.Info(true)
	t.Logf("\n%s", verbose)
	ln := strings.Split(verbose, "\n")
	require.EqualValues(t, 6, len(ln))
	require.EqualValues(t, "- id=1() info=(t=0, metrics=(depth=0,in_reference=3))", ln[2])
	require.EqualValues(t, "- id=2(left=1 right=1) info=(t=5, metrics=(depth=1,in_reference=1))", ln[3])
	require.EqualValues(t, "- id=3(left=1 right=2) info=(t=3, metrics=(depth=1,in_reference=0))", ln[4])
	require.EqualValues(t, "last transaction: 2, most referenced transaction: 1", ln[5])
}

func TestGraphDOT(t *testing.T) {
	g, err := Build([]ledger.TxData{
		{Left: 1, Right: 1, Timestamp: 1}, // 2
		{Left: 1, Right: 2, Timestamp: 4}, // 3
		{Left: 3, Right: 2, Timestamp: 2}, // 4
	})
	require.NoError(t, err)

	t.Run("whole graph", func(t *testing.T) {
		gr := g.MakeGraph()
		order, err := gr.Order()
		require.NoError(t, err)
		require.EqualValues(t, 4, order)
		size, err := gr.Size()
		require.NoError(t, err)
		require.EqualValues(t, 5, size)

		e, err := gr.Edge("2", "1")
		require.NoError(t, err)
		require.EqualValues(t, "x2", e.Properties.Attributes["label"])

		var buf bytes.Buffer
		require.NoError(t, WriteDOT(gr, &buf))
		require.True(t, strings.Contains(buf.String(), "digraph"))
	})
	t.Run("past cone", func(t *testing.T) {
		gr, err := g.MakeGraphPastCone(2)
		require.NoError(t, err)
		order, err := gr.Order()
		require.NoError(t, err)
		require.EqualValues(t, 2, order)

		_, err = g.MakeGraphPastCone(100)
		util.RequireErrorWith(t, err, "not found")
	})
	t.Run("save", func(t *testing.T) {
		fname := filepath.Join(t.TempDir(), "dag")
		require.NoError(t, g.SaveGraph(fname))
		data, err := os.ReadFile(fname + ".gv")
		require.NoError(t, err)
		require.True(t, strings.Contains(string(data), "digraph"))

		require.NoError(t, g.SaveGraphPastCone(3, fname+"_cone"))
		_, err = os.Stat(fname + "_cone.gv")
		require.NoError(t, err)

		require.Error(t, g.SaveGraphPastCone(10, fname+"_none"))
	})
}
