package load_cmd

import (
	"testing"

	"github.com/lunfardo314/txdag/core/memdag"
	"github.com/lunfardo314/txdag/ledger"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

func TestReport(t *testing.T) {
	t.Run("root only", func(t *testing.T) {
		out, err := yaml.Marshal(MakeReport(memdag.New(0)))
		require.NoError(t, err)
		t.Logf("\n%s", string(out))

		var back Report
		require.NoError(t, yaml.Unmarshal(out, &back))
		require.EqualValues(t, 1, back.Transactions)
		require.Nil(t, back.LastTransaction)
		require.Nil(t, back.MostInReferenceTransaction)
	})
	t.Run("two transactions", func(t *testing.T) {
		g, err := memdag.Build([]ledger.TxData{{Left: 1, Right: 1, Timestamp: 5}, {Left: 1, Right: 2, Timestamp: 3}})
		require.NoError(t, err)
		out, err := yaml.Marshal(MakeReport(g))
		require.NoError(t, err)
		t.Logf("\n%s", string(out))

		var back Report
		require.NoError(t, yaml.Unmarshal(out, &back))
		require.EqualValues(t, 3, back.Transactions)
		require.EqualValues(t, 2, *back.LastTransaction)
		require.EqualValues(t, 1, *back.MostInReferenceTransaction)
		require.EqualValues(t, 1, back.Stats.MaxDepth)
	})
}
