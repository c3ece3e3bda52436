package dot_cmd

import (
	"path/filepath"
	"strings"

	"github.com/lunfardo314/txdag/dagtool/glb"
	"github.com/lunfardo314/txdag/ledger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func Init(rootCmd *cobra.Command) {
	dotCmd := &cobra.Command{
		Use:   "dot <file>",
		Short: "creates .DOT file of the DAG or of the past cone of the transaction",
		Args:  cobra.ExactArgs(1),
		Run:   runDotCmd,
	}
	dotCmd.PersistentFlags().StringP("output", "o", "", "output file name without extension (default is input file name)")
	err := viper.BindPFlag("dot.output", dotCmd.PersistentFlags().Lookup("output"))
	glb.AssertNoError(err)

	dotCmd.PersistentFlags().Uint32("tip", 0, "only past cone of the transaction with this id")
	err = viper.BindPFlag("dot.tip", dotCmd.PersistentFlags().Lookup("tip"))
	glb.AssertNoError(err)

	rootCmd.AddCommand(dotCmd)
}

// OutputName returns name of the DOT file without extension
func OutputName(input string) string {
	if out := viper.GetString("dot.output"); out != "" {
		return out
	}
	return strings.TrimSuffix(input, filepath.Ext(input))
}

func runDotCmd(_ *cobra.Command, args []string) {
	env := glb.MustNewEnv()
	res := env.MustLoadFile(args[0])

	fname := OutputName(args[0])
	if tip := ledger.TransactionID(viper.GetUint32("dot.tip")); tip != 0 {
		glb.Assertf(res.Graph.Contains(tip), "transaction %d not found in the DAG", tip)
		glb.AssertNoError(res.Graph.SaveGraphPastCone(tip, fname))
		glb.Infof("past cone of %d has been stored in .DOT format in the file '%s.gv'", tip, fname)
		return
	}
	glb.AssertNoError(res.Graph.SaveGraph(fname))
	glb.Infof("DAG has been stored in .DOT format in the file '%s.gv'", fname)
}
