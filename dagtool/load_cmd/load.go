package load_cmd

import (
	"github.com/lunfardo314/txdag/core/memdag"
	"github.com/lunfardo314/txdag/dagtool/glb"
	"github.com/lunfardo314/txdag/ledger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"
)

// Report is the yaml output of the load command
type Report struct {
	Transactions               int          `yaml:"transactions"`
	LastTransaction            *uint32      `yaml:"last_transaction,omitempty"`
	MostInReferenceTransaction *uint32      `yaml:"most_in_reference_transaction,omitempty"`
	Stats                      memdag.Stats `yaml:"stats"`
}

func Init(rootCmd *cobra.Command) {
	loadCmd := &cobra.Command{
		Use:   "load <file>",
		Short: "loads transactions from the file and prints summary and statistics of the DAG",
		Args:  cobra.ExactArgs(1),
		Run:   runLoadCmd,
	}
	loadCmd.PersistentFlags().Bool("yaml", false, "print report in YAML")
	err := viper.BindPFlag("load.yaml", loadCmd.PersistentFlags().Lookup("yaml"))
	glb.AssertNoError(err)

	rootCmd.AddCommand(loadCmd)
}

func runLoadCmd(_ *cobra.Command, args []string) {
	env := glb.MustNewEnv()
	res := env.MustLoadFile(args[0])
	glb.Verbosef("DAG loaded from '%s' in %v", args[0], res.Duration)

	if viper.GetBool("load.yaml") {
		out, err := yaml.Marshal(MakeReport(res.Graph))
		glb.AssertNoError(err)
		glb.Infof("%s", string(out))
		return
	}
	glb.Infof("%s", res.Graph.Info(viper.GetBool("verbose")))
	glb.Infof("%s", res.Graph.Stats().String())
}

func optionalID(id ledger.TransactionID, ok bool) *uint32 {
	if !ok {
		return nil
	}
	ret := uint32(id)
	return &ret
}

func MakeReport(g *memdag.Graph) *Report {
	summary := g.Summary()
	return &Report{
		Transactions:               g.Size(),
		LastTransaction:            optionalID(summary.LastTransaction()),
		MostInReferenceTransaction: optionalID(summary.MostInReferenceTransaction()),
		Stats:                      g.Stats(),
	}
}
