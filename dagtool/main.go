package main

import (
	"fmt"
	"os"

	"github.com/lunfardo314/txdag/dagtool/dot_cmd"
	"github.com/lunfardo314/txdag/dagtool/glb"
	"github.com/lunfardo314/txdag/dagtool/load_cmd"
	"github.com/lunfardo314/txdag/dagtool/serve_cmd"
	"github.com/lunfardo314/txdag/global"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configFile string

var rootCmd *cobra.Command

func init() {
	initRoot()
	load_cmd.Init(rootCmd)
	dot_cmd.Init(rootCmd)
	serve_cmd.Init(rootCmd)
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "prints version",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			glb.Infof("%s", global.BannerString())
		},
	})
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(".dagtool")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv() // read in environment variables that match

	if err := viper.ReadInConfig(); err == nil {
		_, _ = fmt.Fprintf(os.Stderr, "Using config profile: %s\n", viper.ConfigFileUsed())
	}
}

func initRoot() {
	rootCmd = &cobra.Command{
		Use:   "dagtool",
		Short: "a simple CLI for the transaction DAG",
		Long: `dagtool loads a DAG of transactions from the text file and:
      - prints summary and statistics of the DAG
      - exports the DAG or past cone of a transaction in the .DOT format
      - exposes metrics of the DAG for Prometheus
`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			initConfig()
		},
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (default is .dagtool.yaml)")

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	err := viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	glb.AssertNoError(err)

	rootCmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, error")
	err = viper.BindPFlag("logger.level", rootCmd.PersistentFlags().Lookup("log-level"))
	glb.AssertNoError(err)

	rootCmd.PersistentFlags().String("log-output", "", "log output (default is stdout)")
	err = viper.BindPFlag("logger.output", rootCmd.PersistentFlags().Lookup("log-output"))
	glb.AssertNoError(err)

	rootCmd.PersistentFlags().StringSlice("trace", nil, "comma-separated trace tags, e.g. 'load'")
	err = viper.BindPFlag("trace_tags", rootCmd.PersistentFlags().Lookup("trace"))
	glb.AssertNoError(err)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
