package serve_cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lunfardo314/txdag/dagtool/glb"
	"github.com/lunfardo314/txdag/metrics"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func Init(rootCmd *cobra.Command) {
	serveCmd := &cobra.Command{
		Use:   "serve <file>",
		Short: "loads the DAG and exposes its metrics for Prometheus until interrupted",
		Args:  cobra.ExactArgs(1),
		Run:   runServeCmd,
	}
	serveCmd.PersistentFlags().Int("port", metrics.DefaultMetricsPort, "port of the metrics endpoint")
	err := viper.BindPFlag("metrics.port", serveCmd.PersistentFlags().Lookup("port"))
	glb.AssertNoError(err)

	rootCmd.AddCommand(serveCmd)
}

func runServeCmd(_ *cobra.Command, args []string) {
	env := glb.MustNewEnv()
	res := env.MustLoadFile(args[0])
	glb.AssertNoError(env.Metrics().RegisterGraph(res.Graph))

	srv := metrics.Start(env)

	killChan := make(chan os.Signal, 1)
	signal.Notify(killChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-killChan
		env.Stop()
	}()
	<-env.Ctx().Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	glb.AssertNoError(srv.Shutdown(ctx))
	env.Log().Info("metrics server stopped")
}
