package glb

import (
	"github.com/lunfardo314/txdag/global"
	"github.com/lunfardo314/txdag/metrics"
	"github.com/lunfardo314/txdag/txinput"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/viper"
)

// Env is the environment of one dagtool command
type Env struct {
	*global.Global
	registry *prometheus.Registry
	metrics  *metrics.Metrics
}

// NewEnv creates environment from the config keys 'logger.level', 'logger.output' and 'trace_tags'
func NewEnv() (*Env, error) {
	lvl, err := global.ParseLevel(viper.GetString("logger.level"))
	if err != nil {
		return nil, err
	}
	var outputs []string
	if out := viper.GetString("logger.output"); out != "" {
		outputs = []string{out}
	}
	ret := &Env{
		Global:   global.New(global.NewLogger("dagtool", lvl, outputs, "")),
		registry: prometheus.NewRegistry(),
	}
	ret.metrics = metrics.New(ret.registry)
	if tags := viper.GetStringSlice("trace_tags"); len(tags) > 0 {
		ret.EnableTraceTags(tags...)
	}
	return ret, nil
}

func MustNewEnv() *Env {
	ret, err := NewEnv()
	AssertNoError(err)
	return ret
}

func (e *Env) MetricsRegistry() *prometheus.Registry {
	return e.registry
}

func (e *Env) Metrics() *metrics.Metrics {
	return e.metrics
}

// LoadFile loads the graph and records the load in metrics
func (e *Env) LoadFile(fname string) (*txinput.LoadResult, error) {
	res, err := txinput.LoadFile(fname, e)
	if err != nil {
		e.metrics.ObserveLoad(nil, 0, err)
		return nil, err
	}
	e.metrics.ObserveLoad(res.Graph, res.Duration, nil)
	return res, nil
}

func (e *Env) MustLoadFile(fname string) *txinput.LoadResult {
	res, err := e.LoadFile(fname)
	AssertNoError(err)
	return res
}
