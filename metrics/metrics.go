package metrics

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/lunfardo314/txdag/core/memdag"
	"github.com/lunfardo314/txdag/global"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/viper"
	"go.uber.org/atomic"
)

const (
	DefaultMetricsPort = 14000
	namespace          = "txdag"
)

type (
	Environment interface {
		global.Logging
		MetricsRegistry() *prometheus.Registry
	}

	// GraphReader is the read-only part of the graph exposed as metrics
	GraphReader interface {
		Size() int
		Stats() memdag.Stats
	}

	Metrics struct {
		registry          *prometheus.Registry
		loadTotal         *prometheus.CounterVec
		transactionsTotal prometheus.Counter
		loadDuration      prometheus.Histogram
		graphRegistered   *atomic.Bool
	}
)

func New(reg *prometheus.Registry) *Metrics {
	ret := &Metrics{
		registry: reg,
		loadTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "load_total",
			Help:      "number of graph loads by result",
		}, []string{"result"}),
		transactionsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transactions_loaded_total",
			Help:      "number of transactions in successfully loaded graphs, including roots",
		}),
		loadDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "load_duration_seconds",
			Help:      "time of parsing and building the graph",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 8),
		}),
		graphRegistered: atomic.NewBool(false),
	}
	reg.MustRegister(ret.loadTotal, ret.transactionsTotal, ret.loadDuration)
	return ret
}

// ObserveLoad records result of one load
func (m *Metrics) ObserveLoad(g GraphReader, duration time.Duration, err error) {
	if err != nil {
		m.loadTotal.WithLabelValues("error").Inc()
		return
	}
	m.loadTotal.WithLabelValues("ok").Inc()
	m.transactionsTotal.Add(float64(g.Size()))
	m.loadDuration.Observe(duration.Seconds())
}

// RegisterGraph exposes gauges of the graph. Only one graph can be registered.
// The graph must not be modified after registration
func (m *Metrics) RegisterGraph(g GraphReader) error {
	if !m.graphRegistered.CompareAndSwap(false, true) {
		return errors.New("metrics: graph already registered")
	}
	gauge := func(name, help string, fun func() float64) prometheus.GaugeFunc {
		return prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "graph",
			Name:      name,
			Help:      help,
		}, fun)
	}
	m.registry.MustRegister(
		gauge("size", "number of transactions including root", func() float64 {
			return float64(g.Size())
		}),
		gauge("max_depth", "maximal depth of a transaction", func() float64 {
			return float64(g.Stats().MaxDepth)
		}),
		gauge("avg_depth", "average depth of non-root transactions", func() float64 {
			return g.Stats().AvgDepth
		}),
		gauge("avg_in_reference", "average number of references to a transaction", func() float64 {
			return g.Stats().AvgInReference
		}),
	)
	return nil
}

// Start exposes the registry over http on the port from config key 'metrics.port'
func Start(env Environment) *http.Server {
	port := viper.GetInt("metrics.port")
	if port == 0 {
		env.Log().Warnf("metrics.port not specified. Will use %d for Prometheus metrics exposure", DefaultMetricsPort)
		port = DefaultMetricsPort
	}
	env.MetricsRegistry().MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(
		env.MetricsRegistry(),
		promhttp.HandlerOpts{
			Registry: env.MetricsRegistry(),
		},
	))
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			env.Log().Errorf("metrics server: %v", err)
		}
	}()
	env.Log().Infof("Prometheus metrics exposed on port %d", port)
	return srv
}
