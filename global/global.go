package global

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/lunfardo314/txdag/util"
	"github.com/lunfardo314/txdag/util/set"
	"go.uber.org/atomic"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type (
	Logging interface {
		Log() *zap.SugaredLogger
		Tracef(tag string, format string, args ...any)
		TraceLog(log *zap.SugaredLogger, tag string, format string, args ...any)
	}

	// Global is the environment of the process: logger, tracing and the root context
	Global struct {
		*zap.SugaredLogger
		ctx            context.Context
		stopFun        context.CancelFunc
		enabledTrace   *atomic.Bool
		traceTagsMutex *sync.RWMutex
		traceTags      set.Set[string]
	}
)

func New(log *zap.SugaredLogger) *Global {
	ctx, cancelFun := context.WithCancel(context.Background())
	return &Global{
		SugaredLogger:  log,
		ctx:            ctx,
		stopFun:        cancelFun,
		enabledTrace:   atomic.NewBool(false),
		traceTagsMutex: &sync.RWMutex{},
		traceTags:      set.New[string](),
	}
}

// NewDefault info level logger to stdout
func NewDefault() *Global {
	return New(NewLogger("", zapcore.InfoLevel, nil, ""))
}

func (l *Global) Stop() {
	l.stopFun()
}

func (l *Global) Ctx() context.Context {
	return l.ctx
}

func (l *Global) Log() *zap.SugaredLogger {
	return l.SugaredLogger
}

// EnableTraceTags each argument can be comma-separated list of tags
func (l *Global) EnableTraceTags(tags ...string) {
	enabled := make([]string, 0)
	l.traceTagsMutex.Lock()
	for _, t := range tags {
		for _, t1 := range strings.Split(t, ",") {
			if t1 = strings.TrimSpace(t1); t1 != "" {
				l.traceTags.Insert(t1)
				enabled = append(enabled, t1)
			}
		}
	}
	if len(l.traceTags) > 0 {
		l.enabledTrace.Store(true)
	}
	l.traceTagsMutex.Unlock()

	for _, tag := range enabled {
		l.Tracef(tag, "trace tag enabled")
	}
}

func (l *Global) DisableTraceTag(tag string) {
	l.traceTagsMutex.Lock()
	defer l.traceTagsMutex.Unlock()

	l.traceTags.Remove(tag)
	if len(l.traceTags) == 0 {
		l.enabledTrace.Store(false)
	}
}

func (l *Global) TraceEnabled(tag string) bool {
	if !l.enabledTrace.Load() {
		return false
	}
	l.traceTagsMutex.RLock()
	defer l.traceTagsMutex.RUnlock()

	for _, t := range strings.Split(tag, ",") {
		if l.traceTags.Contains(t) {
			return true
		}
	}
	return false
}

// TraceLog logs when any of comma-separated tags is enabled. Lazy arguments are evaluated only then
func (l *Global) TraceLog(log *zap.SugaredLogger, tag string, format string, args ...any) {
	if !l.enabledTrace.Load() {
		return
	}

	l.traceTagsMutex.RLock()
	defer l.traceTagsMutex.RUnlock()

	for _, t := range strings.Split(tag, ",") {
		if l.traceTags.Contains(t) {
			log.Infof("TRACE(%s) %s", t, fmt.Sprintf(format, util.EvalLazyArgs(args...)...))
			return
		}
	}
}

func (l *Global) Tracef(tag string, format string, args ...any) {
	l.TraceLog(l.Log(), tag, format, args...)
}

// MakeSubLogger named logger which shares trace tags with the parent
func (l *Global) MakeSubLogger(name string) *Global {
	return &Global{
		SugaredLogger:  l.Log().Named(name),
		ctx:            l.ctx,
		stopFun:        l.stopFun,
		enabledTrace:   l.enabledTrace,
		traceTagsMutex: l.traceTagsMutex,
		traceTags:      l.traceTags,
	}
}
