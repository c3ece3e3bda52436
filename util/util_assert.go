package util

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const assertPrefix = "assertion failed:: "

// EvalLazyArgs replaces func() any and func() string arguments with their values.
// It lets callers postpone formatting of expensive arguments until the message is needed
func EvalLazyArgs(args ...any) []any {
	ret := make([]any, 0, len(args))
	for _, arg := range args {
		switch lazy := arg.(type) {
		case func() string:
			ret = append(ret, lazy())
		case func() any:
			ret = append(ret, lazy())
		default:
			ret = append(ret, arg)
		}
	}
	return ret
}

// Assertf panics with error if cond does not hold. Arguments are evaluated only on failure
func Assertf(cond bool, format string, args ...any) {
	if cond {
		return
	}
	panic(fmt.Errorf(assertPrefix+format, EvalLazyArgs(args...)...))
}

// AssertNoError panics with err wrapped, so the panic value still matches err with errors.Is
func AssertNoError(err error, prefix ...string) {
	if err == nil {
		return
	}
	what := "error"
	if len(prefix) > 0 {
		what = strings.Join(prefix, " ")
	}
	panic(fmt.Errorf(assertPrefix+"%s: %w", what, err))
}

// RequireErrorWith checks that err is not nil and its message contains all fragments
func RequireErrorWith(t *testing.T, err error, fragments ...string) {
	t.Helper()
	require.Error(t, err)
	msg := err.Error()
	for _, f := range fragments {
		require.Contains(t, msg, f)
	}
}

// RequirePanicOrErrorWith is RequireErrorWith on the result of f, with panic converted to error
func RequirePanicOrErrorWith(t *testing.T, f func() error, fragments ...string) {
	t.Helper()
	RequireErrorWith(t, CatchPanicOrError(f), fragments...)
}
