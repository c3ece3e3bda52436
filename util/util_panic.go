package util

import (
	"fmt"
	"runtime/debug"
)

// CatchPanicOrError runs f and converts a panic inside it into an error.
// Assertion failures of the package keep their error type, so errors.Is/As work on the result
func CatchPanicOrError(f func() error, includeStack ...bool) error {
	var err error
	var stack string
	takeStack := len(includeStack) > 0 && includeStack[0]
	func() {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			if takeStack {
				stack = string(debug.Stack())
			}
			var ok bool
			if err, ok = r.(error); !ok {
				err = fmt.Errorf("%v (err type=%T)", r, r)
			}
		}()
		err = f()
	}()
	if err != nil && takeStack {
		err = fmt.Errorf("%w\n%s", err, stack) // %w is essential, otherwise does not catch the error
	}
	return err
}
