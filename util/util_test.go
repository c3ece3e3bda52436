package util

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTh(t *testing.T) {
	require.EqualValues(t, "0", Th(0))
	require.EqualValues(t, "999", Th(uint32(999)))
	require.EqualValues(t, "1_000", Th(1000))
	require.EqualValues(t, "12_345_678", Th(int64(12345678)))
}

func TestKeysSorted(t *testing.T) {
	m := map[uint32]string{5: "e", 1: "a", 3: "c", 2: "b"}
	require.EqualValues(t, []uint32{1, 2, 3, 5}, KeysSorted(m))
	require.EqualValues(t, 0, len(KeysSorted(map[int]int{})))
}

func TestMax(t *testing.T) {
	require.EqualValues(t, 2, Max(1, 2))
	require.EqualValues(t, 7, Max(uint32(7), uint32(7)))
}

func TestAssertf(t *testing.T) {
	t.Run("no panic", func(t *testing.T) {
		err := CatchPanicOrError(func() error {
			Assertf(true, "must not fail")
			return nil
		})
		require.NoError(t, err)
	})
	t.Run("panic", func(t *testing.T) {
		RequirePanicOrErrorWith(t, func() error {
			Assertf(false, "value %d", 314)
			return nil
		}, "assertion failed::", "value 314")
	})
	t.Run("lazy args", func(t *testing.T) {
		evaluated := false
		Assertf(true, "%s", func() string {
			evaluated = true
			return "never"
		})
		require.False(t, evaluated)

		RequirePanicOrErrorWith(t, func() error {
			Assertf(false, "lazy %s", func() string { return "evaluated" })
			return nil
		}, "lazy evaluated")
	})
	t.Run("no error", func(t *testing.T) {
		wrapped := errors.New("inner 314")
		err := CatchPanicOrError(func() error {
			AssertNoError(wrapped, "prefix")
			return nil
		})
		RequireErrorWith(t, err, "prefix", "inner 314")
		require.True(t, errors.Is(err, wrapped))
	})
}

func TestCatchPanicOrError(t *testing.T) {
	t.Run("1", func(t *testing.T) {
		err := CatchPanicOrError(func() error {
			return nil
		})
		require.NoError(t, err)
	})
	t.Run("2", func(t *testing.T) {
		err := CatchPanicOrError(func() error {
			return errors.New("--- error 314")
		})
		RequireErrorWith(t, err, "--- error", "314")
	})
	t.Run("with stack", func(t *testing.T) {
		err := CatchPanicOrError(func() error {
			panic(errors.New("--- panic 314"))
		}, true)
		RequireErrorWith(t, err, "--- panic", "314", "goroutine")
	})
	t.Run("nil pointer", func(t *testing.T) {
		err := CatchPanicOrError(func() error {
			var pnil *int
			fmt.Println(*pnil)
			return errors.New("no panic")
		}, true)
		RequireErrorWith(t, err, "invalid memory address or nil pointer dereference")
	})
	t.Run("non-error panic", func(t *testing.T) {
		err := CatchPanicOrError(func() error {
			panic("string 314")
		})
		RequireErrorWith(t, err, "string 314", "err type=string")
	})
}
