package util

import (
	"strings"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type Integer interface {
	constraints.Integer
}

var prn = message.NewPrinter(language.English)

// Th makes string representation of the integer with thousands separator '_'
func Th[T Integer](v T) string {
	return strings.Replace(prn.Sprintf("%d", v), ",", "_", -1)
}

// KeysSorted returns keys of the map in ascending order
func KeysSorted[K constraints.Ordered, V any](m map[K]V) []K {
	ret := make([]K, 0, len(m))
	for k := range m {
		ret = append(ret, k)
	}
	slices.Sort(ret)
	return ret
}

func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}
