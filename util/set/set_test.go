package set

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSet(t *testing.T) {
	var nilSet Set[string]
	require.False(t, nilSet.Contains("load"))
	require.EqualValues(t, 0, len(nilSet))

	s := New[string]("load", "add", "load")
	require.EqualValues(t, 2, len(s))
	require.True(t, s.Contains("load"))
	require.True(t, s.Contains("add"))
	require.False(t, s.Contains("dot"))

	require.EqualValues(t, 1, s.Insert("dot", "load"))
	require.EqualValues(t, 0, s.Insert("dot"))
	require.EqualValues(t, 3, len(s))

	s.Remove("add", "absent")
	require.EqualValues(t, 2, len(s))
	require.False(t, s.Contains("add"))
}
