package table_test

import (
	"testing"

	"github.com/makaraci/filespect/pkg/table"
	"github.com/stretchr/testify/require"
)

func TestPrefixTable_InsertGet(t *testing.T) {
	pt := table.New[string]()
	pt.Insert([]byte{0x4D, 0x5A}, "pe")
	pt.Insert([]byte{0xFF, 0xD8}, "jpeg")

	v, ok := pt.Get([]byte{0x4D, 0x5A})
	require.True(t, ok)
	require.Equal(t, "pe", v)

	_, ok = pt.Get([]byte{0x4D, 0x5B})
	require.False(t, ok)

	require.Equal(t, 2, pt.Size())
}

func TestPrefixTable_Walk(t *testing.T) {
	pt := table.New[string]()
	pt.Insert([]byte("ap"), "short")
	pt.Insert([]byte("appl"), "long")

	var seen []string
	pt.Walk([]byte("apple"), func(v string) bool {
		seen = append(seen, v)
		return false
	})
	require.Equal(t, []string{"short", "long"}, seen)

	seen = nil
	pt.Walk([]byte("apple"), func(v string) bool {
		seen = append(seen, v)
		return true // stop at first match
	})
	require.Equal(t, []string{"short"}, seen)

	seen = nil
	pt.Walk([]byte("xyz"), func(v string) bool {
		seen = append(seen, v)
		return false
	})
	require.Empty(t, seen)
}
