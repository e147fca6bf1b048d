package format_test

import (
	"testing"
	"time"

	"github.com/makaraci/filespect/pkg/util/format"
	"github.com/stretchr/testify/require"
)

func TestFormatBytes(t *testing.T) {
	require.Equal(t, "0B", format.FormatBytes(0))
	require.Equal(t, "512B", format.FormatBytes(512))
	require.Equal(t, "1KB", format.FormatBytes(1024))
	require.Equal(t, "1.50KB", format.FormatBytes(1536))
	require.Equal(t, "4MB", format.FormatBytes(4*1024*1024))
	require.Equal(t, "2GB", format.FormatBytes(2*1024*1024*1024))
}

func TestParseBytes(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want uint64
	}{
		{"512", 512},
		{"512B", 512},
		{"8KB", 8 * 1024},
		{"8kb", 8 * 1024},
		{" 4MB ", 4 * 1024 * 1024},
		{"1GB", 1024 * 1024 * 1024},
	} {
		v, err := format.ParseBytes(tc.in)
		require.NoError(t, err, tc.in)
		require.Equal(t, tc.want, v, tc.in)
	}

	_, err := format.ParseBytes("")
	require.Error(t, err)

	_, err = format.ParseBytes("abcKB")
	require.Error(t, err)
}

func TestFormatDurationHMS(t *testing.T) {
	require.Equal(t, "0.50s", format.FormatDurationHMS(500*time.Millisecond))
	require.Equal(t, "00:00:01", format.FormatDurationHMS(time.Second))
	require.Equal(t, "00:02:05", format.FormatDurationHMS(125*time.Second))
	require.Equal(t, "01:00:00", format.FormatDurationHMS(time.Hour))
}
