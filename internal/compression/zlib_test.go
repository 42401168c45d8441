package compression

import (
	"bytes"
	stdzlib "compress/zlib"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompressor_RoundTrip(t *testing.T) {
	c, err := NewCompressor(DefaultLevel)
	require.NoError(t, err)

	for _, data := range [][]byte{
		{},
		[]byte("blob 13\x00Hello, World!"),
		bytes.Repeat([]byte("abcdef"), 10000),
	} {
		compressed, err := c.Compress(data)
		require.NoError(t, err)

		got, err := c.Decompress(compressed)
		require.NoError(t, err)
		require.Equal(t, len(data), len(got))
		require.True(t, bytes.Equal(data, got))
	}
}

func TestCompressor_StdlibCompatible(t *testing.T) {
	c, err := NewCompressor(9)
	require.NoError(t, err)

	data := []byte("commit 9\x00same data")
	compressed, err := c.Compress(data)
	require.NoError(t, err)

	r, err := stdzlib.NewReader(bytes.NewReader(compressed))
	require.NoError(t, err)
	got, err := io.ReadAll(r)
	require.NoError(t, err)
	require.Equal(t, data, got)
}

func TestCompressor_InvalidLevel(t *testing.T) {
	_, err := NewCompressor(42)
	require.Error(t, err)
}

func TestCompressor_Corrupt(t *testing.T) {
	c, err := NewCompressor(DefaultLevel)
	require.NoError(t, err)

	_, err = c.Decompress([]byte("definitely not zlib"))
	require.Error(t, err)

	compressed, err := c.Compress(bytes.Repeat([]byte("x"), 4096))
	require.NoError(t, err)

	_, err = c.Decompress(compressed[:len(compressed)/2])
	require.Error(t, err, "truncated stream must not decode")
}
