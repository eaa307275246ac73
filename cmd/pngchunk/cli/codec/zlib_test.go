package codec

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompressDecompress(t *testing.T) {
	t.Parallel()

	in := bytes.Repeat([]byte("hello world!"), 100)
	for _, level := range []Level{LevelDefault, LevelNone, LevelFastest, LevelBest} {
		z, err := Compress(in, level)
		require.NoError(t, err)
		// zlib header: deflate, 32K window.
		assert.Equal(t, byte(0x78), z[0], level.String())

		out, err := Decompress(z)
		require.NoError(t, err)
		assert.Equal(t, in, out, level.String())
	}
}

func TestDecompress_Errors(t *testing.T) {
	t.Parallel()

	_, err := Decompress([]byte{1, 2, 3})
	var compErr *CompressionError
	require.ErrorAs(t, err, &compErr)

	z, err := Compress([]byte("truncate me please"), LevelBest)
	require.NoError(t, err)
	_, err = Decompress(z[:len(z)-6])
	require.ErrorAs(t, err, &compErr)

	z, err = Compress(make([]byte, 4096), LevelBest)
	require.NoError(t, err)
	_, err = DecompressLimit(z, 4095)
	require.ErrorIs(t, err, ErrTextTooLarge)
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]Level{
		"":        LevelDefault,
		"default": LevelDefault,
		"none":    LevelNone,
		"Fastest": LevelFastest,
		"best":    LevelBest,
	} {
		got, err := ParseLevel(in)
		require.NoError(t, err)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseLevel("9")
	require.Error(t, err)
}
