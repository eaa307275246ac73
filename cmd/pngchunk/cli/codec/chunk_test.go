package codec

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestData_LengthBoundary(t *testing.T) {
	t.Parallel()

	rec := rawChunk("abCd", []byte("hello"))

	t.Run("exact fit", func(t *testing.T) {
		payload, err := Data(rec)
		require.NoError(t, err)
		assert.Equal(t, []byte("hello"), payload)
		assert.Equal(t, uint32(5), Length(rec))
	})

	t.Run("one past the buffer", func(t *testing.T) {
		bad := append([]byte(nil), rec...)
		binary.BigEndian.PutUint32(bad, uint32(len("hello")+1))
		_, err := Data(bad)
		require.ErrorIs(t, err, ErrTruncated)
	})

	t.Run("above 2^31", func(t *testing.T) {
		bad := append([]byte(nil), rec...)
		binary.BigEndian.PutUint32(bad, MaxLength+1)
		_, err := Data(bad)
		require.ErrorIs(t, err, ErrChunkTooLarge)
	})

	t.Run("exactly 2^31 is not too large", func(t *testing.T) {
		bad := append([]byte(nil), rec...)
		binary.BigEndian.PutUint32(bad, MaxLength)
		_, err := Data(bad)
		require.ErrorIs(t, err, ErrTruncated)
	})

	t.Run("shorter than a header", func(t *testing.T) {
		_, err := Data(rec[:11])
		require.ErrorIs(t, err, ErrTruncated)
		_, err = Data(nil)
		require.ErrorIs(t, err, ErrTruncated)
	})
}

func TestData_EditsInPlace(t *testing.T) {
	t.Parallel()

	rec := rawChunk("abCd", []byte("hello"))
	payload, err := Data(rec)
	require.NoError(t, err)
	payload[0] = 'j'
	assert.Equal(t, "jello", string(rec[8:13]))
}

func TestTypeFlags(t *testing.T) {
	t.Parallel()

	text := rawChunk("tEXt", []byte("k\x00v"))
	assert.Equal(t, ChunkType{0x74, 0x45, 0x58, 0x74}, TypeOf(text))
	assert.True(t, IsAncillary(text))
	assert.False(t, IsPrivate(text))
	assert.True(t, IsSafeToCopy(text))
	assert.True(t, TypeTEXt.Ancillary())
	assert.False(t, TypeTEXt.Private())

	tests := []struct {
		typ   string
		flags string
	}{
		{"IEND", "---"},
		{"IHDR", "---"},
		{"tIME", "a--"},
		{"iTXt", "a-s"},
		{"prvT", "ap-"},
		{"prvt", "aps"},
	}
	for _, tt := range tests {
		rec := rawChunk(tt.typ, nil)
		typ := TypeOf(rec)
		assert.Equal(t, tt.flags, typ.Flags(), tt.typ)
		assert.Equal(t, typ.Ancillary(), IsAncillary(rec), tt.typ)
		assert.Equal(t, typ.Private(), IsPrivate(rec), tt.typ)
		assert.Equal(t, typ.SafeToCopy(), IsSafeToCopy(rec), tt.typ)
	}
}

func TestNextAndAppend(t *testing.T) {
	t.Parallel()

	first := rawChunk("tEXt", []byte("a\x00b"))
	buf := stream(false, first, iendRecord)

	_, err := Data(buf)
	require.NoError(t, err)
	rest := Next(buf)
	assert.Equal(t, iendRecord, rest)
	assert.Empty(t, Next(rest))

	out := Append([]byte("x"), buf)
	assert.Equal(t, append([]byte("x"), first...), out)
}

func TestParseChunkType(t *testing.T) {
	t.Parallel()

	typ, ok := ParseChunkType("iTXt")
	require.True(t, ok)
	assert.Equal(t, TypeITXt, typ)

	for _, s := range []string{"", "iTX", "iTXtt", "iT1t", "iT t"} {
		_, ok := ParseChunkType(s)
		assert.False(t, ok, s)
	}
	assert.Equal(t, `"\x00\x00\x00\x00"`, ChunkType{}.String())
}
