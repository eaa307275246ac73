package codec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCRC32_KnownValues(t *testing.T) {
	t.Parallel()

	require.Equal(t, uint32(0xCBF43926), CRC32([]byte("123456789")))
	require.Equal(t, uint32(0xAE426082), CRC32([]byte("IEND")))
	require.Equal(t, uint32(0), CRC32(nil))
}

func TestCheckCRC_IEND(t *testing.T) {
	t.Parallel()

	require.True(t, CheckCRC(iendRecord))
}

func TestCheckCRC_DetectsEverySingleByteFlip(t *testing.T) {
	t.Parallel()

	rec, err := Encode([]Chunk{&InternationalText{
		Key:     "Comment",
		LangTag: "en",
		Val:     "checksums catch every single-byte error",
	}}, EncodeOptions{})
	require.NoError(t, err)
	require.True(t, CheckCRC(rec))

	// Type tag and payload: everything the CRC covers.
	for i := 4; i < len(rec)-4; i++ {
		for _, mask := range []byte{0x01, 0x20, 0x80, 0xff} {
			bad := append([]byte(nil), rec...)
			bad[i] ^= mask
			require.False(t, CheckCRC(bad), "flip %#x at byte %d went unnoticed", mask, i)
		}
	}
}

func TestGenerateCRC(t *testing.T) {
	t.Parallel()

	rec := rawChunk("tEXt", []byte("k\x00value"))
	payload, err := Data(rec)
	require.NoError(t, err)

	payload[2] = 'V'
	require.False(t, CheckCRC(rec))

	GenerateCRC(rec)
	require.True(t, CheckCRC(rec))
	require.Equal(t, rawChunk("tEXt", []byte("k\x00Value")), rec)
}
