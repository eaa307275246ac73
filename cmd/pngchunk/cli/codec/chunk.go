package codec

import "encoding/binary"

const (
	// MaxLength is the largest payload length a chunk may declare.
	MaxLength = 1 << 31

	// Overhead is the framing around a payload: length, type and CRC.
	Overhead = 12
)

// The functions below view a byte slice as one chunk starting at offset 0.
// They never copy; callers validate with Data before using Next or CheckCRC.

// Length returns the declared payload length. It does not validate it.
func Length(chunk []byte) uint32 {
	return binary.BigEndian.Uint32(chunk[0:4])
}

// TypeOf returns the 4-byte type tag.
func TypeOf(chunk []byte) ChunkType {
	var t ChunkType
	copy(t[:], chunk[4:8])
	return t
}

// Data returns the payload of chunk after checking the declared length
// against MaxLength and the size of the slice. The result aliases chunk, so
// callers may also edit the payload in place through it.
func Data(chunk []byte) ([]byte, error) {
	if len(chunk) < Overhead {
		return nil, ErrTruncated
	}
	n := uint64(Length(chunk))
	if n > MaxLength {
		return nil, ErrChunkTooLarge
	}
	if uint64(len(chunk)) < n+Overhead {
		return nil, ErrTruncated
	}
	return chunk[8 : 8+n], nil
}

// Next returns the slice starting at the chunk that follows this one.
func Next(chunk []byte) []byte {
	return chunk[int(Length(chunk))+Overhead:]
}

func IsAncillary(chunk []byte) bool  { return chunk[4]&flagBit != 0 }
func IsPrivate(chunk []byte) bool    { return chunk[6]&flagBit != 0 }
func IsSafeToCopy(chunk []byte) bool { return chunk[7]&flagBit != 0 }

// Append copies the whole record of chunk (length+12 bytes) onto out.
func Append(out, chunk []byte) []byte {
	return append(out, chunk[:int(Length(chunk))+Overhead]...)
}
