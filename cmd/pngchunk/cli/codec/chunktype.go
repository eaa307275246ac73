package codec

import "strconv"

// ChunkType is the 4-byte type tag of a chunk. The case of bytes 0, 2 and 3
// carries the ancillary, private and safe-to-copy flags.
type ChunkType [4]byte

const flagBit = 0x20

var (
	TypeIEND = ChunkType{'I', 'E', 'N', 'D'}
	TypeITXt = ChunkType{'i', 'T', 'X', 't'}
	TypeTEXt = ChunkType{'t', 'E', 'X', 't'}
	TypeZTXt = ChunkType{'z', 'T', 'X', 't'}
	TypeTIME = ChunkType{'t', 'I', 'M', 'E'}
	TypePHYs = ChunkType{'p', 'H', 'Y', 's'}
)

// ParseChunkType converts a 4-letter string to a ChunkType.
func ParseChunkType(s string) (ChunkType, bool) {
	var t ChunkType
	if len(s) != 4 {
		return t, false
	}
	for i := 0; i < 4; i++ {
		c := s[i]
		if (c < 'A' || c > 'Z') && (c < 'a' || c > 'z') {
			return t, false
		}
		t[i] = c
	}
	return t, true
}

// Ancillary reports whether a decoder may ignore the chunk.
func (t ChunkType) Ancillary() bool { return t[0]&flagBit != 0 }

// Private reports whether the type is outside the public registry.
func (t ChunkType) Private() bool { return t[2]&flagBit != 0 }

// SafeToCopy reports whether editors may copy the chunk unmodified after
// changing critical chunks.
func (t ChunkType) SafeToCopy() bool { return t[3]&flagBit != 0 }

// Flags renders the three flags as "a", "p" and "s", with "-" for unset.
func (t ChunkType) Flags() string {
	b := []byte("---")
	if t.Ancillary() {
		b[0] = 'a'
	}
	if t.Private() {
		b[1] = 'p'
	}
	if t.SafeToCopy() {
		b[2] = 's'
	}
	return string(b)
}

func (t ChunkType) String() string {
	for _, c := range t {
		if c < 0x20 || c > 0x7e {
			return strconv.Quote(string(t[:]))
		}
	}
	return string(t[:])
}
