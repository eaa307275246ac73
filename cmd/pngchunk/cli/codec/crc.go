package codec

import (
	"encoding/binary"
	"hash/crc32"
)

// CRC32 computes the PNG chunk checksum (CRC-32/IEEE) over b.
func CRC32(b []byte) uint32 {
	return crc32.ChecksumIEEE(b)
}

// CheckCRC reports whether the stored checksum of chunk matches its type and
// payload. The chunk must already have passed Data.
func CheckCRC(chunk []byte) bool {
	n := int(Length(chunk))
	stored := binary.BigEndian.Uint32(chunk[n+8:])
	return stored == CRC32(chunk[4:n+8])
}

// GenerateCRC recomputes the checksum of chunk and writes it into the trailer.
// Only the encode path calls this; decoding never rewrites a checksum.
func GenerateCRC(chunk []byte) {
	n := int(Length(chunk))
	binary.BigEndian.PutUint32(chunk[n+8:], CRC32(chunk[4:n+8]))
}

// storedCRC returns the trailer of a validated chunk.
func storedCRC(chunk []byte) uint32 {
	return binary.BigEndian.Uint32(chunk[int(Length(chunk))+8:])
}
