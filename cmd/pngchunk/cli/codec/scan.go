package codec

import (
	"bytes"
	"fmt"
)

// ChunkSlice describes a chunk's location in a stream.
type ChunkSlice struct {
	Type     ChunkType
	Offset   int // byte offset of the record (length field)
	Length   int // payload length
	CRC      uint32
	CRCValid bool
}

// PayloadOffset returns the offset of the payload.
func (s ChunkSlice) PayloadOffset() int { return s.Offset + 8 }

// Record returns the complete record of s within data.
func (s ChunkSlice) Record(data []byte) []byte {
	return data[s.Offset : s.Offset+s.Length+Overhead]
}

// Payload returns the payload bytes of s within data.
func (s ChunkSlice) Payload(data []byte) []byte {
	return data[s.PayloadOffset() : s.PayloadOffset()+s.Length]
}

// Scan walks the framing of data without decoding payloads and returns every
// chunk up to and including IEND, plus the number of bytes after IEND.
// Checksum mismatches are reported per chunk; framing errors abort.
func Scan(data []byte, signature bool) ([]ChunkSlice, int, error) {
	pos := 0
	if signature {
		if !bytes.HasPrefix(data, []byte(Signature)) {
			return nil, 0, ErrBadSignature
		}
		pos = len(Signature)
	}

	var chunks []ChunkSlice
	for pos < len(data) {
		chunk := data[pos:]
		payload, err := Data(chunk)
		if err != nil {
			return chunks, 0, fmt.Errorf("scan: chunk at offset %d: %w", pos, err)
		}
		s := ChunkSlice{
			Type:     TypeOf(chunk),
			Offset:   pos,
			Length:   len(payload),
			CRC:      storedCRC(chunk),
			CRCValid: CheckCRC(chunk),
		}
		chunks = append(chunks, s)
		pos = len(data) - len(Next(chunk))
		if s.Type == TypeIEND {
			return chunks, len(data) - pos, nil
		}
	}
	return chunks, 0, nil
}
