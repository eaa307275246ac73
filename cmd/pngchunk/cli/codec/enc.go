package codec

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// Enc appends framed chunks to a growing buffer. A chunk is written as
// Prepare, any number of field writes, then WriteCRC. Prepare fixes the
// payload length up front and WriteCRC refuses to seal a chunk whose written
// payload does not match it.
type Enc struct {
	out   []byte
	level Level

	start   int // offset of the open chunk, -1 when none
	declLen int
}

// NewEnc returns an Enc appending to out.
func NewEnc(out []byte, level Level) *Enc {
	return &Enc{out: out, level: level, start: -1}
}

// Level returns the compression level sub-codecs should use.
func (e *Enc) Level() Level { return e.level }

// Bytes returns everything written so far. The slice is valid even after a
// failed write; it then ends with a partial chunk.
func (e *Enc) Bytes() []byte { return e.out }

// Prepare writes the length and type of a new chunk with a payload of length
// bytes.
func (e *Enc) Prepare(length int, t ChunkType) error {
	if e.start >= 0 {
		return fmt.Errorf("chunk: %s started before previous chunk was finished", t)
	}
	if length < 0 || uint64(length) > MaxLength {
		return ErrChunkTooLarge
	}
	e.start = len(e.out)
	e.declLen = length
	e.out = binary.BigEndian.AppendUint32(e.out, uint32(length))
	e.out = append(e.out, t[:]...)
	return nil
}

func (e *Enc) U8(b byte) {
	e.out = append(e.out, b)
}

func (e *Enc) U16(v uint16) {
	e.out = binary.BigEndian.AppendUint16(e.out, v)
}

func (e *Enc) U32(v uint32) {
	e.out = binary.BigEndian.AppendUint32(e.out, v)
}

// Str writes s followed by a NUL terminator.
func (e *Enc) Str(s string) error {
	if strings.IndexByte(s, 0) >= 0 {
		return ErrNulInString
	}
	e.out = append(e.out, s...)
	e.out = append(e.out, 0)
	return nil
}

// Raw writes b verbatim.
func (e *Enc) Raw(b []byte) {
	e.out = append(e.out, b...)
}

// WriteCRC closes the open chunk by appending its checksum.
func (e *Enc) WriteCRC() error {
	if e.start < 0 {
		return fmt.Errorf("chunk: WriteCRC without Prepare")
	}
	start := e.start
	e.start = -1
	if got := len(e.out) - start - 8; got != e.declLen {
		return fmt.Errorf("chunk: %s wrote %d payload bytes, declared %d",
			TypeOf(e.out[start:]), got, e.declLen)
	}
	e.out = append(e.out, 0, 0, 0, 0)
	GenerateCRC(e.out[start:])
	return nil
}

// abort drops the open-chunk state so the Enc can be reused after an error.
func (e *Enc) abort() {
	e.start = -1
}
