package codec

import (
	"bytes"
	"encoding/binary"
)

// Parser reads primitive fields from one chunk payload. Every read is bounds
// checked and fails with ErrTruncated on a short payload.
type Parser struct {
	buf []byte
	pos int

	// maxText caps decompressed text; 0 means no cap.
	maxText int
}

// NewParser returns a Parser over payload. It does not copy payload.
func NewParser(payload []byte) *Parser {
	return &Parser{buf: payload}
}

// Len returns the total payload length.
func (p *Parser) Len() int { return len(p.buf) }

// Remaining returns the number of unread bytes.
func (p *Parser) Remaining() int { return len(p.buf) - p.pos }

func (p *Parser) U8() (byte, error) {
	if p.Remaining() < 1 {
		return 0, ErrTruncated
	}
	b := p.buf[p.pos]
	p.pos++
	return b, nil
}

func (p *Parser) U16() (uint16, error) {
	if p.Remaining() < 2 {
		return 0, ErrTruncated
	}
	v := binary.BigEndian.Uint16(p.buf[p.pos:])
	p.pos += 2
	return v, nil
}

func (p *Parser) U32() (uint32, error) {
	if p.Remaining() < 4 {
		return 0, ErrTruncated
	}
	v := binary.BigEndian.Uint32(p.buf[p.pos:])
	p.pos += 4
	return v, nil
}

// Str reads a NUL-terminated string and consumes the terminator.
func (p *Parser) Str() (string, error) {
	i := bytes.IndexByte(p.buf[p.pos:], 0)
	if i < 0 {
		return "", ErrTruncated
	}
	s := string(p.buf[p.pos : p.pos+i])
	p.pos += i + 1
	return s, nil
}

// Vec reads exactly n bytes into a new slice.
func (p *Parser) Vec(n int) ([]byte, error) {
	if n < 0 || p.Remaining() < n {
		return nil, ErrTruncated
	}
	out := make([]byte, n)
	copy(out, p.buf[p.pos:])
	p.pos += n
	return out, nil
}

func (p *Parser) inflate(data []byte) ([]byte, error) {
	return DecompressLimit(data, p.maxText)
}
