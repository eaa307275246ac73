package codec

import (
	"strings"
	"unicode/utf8"
)

// InternationalText is an iTXt chunk: UTF-8 text with an optional language
// tag and translated keyword, optionally zlib-compressed on the wire.
type InternationalText struct {
	// Key names what Val represents, e.g. Title or Author. 1 to 79 bytes.
	Key string
	// LangTag is an RFC 3066 language tag; may be empty.
	LangTag string
	// TransKey is Key translated into LangTag; may be empty.
	TransKey string
	Val      string
	// Compressed selects zlib compression of Val on the wire.
	Compressed bool
}

func (*InternationalText) ChunkType() ChunkType { return TypeITXt }

// Wire layout:
//
//	key \0 flag method langtag \0 transkey \0 message
//
// The message has no terminator; its length is the payload length minus the
// other fields, where 5 covers three NULs plus the flag and method bytes.
func parseInternationalText(p *Parser) (Chunk, error) {
	key, err := p.Str()
	if err != nil {
		return nil, err
	}
	if err := checkKeyword(key); err != nil {
		return nil, err
	}
	flag, err := p.U8()
	if err != nil {
		return nil, err
	}
	if err := readCompressionMethod(p); err != nil {
		return nil, err
	}
	langtag, err := p.Str()
	if err != nil {
		return nil, err
	}
	transkey, err := p.Str()
	if err != nil {
		return nil, err
	}
	data, err := p.Vec(p.Len() - (len(key) + len(langtag) + len(transkey) + 5))
	if err != nil {
		return nil, err
	}

	compressed := flag != 0
	if compressed {
		if data, err = p.inflate(data); err != nil {
			return nil, err
		}
	}
	return &InternationalText{
		Key:        key,
		LangTag:    langtag,
		TransKey:   transkey,
		Val:        strings.ToValidUTF8(string(data), "�"),
		Compressed: compressed,
	}, nil
}

func (t *InternationalText) write(e *Enc) error {
	if err := checkKeyword(t.Key); err != nil {
		return err
	}
	// Decoding replaces invalid sequences, so they could not round-trip.
	if !utf8.ValidString(t.Val) {
		return ErrInvalidUTF8
	}

	msg := []byte(t.Val)
	if t.Compressed {
		var err error
		if msg, err = Compress(msg, e.Level()); err != nil {
			return err
		}
	}

	n := len(t.Key) + len(t.LangTag) + len(t.TransKey) + 5 + len(msg)
	if err := e.Prepare(n, TypeITXt); err != nil {
		return err
	}
	if err := e.Str(t.Key); err != nil {
		return err
	}
	var flag byte
	if t.Compressed {
		flag = 1
	}
	e.U8(flag)
	e.U8(0)
	if err := e.Str(t.LangTag); err != nil {
		return err
	}
	if err := e.Str(t.TransKey); err != nil {
		return err
	}
	e.Raw(msg)
	return e.WriteCRC()
}
