package codec

import "golang.org/x/text/encoding/charmap"

// Text is a tEXt chunk. Val is held as UTF-8 and stored as Latin-1.
type Text struct {
	Key string
	Val string
}

func (*Text) ChunkType() ChunkType { return TypeTEXt }

func parseText(p *Parser) (Chunk, error) {
	key, err := p.Str()
	if err != nil {
		return nil, err
	}
	if err := checkKeyword(key); err != nil {
		return nil, err
	}
	data, err := p.Vec(p.Remaining())
	if err != nil {
		return nil, err
	}
	val, err := fromLatin1(data)
	if err != nil {
		return nil, err
	}
	return &Text{Key: key, Val: val}, nil
}

func (t *Text) write(e *Enc) error {
	if err := checkKeyword(t.Key); err != nil {
		return err
	}
	val, err := toLatin1(t.Val)
	if err != nil {
		return err
	}
	if err := e.Prepare(len(t.Key)+1+len(val), TypeTEXt); err != nil {
		return err
	}
	if err := e.Str(t.Key); err != nil {
		return err
	}
	e.Raw(val)
	return e.WriteCRC()
}

func fromLatin1(b []byte) (string, error) {
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
	if err != nil {
		return "", &TextEncodingError{Err: err}
	}
	return string(out), nil
}

func toLatin1(s string) ([]byte, error) {
	out, err := charmap.ISO8859_1.NewEncoder().String(s)
	if err != nil {
		return nil, &TextEncodingError{Err: err}
	}
	return []byte(out), nil
}
