package codec

import "fmt"

// Unknown holds any chunk without a dedicated sub-codec, including the
// image chunks (IHDR, PLTE, IDAT, ...) this package does not interpret.
type Unknown struct {
	Name ChunkType
	Data []byte
}

func (u *Unknown) ChunkType() ChunkType { return u.Name }

func parseUnknown(t ChunkType, p *Parser) (Chunk, error) {
	data, err := p.Vec(p.Len())
	if err != nil {
		return nil, err
	}
	return &Unknown{Name: t, Data: data}, nil
}

func (u *Unknown) write(e *Enc) error {
	if _, ok := ParseChunkType(string(u.Name[:])); !ok {
		return fmt.Errorf("%w: %s", ErrInvalidType, u.Name)
	}
	switch u.Name {
	case TypeITXt, TypeTEXt, TypeZTXt, TypeTIME, TypePHYs, TypeIEND:
		return fmt.Errorf("%w: %s", ErrReservedType, u.Name)
	}
	if err := e.Prepare(len(u.Data), u.Name); err != nil {
		return err
	}
	e.Raw(u.Data)
	return e.WriteCRC()
}
