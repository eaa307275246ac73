package codec

// ImageEnd is the IEND chunk that terminates a PNG stream.
type ImageEnd struct{}

func (*ImageEnd) ChunkType() ChunkType { return TypeIEND }

func parseImageEnd(p *Parser) (Chunk, error) {
	if p.Len() != 0 {
		return nil, &LengthError{Type: TypeIEND, Got: p.Len(), Want: 0}
	}
	return &ImageEnd{}, nil
}

func (*ImageEnd) write(e *Enc) error {
	if err := e.Prepare(0, TypeIEND); err != nil {
		return err
	}
	return e.WriteCRC()
}
