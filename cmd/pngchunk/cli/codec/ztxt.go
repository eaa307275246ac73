package codec

// CompressedText is a zTXt chunk: Latin-1 text, always zlib-compressed.
type CompressedText struct {
	Key string
	Val string
}

func (*CompressedText) ChunkType() ChunkType { return TypeZTXt }

// Wire layout: key \0 method compressed-text. 2 covers the NUL and method.
func parseCompressedText(p *Parser) (Chunk, error) {
	key, err := p.Str()
	if err != nil {
		return nil, err
	}
	if err := checkKeyword(key); err != nil {
		return nil, err
	}
	if err := readCompressionMethod(p); err != nil {
		return nil, err
	}
	data, err := p.Vec(p.Len() - (len(key) + 2))
	if err != nil {
		return nil, err
	}
	raw, err := p.inflate(data)
	if err != nil {
		return nil, err
	}
	val, err := fromLatin1(raw)
	if err != nil {
		return nil, err
	}
	return &CompressedText{Key: key, Val: val}, nil
}

func (t *CompressedText) write(e *Enc) error {
	if err := checkKeyword(t.Key); err != nil {
		return err
	}
	val, err := toLatin1(t.Val)
	if err != nil {
		return err
	}
	zdata, err := Compress(val, e.Level())
	if err != nil {
		return err
	}
	if err := e.Prepare(len(t.Key)+2+len(zdata), TypeZTXt); err != nil {
		return err
	}
	if err := e.Str(t.Key); err != nil {
		return err
	}
	e.U8(0)
	e.Raw(zdata)
	return e.WriteCRC()
}
