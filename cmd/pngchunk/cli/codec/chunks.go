package codec

// Chunk is a decoded chunk value. The set of implementations is closed: each
// variant has one sub-codec, selected by type tag in parsePayload.
type Chunk interface {
	ChunkType() ChunkType
	write(e *Enc) error
}

// MaxKeywordLen is the longest keyword a text chunk may carry.
const MaxKeywordLen = 79

func checkKeyword(key string) error {
	if len(key) < 1 || len(key) > MaxKeywordLen {
		return &TextSizeError{Len: len(key)}
	}
	return nil
}

// parsePayload decodes the payload read by p as a chunk of type t.
func parsePayload(t ChunkType, p *Parser) (Chunk, error) {
	switch t {
	case TypeITXt:
		return parseInternationalText(p)
	case TypeTEXt:
		return parseText(p)
	case TypeZTXt:
		return parseCompressedText(p)
	case TypeTIME:
		return parseTime(p)
	case TypePHYs:
		return parsePhysical(p)
	case TypeIEND:
		return parseImageEnd(p)
	}
	return parseUnknown(t, p)
}

// readCompressionMethod consumes the method byte shared by zTXt and iTXt.
func readCompressionMethod(p *Parser) error {
	m, err := p.U8()
	if err != nil {
		return err
	}
	if m != 0 {
		return &CompressionMethodError{Method: m}
	}
	return nil
}
