package codec

import "fmt"

// Physical is a pHYs chunk: intended pixel size or aspect ratio.
type Physical struct {
	PPUX uint32 // pixels per unit, X axis
	PPUY uint32 // pixels per unit, Y axis
	Unit uint8  // 0 = aspect ratio only, 1 = metre
}

const physLen = 9

func (*Physical) ChunkType() ChunkType { return TypePHYs }

func parsePhysical(p *Parser) (Chunk, error) {
	if p.Len() != physLen {
		return nil, &LengthError{Type: TypePHYs, Got: p.Len(), Want: physLen}
	}
	var ph Physical
	ph.PPUX, _ = p.U32()
	ph.PPUY, _ = p.U32()
	ph.Unit, _ = p.U8()
	if ph.Unit > 1 {
		return nil, fmt.Errorf("chunk: pHYs unit %d", ph.Unit)
	}
	return &ph, nil
}

func (ph *Physical) write(e *Enc) error {
	if ph.Unit > 1 {
		return fmt.Errorf("chunk: pHYs unit %d", ph.Unit)
	}
	if err := e.Prepare(physLen, TypePHYs); err != nil {
		return err
	}
	e.U32(ph.PPUX)
	e.U32(ph.PPUY)
	e.U8(ph.Unit)
	return e.WriteCRC()
}
