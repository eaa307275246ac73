package codec

import (
	"encoding/binary"
	"hash/crc32"
)

// rawChunk frames payload as a chunk of type typ with a correct CRC.
func rawChunk(typ string, payload []byte) []byte {
	out := binary.BigEndian.AppendUint32(nil, uint32(len(payload)))
	out = append(out, typ...)
	out = append(out, payload...)
	return binary.BigEndian.AppendUint32(out, crc32.ChecksumIEEE(out[4:]))
}

// stream concatenates records, optionally behind the PNG signature.
func stream(signature bool, records ...[]byte) []byte {
	var out []byte
	if signature {
		out = append(out, Signature...)
	}
	for _, r := range records {
		out = append(out, r...)
	}
	return out
}

var iendRecord = []byte{0, 0, 0, 0, 'I', 'E', 'N', 'D', 0xAE, 0x42, 0x60, 0x82}
