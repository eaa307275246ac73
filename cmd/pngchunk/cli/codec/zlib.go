package codec

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/zlib"
)

// Level selects the zlib effort used when compressing text payloads.
type Level int

const (
	LevelDefault Level = iota
	LevelNone
	LevelFastest
	LevelBest
)

// ParseLevel accepts "default", "none", "fastest" and "best".
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "default":
		return LevelDefault, nil
	case "none":
		return LevelNone, nil
	case "fastest", "fast":
		return LevelFastest, nil
	case "best":
		return LevelBest, nil
	}
	return LevelDefault, fmt.Errorf("compression level %q: want none, fastest, default or best", s)
}

func (l Level) String() string {
	switch l {
	case LevelNone:
		return "none"
	case LevelFastest:
		return "fastest"
	case LevelBest:
		return "best"
	}
	return "default"
}

func (l Level) zlibLevel() int {
	switch l {
	case LevelNone:
		return zlib.NoCompression
	case LevelFastest:
		return zlib.BestSpeed
	case LevelBest:
		return zlib.BestCompression
	}
	return zlib.DefaultCompression
}

// Compress returns data as a zlib stream.
func Compress(data []byte, level Level) ([]byte, error) {
	var buf bytes.Buffer
	zw, err := zlib.NewWriterLevel(&buf, level.zlibLevel())
	if err != nil {
		return nil, &CompressionError{Err: err}
	}
	if _, err := zw.Write(data); err != nil {
		return nil, &CompressionError{Err: err}
	}
	if err := zw.Close(); err != nil {
		return nil, &CompressionError{Err: err}
	}
	return buf.Bytes(), nil
}

// Decompress inflates a zlib stream with no output limit.
func Decompress(data []byte) ([]byte, error) {
	return DecompressLimit(data, 0)
}

// DecompressLimit inflates a zlib stream, failing with ErrTextTooLarge once
// the output would exceed limit bytes. A limit of 0 disables the check.
func DecompressLimit(data []byte, limit int) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, &CompressionError{Err: err}
	}
	defer zr.Close() //nolint:errcheck

	var src io.Reader = zr
	if limit > 0 {
		src = io.LimitReader(zr, int64(limit)+1)
	}
	var out bytes.Buffer
	if _, err := io.Copy(&out, src); err != nil {
		return nil, &CompressionError{Err: err}
	}
	if limit > 0 && out.Len() > limit {
		return nil, ErrTextTooLarge
	}
	return out.Bytes(), nil
}
