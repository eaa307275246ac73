package codec

import (
	"errors"
	"fmt"
)

var (
	// ErrTruncated is returned when a buffer is shorter than a declared
	// length implies.
	ErrTruncated = errors.New("chunk: truncated")

	// ErrChunkTooLarge is returned when a chunk declares a length above MaxLength.
	ErrChunkTooLarge = errors.New("chunk: length exceeds 2^31")

	// ErrCompressionMethod is matched by every *CompressionMethodError.
	ErrCompressionMethod = errors.New("chunk: unsupported compression method")

	ErrBadSignature = errors.New("chunk: missing PNG signature")
	ErrTrailingData = errors.New("chunk: data after IEND")
	ErrNulInString  = errors.New("chunk: string contains NUL")
	ErrTextTooLarge = errors.New("chunk: decompressed text exceeds limit")

	// ErrInvalidType is returned when encoding a type tag that is not four
	// ASCII letters.
	ErrInvalidType = errors.New("chunk: type tag must be four ASCII letters")
	// ErrReservedType is returned when an Unknown value names a type that has
	// its own chunk value.
	ErrReservedType = errors.New("chunk: type has a dedicated chunk value")
	ErrInvalidUTF8  = errors.New("chunk: text is not valid UTF-8")
)

// ChecksumError reports a chunk whose stored CRC does not match its contents.
type ChecksumError struct {
	Type     ChunkType
	Stored   uint32
	Computed uint32
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf("chunk: %s checksum mismatch: stored %08x, computed %08x",
		e.Type, e.Stored, e.Computed)
}

// TextSizeError reports a keyword outside the 1..79 byte range.
type TextSizeError struct {
	Len int
}

func (e *TextSizeError) Error() string {
	return fmt.Sprintf("chunk: keyword length %d outside 1..%d", e.Len, MaxKeywordLen)
}

// CompressionMethodError reports a compression method byte other than 0.
type CompressionMethodError struct {
	Method byte
}

func (e *CompressionMethodError) Error() string {
	return fmt.Sprintf("chunk: unsupported compression method %d", e.Method)
}

func (e *CompressionMethodError) Is(target error) bool {
	return target == ErrCompressionMethod
}

// CompressionError wraps a failure of the zlib transform.
type CompressionError struct {
	Err error
}

func (e *CompressionError) Error() string {
	return "chunk: compression: " + e.Err.Error()
}

func (e *CompressionError) Unwrap() error {
	return e.Err
}

// TextEncodingError reports text that cannot be represented in Latin-1.
type TextEncodingError struct {
	Err error
}

func (e *TextEncodingError) Error() string {
	return "chunk: text not representable in Latin-1: " + e.Err.Error()
}

func (e *TextEncodingError) Unwrap() error {
	return e.Err
}

// LengthError reports a fixed-size chunk with the wrong payload length.
type LengthError struct {
	Type ChunkType
	Got  int
	Want int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("chunk: %s payload is %d bytes, want %d", e.Type, e.Got, e.Want)
}

// ChunkError attaches the stream position of a failing chunk to its error.
type ChunkError struct {
	Offset int
	Type   ChunkType
	Err    error
}

func (e *ChunkError) Error() string {
	return fmt.Sprintf("chunk %s at offset %d: %v", e.Type, e.Offset, e.Err)
}

func (e *ChunkError) Unwrap() error {
	return e.Err
}
