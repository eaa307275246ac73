package codec

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// Signature is the 8-byte prefix of every PNG file.
const Signature = "\x89PNG\r\n\x1a\n"

// DefaultMaxTextSize caps decompressed text when DecodeOptions.MaxTextSize is 0.
const DefaultMaxTextSize = 16 << 20

// TrailingPolicy decides what happens to bytes after IEND.
type TrailingPolicy int

const (
	TrailingIgnore TrailingPolicy = iota
	TrailingWarn
	TrailingError
)

// ParseTrailingPolicy accepts "ignore", "warn" and "error".
func ParseTrailingPolicy(s string) (TrailingPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "ignore":
		return TrailingIgnore, nil
	case "warn":
		return TrailingWarn, nil
	case "error":
		return TrailingError, nil
	}
	return TrailingIgnore, fmt.Errorf("trailing policy %q: want ignore, warn or error", s)
}

func (p TrailingPolicy) String() string {
	switch p {
	case TrailingWarn:
		return "warn"
	case TrailingError:
		return "error"
	}
	return "ignore"
}

// DecodeOptions configures a Decoder. The zero value decodes a bare chunk
// stream, aborts on the first bad chunk and ignores data after IEND.
type DecodeOptions struct {
	// Signature requires and skips the PNG signature.
	Signature bool

	// SkipInvalid skips chunks whose payload fails to decode instead of
	// aborting. Framing and checksum errors always abort.
	SkipInvalid bool

	Trailing TrailingPolicy

	// MaxTextSize caps decompressed text per chunk. 0 means
	// DefaultMaxTextSize; negative disables the cap.
	MaxTextSize int

	// Logger receives skip and trailing-data events. Nil disables logging.
	Logger *zerolog.Logger
}

func (o DecodeOptions) maxText() int {
	switch {
	case o.MaxTextSize == 0:
		return DefaultMaxTextSize
	case o.MaxTextSize < 0:
		return 0
	}
	return o.MaxTextSize
}

// Decoder walks a complete chunk stream held in memory. Framing is validated
// on the caller's buffer; only decoded chunk values are copied out of it.
type Decoder struct {
	data []byte
	pos  int
	opts DecodeOptions
	log  zerolog.Logger

	started bool
	err     error // terminal state, io.EOF on success
	skipped []*ChunkError
}

// NewDecoder returns a Decoder over data. data must not change while the
// Decoder is in use.
func NewDecoder(data []byte, opts DecodeOptions) *Decoder {
	d := &Decoder{data: data, opts: opts, log: zerolog.Nop()}
	if opts.Logger != nil {
		d.log = *opts.Logger
	}
	return d
}

// Offset returns the position of the next chunk in the buffer.
func (d *Decoder) Offset() int { return d.pos }

// Skipped returns the chunks dropped under SkipInvalid.
func (d *Decoder) Skipped() []*ChunkError { return d.skipped }

// Next returns the next chunk, or io.EOF once the buffer ends on a chunk
// boundary or IEND has been read. Any other error is terminal and is
// returned again by later calls.
func (d *Decoder) Next() (Chunk, error) {
	if d.err != nil {
		return nil, d.err
	}
	if !d.started {
		d.started = true
		if d.opts.Signature {
			if !bytes.HasPrefix(d.data, []byte(Signature)) {
				d.err = ErrBadSignature
				return nil, d.err
			}
			d.pos = len(Signature)
		}
	}

	for {
		if d.pos == len(d.data) {
			d.err = io.EOF
			return nil, d.err
		}

		offset := d.pos
		chunk := d.data[offset:]
		payload, err := Data(chunk)
		if err != nil {
			d.err = &ChunkError{Offset: offset, Type: partialType(chunk), Err: err}
			return nil, d.err
		}
		t := TypeOf(chunk)
		if !CheckCRC(chunk) {
			d.err = &ChunkError{Offset: offset, Type: t, Err: &ChecksumError{
				Type:     t,
				Stored:   storedCRC(chunk),
				Computed: CRC32(chunk[4 : 8+len(payload)]),
			}}
			return nil, d.err
		}
		d.pos += len(payload) + Overhead

		p := NewParser(payload)
		p.maxText = d.opts.maxText()
		c, err := parsePayload(t, p)
		if err != nil {
			cerr := &ChunkError{Offset: offset, Type: t, Err: err}
			if d.opts.SkipInvalid {
				d.log.Warn().Err(err).Str("type", t.String()).Int("offset", offset).
					Msg("skipping invalid chunk")
				d.skipped = append(d.skipped, cerr)
				if t == TypeIEND {
					// A malformed IEND still ends the stream.
					d.err = d.finish()
					return nil, d.err
				}
				continue
			}
			d.err = cerr
			return nil, d.err
		}

		if t == TypeIEND {
			d.err = d.finish()
		}
		return c, nil
	}
}

// finish applies the trailing policy once IEND has been read.
func (d *Decoder) finish() error {
	rest := len(d.data) - d.pos
	if rest == 0 {
		return io.EOF
	}
	switch d.opts.Trailing {
	case TrailingWarn:
		d.log.Warn().Int("bytes", rest).Int("offset", d.pos).Msg("data after IEND")
	case TrailingError:
		return fmt.Errorf("%w: %d bytes at offset %d", ErrTrailingData, rest, d.pos)
	default:
		d.log.Debug().Int("bytes", rest).Msg("ignoring data after IEND")
	}
	return io.EOF
}

// partialType returns the type tag of a chunk too short to frame, if present.
func partialType(chunk []byte) ChunkType {
	var t ChunkType
	if len(chunk) >= 8 {
		t = TypeOf(chunk)
	}
	return t
}

// Decode decodes every chunk in data.
func Decode(data []byte, opts DecodeOptions) ([]Chunk, error) {
	d := NewDecoder(data, opts)
	var chunks []Chunk
	for {
		c, err := d.Next()
		if err == io.EOF {
			return chunks, nil
		}
		if err != nil {
			return chunks, err
		}
		chunks = append(chunks, c)
	}
}

// EncodeOptions configures an Encoder.
type EncodeOptions struct {
	Level Level
	// Signature writes the PNG signature before the first chunk.
	Signature bool
}

// Encoder serializes chunk values into one buffer.
type Encoder struct {
	enc *Enc
}

func NewEncoder(opts EncodeOptions) *Encoder {
	var out []byte
	if opts.Signature {
		out = append(out, Signature...)
	}
	return &Encoder{enc: NewEnc(out, opts.Level)}
}

// Encode appends c. On error nothing of c is kept and the Encoder stays usable.
func (e *Encoder) Encode(c Chunk) error {
	mark := len(e.enc.out)
	if err := c.write(e.enc); err != nil {
		e.enc.out = e.enc.out[:mark]
		e.enc.abort()
		return fmt.Errorf("encode %s: %w", c.ChunkType(), err)
	}
	return nil
}

// AppendRaw copies an already framed chunk after validating its framing and
// checksum. chunk may be followed by further bytes; only its record is copied.
func (e *Encoder) AppendRaw(chunk []byte) error {
	payload, err := Data(chunk)
	if err != nil {
		return err
	}
	if !CheckCRC(chunk) {
		t := TypeOf(chunk)
		return &ChecksumError{Type: t, Stored: storedCRC(chunk), Computed: CRC32(chunk[4 : 8+len(payload)])}
	}
	e.enc.out = Append(e.enc.out, chunk)
	return nil
}

// Bytes returns the encoded stream.
func (e *Encoder) Bytes() []byte { return e.enc.Bytes() }

// Encode serializes chunks into a new buffer.
func Encode(chunks []Chunk, opts EncodeOptions) ([]byte, error) {
	e := NewEncoder(opts)
	for _, c := range chunks {
		if err := e.Encode(c); err != nil {
			return e.Bytes(), err
		}
	}
	return e.Bytes(), nil
}
