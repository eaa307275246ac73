// Package manifest describes a chunk stream in YAML for the pack command.
package manifest

import (
	"bytes"
	"fmt"
	"time"

	"github.com/rekal-dev/pngchunk/cmd/pngchunk/cli/codec"
	"gopkg.in/yaml.v3"
)

// Manifest is the top-level YAML document.
type Manifest struct {
	// Signature writes the PNG signature; defaults to true.
	Signature *bool  `yaml:"signature"`
	Level     string `yaml:"level"`
	// Source is a PNG whose chunks are copied; new chunks go before its IEND.
	Source string `yaml:"source"`
	// StripUnsafe drops ancillary chunks of Source that are not safe to copy.
	StripUnsafe bool    `yaml:"strip_unsafe"`
	Entries     []Entry `yaml:"chunks"`
}

// Entry is one chunk to add. Which fields apply depends on Type.
type Entry struct {
	Type       string    `yaml:"type"`
	Key        string    `yaml:"key"`
	Lang       string    `yaml:"lang"`
	Translated string    `yaml:"translated"`
	Text       string    `yaml:"text"`
	Compressed bool      `yaml:"compressed"`
	Time       time.Time `yaml:"time"`
	PPUX       uint32    `yaml:"ppux"`
	PPUY       uint32    `yaml:"ppuy"`
	Unit       uint8     `yaml:"unit"`
}

// Parse decodes a manifest, rejecting unknown fields.
func Parse(data []byte) (*Manifest, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var m Manifest
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("manifest: %w", err)
	}
	return &m, nil
}

// WantSignature reports whether the output starts with the PNG signature.
func (m *Manifest) WantSignature() bool {
	return m.Signature == nil || *m.Signature
}

// Chunks converts the entries to chunk values.
func (m *Manifest) Chunks() ([]codec.Chunk, error) {
	var out []codec.Chunk
	for i, e := range m.Entries {
		c, err := e.chunk()
		if err != nil {
			return nil, fmt.Errorf("manifest: chunk %d: %w", i, err)
		}
		out = append(out, c)
	}
	return out, nil
}

func (e Entry) chunk() (codec.Chunk, error) {
	typ, ok := codec.ParseChunkType(e.Type)
	if !ok {
		return nil, fmt.Errorf("bad chunk type %q", e.Type)
	}
	switch typ {
	case codec.TypeITXt:
		return &codec.InternationalText{
			Key:        e.Key,
			LangTag:    e.Lang,
			TransKey:   e.Translated,
			Val:        e.Text,
			Compressed: e.Compressed,
		}, nil
	case codec.TypeTEXt:
		return &codec.Text{Key: e.Key, Val: e.Text}, nil
	case codec.TypeZTXt:
		return &codec.CompressedText{Key: e.Key, Val: e.Text}, nil
	case codec.TypeTIME:
		if e.Time.IsZero() {
			return nil, fmt.Errorf("tIME needs a time")
		}
		c, err := codec.FromTime(e.Time)
		if err != nil {
			return nil, err
		}
		return c, nil
	case codec.TypePHYs:
		return &codec.Physical{PPUX: e.PPUX, PPUY: e.PPUY, Unit: e.Unit}, nil
	}
	return nil, fmt.Errorf("chunk type %s cannot be built from a manifest", typ)
}

// Build encodes the manifest. source is the content of m.Source, or nil.
func Build(m *Manifest, source []byte) ([]byte, error) {
	level, err := codec.ParseLevel(m.Level)
	if err != nil {
		return nil, fmt.Errorf("manifest: %w", err)
	}
	chunks, err := m.Chunks()
	if err != nil {
		return nil, err
	}

	enc := codec.NewEncoder(codec.EncodeOptions{Level: level, Signature: m.WantSignature()})
	addNew := func() error {
		for _, c := range chunks {
			if err := enc.Encode(c); err != nil {
				return fmt.Errorf("manifest: %w", err)
			}
		}
		return nil
	}

	if source == nil {
		if err := addNew(); err != nil {
			return nil, err
		}
		if err := enc.Encode(&codec.ImageEnd{}); err != nil {
			return nil, err
		}
		return enc.Bytes(), nil
	}

	hasSig := bytes.HasPrefix(source, []byte(codec.Signature))
	slices, _, err := codec.Scan(source, hasSig)
	if err != nil {
		return nil, fmt.Errorf("manifest: source: %w", err)
	}
	sawEnd := false
	for _, s := range slices {
		if s.Type == codec.TypeIEND {
			if err := addNew(); err != nil {
				return nil, err
			}
			sawEnd = true
		} else if m.StripUnsafe && s.Type.Ancillary() && !s.Type.SafeToCopy() {
			continue
		}
		if err := enc.AppendRaw(s.Record(source)); err != nil {
			return nil, fmt.Errorf("manifest: source chunk %s at offset %d: %w", s.Type, s.Offset, err)
		}
	}
	if !sawEnd {
		if err := addNew(); err != nil {
			return nil, err
		}
		if err := enc.Encode(&codec.ImageEnd{}); err != nil {
			return nil, err
		}
	}
	return enc.Bytes(), nil
}
