package manifest

import (
	"testing"
	"time"

	"github.com/rekal-dev/pngchunk/cmd/pngchunk/cli/codec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
level: best
chunks:
  - {type: iTXt, key: Title, lang: en, translated: Titel, text: Hello, compressed: true}
  - {type: tEXt, key: Author, text: Zoë}
  - {type: zTXt, key: Comment, text: long long long}
  - {type: tIME, time: 2024-01-02T03:04:05Z}
  - {type: pHYs, ppux: 2835, ppuy: 2835, unit: 1}
`

func TestParseAndBuild(t *testing.T) {
	t.Parallel()

	m, err := Parse([]byte(sample))
	require.NoError(t, err)
	assert.True(t, m.WantSignature())

	out, err := Build(m, nil)
	require.NoError(t, err)

	chunks, err := codec.Decode(out, codec.DecodeOptions{Signature: true})
	require.NoError(t, err)
	require.Len(t, chunks, 6)
	assert.Equal(t, &codec.InternationalText{Key: "Title", LangTag: "en", TransKey: "Titel", Val: "Hello", Compressed: true}, chunks[0])
	assert.Equal(t, &codec.Text{Key: "Author", Val: "Zoë"}, chunks[1])
	assert.Equal(t, &codec.CompressedText{Key: "Comment", Val: "long long long"}, chunks[2])
	assert.Equal(t, time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), chunks[3].(*codec.Time).AsTime())
	assert.Equal(t, &codec.Physical{PPUX: 2835, PPUY: 2835, Unit: 1}, chunks[4])
	assert.Equal(t, &codec.ImageEnd{}, chunks[5])
}

func TestBuild_WithSource(t *testing.T) {
	t.Parallel()

	src, err := codec.Encode([]codec.Chunk{
		&codec.Unknown{Name: codec.ChunkType{'I', 'H', 'D', 'R'}, Data: make([]byte, 13)},
		&codec.Unknown{Name: codec.ChunkType{'v', 'p', 'A', 'G'}, Data: []byte{1}},
		&codec.Text{Key: "Old", Val: "kept"},
		&codec.ImageEnd{},
	}, codec.EncodeOptions{Signature: true})
	require.NoError(t, err)

	m, err := Parse([]byte("strip_unsafe: true\nchunks:\n  - {type: tEXt, key: New, text: added}\n"))
	require.NoError(t, err)

	out, err := Build(m, src)
	require.NoError(t, err)

	chunks, err := codec.Decode(out, codec.DecodeOptions{Signature: true})
	require.NoError(t, err)
	var got []string
	for _, c := range chunks {
		got = append(got, c.ChunkType().String())
	}
	assert.Equal(t, []string{"IHDR", "tEXt", "tEXt", "IEND"}, got)
	assert.Equal(t, &codec.Text{Key: "New", Val: "added"}, chunks[2])
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte("chunks:\n  - {type: iTXt, bogus: 1}\n"))
	require.Error(t, err)

	for _, doc := range []string{
		"chunks:\n  - {type: IDAT}\n",
		"chunks:\n  - {type: xx}\n",
		"chunks:\n  - {type: tIME}\n",
		"level: ultra\n",
		"chunks:\n  - {type: iTXt, key: ''}\n",
	} {
		m, err := Parse([]byte(doc))
		require.NoError(t, err, doc)
		_, err = Build(m, nil)
		require.Error(t, err, doc)
	}
}

func TestSignatureOff(t *testing.T) {
	t.Parallel()

	m, err := Parse([]byte("signature: false\n"))
	require.NoError(t, err)
	out, err := Build(m, nil)
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 0, 0, 'I', 'E', 'N', 'D', 0xAE, 0x42, 0x60, 0x82}, out)
}
