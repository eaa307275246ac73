package cli

import (
	"bytes"
	"fmt"
	"os"

	"github.com/rekal-dev/pngchunk/cmd/pngchunk/cli/codec"
)

// EnsureIndex checks that the chunk index at path has been created.
func EnsureIndex(path string) error {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return fmt.Errorf("index not initialized at %s; run 'pngchunk init'", path)
	}
	return nil
}

// readInput reads a whole PNG file or bare chunk stream.
func readInput(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

// hasSignature reports whether data starts with the PNG file signature.
// Inputs without it are treated as bare chunk streams.
func hasSignature(data []byte) bool {
	return bytes.HasPrefix(data, []byte(codec.Signature))
}
