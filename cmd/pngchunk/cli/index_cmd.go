package cli

import (
	"database/sql"
	"fmt"
	"math/rand"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rekal-dev/pngchunk/cmd/pngchunk/cli/codec"
	"github.com/rekal-dev/pngchunk/cmd/pngchunk/cli/db"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func newIndexCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "index <file>...",
		Short: "Scan files and record their chunks in the index",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if err := EnsureIndex(cfg.DBPath); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
				return NewSilentError(err)
			}

			d, err := db.Open(cfg.DBPath)
			if err != nil {
				return err
			}
			defer d.Close()

			logger := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
			entropy := rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec
			newID := func() string {
				return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
			}

			failed := 0
			for _, path := range args {
				data, err := readInput(path)
				if err != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), err)
					failed++
					continue
				}
				scan, err := indexFile(d, newID(), path, data, logger)
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", path, err)
					failed++
					continue
				}
				if scan.Error != "" {
					fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %d chunks (%s)\n", scan.ID, path, scan.ChunkCount, scan.Error)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %d chunks\n", scan.ID, path, scan.ChunkCount)
				}
			}

			if failed > 0 {
				return NewSilentError(&FilesFailedError{Failed: failed, Total: len(args)})
			}
			return nil
		},
	}
}

// indexFile records one scan of data in a single transaction. Framing errors
// do not fail the scan: the chunks before the error are stored and the error
// text is kept on the scan row.
func indexFile(d *sql.DB, id, path string, data []byte, logger *zerolog.Logger) (db.Scan, error) {
	slices, trailing, scanErr := codec.Scan(data, hasSignature(data))

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	scan := db.Scan{
		ID:            id,
		Path:          abs,
		Size:          int64(len(data)),
		ChunkCount:    len(slices),
		TrailingBytes: int64(trailing),
		ScannedAt:     time.Now(),
	}
	if scanErr != nil {
		scan.Error = scanErr.Error()
	}

	tx, err := d.Begin()
	if err != nil {
		return scan, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if err := db.InsertScan(tx, scan); err != nil {
		return scan, fmt.Errorf("insert scan: %w", err)
	}
	for seq, s := range slices {
		row := db.Chunk{
			Seq:        seq,
			Offset:     int64(s.Offset),
			Type:       s.Type.String(),
			Length:     int64(s.Length),
			CRC:        s.CRC,
			CRCOK:      s.CRCValid,
			Ancillary:  s.Type.Ancillary(),
			Private:    s.Type.Private(),
			SafeToCopy: s.Type.SafeToCopy(),
		}
		if err := db.InsertChunk(tx, id, row); err != nil {
			return scan, fmt.Errorf("insert chunk %d: %w", seq, err)
		}

		if !s.CRCValid {
			continue
		}
		text, ok, err := decodeText(s.Record(data))
		if err != nil {
			logger.Warn().Err(err).Str("path", path).Int("offset", s.Offset).Msg("text chunk not indexed")
			continue
		}
		if !ok {
			continue
		}
		text.Seq = seq
		if err := db.InsertText(tx, id, text); err != nil {
			return scan, fmt.Errorf("insert text %d: %w", seq, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return scan, fmt.Errorf("commit: %w", err)
	}
	return scan, nil
}

// decodeText decodes a single chunk record and converts it to a text row.
// ok is false for chunks that carry no text.
func decodeText(record []byte) (db.Text, bool, error) {
	switch codec.TypeOf(record) {
	case codec.TypeTEXt, codec.TypeZTXt, codec.TypeITXt:
	default:
		return db.Text{}, false, nil
	}

	chunks, err := codec.Decode(record, codec.DecodeOptions{})
	if err != nil {
		return db.Text{}, false, err
	}
	switch c := chunks[0].(type) {
	case *codec.Text:
		return db.Text{Type: "tEXt", Keyword: c.Key, Value: c.Val}, true, nil
	case *codec.CompressedText:
		return db.Text{Type: "zTXt", Keyword: c.Key, Compressed: true, Value: c.Val}, true, nil
	case *codec.InternationalText:
		return db.Text{
			Type:       "iTXt",
			Keyword:    c.Key,
			Lang:       c.LangTag,
			Translated: c.TransKey,
			Compressed: c.Compressed,
			Value:      c.Val,
		}, true, nil
	}
	return db.Text{}, false, nil
}
