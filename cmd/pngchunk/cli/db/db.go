package db

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/marcboeker/go-duckdb"
)

// DefaultPath is where the index lives when no --db flag is given.
const DefaultPath = ".pngchunk/index.db"

// Open opens (or creates) the DuckDB index at path.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database %s: %w", path, err)
	}
	return db, nil
}

// OpenReadOnly opens an existing index so that no statement can modify it.
func OpenReadOnly(path string) (*sql.DB, error) {
	return Open(path + "?access_mode=READ_ONLY")
}

// Execer is satisfied by *sql.DB and *sql.Tx.
type Execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

// Scan is one indexed file.
type Scan struct {
	ID            string
	Path          string
	Size          int64
	ChunkCount    int
	TrailingBytes int64
	Error         string
	ScannedAt     time.Time
}

// Chunk is one row of the chunks table.
type Chunk struct {
	Seq        int
	Offset     int64
	Type       string
	Length     int64
	CRC        uint32
	CRCOK      bool
	Ancillary  bool
	Private    bool
	SafeToCopy bool
}

// Text is one decoded text chunk.
type Text struct {
	Seq        int
	Type       string
	Keyword    string
	Lang       string
	Translated string
	Compressed bool
	Value      string
}

func InsertScan(d Execer, s Scan) error {
	var errText any
	if s.Error != "" {
		errText = s.Error
	}
	_, err := d.Exec(
		`INSERT INTO scans (id, path, size, chunk_count, trailing_bytes, error, scanned_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.Path, s.Size, s.ChunkCount, s.TrailingBytes, errText, s.ScannedAt.UTC(),
	)
	return err
}

func InsertChunk(d Execer, scanID string, c Chunk) error {
	_, err := d.Exec(
		`INSERT INTO chunks (scan_id, seq, byte_offset, type, length, crc, crc_ok, ancillary, private, safe_to_copy)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		scanID, c.Seq, c.Offset, c.Type, c.Length, int64(c.CRC), c.CRCOK, c.Ancillary, c.Private, c.SafeToCopy,
	)
	return err
}

func InsertText(d Execer, scanID string, t Text) error {
	_, err := d.Exec(
		`INSERT INTO texts (scan_id, seq, type, keyword, lang, translated, compressed, value)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		scanID, t.Seq, t.Type, t.Keyword, t.Lang, t.Translated, t.Compressed, t.Value,
	)
	return err
}

// RecentScans returns up to limit scans, newest first.
func RecentScans(d *sql.DB, limit int) ([]Scan, error) {
	rows, err := d.Query(
		`SELECT id, path, size, chunk_count, trailing_bytes, coalesce(error, ''), scanned_at
		 FROM scans ORDER BY scanned_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	var scans []Scan
	for rows.Next() {
		var s Scan
		if err := rows.Scan(&s.ID, &s.Path, &s.Size, &s.ChunkCount, &s.TrailingBytes, &s.Error, &s.ScannedAt); err != nil {
			return nil, err
		}
		scans = append(scans, s)
	}
	return scans, rows.Err()
}
