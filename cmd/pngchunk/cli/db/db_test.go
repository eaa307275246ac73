package db

import (
	"path/filepath"
	"testing"
	"time"
)

func TestOpen_CreateAndPing(t *testing.T) {
	t.Parallel()

	db, err := Open(filepath.Join(t.TempDir(), "index.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		t.Fatalf("Ping: %v", err)
	}
}

func TestInitSchema(t *testing.T) {
	t.Parallel()

	db, err := Open(filepath.Join(t.TempDir(), "index.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer db.Close()

	if err := InitSchema(db); err != nil {
		t.Fatalf("InitSchema: %v", err)
	}
	// Idempotent.
	if err := InitSchema(db); err != nil {
		t.Fatalf("InitSchema again: %v", err)
	}

	for _, table := range []string{"scans", "chunks", "texts"} {
		var count int
		if err := db.QueryRow("SELECT count(*) FROM " + table).Scan(&count); err != nil {
			t.Errorf("table %s should exist: %v", table, err)
		}
	}
}

func TestInsertAndRecentScans(t *testing.T) {
	t.Parallel()

	db, err := Open(filepath.Join(t.TempDir(), "index.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer db.Close()
	if err := InitSchema(db); err != nil {
		t.Fatalf("InitSchema: %v", err)
	}

	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	for i, id := range []string{"01A", "01B"} {
		s := Scan{ID: id, Path: id + ".png", Size: 100, ChunkCount: 2, ScannedAt: base.Add(time.Duration(i) * time.Minute)}
		if err := InsertScan(db, s); err != nil {
			t.Fatalf("InsertScan: %v", err)
		}
		if err := InsertChunk(db, id, Chunk{Seq: 0, Offset: 8, Type: "IEND", CRC: 0xAE426082, CRCOK: true}); err != nil {
			t.Fatalf("InsertChunk: %v", err)
		}
	}
	if err := InsertText(db, "01A", Text{Seq: 1, Type: "iTXt", Keyword: "Title", Value: "hi", Compressed: true}); err != nil {
		t.Fatalf("InsertText: %v", err)
	}

	scans, err := RecentScans(db, 1)
	if err != nil {
		t.Fatalf("RecentScans: %v", err)
	}
	if len(scans) != 1 || scans[0].ID != "01B" {
		t.Fatalf("expected newest scan 01B, got %+v", scans)
	}

	var crc int64
	if err := db.QueryRow("SELECT crc FROM chunks WHERE scan_id = '01A'").Scan(&crc); err != nil {
		t.Fatalf("select crc: %v", err)
	}
	if uint32(crc) != 0xAE426082 {
		t.Errorf("crc = %08x, want ae426082", crc)
	}
}

func TestOpenReadOnly_RefusesWrites(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "index.db")
	rw, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := InitSchema(rw); err != nil {
		t.Fatalf("InitSchema: %v", err)
	}
	rw.Close()

	ro, err := OpenReadOnly(path)
	if err != nil {
		t.Fatalf("OpenReadOnly: %v", err)
	}
	defer ro.Close()

	var n int
	if err := ro.QueryRow("SELECT count(*) FROM scans").Scan(&n); err != nil {
		t.Errorf("expected reads to work, got: %v", err)
	}
	if _, err := ro.Exec("DROP TABLE texts"); err == nil {
		t.Error("expected DROP on a read-only index to fail")
	}
}
