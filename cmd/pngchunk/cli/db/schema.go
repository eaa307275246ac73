package db

import "database/sql"

// InitSchema creates the index tables if they do not exist.
// The index is derived data: it can be dropped and rebuilt by re-scanning.
func InitSchema(d *sql.DB) error {
	_, err := d.Exec(indexDDL)
	return err
}

const indexDDL = `
CREATE TABLE IF NOT EXISTS scans (
	id              VARCHAR PRIMARY KEY,
	path            VARCHAR NOT NULL,
	size            BIGINT NOT NULL,
	chunk_count     INTEGER NOT NULL,
	trailing_bytes  BIGINT NOT NULL DEFAULT 0,
	error           VARCHAR,
	scanned_at      TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS chunks (
	scan_id         VARCHAR NOT NULL REFERENCES scans(id),
	seq             INTEGER NOT NULL,
	byte_offset     BIGINT NOT NULL,
	type            VARCHAR NOT NULL,
	length          BIGINT NOT NULL,
	crc             BIGINT NOT NULL,
	crc_ok          BOOLEAN NOT NULL,
	ancillary       BOOLEAN NOT NULL,
	private         BOOLEAN NOT NULL,
	safe_to_copy    BOOLEAN NOT NULL,
	PRIMARY KEY (scan_id, seq)
);

CREATE TABLE IF NOT EXISTS texts (
	scan_id         VARCHAR NOT NULL REFERENCES scans(id),
	seq             INTEGER NOT NULL,
	type            VARCHAR NOT NULL,
	keyword         VARCHAR NOT NULL,
	lang            VARCHAR,
	translated      VARCHAR,
	compressed      BOOLEAN NOT NULL,
	value           VARCHAR NOT NULL,
	PRIMARY KEY (scan_id, seq)
);
`
