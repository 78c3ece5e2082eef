// Package persist stores city snapshots in a sqlite database, keyed by
// name. Blobs are lz4-compressed and stored with a blake3 content hash that
// is verified on load.
package persist

import (
	"database/sql"
	"encoding/hex"
	"fmt"
	"time"

	"lukechampine.com/blake3"
	_ "modernc.org/sqlite"

	"microcity/internal/sims/city"
)

const schema = `
CREATE TABLE IF NOT EXISTS snapshots (
	name       TEXT PRIMARY KEY,
	created_at INTEGER NOT NULL,
	serial     INTEGER NOT NULL,
	city_time  INTEGER NOT NULL,
	funds      INTEGER NOT NULL,
	hash       TEXT NOT NULL,
	blob       BLOB NOT NULL
);
`

// Store is a snapshot database.
type Store struct {
	db *sql.DB
}

// Open creates or opens the snapshot database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init snapshot schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error { return s.db.Close() }

func hashBlob(blob []byte) string {
	sum := blake3.Sum256(blob)
	return hex.EncodeToString(sum[:])
}

// Save serializes the city under the given name, replacing any previous
// snapshot with that name.
func (s *Store) Save(name string, c *city.City) error {
	if name == "" {
		return fmt.Errorf("snapshot name must not be empty")
	}
	blob, err := encodeSnapshot(c)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(
		`INSERT INTO snapshots (name, created_at, serial, city_time, funds, hash, blob)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET
		   created_at=excluded.created_at, serial=excluded.serial,
		   city_time=excluded.city_time, funds=excluded.funds,
		   hash=excluded.hash, blob=excluded.blob`,
		name, time.Now().Unix(), c.MapSerial(), c.CityTime(), c.TotalFunds(),
		hashBlob(blob), blob,
	)
	if err != nil {
		return fmt.Errorf("save snapshot %q: %w", name, err)
	}
	return nil
}

// Load applies the named snapshot onto the city after verifying the
// content hash.
func (s *Store) Load(name string, c *city.City) error {
	var hash string
	var blob []byte
	err := s.db.QueryRow(
		`SELECT hash, blob FROM snapshots WHERE name = ?`, name,
	).Scan(&hash, &blob)
	if err == sql.ErrNoRows {
		return fmt.Errorf("snapshot %q not found", name)
	}
	if err != nil {
		return fmt.Errorf("load snapshot %q: %w", name, err)
	}
	if got := hashBlob(blob); got != hash {
		return fmt.Errorf("snapshot %q corrupt: hash mismatch", name)
	}
	return decodeSnapshot(blob, c)
}

// Info describes a stored snapshot.
type Info struct {
	Name      string
	CreatedAt time.Time
	Serial    uint64
	CityTime  int
	Funds     int64
}

// List returns the stored snapshots, most recent first.
func (s *Store) List() ([]Info, error) {
	rows, err := s.db.Query(
		`SELECT name, created_at, serial, city_time, funds
		 FROM snapshots ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	defer rows.Close()

	var out []Info
	for rows.Next() {
		var info Info
		var created int64
		if err := rows.Scan(&info.Name, &created, &info.Serial, &info.CityTime, &info.Funds); err != nil {
			return nil, err
		}
		info.CreatedAt = time.Unix(created, 0)
		out = append(out, info)
	}
	return out, rows.Err()
}
