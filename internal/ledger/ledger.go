// Package ledger records written bundles in a local SQLite database so
// later runs and the list command can see what exists without walking
// the content tree.
package ledger

import (
	"database/sql"
	"encoding/hex"
	"fmt"
	"time"

	"golang.org/x/crypto/blake2b"
	_ "modernc.org/sqlite"
)

// Bundle is one ledger row.
type Bundle struct {
	Slug      string
	Key       string
	Title     string
	Year      string
	Checksum  string
	WrittenAt time.Time
}

// Ledger tracks written bundles and their content checksums.
type Ledger struct {
	db *sql.DB
}

const schema = `CREATE TABLE IF NOT EXISTS bundles (
  slug TEXT PRIMARY KEY,
  key TEXT NOT NULL,
  title TEXT NOT NULL,
  year TEXT NOT NULL,
  checksum TEXT NOT NULL,
  written_at TEXT NOT NULL
)`

// Open opens (creating if needed) the ledger database at path.
func Open(path string) (*Ledger, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening ledger: %w", err)
	}

	// SQLite doesn't support concurrent writes
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating ledger schema: %w", err)
	}
	return &Ledger{db: db}, nil
}

// Close closes the underlying database.
func (l *Ledger) Close() error {
	return l.db.Close()
}

// Checksum hashes a rendered front matter document for change
// detection between runs.
func Checksum(doc string) string {
	sum := blake2b.Sum256([]byte(doc))
	return hex.EncodeToString(sum[:])
}

// Record upserts one bundle row.
func (l *Ledger) Record(b Bundle) error {
	_, err := l.db.Exec(`INSERT INTO bundles (slug, key, title, year, checksum, written_at)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT(slug) DO UPDATE SET
  key = excluded.key,
  title = excluded.title,
  year = excluded.year,
  checksum = excluded.checksum,
  written_at = excluded.written_at`,
		b.Slug, b.Key, b.Title, b.Year, b.Checksum,
		b.WrittenAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("recording bundle %s: %w", b.Slug, err)
	}
	return nil
}

// Get returns one bundle row, or nil if the slug is unknown.
func (l *Ledger) Get(slug string) (*Bundle, error) {
	row := l.db.QueryRow(
		`SELECT slug, key, title, year, checksum, written_at FROM bundles WHERE slug = ?`, slug)
	b, err := scanBundle(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading bundle %s: %w", slug, err)
	}
	return &b, nil
}

// List returns all bundle rows ordered by slug.
func (l *Ledger) List() ([]Bundle, error) {
	rows, err := l.db.Query(
		`SELECT slug, key, title, year, checksum, written_at FROM bundles ORDER BY slug`)
	if err != nil {
		return nil, fmt.Errorf("listing bundles: %w", err)
	}
	defer rows.Close()

	var bundles []Bundle
	for rows.Next() {
		b, err := scanBundle(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning bundle row: %w", err)
		}
		bundles = append(bundles, b)
	}
	return bundles, rows.Err()
}

func scanBundle(scan func(dest ...any) error) (Bundle, error) {
	var b Bundle
	var writtenAt string
	if err := scan(&b.Slug, &b.Key, &b.Title, &b.Year, &b.Checksum, &writtenAt); err != nil {
		return Bundle{}, err
	}
	t, err := time.Parse(time.RFC3339, writtenAt)
	if err != nil {
		return Bundle{}, fmt.Errorf("parsing written_at %q: %w", writtenAt, err)
	}
	b.WrittenAt = t
	return b, nil
}
