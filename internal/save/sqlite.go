package save

import (
	"context"
	"database/sql"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/samdwyer/dungeoncrawl/internal/errors"
)

const createSavesTable = `
CREATE TABLE IF NOT EXISTS saves (
	slot     TEXT PRIMARY KEY,
	document TEXT NOT NULL,
	saved_at TEXT NOT NULL
);
`

const upsertSave = `
INSERT INTO saves (slot, document, saved_at)
VALUES (?1, ?2, ?3)
ON CONFLICT(slot) DO UPDATE SET document = excluded.document, saved_at = excluded.saved_at;
`

// SQLiteStore keeps snapshots in a SQLite database, one row per slot.
type SQLiteStore struct {
	db   *sql.DB
	slot string
}

// OpenSQLite opens (or creates) the database at path and prepares the schema.
func OpenSQLite(path, slot string) (*SQLiteStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.InvalidArgument("sqlite path is required")
	}
	if slot == "" {
		slot = DefaultSlot
	}

	cleanPath := filepath.Clean(path)
	if dir := filepath.Dir(cleanPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Wrapf(err, "failed to create directory for %s", cleanPath)
		}
	}

	dsn := cleanPath + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open sqlite db")
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to ping sqlite db")
	}
	if _, err := db.Exec(createSavesTable); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to create saves table")
	}

	return &SQLiteStore{db: db, slot: slot}, nil
}

// Save upserts the snapshot into the store's slot.
func (s *SQLiteStore) Save(ctx context.Context, snap *Snapshot) error {
	raw, err := Encode(snap)
	if err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, upsertSave, s.slot, string(raw), snap.SavedAt); err != nil {
		return errors.Wrapf(err, "failed to save slot %s", s.slot)
	}
	return nil
}

// Load reads the snapshot in the store's slot.
func (s *SQLiteStore) Load(ctx context.Context) (*Snapshot, error) {
	var document string
	err := s.db.QueryRowContext(ctx, `SELECT document FROM saves WHERE slot = ?1`, s.slot).Scan(&document)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.NotFoundf("no save in slot %s", s.slot)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load slot %s", s.slot)
	}
	return Decode([]byte(document))
}

// Exists reports whether the slot holds a snapshot.
func (s *SQLiteStore) Exists(ctx context.Context) (bool, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM saves WHERE slot = ?1`, s.slot).Scan(&n); err != nil {
		return false, errors.Wrapf(err, "failed to check slot %s", s.slot)
	}
	return n > 0, nil
}

// Close releases the database.
func (s *SQLiteStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

var _ Store = (*SQLiteStore)(nil)
