package save

import (
	"context"
	"os"
	"path/filepath"

	"github.com/samdwyer/dungeoncrawl/internal/errors"
)

// FileStore keeps the snapshot as a JSON file on disk.
type FileStore struct {
	path string
}

// NewFileStore creates a store writing to path. Parent directories are
// created on the first save.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, errors.InvalidArgument("save path is required")
	}
	return &FileStore{path: filepath.Clean(path)}, nil
}

// Path returns the file the store writes to.
func (f *FileStore) Path() string { return f.path }

// Save writes the snapshot, replacing any previous one.
func (f *FileStore) Save(_ context.Context, s *Snapshot) error {
	raw, err := Encode(s)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return errors.Wrapf(err, "failed to create save directory for %s", f.path)
	}

	// Rename a sibling file into place so readers never see a partial save.
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write save file %s", tmp)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return errors.Wrapf(err, "failed to replace save file %s", f.path)
	}
	return nil
}

// Load reads and decodes the snapshot.
func (f *FileStore) Load(_ context.Context) (*Snapshot, error) {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("no save file at %s", f.path)
		}
		return nil, errors.Wrapf(err, "failed to read save file %s", f.path)
	}
	return Decode(raw)
}

// Exists reports whether a save file is present.
func (f *FileStore) Exists(_ context.Context) (bool, error) {
	_, err := os.Stat(f.path)
	switch {
	case err == nil:
		return true, nil
	case os.IsNotExist(err):
		return false, nil
	default:
		return false, errors.Wrapf(err, "failed to stat save file %s", f.path)
	}
}

// Close is a no-op.
func (f *FileStore) Close() error { return nil }

var _ Store = (*FileStore)(nil)
