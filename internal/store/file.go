package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/fruitstand/backend/internal/model"
)

// FileStore keeps the collection in one flat JSON object file. Flush
// writes to a temp file in the same directory and renames it over the
// old one, so a reader never observes a partially written collection.
type FileStore struct {
	path string
}

var _ Store = (*FileStore)(nil)

// OpenFile prepares the file store at path. The parent directory is
// created if missing. A missing or unreadable file is reset to an empty
// collection, which is persisted before OpenFile returns.
func OpenFile(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, model.WrapError(model.ErrCodeStorage, "create data directory", err)
	}

	s := &FileStore{path: path}

	data, err := os.ReadFile(path)
	if err == nil {
		var c Collection
		if json.Unmarshal(data, &c) == nil {
			return s, nil
		}
	}

	// Absent or corrupt: start over from an empty collection.
	if err := s.Flush(context.Background(), Collection{}); err != nil {
		return nil, err
	}
	return s, nil
}

// Load implements Store.
func (s *FileStore) Load(_ context.Context) (Collection, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, model.WrapError(model.ErrCodeStorage, "read recipe file", err)
	}

	c := Collection{}
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, model.WrapError(model.ErrCodeStorage, "decode recipe file", err)
	}
	return c, nil
}

// Flush implements Store.
func (s *FileStore) Flush(_ context.Context, c Collection) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return model.WrapError(model.ErrCodeStorage, "encode recipe file", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".recipes-*.json")
	if err != nil {
		return model.WrapError(model.ErrCodeStorage, "create temp file", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return model.WrapError(model.ErrCodeStorage, "write temp file", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return model.WrapError(model.ErrCodeStorage, "close temp file", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		os.Remove(tmp.Name())
		return model.WrapError(model.ErrCodeStorage, "chmod temp file", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return model.WrapError(model.ErrCodeStorage, "replace recipe file", err)
	}
	return nil
}

// Close implements Store.
func (s *FileStore) Close() error { return nil }
