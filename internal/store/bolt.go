package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/fruitstand/backend/internal/model"
)

var recipeBucket = []byte("recipes")

// BoltStore keeps the collection in a bbolt file, one key per recipe.
// Flush swaps the bucket inside a single write transaction, which gives
// the same all-or-nothing replace as the flat-file backend.
type BoltStore struct {
	db *bolt.DB
}

var _ Store = (*BoltStore)(nil)

// OpenBolt initializes the bbolt file and ensures the recipe bucket exists.
func OpenBolt(path string) (*BoltStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, model.WrapError(model.ErrCodeStorage, "create data directory", err)
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, model.WrapError(model.ErrCodeStorage, "open bolt file", err)
	}

	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(recipeBucket)
		return err
	}); err != nil {
		db.Close()
		return nil, model.WrapError(model.ErrCodeStorage, "ensure recipe bucket", err)
	}

	return &BoltStore{db: db}, nil
}

// Load implements Store.
func (s *BoltStore) Load(_ context.Context) (Collection, error) {
	c := Collection{}
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(recipeBucket).ForEach(func(k, v []byte) error {
			var r model.Recipe
			if err := json.Unmarshal(v, &r); err != nil {
				return err
			}
			c[string(k)] = &r
			return nil
		})
	})
	if err != nil {
		return nil, model.WrapError(model.ErrCodeStorage, "load recipe bucket", err)
	}
	return c, nil
}

// Flush implements Store.
func (s *BoltStore) Flush(_ context.Context, c Collection) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket(recipeBucket); err != nil {
			return err
		}
		b, err := tx.CreateBucket(recipeBucket)
		if err != nil {
			return err
		}
		for id, r := range c {
			payload, err := json.Marshal(r)
			if err != nil {
				return err
			}
			if err := b.Put([]byte(id), payload); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return model.WrapError(model.ErrCodeStorage, "flush recipe bucket", err)
	}
	return nil
}

// Close implements Store.
func (s *BoltStore) Close() error { return s.db.Close() }
