// Package store wraps the bolt B+tree files that back a database: plain
// byte-key stores, the duplicate-preserving index store, and the advisory
// lock that guards a database directory.
package store

import (
	"errors"
	"fmt"
	"os"
	"time"

	bolt "go.etcd.io/bbolt"
)

var bucketName = []byte("kv")

// ErrNotFound is returned by Get when the key has no value.
var ErrNotFound = errors.New("key not found")

// A Store is a single-valued byte-key store backed by one bolt file.
// Keys iterate in bytewise order.
type Store struct {
	db *bolt.DB
}

// Create makes a new empty store file. The file must not already exist.
func Create(path string) (*Store, error) {
	if _, err := os.Stat(path); err == nil {
		return nil, fmt.Errorf("store already exists: %s", path)
	}
	db, err := bolt.Open(path, 0o644, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to create store %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize store %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

// Open opens an existing store file. Read-only opens share the file with
// other readers; writable opens are exclusive.
func Open(path string, readOnly bool) (*Store, error) {
	db, err := openBolt(path, readOnly)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

func openBolt(path string, readOnly bool) (*bolt.DB, error) {
	opts := &bolt.Options{Timeout: time.Second, ReadOnly: readOnly}
	db, err := bolt.Open(path, 0o644, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open store %s: %w", path, err)
	}
	return db, nil
}

// Put stores val under key, replacing any previous value.
func (s *Store) Put(key, val []byte) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Put(key, val)
	})
}

// Get returns a copy of the value stored under key, or ErrNotFound.
func (s *Store) Get(key []byte) ([]byte, error) {
	var out []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketName).Get(key)
		if v == nil {
			return ErrNotFound
		}
		out = append([]byte(nil), v...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ForEach calls fn for every key/value pair in bytewise key order. The
// slices passed to fn are only valid for the duration of the call.
func (s *Store) ForEach(fn func(key, val []byte) error) error {
	return s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).ForEach(fn)
	})
}

func (s *Store) Close() error {
	return s.db.Close()
}
