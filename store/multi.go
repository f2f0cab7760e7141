package store

import (
	"encoding/binary"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

// A Multi is a multi-valued byte-key store: each key holds an ordered
// sequence of values, returned in the order they were appended. Keys
// iterate in bytewise order.
//
// Every key maps to its own bolt bucket; values sit under monotonically
// increasing big-endian sequence numbers so that a cursor walk replays
// them in insertion order.
type Multi struct {
	db *bolt.DB
}

// An Entry is one (key, value) pair for a batched append.
type Entry struct {
	Key []byte
	Val []byte
}

// CreateMulti makes a new empty multi-valued store file.
func CreateMulti(path string) (*Multi, error) {
	db, err := bolt.Open(path, 0o644, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to create store %s: %w", path, err)
	}
	return &Multi{db: db}, nil
}

// OpenMulti opens an existing multi-valued store file.
func OpenMulti(path string, readOnly bool) (*Multi, error) {
	db, err := openBolt(path, readOnly)
	if err != nil {
		return nil, err
	}
	return &Multi{db: db}, nil
}

// Append adds val at the end of key's value sequence.
func (m *Multi) Append(key, val []byte) error {
	return m.AppendBatch([]Entry{{Key: key, Val: val}})
}

// AppendBatch appends every entry in one transaction, in the given order.
func (m *Multi) AppendBatch(entries []Entry) error {
	return m.db.Update(func(tx *bolt.Tx) error {
		for _, e := range entries {
			b, err := tx.CreateBucketIfNotExists(e.Key)
			if err != nil {
				return fmt.Errorf("failed to create list for key %q: %w", e.Key, err)
			}
			seq, err := b.NextSequence()
			if err != nil {
				return err
			}
			var sk [8]byte
			binary.BigEndian.PutUint64(sk[:], seq)
			if err := b.Put(sk[:], e.Val); err != nil {
				return err
			}
		}
		return nil
	})
}

// List returns copies of all values appended under key, oldest first.
// A key never appended to yields an empty list.
func (m *Multi) List(key []byte) ([][]byte, error) {
	var out [][]byte
	err := m.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(key)
		if b == nil {
			return nil
		}
		return b.ForEach(func(_, v []byte) error {
			out = append(out, append([]byte(nil), v...))
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Keys calls fn for every key in bytewise order.
func (m *Multi) Keys(fn func(key []byte) error) error {
	return m.db.View(func(tx *bolt.Tx) error {
		return tx.ForEach(func(name []byte, _ *bolt.Bucket) error {
			return fn(name)
		})
	})
}

// Walk calls fn for every key and each of its values in order. The slices
// passed to fn are only valid for the duration of the call.
func (m *Multi) Walk(fn func(key, val []byte) error) error {
	return m.db.View(func(tx *bolt.Tx) error {
		return tx.ForEach(func(name []byte, b *bolt.Bucket) error {
			return b.ForEach(func(_, v []byte) error {
				return fn(name, v)
			})
		})
	})
}

func (m *Multi) Close() error {
	return m.db.Close()
}
