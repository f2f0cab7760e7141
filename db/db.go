// Package db implements the on-disk bigram search database: an inverted
// index over documents plus a compressed document store and optional named
// attribute fields.
//
// A database is a directory:
//
//	lock       advisory lock file (shared for readers, exclusive for writers)
//	doc_id     next doc id to assign, 4 bytes little-endian
//	index.db   term bytes -> ordered list of encoded postings
//	doc.db     doc id -> deflate-compressed normalized text
//	attr2id.db attribute name -> attribute id, 4 bytes little-endian
//	attrs/     one value store per attribute, doc id -> normalized value
package db

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"k8s.io/klog/v2"

	"github.com/SumiTomohiko/o/posting"
	"github.com/SumiTomohiko/o/store"
)

const (
	lockFile    = "lock"
	counterFile = "doc_id"
	indexFile   = "index.db"
	docFile     = "doc.db"
	attrMapFile = "attr2id.db"
	attrsDir    = "attrs"
)

// A DB is an open database handle. It owns every sub-store from Open until
// Close and must not be shared between goroutines.
type DB struct {
	path     string
	writable bool

	lock    *store.Lock
	index   *store.Multi
	docs    *store.Store
	attrMap *store.Store

	attrNames  []string
	attrIDs    map[string]int32
	attrStores []*store.Store

	nextDocID uint32
	loaded    bool
}

// Create makes a new database directory at path with the given attribute
// set. The attribute set is frozen: ids are assigned by position and no
// attribute can be added later.
func Create(path string, attrNames []string) error {
	if len(attrNames) > posting.MaxAttrs {
		return fmt.Errorf("%w: %d declared, at most %d", ErrTooManyAttrs, len(attrNames), posting.MaxAttrs)
	}
	for _, name := range attrNames {
		if name == "" || strings.ContainsAny(name, "/\x00") {
			return fmt.Errorf("%w: %q", ErrBadAttrName, name)
		}
	}
	if err := os.Mkdir(path, 0o755); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}
	if err := os.Mkdir(filepath.Join(path, attrsDir), 0o755); err != nil {
		return fmt.Errorf("failed to create attrs directory: %w", err)
	}
	// The lock file exists from creation on so that openers never race on
	// making it.
	f, err := os.OpenFile(filepath.Join(path, lockFile), os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create lock file: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	if err := writeCounter(filepath.Join(path, counterFile), 0); err != nil {
		return err
	}
	index, err := store.CreateMulti(filepath.Join(path, indexFile))
	if err != nil {
		return err
	}
	if err := index.Close(); err != nil {
		return err
	}
	docs, err := store.Create(filepath.Join(path, docFile))
	if err != nil {
		return err
	}
	if err := docs.Close(); err != nil {
		return err
	}
	attrMap, err := store.Create(filepath.Join(path, attrMapFile))
	if err != nil {
		return err
	}
	for i, name := range attrNames {
		var id [4]byte
		binary.LittleEndian.PutUint32(id[:], uint32(i))
		if err := attrMap.Put([]byte(name), id[:]); err != nil {
			attrMap.Close()
			return err
		}
		values, err := store.Create(filepath.Join(path, attrsDir, name+".db"))
		if err != nil {
			attrMap.Close()
			return err
		}
		if err := values.Close(); err != nil {
			attrMap.Close()
			return err
		}
	}
	if err := attrMap.Close(); err != nil {
		return err
	}
	klog.V(1).Infof("created database %s with %d attributes", path, len(attrNames))
	return nil
}

// OpenRead opens the database at path for searching and retrieval under a
// shared lock.
func OpenRead(path string) (*DB, error) {
	return open(path, false)
}

// OpenWrite opens the database at path for indexing under an exclusive
// lock.
func OpenWrite(path string) (*DB, error) {
	return open(path, true)
}

func open(path string, writable bool) (_ *DB, err error) {
	lock, err := store.AcquireLock(filepath.Join(path, lockFile), writable)
	if err != nil {
		return nil, err
	}
	db := &DB{path: path, writable: writable, lock: lock}
	defer func() {
		if err != nil {
			db.Close()
		}
	}()
	db.nextDocID, err = readCounter(filepath.Join(path, counterFile))
	if err != nil {
		return nil, err
	}
	db.index, err = store.OpenMulti(filepath.Join(path, indexFile), !writable)
	if err != nil {
		return nil, err
	}
	db.docs, err = store.Open(filepath.Join(path, docFile), !writable)
	if err != nil {
		return nil, err
	}
	db.attrMap, err = store.Open(filepath.Join(path, attrMapFile), !writable)
	if err != nil {
		return nil, err
	}
	if err = db.loadAttrs(); err != nil {
		return nil, err
	}
	db.loaded = true
	klog.V(2).Infof("opened %s (writable=%v next_doc_id=%d attrs=%d)",
		path, writable, db.nextDocID, len(db.attrNames))
	return db, nil
}

// loadAttrs reads the frozen name->id registry and opens one value store
// per attribute, indexed by attribute id.
func (db *DB) loadAttrs() error {
	type pair struct {
		name string
		id   uint32
	}
	var pairs []pair
	err := db.attrMap.ForEach(func(key, val []byte) error {
		if len(val) != 4 {
			return fmt.Errorf("corrupt attribute registry entry %q", key)
		}
		pairs = append(pairs, pair{name: string(key), id: binary.LittleEndian.Uint32(val)})
		return nil
	})
	if err != nil {
		return err
	}
	db.attrNames = make([]string, len(pairs))
	db.attrIDs = make(map[string]int32, len(pairs))
	db.attrStores = make([]*store.Store, len(pairs))
	for _, p := range pairs {
		if p.id >= uint32(len(pairs)) {
			return fmt.Errorf("attribute id %d out of range for %d attributes", p.id, len(pairs))
		}
		db.attrNames[p.id] = p.name
		db.attrIDs[p.name] = int32(p.id)
	}
	for id, name := range db.attrNames {
		values, err := store.Open(filepath.Join(db.path, attrsDir, name+".db"), !db.writable)
		if err != nil {
			return err
		}
		db.attrStores[id] = values
	}
	return nil
}

// Close flushes the doc id counter, closes every sub-store and releases the
// lock. All sub-stores are closed even when one of them fails; every
// failure is reported, joined into one error.
func (db *DB) Close() error {
	var errs []error
	if db.writable && db.loaded {
		if err := writeCounter(filepath.Join(db.path, counterFile), db.nextDocID); err != nil {
			errs = append(errs, err)
		}
	}
	for _, values := range db.attrStores {
		if values != nil {
			errs = append(errs, values.Close())
		}
	}
	if db.attrMap != nil {
		errs = append(errs, db.attrMap.Close())
	}
	if db.docs != nil {
		errs = append(errs, db.docs.Close())
	}
	if db.index != nil {
		errs = append(errs, db.index.Close())
	}
	if db.lock != nil {
		errs = append(errs, db.lock.Release())
	}
	return errors.Join(errs...)
}

// NextDocID returns the id the next successful Put will assign.
func (db *DB) NextDocID() uint32 {
	return db.nextDocID
}

// AttrNames returns the attribute names in id order.
func (db *DB) AttrNames() []string {
	return db.attrNames
}

func readCounter(path string) (uint32, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read doc id counter: %w", err)
	}
	if len(raw) != 4 {
		return 0, fmt.Errorf("doc id counter is %d bytes, want 4", len(raw))
	}
	return binary.LittleEndian.Uint32(raw), nil
}

func writeCounter(path string, next uint32) error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], next)
	if err := os.WriteFile(path, buf[:], 0o644); err != nil {
		return fmt.Errorf("failed to write doc id counter: %w", err)
	}
	return nil
}

// docKey is the store key for a doc id: 4 bytes little-endian.
func docKey(id uint32) []byte {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], id)
	return buf[:]
}
