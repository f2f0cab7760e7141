package db

import (
	"errors"
	"fmt"

	"github.com/SumiTomohiko/o/posting"
	"github.com/SumiTomohiko/o/store"
)

// Doc returns the normalized text of the document with the given id.
func (db *DB) Doc(id uint32) (string, error) {
	blob, err := db.docs.Get(docKey(id))
	if errors.Is(err, store.ErrNotFound) {
		return "", fmt.Errorf("%w: %d", ErrDocMissing, id)
	}
	if err != nil {
		return "", err
	}
	text, err := inflate(blob)
	if err != nil {
		return "", err
	}
	return string(text), nil
}

// Attr returns the normalized value the document stored under the named
// attribute. A document that never supplied the attribute reports
// ErrDocMissing.
func (db *DB) Attr(name string, id uint32) (string, error) {
	attrID, ok := db.attrIDs[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrAttrUnknown, name)
	}
	value, err := db.attrStores[attrID].Get(docKey(id))
	if errors.Is(err, store.ErrNotFound) {
		return "", fmt.Errorf("%w: %d", ErrDocMissing, id)
	}
	if err != nil {
		return "", err
	}
	return string(value), nil
}

// Postings returns the decoded posting list for a term, ascending by
// (doc id, attribute id). An unindexed term yields an empty list.
func (db *DB) Postings(term []byte) ([]*posting.Posting, error) {
	raw, err := db.index.List(term)
	if err != nil {
		return nil, err
	}
	out := make([]*posting.Posting, 0, len(raw))
	for _, val := range raw {
		p := new(posting.Posting)
		if err := p.FromBytes(val); err != nil {
			return nil, fmt.Errorf("corrupt posting list for term %q: %w", term, err)
		}
		out = append(out, p)
	}
	return out, nil
}

// Words calls fn for every indexed term in bytewise order.
func (db *DB) Words(fn func(term []byte) error) error {
	return db.index.Keys(fn)
}
