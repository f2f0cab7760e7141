package db

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/tidwall/hashmap"
	"k8s.io/klog/v2"

	"github.com/SumiTomohiko/o/bigram"
	"github.com/SumiTomohiko/o/posting"
	"github.com/SumiTomohiko/o/store"
)

// An Attr is one named attribute value supplied at put time.
type Attr struct {
	Name  string
	Value string
}

// Put normalizes and indexes one document plus its attribute values and
// returns the assigned doc id. Ids are assigned sequentially and never
// reused. Put is append-only and not transactional: a failure part-way
// leaves whatever was already written, and the counter does not advance.
func (db *DB) Put(body []byte, attrs []Attr) (uint32, error) {
	if !db.writable {
		return 0, errors.New("database is open read-only")
	}
	norm := bigram.Normalize(body)
	id := db.nextDocID
	if err := db.indexTerms(id, posting.NoAttr, norm); err != nil {
		return 0, err
	}
	blob, err := deflate(norm)
	if err != nil {
		return 0, err
	}
	if err := db.docs.Put(docKey(id), blob); err != nil {
		return 0, err
	}
	// Attribute postings are appended in attribute-id order so that every
	// posting list stays ascending by (doc id, attribute id).
	attrs = slices.Clone(attrs)
	slices.SortStableFunc(attrs, func(a, b Attr) int {
		return cmp.Compare(db.attrIDs[a.Name], db.attrIDs[b.Name])
	})
	for _, attr := range attrs {
		attrID, ok := db.attrIDs[attr.Name]
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrAttrUnknown, attr.Name)
		}
		value := bigram.Normalize([]byte(attr.Value))
		if err := db.indexTerms(id, attrID, value); err != nil {
			return 0, err
		}
		if err := db.attrStores[attrID].Put(docKey(id), value); err != nil {
			return 0, err
		}
	}
	db.nextDocID++
	klog.V(2).Infof("put doc %d: %d bytes normalized, %d attributes", id, len(norm), len(attrs))
	return id, nil
}

// indexTerms scans text into overlapping bigrams, groups the character
// offsets of each distinct bigram, and appends one encoded posting per
// bigram to the index in a single batch.
func (db *DB) indexTerms(doc uint32, attr int32, text []byte) error {
	terms := hashmap.New[string, []uint32](64)
	var order []string
	sc := bigram.NewScanner(text)
	for {
		term, pos, ok := sc.Next()
		if !ok {
			break
		}
		key := string(term)
		positions, _ := terms.Get(key)
		if positions == nil {
			order = append(order, key)
		}
		terms.Set(key, append(positions, pos))
	}
	if len(order) == 0 {
		return nil
	}
	entries := make([]store.Entry, 0, len(order))
	for _, key := range order {
		positions, _ := terms.Get(key)
		p := posting.Posting{Doc: doc, Attr: attr, Positions: positions}
		entries = append(entries, store.Entry{Key: []byte(key), Val: p.Bytes()})
	}
	klog.V(3).Infof("doc %d attr %d: %d distinct terms", doc, attr, len(entries))
	return db.index.AppendBatch(entries)
}
