package db

// Stats summarizes the size of an index.
type Stats struct {
	Docs         uint32
	Terms        uint64
	Postings     uint64
	PostingBytes uint64
}

// Stats walks the whole index. It is meant for the stats subcommand, not
// for hot paths.
func (db *DB) Stats() (Stats, error) {
	st := Stats{Docs: db.nextDocID}
	var lastTerm []byte
	err := db.index.Walk(func(term, val []byte) error {
		if string(lastTerm) != string(term) {
			st.Terms++
			lastTerm = append(lastTerm[:0], term...)
		}
		st.Postings++
		st.PostingBytes += uint64(len(val))
		return nil
	})
	if err != nil {
		return Stats{}, err
	}
	return st, nil
}
