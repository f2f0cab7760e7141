package posting

import (
	"encoding/binary"
	"errors"
	"fmt"
	"slices"
)

// NoAttr marks a posting that belongs to the main document body rather than
// to a named attribute.
const NoAttr = int32(-1)

// MaxAttrs is the number of attribute slots a database may declare.
const MaxAttrs = 32

// A Posting records every occurrence of one term within one
// (document, attribute) unit. Positions are character offsets into the
// normalized text, ascending and deduplicated by construction.
type Posting struct {
	Doc       uint32
	Attr      int32
	Positions []uint32
}

// Bytes encodes the posting as a sequence of varints:
// tagged doc id (doc<<1, low bit set when an attribute id follows),
// optional attribute id, position count, then each position.
func (p *Posting) Bytes() []byte {
	buf := make([]byte, 0, binary.MaxVarintLen64*(3+len(p.Positions)))
	tagged := uint64(p.Doc) << 1
	if p.Attr != NoAttr {
		tagged |= 1
	}
	buf = binary.AppendUvarint(buf, tagged)
	if p.Attr != NoAttr {
		buf = binary.AppendUvarint(buf, uint64(p.Attr))
	}
	buf = binary.AppendUvarint(buf, uint64(len(p.Positions)))
	for _, pos := range p.Positions {
		buf = binary.AppendUvarint(buf, uint64(pos))
	}
	buf = slices.Clip(buf)
	return buf
}

// FromBytes parses an encoded posting. The whole buffer must be consumed;
// leftover bytes indicate a corrupt posting list.
func (p *Posting) FromBytes(buf []byte) error {
	tagged, n := binary.Uvarint(buf)
	if n <= 0 {
		return errors.New("failed to parse doc id")
	}
	buf = buf[n:]
	p.Doc = uint32(tagged >> 1)
	p.Attr = NoAttr
	if tagged&1 != 0 {
		attr, n := binary.Uvarint(buf)
		if n <= 0 {
			return errors.New("failed to parse attribute id")
		}
		if attr >= MaxAttrs {
			return fmt.Errorf("attribute id %d out of range", attr)
		}
		buf = buf[n:]
		p.Attr = int32(attr)
	}
	count, n := binary.Uvarint(buf)
	if n <= 0 {
		return errors.New("failed to parse position count")
	}
	buf = buf[n:]
	if count > uint64(len(buf)) {
		// Every position takes at least one byte.
		return fmt.Errorf("position count %d exceeds remaining %d bytes", count, len(buf))
	}
	p.Positions = make([]uint32, count)
	for i := range p.Positions {
		pos, n := binary.Uvarint(buf)
		if n <= 0 {
			return fmt.Errorf("failed to parse position %d of %d", i, count)
		}
		buf = buf[n:]
		p.Positions[i] = uint32(pos)
	}
	if len(buf) != 0 {
		return fmt.Errorf("%d trailing bytes after posting", len(buf))
	}
	return nil
}

// Less orders postings by (doc id, attribute id), the order posting lists
// are stored in. Body postings sort before attribute postings of the same
// document.
func (p *Posting) Less(other *Posting) bool {
	if p.Doc != other.Doc {
		return p.Doc < other.Doc
	}
	return p.Attr < other.Attr
}

// SameUnit reports whether two postings refer to the same
// (document, attribute) unit.
func (p *Posting) SameUnit(other *Posting) bool {
	return p.Doc == other.Doc && p.Attr == other.Attr
}
