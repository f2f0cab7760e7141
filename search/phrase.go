package search

import (
	"slices"

	"k8s.io/klog/v2"

	"github.com/SumiTomohiko/o/bigram"
	"github.com/SumiTomohiko/o/posting"
)

// charLen counts the characters of text using the scanner's width table.
func charLen(text []byte) int {
	n := 0
	for off := 0; off < len(text); off += bigram.CharWidth(text[off]) {
		n++
	}
	return n
}

// A step is one bigram of a phrase together with the exact character gap
// between the phrase start and the bigram start.
type step struct {
	term []byte
	gap  uint32
}

// phraseSteps decomposes a phrase into lookup steps. Bigrams advance two
// characters at a time; when a single character would remain, the final
// bigram instead starts one character earlier, overlapping the previous
// one, and the gap advances by one.
func phraseSteps(phrase []byte) []step {
	var steps []step
	cur := 0
	gap := uint32(0)
	for {
		w0 := bigram.CharWidth(phrase[cur])
		next := cur + w0
		if next >= len(phrase) {
			break
		}
		end := next + bigram.CharWidth(phrase[next])
		if end > len(phrase) {
			end = len(phrase)
		}
		steps = append(steps, step{term: phrase[cur:end], gap: gap})
		if end >= len(phrase) {
			break
		}
		if end+bigram.CharWidth(phrase[end]) < len(phrase) {
			cur = end
			gap += 2
		} else {
			cur = next
			gap++
		}
	}
	return steps
}

// Phrase returns the ids of documents whose normalized text (body or any
// attribute value) contains the normalized phrase as a contiguous
// substring. Phrases shorter than two characters match nothing.
func Phrase(ix Index, phrase []byte) ([]uint32, error) {
	if charLen(phrase) < 2 {
		return nil, nil
	}
	steps := phraseSteps(phrase)
	list, err := ix.Postings(steps[0].term)
	if err != nil {
		return nil, err
	}
	for _, s := range steps[1:] {
		if len(list) == 0 {
			break
		}
		other, err := ix.Postings(s.term)
		if err != nil {
			return nil, err
		}
		list = intersect(list, other, s.gap)
	}
	klog.V(3).Infof("phrase %q: %d steps, %d surviving postings", phrase, len(steps), len(list))
	return docIDs(list), nil
}

// intersect merge-walks two posting lists ordered by (doc id, attr id) and
// keeps, for each matching unit, the positions p of a such that a bigram of
// b starts exactly gap characters after p. Units with no surviving
// positions are dropped.
func intersect(a, b []*posting.Posting, gap uint32) []*posting.Posting {
	var out []*posting.Posting
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i].SameUnit(b[j]):
			if positions := alignedPositions(a[i].Positions, b[j].Positions, gap); len(positions) > 0 {
				out = append(out, &posting.Posting{
					Doc:       a[i].Doc,
					Attr:      a[i].Attr,
					Positions: positions,
				})
			}
			i++
			j++
		case a[i].Less(b[j]):
			i++
		default:
			j++
		}
	}
	return out
}

// alignedPositions returns every p in a with p+gap in b. Both inputs are
// ascending.
func alignedPositions(a, b []uint32, gap uint32) []uint32 {
	var out []uint32
	j := 0
	for _, p := range a {
		want := p + gap
		for j < len(b) && b[j] < want {
			j++
		}
		if j < len(b) && b[j] == want {
			out = append(out, p)
		}
	}
	return out
}

// docIDs collapses a posting list to its ascending, deduplicated doc ids.
func docIDs(list []*posting.Posting) []uint32 {
	var out []uint32
	for _, p := range list {
		if len(out) == 0 || out[len(out)-1] != p.Doc {
			out = append(out, p.Doc)
		}
	}
	return slices.Clip(out)
}
