package search

import (
	"slices"

	"k8s.io/klog/v2"

	"github.com/SumiTomohiko/o/bigram"
	"github.com/SumiTomohiko/o/posting"
)

// A chain is one candidate alignment of phrase bigrams inside a document:
// the ascending positions at which successive bigrams were found. term
// remembers which phrase bigram extended the chain last, so one bigram
// never extends the same chain twice.
type chain struct {
	positions []uint32
	term      int
}

func (c *chain) last() uint32 {
	return c.positions[len(c.positions)-1]
}

// Fuzzy returns the ids of documents that contain a chain of at least
// (bigram count)/2 of the phrase's bigrams, rounded down but at least one,
// positionally clustered within a window of half the phrase length. Only document bodies are considered; attribute postings
// are skipped. Phrases shorter than two characters match nothing.
func Fuzzy(ix Index, phrase []byte) ([]uint32, error) {
	n := charLen(phrase)
	if n < 2 {
		return nil, nil
	}
	termsNum := n - 1
	window := uint32(n / 2)
	threshold := termsNum / 2
	if threshold < 1 {
		threshold = 1
	}

	chains := make(map[uint32][]*chain)
	sc := bigram.NewScanner(phrase)
	for i := 0; ; i++ {
		term, _, ok := sc.Next()
		if !ok {
			break
		}
		list, err := ix.Postings(term)
		if err != nil {
			return nil, err
		}
		for _, p := range list {
			if p.Attr != posting.NoAttr {
				continue
			}
			docChains := chains[p.Doc]
			for _, q := range p.Positions {
				if c := extendable(docChains, i, q, window); c != nil {
					c.positions = append(c.positions, q)
					c.term = i
				} else {
					docChains = append(docChains, &chain{positions: []uint32{q}, term: i})
				}
			}
			chains[p.Doc] = docChains
		}
	}

	var out []uint32
	for doc, docChains := range chains {
		for _, c := range docChains {
			if len(c.positions) >= threshold {
				out = append(out, doc)
				break
			}
		}
	}
	slices.Sort(out)
	klog.V(3).Infof("fuzzy %q: %d bigrams, window %d, threshold %d, %d hits",
		phrase, termsNum, window, threshold, len(out))
	return out, nil
}

// extendable picks the chain q should continue: among chains not yet
// touched by bigram i whose tail is before q and within the window, the
// one ending latest.
func extendable(docChains []*chain, i int, q, window uint32) *chain {
	var best *chain
	for _, c := range docChains {
		if c.term >= i {
			continue
		}
		t := c.last()
		if t >= q || q-t > window {
			continue
		}
		if best == nil || t > best.last() {
			best = c
		}
	}
	return best
}
