package search

import (
	"fmt"
	"slices"
)

// Eval walks a query tree and returns the matching doc ids, ascending.
func Eval(ix Index, node Node) ([]uint32, error) {
	hits, err := eval(ix, node)
	if err != nil {
		return nil, err
	}
	out := make([]uint32, 0, len(hits))
	for doc := range hits {
		out = append(out, doc)
	}
	slices.Sort(out)
	return out, nil
}

// Search parses and evaluates a query string.
func Search(ix Index, query string) ([]uint32, error) {
	node, err := Parse(query)
	if err != nil {
		return nil, err
	}
	return Eval(ix, node)
}

func eval(ix Index, node Node) (map[uint32]struct{}, error) {
	switch n := node.(type) {
	case PhraseNode:
		ids, err := Phrase(ix, []byte(n.Text))
		if err != nil {
			return nil, err
		}
		return toSet(ids), nil
	case FuzzyNode:
		ids, err := Fuzzy(ix, []byte(n.Text))
		if err != nil {
			return nil, err
		}
		return toSet(ids), nil
	case AndNode:
		left, right, err := evalPair(ix, n.Left, n.Right)
		if err != nil {
			return nil, err
		}
		for doc := range left {
			if _, ok := right[doc]; !ok {
				delete(left, doc)
			}
		}
		return left, nil
	case OrNode:
		left, right, err := evalPair(ix, n.Left, n.Right)
		if err != nil {
			return nil, err
		}
		for doc := range right {
			left[doc] = struct{}{}
		}
		return left, nil
	case NotNode:
		left, right, err := evalPair(ix, n.Left, n.Right)
		if err != nil {
			return nil, err
		}
		for doc := range right {
			delete(left, doc)
		}
		return left, nil
	default:
		return nil, fmt.Errorf("unknown query node %T", node)
	}
}

func evalPair(ix Index, l, r Node) (map[uint32]struct{}, map[uint32]struct{}, error) {
	left, err := eval(ix, l)
	if err != nil {
		return nil, nil, err
	}
	right, err := eval(ix, r)
	if err != nil {
		return nil, nil, err
	}
	return left, right, nil
}

func toSet(ids []uint32) map[uint32]struct{} {
	set := make(map[uint32]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
