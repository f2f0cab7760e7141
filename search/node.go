// Package search evaluates phrase, fuzzy and boolean queries against a
// bigram posting index.
package search

import "github.com/SumiTomohiko/o/posting"

// An Index supplies the decoded posting list for a term, ascending by
// (doc id, attribute id). db.DB implements it.
type Index interface {
	Postings(term []byte) ([]*posting.Posting, error)
}

// A Node is one node of a parsed query tree.
type Node interface {
	isNode()
}

// A PhraseNode matches documents containing Text as a contiguous
// substring of their normalized text.
type PhraseNode struct {
	Text string
}

// A FuzzyNode matches documents containing enough of Text's bigrams in
// approximately the right places.
type FuzzyNode struct {
	Text string
}

// AndNode intersects its children's hit sets.
type AndNode struct {
	Left, Right Node
}

// OrNode unions its children's hit sets.
type OrNode struct {
	Left, Right Node
}

// NotNode keeps hits of Left that are not hits of Right.
type NotNode struct {
	Left, Right Node
}

func (PhraseNode) isNode() {}
func (FuzzyNode) isNode()  {}
func (AndNode) isNode()    {}
func (OrNode) isNode()     {}
func (NotNode) isNode()    {}
