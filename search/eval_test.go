package search

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func booleanFixture(t *testing.T) Index {
	t.Helper()
	return newTestIndex(t, "alpha", "beta", "alpha beta")
}

func TestEvalAnd(t *testing.T) {
	ix := booleanFixture(t)
	ids, err := Eval(ix, AndNode{
		Left:  PhraseNode{Text: "alpha"},
		Right: PhraseNode{Text: "beta"},
	})
	require.NoError(t, err)
	require.Equal(t, []uint32{2}, ids)
}

func TestEvalOr(t *testing.T) {
	ix := booleanFixture(t)
	ids, err := Eval(ix, OrNode{
		Left:  PhraseNode{Text: "alpha"},
		Right: PhraseNode{Text: "beta"},
	})
	require.NoError(t, err)
	require.Equal(t, []uint32{0, 1, 2}, ids)
}

func TestEvalNot(t *testing.T) {
	ix := booleanFixture(t)
	ids, err := Eval(ix, NotNode{
		Left:  PhraseNode{Text: "alpha"},
		Right: PhraseNode{Text: "beta"},
	})
	require.NoError(t, err)
	require.Equal(t, []uint32{0}, ids)
}

func TestEvalNested(t *testing.T) {
	ix := booleanFixture(t)
	// (alpha OR beta) NOT (alpha AND beta)
	ids, err := Eval(ix, NotNode{
		Left: OrNode{
			Left:  PhraseNode{Text: "alpha"},
			Right: PhraseNode{Text: "beta"},
		},
		Right: AndNode{
			Left:  PhraseNode{Text: "alpha"},
			Right: PhraseNode{Text: "beta"},
		},
	})
	require.NoError(t, err)
	require.Equal(t, []uint32{0, 1}, ids)
}

func TestEvalFuzzyNode(t *testing.T) {
	ix := newTestIndex(t, "the quick brown fox")
	ids, err := Eval(ix, FuzzyNode{Text: "quikc brown"})
	require.NoError(t, err)
	require.Equal(t, []uint32{0}, ids)
}

func TestSearchQueryStrings(t *testing.T) {
	ix := booleanFixture(t)

	cases := []struct {
		query string
		want  []uint32
	}{
		{"alpha AND beta", []uint32{2}},
		{"alpha OR beta", []uint32{0, 1, 2}},
		{"alpha NOT beta", []uint32{0}},
		{"alpha", []uint32{0, 2}},
		{"nosuch", nil},
	}
	for _, tc := range cases {
		ids, err := Search(ix, tc.query)
		require.NoError(t, err, "query %q", tc.query)
		if tc.want == nil {
			require.Empty(t, ids, "query %q", tc.query)
		} else {
			require.Equal(t, tc.want, ids, "query %q", tc.query)
		}
	}
}

func TestSearchMultiWordPhrase(t *testing.T) {
	ix := newTestIndex(t, "hello world")
	ids, err := Search(ix, "llo wo")
	require.NoError(t, err)
	require.Equal(t, []uint32{0}, ids)
}
