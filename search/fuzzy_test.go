package search

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/SumiTomohiko/o/db"
)

func TestFuzzyToleratesTransposition(t *testing.T) {
	ix := newTestIndex(t, "the quick brown fox")

	ids, err := Fuzzy(ix, []byte("quikc brown"))
	require.NoError(t, err)
	require.Equal(t, []uint32{0}, ids)
}

func TestFuzzyRejectsUnrelated(t *testing.T) {
	ix := newTestIndex(t, "the quick brown fox")

	ids, err := Fuzzy(ix, []byte("zzzzzzzzzzz"))
	require.NoError(t, err)
	require.Empty(t, ids)
}

func TestFuzzyExactMatchAlwaysAccepted(t *testing.T) {
	// phrase search implies fuzzy search
	docs := []string{
		"the quick brown fox",
		"hello world",
		"abcdef",
	}
	ix := newTestIndex(t, docs...)
	for _, phrase := range []string{"quick brown", "lo wor", "bcde", "abcdef"} {
		phraseIDs, err := Phrase(ix, []byte(phrase))
		require.NoError(t, err)
		fuzzyIDs, err := Fuzzy(ix, []byte(phrase))
		require.NoError(t, err)
		require.Subset(t, fuzzyIDs, phraseIDs, "phrase %q", phrase)
	}
}

func TestFuzzyTooShort(t *testing.T) {
	ix := newTestIndex(t, "abcdef")
	for _, phrase := range []string{"", "a"} {
		ids, err := Fuzzy(ix, []byte(phrase))
		require.NoError(t, err)
		require.Empty(t, ids)
	}
}

func TestFuzzyTwoChars(t *testing.T) {
	ix := newTestIndex(t, "abcdef", "xyz")

	ids, err := Fuzzy(ix, []byte("cd"))
	require.NoError(t, err)
	require.Equal(t, []uint32{0}, ids)
}

func TestFuzzyIgnoresAttributeValues(t *testing.T) {
	ix := newTestIndexAttrs(t, []db.Attr{{Name: "title", Value: "secret title"}}, "plain body")

	ids, err := Fuzzy(ix, []byte("secret"))
	require.NoError(t, err)
	require.Empty(t, ids)
}

func TestFuzzyScatteredBigramsRejected(t *testing.T) {
	// ab, cd and ef of "abcdef" occur, but spread far beyond the window
	ix := newTestIndex(t, "ab 123456789 cd 123456789 ef")

	ids, err := Fuzzy(ix, []byte("abcdef"))
	require.NoError(t, err)
	require.Empty(t, ids)
}

func TestFuzzyHalfMissingAccepted(t *testing.T) {
	// "abcdefgh" has 7 bigrams, so the threshold is 3 and the window 4;
	// "abcdxfgh" lacks de and ef but keeps ab bc cd fg gh, which form one
	// chain of 5 positions.
	ix := newTestIndex(t, "abcdxfgh")

	ids, err := Fuzzy(ix, []byte("abcdefgh"))
	require.NoError(t, err)
	require.Equal(t, []uint32{0}, ids)
}

func TestFuzzySelfMatchRepeatedBigrams(t *testing.T) {
	ix := newTestIndex(t, "zzzzz")

	ids, err := Fuzzy(ix, []byte("zzzzz"))
	require.NoError(t, err)
	require.Equal(t, []uint32{0}, ids)
}
