package bigram

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCharWidth(t *testing.T) {
	require.Equal(t, 1, CharWidth('a'))
	require.Equal(t, 1, CharWidth(0x7F))
	require.Equal(t, 2, CharWidth(0xC0))
	require.Equal(t, 2, CharWidth(0xDF))
	require.Equal(t, 3, CharWidth(0xE0))
	require.Equal(t, 3, CharWidth(0xEF))
	require.Equal(t, 4, CharWidth(0xF0))
	require.Equal(t, 4, CharWidth(0xF7))
	require.Equal(t, 5, CharWidth(0xF8))
	require.Equal(t, 5, CharWidth(0xFB))
	require.Equal(t, 6, CharWidth(0xFC))
	require.Equal(t, 6, CharWidth(0xFD))
	// continuation and stray bytes advance by one
	require.Equal(t, 1, CharWidth(0x80))
	require.Equal(t, 1, CharWidth(0xBF))
	require.Equal(t, 1, CharWidth(0xFE))
}

func TestScannerASCII(t *testing.T) {
	sc := NewScanner([]byte("abc"))

	term, pos, ok := sc.Next()
	require.True(t, ok)
	require.Equal(t, "ab", string(term))
	require.Equal(t, uint32(0), pos)

	term, pos, ok = sc.Next()
	require.True(t, ok)
	require.Equal(t, "bc", string(term))
	require.Equal(t, uint32(1), pos)

	_, _, ok = sc.Next()
	require.False(t, ok)
}

func TestScannerMultibyte(t *testing.T) {
	// Positions count characters, not bytes.
	text := []byte("日本語")
	sc := NewScanner(text)

	term, pos, ok := sc.Next()
	require.True(t, ok)
	require.Equal(t, "日本", string(term))
	require.Equal(t, uint32(0), pos)

	term, pos, ok = sc.Next()
	require.True(t, ok)
	require.Equal(t, "本語", string(term))
	require.Equal(t, uint32(1), pos)

	_, _, ok = sc.Next()
	require.False(t, ok)
}

func TestScannerMixed(t *testing.T) {
	sc := NewScanner([]byte("a猫b"))
	var terms []string
	var positions []uint32
	for {
		term, pos, ok := sc.Next()
		if !ok {
			break
		}
		terms = append(terms, string(term))
		positions = append(positions, pos)
	}
	require.Equal(t, []string{"a猫", "猫b"}, terms)
	require.Equal(t, []uint32{0, 1}, positions)
}

func TestScannerShortInput(t *testing.T) {
	for _, text := range []string{"", "x", "猫"} {
		sc := NewScanner([]byte(text))
		_, _, ok := sc.Next()
		require.False(t, ok, "text %q", text)
	}
}

func TestSize(t *testing.T) {
	require.Equal(t, 2, Size([]byte("ab"), 0))
	require.Equal(t, 1, Size([]byte("ab"), 1))
	require.Equal(t, 6, Size([]byte("日本"), 0))
	require.Equal(t, 4, Size([]byte("a猫"), 0))
	require.Equal(t, 3, Size([]byte("日"), 0))
}
