package bigram

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"hello world", "hello world"},
		{"  hello   world  ", "hello world"},
		{"\thello\nworld\r\n", "hello world"},
		{"", ""},
		{"   ", ""},
		{"one", "one"},
		{"a  b\tc", "a b c"},
		{"日本 語", "日本 語"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, string(Normalize([]byte(tc.in))), "input %q", tc.in)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"  spaced   out\ttext \n",
		"already normal",
		"",
		" x ",
	}
	for _, in := range inputs {
		once := Normalize([]byte(in))
		twice := Normalize(once)
		require.Equal(t, string(once), string(twice), "input %q", in)
	}
}

func TestNormalizeNoDoubleSpace(t *testing.T) {
	out := string(Normalize([]byte("a \t b  \n  c")))
	require.NotContains(t, out, "  ")
	require.Equal(t, "a b c", out)
}
