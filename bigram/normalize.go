package bigram

// isSpace reports whether c is an ASCII whitespace byte. Multibyte
// whitespace is left alone; folding is deliberately byte-level so that
// normalization never rewrites non-ASCII content.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// Normalize folds whitespace: every run of whitespace collapses to a single
// ASCII space, and leading and trailing whitespace is dropped. All other
// bytes are copied verbatim. Normalize is idempotent.
func Normalize(text []byte) []byte {
	out := make([]byte, 0, len(text))
	pending := false
	for _, c := range text {
		if isSpace(c) {
			if len(out) > 0 {
				pending = true
			}
			continue
		}
		if pending {
			out = append(out, ' ')
			pending = false
		}
		out = append(out, c)
	}
	return out
}
