// Text tokenization.
//
// The word character class is exactly [A-Za-z]. Digits, punctuation,
// whitespace and every byte >= 0x80 are delimiters, so non-ASCII text
// splits into its ASCII runs. Case folding is ASCII-only.
package ftsearch

// Tokenize splits s into lowercased words. Order is preserved and
// duplicates are not suppressed; empty runs between delimiters produce
// no token.
func Tokenize(s string) []string {
	var toks []string
	word := make([]byte, 0, 16)

	// One extra iteration with an implicit delimiter flushes the
	// final word.
	for i := 0; i <= len(s); i++ {
		var c byte
		if i < len(s) {
			c = s[i]
		}
		switch {
		case c >= 'a' && c <= 'z':
			word = append(word, c)
		case c >= 'A' && c <= 'Z':
			word = append(word, c+('a'-'A'))
		default:
			if len(word) > 0 {
				toks = append(toks, string(word))
				word = word[:0]
			}
		}
	}
	return toks
}
