// Package normalize produces accent-insensitive join keys from player names.
package normalize

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripper decomposes to NFKD, drops combining marks, then drops any
// rune still outside ASCII (characters with no Latin decomposition are
// omitted rather than transliterated).
var stripper = transform.Chain(
	norm.NFKD,
	runes.Remove(runes.In(unicode.Mn)),
	runes.Remove(runes.Predicate(func(r rune) bool { return r > unicode.MaxASCII })),
)

// Name renders s as a plain-ASCII comparable key, e.g. "Dalen Terry" and
// "Dalén Terry" normalize identically. The result of Name is a fixed
// point: Name(Name(s)) == Name(s). Unusual input degrades to dropping
// runes, never to an error.
func Name(s string) string {
	out, _, err := transform.String(stripper, s)
	if err != nil {
		// The chain cannot fail on valid UTF-8; on malformed input keep
		// only the ASCII runes so the key stays comparable.
		kept := make([]rune, 0, len(s))
		for _, r := range s {
			if r <= unicode.MaxASCII {
				kept = append(kept, r)
			}
		}
		return string(kept)
	}
	return out
}
