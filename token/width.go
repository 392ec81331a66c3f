package token

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/width"
)

// Width computes the width in text cells of the given UTF-8 text, supposing
// rendering with a UTF-8 locale and a monospaced font. East Asian wide and
// fullwidth runes count for two cells, non-graphic runes for none.
//
func Width(b []byte) int {
	w := 0
	for i := 0; i < len(b); {
		r, s := utf8.DecodeRune(b[i:])
		i += s
		if !unicode.IsGraphic(r) {
			continue
		}
		switch width.LookupRune(r).Kind() {
		case width.EastAsianFullwidth, width.EastAsianWide:
			w += 2
		default:
			// EastAsianAmbiguous depends on the user locale. 2 if CJK, 1 otherwise.
			w++
		}
	}
	return w
}
