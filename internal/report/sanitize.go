// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"unicode"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/unicode/norm"
)

// substitute replaces runes that have no Latin-1 form and no closer
// transliteration.
const substitute = '?'

// punctuation maps typographic runes outside Latin-1 to ASCII stand-ins.
var punctuation = map[rune]string{
	'\u2018': "'", '\u2019': "'", '\u201a': ",", '\u201b': "'",
	'\u201c': "\"", '\u201d': "\"", '\u201e': "\"",
	'\u2010': "-", '\u2011': "-", '\u2012': "-", '\u2013': "-", '\u2014': "-", '\u2212': "-",
	'\u2026': "...",
	'\u2022': "*", '\u2023': ">", '\u2043': "-",
	'\u2002': " ", '\u2003': " ", '\u2009': " ", '\u202f': " ",
	'\u200b': "", '\ufeff': "",
	'\u2264': "<=", '\u2265': ">=", '\u2260': "!=", '\u2248': "~",
	'\u2192': "->", '\u2190': "<-",
}

// ToLatin1 converts text to ISO-8859-1 bytes. The result is a byte
// string, not UTF-8. Runes without a Latin-1 form are transliterated when
// possible (typographic punctuation, letters whose base form is Latin-1
// once accents are stripped) and otherwise replaced with '?'. It never
// fails.
func ToLatin1(text string) string {
	out := make([]byte, 0, len(text))
	for _, r := range text {
		if r == unicode.ReplacementChar {
			out = append(out, substitute)
			continue
		}
		if b, ok := charmap.ISO8859_1.EncodeRune(r); ok {
			out = append(out, b)
			continue
		}
		if s, ok := punctuation[r]; ok {
			out = append(out, s...)
			continue
		}
		if s, ok := stripMarks(r); ok {
			out = append(out, s...)
			continue
		}
		out = append(out, substitute)
	}
	return string(out)
}

// stripMarks decomposes r and drops combining marks, succeeding only when
// every remaining rune is Latin-1 (e.g. 'ő' -> 'o', 'ș' -> 's').
func stripMarks(r rune) ([]byte, bool) {
	var out []byte
	for _, d := range norm.NFD.String(string(r)) {
		if unicode.Is(unicode.Mn, d) {
			continue
		}
		b, ok := charmap.ISO8859_1.EncodeRune(d)
		if !ok {
			return nil, false
		}
		out = append(out, b)
	}
	return out, len(out) > 0
}
