package lexer

import "github.com/atomforge/atomforge/token"

// Character-class lookup tables, indexed by byte value (spec.md §4.3:
// "use integer character codes and boolean lookup tables for character
// classes"). Built once at package init, generalizing the teacher's
// unicode.IsSpace/unicode.IsDigit call-per-character checks into O(1)
// array lookups.
var (
	isSpaceByte     [256]bool
	isDigitByte     [256]bool
	isHexDigitByte  [256]bool
	isIdentStart    [256]bool
	isIdentPart     [256]bool
	isRegexFlagByte [256]bool
)

func init() {
	for c := 0; c < 256; c++ {
		switch byte(c) {
		case ' ', '\t', '\n', '\r', '\f', '\v':
			isSpaceByte[c] = true
		}
		if c >= '0' && c <= '9' {
			isDigitByte[c] = true
			isHexDigitByte[c] = true
		}
		if (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F') {
			isHexDigitByte[c] = true
		}
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_' || c == '$' {
			isIdentStart[c] = true
			isIdentPart[c] = true
		}
		if c >= '0' && c <= '9' {
			isIdentPart[c] = true
		}
	}
	for _, f := range []byte("gims") {
		isRegexFlagByte[f] = true
	}
	_ = token.RegexFlags // flags table mirrored above for the byte-indexed hot path
}

// headerParenKeywords holds the grab-until-block keywords whose
// immediately-following "(" encloses a condition/parameter list rather
// than a value expression — the set the regex/division exception of
// spec.md §4.3 is keyed on.
var headerParenKeywords = map[string]bool{
	"if": true, "for": true, "while": true, "with": true,
	"catch": true, "function": true,
}

func isHeaderParenKeyword(data string) bool { return headerParenKeywords[data] }
