package decode

import (
	"strings"
)

// canon gives the canonical form of a token for command and keyword lookup.
// Stored values keep their own casing rules: field names are taken verbatim,
// colors lower-cased.
func canon(tok string) string {
	return strings.ToUpper(tok)
}

// matchOne invokes the action registered for tok, if any, and reports
// whether one matched. Building block of every boolean and enumeration
// handler.
func matchOne(tok string, cases map[string]func()) bool {
	fn, ok := cases[canon(tok)]
	if ok {
		fn()
	}
	return ok
}

// matchValue sets dst to the first vocabulary entry matching tok.
func matchValue(tok string, vocab []string, dst *string) bool {
	for _, v := range vocab {
		if canon(tok) == canon(v) {
			*dst = v
			return true
		}
	}
	return false
}
