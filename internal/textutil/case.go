package textutil

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Upper applies full Unicode upper-case mapping, so "ß" becomes "SS" the way
// a browser's toUpperCase does. strings.ToUpper only maps rune to rune.
func Upper(s string) string {
	if isUpperASCII(s) {
		return s
	}
	// Casers keep state between calls; build one per call.
	return cases.Upper(language.Und).String(s)
}

func isUpperASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x80 || (c >= 'a' && c <= 'z') {
			return false
		}
	}
	return true
}
