package search

import "unicode"

// DefaultFieldName converts a Go identifier to the camelCase name used in the
// index, following dynamorm's attribute naming rule: the leading run of
// capitals is lowercased, except for the capital that starts the next word.
// "CreatedAt" becomes "createdAt", "URLValue" becomes "urlValue", "ID"
// becomes "id".
func DefaultFieldName(name string) string {
	runes := []rune(name)
	capitals := 0
	for capitals < len(runes) && unicode.IsUpper(runes[capitals]) {
		capitals++
	}
	if capitals > 1 && capitals < len(runes) {
		capitals--
	}
	for i := 0; i < capitals; i++ {
		runes[i] = unicode.ToLower(runes[i])
	}
	return string(runes)
}
