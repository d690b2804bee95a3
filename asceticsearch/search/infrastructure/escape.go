package search

import "strings"

// Characters RediSearch treats as syntax inside tag and text values.
const escapedChars = ",.<>{}[]\"':;!@#$%^&*()-+=~| "

var escapeSet = func() [128]bool {
	var set [128]bool
	for i := 0; i < len(escapedChars); i++ {
		set[escapedChars[i]] = true
	}
	return set
}()

// Escape prefixes every syntax character in value with a backslash. It is a
// single pass: escaping already escaped text escapes it again.
func Escape(value string) string {
	var b strings.Builder
	b.Grow(len(value))
	// All syntax characters are ASCII, so bytes of multi-byte sequences
	// (always >= 0x80) pass through untouched.
	for i := 0; i < len(value); i++ {
		c := value[i]
		if needsEscape(c) {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	return b.String()
}

func needsEscape(c byte) bool {
	return c < 128 && escapeSet[c]
}
