package testutils

import (
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// AssertQuery fails t with a character diff when actual differs from
// expected. Long nested queries are hard to compare by eye.
func AssertQuery(t testing.TB, expected, actual string) bool {
	t.Helper()
	if expected == actual {
		return true
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(expected, actual, false)
	t.Errorf("query mismatch\nexpected: %s\nactual:   %s\ndiff:     %s",
		expected, actual, dmp.DiffPrettyText(diffs))
	return false
}
