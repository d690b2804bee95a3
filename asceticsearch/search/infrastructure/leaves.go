package search

import (
	"strings"

	"github.com/pkg/errors"

	s "github.com/krew-solutions/ascetic-search-go/asceticsearch/search/domain"
)

// TagLeaf renders an exact match on a tag field: "(@f:{a})", or
// "(@f:{a|b})" when any of several values may match.
func TagLeaf(field s.SchemaField, negate bool, values ...string) (string, error) {
	if len(values) == 0 {
		return "", errors.Wrapf(s.ErrEmptyValues, "field %s", field.Name)
	}
	escaped := make([]string, len(values))
	for i, v := range values {
		escaped[i] = Escape(v)
	}
	return leaf(field, negate, "{"+strings.Join(escaped, "|")+"}"), nil
}

// BooleanLeaf renders booleans the way they are indexed, as "1" and "0" tags.
func BooleanLeaf(field s.SchemaField, negate bool, value bool) string {
	if value {
		return leaf(field, negate, "{1}")
	}
	return leaf(field, negate, "{0}")
}

// RangeLeaf renders a numeric range match: "(@f:[min max])".
func RangeLeaf(field s.SchemaField, negate bool, r Range) string {
	return leaf(field, negate, r.String())
}

// TextLeaf renders a full-text match: "(@f:value)".
func TextLeaf(field s.SchemaField, negate bool, value string) (string, error) {
	if strings.TrimSpace(value) == "" {
		return "", errors.Wrapf(s.ErrInvalidValue, "empty text for field %s", field.Name)
	}
	return leaf(field, negate, Escape(value)), nil
}

// ExactTextLeaf renders a full-text phrase match: "(@f:\"value\")".
func ExactTextLeaf(field s.SchemaField, negate bool, value string) (string, error) {
	if strings.TrimSpace(value) == "" {
		return "", errors.Wrapf(s.ErrInvalidValue, "empty text for field %s", field.Name)
	}
	return leaf(field, negate, `"`+Escape(value)+`"`), nil
}

func leaf(field s.SchemaField, negate bool, body string) string {
	var b strings.Builder
	b.WriteString("(")
	if negate {
		b.WriteString("-")
	}
	b.WriteString("@")
	b.WriteString(field.IndexName())
	b.WriteString(":")
	b.WriteString(body)
	b.WriteString(")")
	return b.String()
}
