package testutils

import (
	s "github.com/krew-solutions/ascetic-search-go/asceticsearch/search/domain"
)

// SchemaStub is a map-backed search.Schema for tests.
type SchemaStub map[string]s.SchemaField

func (st SchemaStub) Resolve(name string) (s.SchemaField, bool) {
	field, ok := st[name]
	return field, ok
}

// NewSchemaStub declares one field of every type:
// aString, aNumber, aBoolean, anArray, someText and aDate.
func NewSchemaStub() SchemaStub {
	return SchemaStub{
		"aString":  {Name: "aString", Type: s.FieldTypeString},
		"aNumber":  {Name: "aNumber", Type: s.FieldTypeNumber},
		"aBoolean": {Name: "aBoolean", Type: s.FieldTypeBoolean},
		"anArray":  {Name: "anArray", Type: s.FieldTypeArray},
		"someText": {Name: "someText", Type: s.FieldTypeText},
		"aDate":    {Name: "aDate", Type: s.FieldTypeDate},
	}
}

// With returns a copy of the stub that also declares field.
func (st SchemaStub) With(field s.SchemaField) SchemaStub {
	out := make(SchemaStub, len(st)+1)
	for k, v := range st {
		out[k] = v
	}
	out[field.Name] = field
	return out
}
