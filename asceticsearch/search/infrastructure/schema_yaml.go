package search

import (
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	s "github.com/krew-solutions/ascetic-search-go/asceticsearch/search/domain"
)

type schemaDocument struct {
	Index  string          `yaml:"index"`
	Prefix string          `yaml:"prefix"`
	Fields []fieldDocument `yaml:"fields"`
}

type fieldDocument struct {
	Name  string `yaml:"name"`
	Type  string `yaml:"type"`
	Alias string `yaml:"alias,omitempty"`
}

// LoadSchemaYAML reads a schema definition such as
//
//	index: albums
//	prefix: "album:"
//	fields:
//	  - name: artist
//	    type: string
//	  - name: year
//	    type: number
//	    alias: y
func LoadSchemaYAML(data []byte) (*SchemaRegistry, error) {
	var doc schemaDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "failed to parse schema")
	}

	registry := NewSchemaRegistry(doc.Index).WithPrefix(doc.Prefix)
	seen := make(map[string]bool, len(doc.Fields))
	var duplicates error
	for _, f := range doc.Fields {
		if seen[f.Name] {
			duplicates = multierror.Append(duplicates, errors.Wrapf(s.ErrInvalidSchema, "field %s is declared twice", f.Name))
			continue
		}
		seen[f.Name] = true
		registry.Register(s.SchemaField{
			Name:  f.Name,
			Type:  s.FieldType(f.Type),
			Alias: f.Alias,
		})
	}
	if duplicates != nil {
		return nil, duplicates
	}
	if err := registry.Validate(); err != nil {
		return nil, err
	}
	return registry, nil
}
