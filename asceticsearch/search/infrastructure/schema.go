package search

import (
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	s "github.com/krew-solutions/ascetic-search-go/asceticsearch/search/domain"
)

// SchemaRegistry is an in-memory Schema for one search index.
type SchemaRegistry struct {
	// IndexName is the name of the index (e.g., "albums:index")
	IndexName string

	// Prefix is the key prefix of the documents covered by the index (e.g., "album:")
	Prefix string

	mu     sync.RWMutex
	fields map[string]s.SchemaField
	order  []string
}

func NewSchemaRegistry(indexName string) *SchemaRegistry {
	return &SchemaRegistry{
		IndexName: indexName,
		fields:    make(map[string]s.SchemaField),
	}
}

func (r *SchemaRegistry) WithPrefix(prefix string) *SchemaRegistry {
	r.Prefix = prefix
	return r
}

// Register adds or replaces a field declaration. Declarations are checked by
// Validate, not here, so registration can stay fluent.
func (r *SchemaRegistry) Register(field s.SchemaField) *SchemaRegistry {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.fields[field.Name]; !exists {
		r.order = append(r.order, field.Name)
	}
	r.fields[field.Name] = field
	return r
}

func (r *SchemaRegistry) RegisterString(name string) *SchemaRegistry {
	return r.Register(s.SchemaField{Name: name, Type: s.FieldTypeString})
}

func (r *SchemaRegistry) RegisterNumber(name string) *SchemaRegistry {
	return r.Register(s.SchemaField{Name: name, Type: s.FieldTypeNumber})
}

func (r *SchemaRegistry) RegisterBoolean(name string) *SchemaRegistry {
	return r.Register(s.SchemaField{Name: name, Type: s.FieldTypeBoolean})
}

func (r *SchemaRegistry) RegisterArray(name string) *SchemaRegistry {
	return r.Register(s.SchemaField{Name: name, Type: s.FieldTypeArray})
}

func (r *SchemaRegistry) RegisterText(name string) *SchemaRegistry {
	return r.Register(s.SchemaField{Name: name, Type: s.FieldTypeText})
}

func (r *SchemaRegistry) RegisterDate(name string) *SchemaRegistry {
	return r.Register(s.SchemaField{Name: name, Type: s.FieldTypeDate})
}

// Resolve implements search.Schema.
func (r *SchemaRegistry) Resolve(name string) (s.SchemaField, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	field, ok := r.fields[name]
	return field, ok
}

// Fields returns the declarations in registration order.
func (r *SchemaRegistry) Fields() []s.SchemaField {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fields := make([]s.SchemaField, 0, len(r.order))
	for _, name := range r.order {
		fields = append(fields, r.fields[name])
	}
	return fields
}

// Validate reports every malformed declaration at once.
func (r *SchemaRegistry) Validate() error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result error
	if r.IndexName == "" {
		result = multierror.Append(result, errors.Wrap(s.ErrInvalidSchema, "index name is empty"))
	}
	indexNames := make(map[string]string, len(r.order))
	for _, name := range r.order {
		field := r.fields[name]
		if field.Name == "" {
			result = multierror.Append(result, errors.Wrap(s.ErrInvalidSchema, "field name is empty"))
			continue
		}
		if !field.Type.IsValid() {
			result = multierror.Append(result, errors.Wrapf(s.ErrInvalidSchema, "field %s: unknown type %q", field.Name, field.Type))
		}
		if other, taken := indexNames[field.IndexName()]; taken {
			result = multierror.Append(result, errors.Wrapf(s.ErrInvalidSchema, "fields %s and %s share index name %s", other, field.Name, field.IndexName()))
			continue
		}
		indexNames[field.IndexName()] = field.Name
	}
	return result
}
