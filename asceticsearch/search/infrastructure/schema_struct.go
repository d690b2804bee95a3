package search

import (
	"reflect"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/jinzhu/inflection"
	"github.com/pkg/errors"

	s "github.com/krew-solutions/ascetic-search-go/asceticsearch/search/domain"
)

const structTag = "search"

var timeType = reflect.TypeOf(time.Time{})

// SchemaFromStruct derives a schema from the exported fields of a struct.
//
// Field names default to the camelCase form of the Go name and types are
// inferred from the Go type. The `search` tag overrides both:
//
//	Title  string    `search:"title,text"`
//	Genres []string  `search:",array,alias:g"`
//	Secret string    `search:"-"`
//
// The index is named after the pluralized type name ("Album" -> "albums")
// and documents are expected under the "album:" prefix.
func SchemaFromStruct(model any) (*SchemaRegistry, error) {
	t := reflect.TypeOf(model)
	if t == nil {
		return nil, errors.Wrap(s.ErrInvalidSchema, "model is nil")
	}
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, errors.Wrapf(s.ErrInvalidSchema, "model must be a struct, got %s", t.Kind())
	}

	name := DefaultFieldName(t.Name())
	registry := NewSchemaRegistry(inflection.Plural(name)).WithPrefix(name + ":")

	var result error
	declaredBy := make(map[string]string, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		field, skip, err := parseStructField(sf)
		if err != nil {
			result = multierror.Append(result, errors.Wrapf(err, "field %s", sf.Name))
			continue
		}
		if skip {
			continue
		}
		if other, taken := declaredBy[field.Name]; taken {
			result = multierror.Append(result, errors.Wrapf(s.ErrInvalidSchema,
				"field %s is declared twice (by %s and %s)", field.Name, other, sf.Name))
			continue
		}
		declaredBy[field.Name] = sf.Name
		registry.Register(field)
	}
	if result != nil {
		return nil, result
	}
	if err := registry.Validate(); err != nil {
		return nil, err
	}
	return registry, nil
}

func parseStructField(sf reflect.StructField) (s.SchemaField, bool, error) {
	tag := sf.Tag.Get(structTag)
	if tag == "-" {
		return s.SchemaField{}, true, nil
	}

	field := s.SchemaField{Name: DefaultFieldName(sf.Name)}
	parts := strings.Split(tag, ",")
	if name := strings.TrimSpace(parts[0]); name != "" {
		field.Name = name
	}
	for _, part := range parts[1:] {
		part = strings.TrimSpace(part)
		switch {
		case part == "":
		case strings.HasPrefix(part, "alias:"):
			field.Alias = strings.TrimPrefix(part, "alias:")
		case s.FieldType(part).IsValid():
			field.Type = s.FieldType(part)
		default:
			return s.SchemaField{}, false, errors.Wrapf(s.ErrInvalidSchema, "unknown tag option %q", part)
		}
	}

	if field.Type == "" {
		ft, ok := inferFieldType(sf.Type)
		if !ok {
			return s.SchemaField{}, false, errors.Wrapf(s.ErrInvalidSchema, "cannot infer a field type for %s", sf.Type)
		}
		field.Type = ft
	}
	return field, false, nil
}

func inferFieldType(t reflect.Type) (s.FieldType, bool) {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == timeType {
		return s.FieldTypeDate, true
	}
	switch t.Kind() {
	case reflect.String:
		return s.FieldTypeString, true
	case reflect.Bool:
		return s.FieldTypeBoolean, true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return s.FieldTypeNumber, true
	case reflect.Slice, reflect.Array:
		if t.Elem().Kind() == reflect.String {
			return s.FieldTypeArray, true
		}
	}
	return "", false
}
