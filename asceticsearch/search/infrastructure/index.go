package search

import (
	"strconv"

	"github.com/pkg/errors"

	s "github.com/krew-solutions/ascetic-search-go/asceticsearch/search/domain"
)

// ArraySeparator joins array values in a hash field and splits them in the
// index.
const ArraySeparator = "|"

// CreateIndexArgs returns the FT.CREATE arguments (without the command
// itself) that index documents stored as hashes the way this package
// queries them:
//
//	albums ON HASH PREFIX 1 album: SCHEMA artist TAG year NUMERIC ...
func (r *SchemaRegistry) CreateIndexArgs() ([]string, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	fields := r.Fields()
	if len(fields) == 0 {
		return nil, errors.Wrapf(s.ErrInvalidSchema, "index %s declares no fields", r.IndexName)
	}

	args := []string{r.IndexName, "ON", "HASH"}
	if r.Prefix != "" {
		args = append(args, "PREFIX", strconv.Itoa(1), r.Prefix)
	}
	args = append(args, "SCHEMA")
	for _, field := range fields {
		args = append(args, field.Name)
		if field.Alias != "" {
			args = append(args, "AS", field.Alias)
		}
		args = append(args, indexType(field.Type)...)
	}
	return args, nil
}

func indexType(t s.FieldType) []string {
	switch t {
	case s.FieldTypeString, s.FieldTypeBoolean:
		return []string{"TAG"}
	case s.FieldTypeArray:
		return []string{"TAG", "SEPARATOR", ArraySeparator}
	case s.FieldTypeText:
		return []string{"TEXT"}
	case s.FieldTypeNumber, s.FieldTypeDate:
		return []string{"NUMERIC"}
	default:
		return nil
	}
}
