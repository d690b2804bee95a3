package search

// FieldType is the declared type of an indexed field. It decides which
// comparisons a field accepts and how they render.
type FieldType string

const (
	FieldTypeString  FieldType = "string"
	FieldTypeNumber  FieldType = "number"
	FieldTypeBoolean FieldType = "boolean"
	// FieldTypeArray is a multi-valued tag field.
	FieldTypeArray FieldType = "array"
	// FieldTypeText is a full-text field.
	FieldTypeText FieldType = "text"
	// FieldTypeDate is indexed as epoch seconds and matched with ranges.
	FieldTypeDate FieldType = "date"
)

// FieldTypes lists every supported FieldType.
func FieldTypes() []FieldType {
	return []FieldType{
		FieldTypeString,
		FieldTypeNumber,
		FieldTypeBoolean,
		FieldTypeArray,
		FieldTypeText,
		FieldTypeDate,
	}
}

func (t FieldType) IsValid() bool {
	for _, known := range FieldTypes() {
		if t == known {
			return true
		}
	}
	return false
}

// SchemaField describes one indexed field.
type SchemaField struct {
	Name string
	Type FieldType
	// Alias is the attribute name used in the index when it differs from Name.
	Alias string
}

// IndexName is the name predicates are rendered against.
func (f SchemaField) IndexName() string {
	if f.Alias != "" {
		return f.Alias
	}
	return f.Name
}

// Schema resolves field names to their declarations. Implementations must be
// safe for concurrent reads.
type Schema interface {
	Resolve(name string) (SchemaField, bool)
}
