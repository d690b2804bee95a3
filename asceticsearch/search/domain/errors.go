package search

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrEmptyValues is returned when a multi-value comparison gets no values.
	ErrEmptyValues = errors.New("at least one value is required")

	// ErrUnsupportedOperation is returned when a comparison is not defined for
	// the type of the selected field.
	ErrUnsupportedOperation = errors.New("operation is not supported for the field type")

	// ErrInvalidValue is returned when a value cannot be rendered for the field.
	ErrInvalidValue = errors.New("invalid value")

	// ErrInvalidRange is returned when a lower bound exceeds the upper bound.
	ErrInvalidRange = errors.New("lower bound is greater than upper bound")

	// ErrPredicateConsumed is returned when a second comparison is attempted on
	// a predicate that already produced its leaf.
	ErrPredicateConsumed = errors.New("predicate has already been applied")

	// ErrDetachedPredicate is returned by comparisons on a predicate that was
	// not obtained from a search.
	ErrDetachedPredicate = errors.New("predicate is not attached to a search")

	// ErrForeignSubquery is returned when a group callback does not return the
	// search it was given.
	ErrForeignSubquery = errors.New("group callback must return the search it received")

	// ErrEmptySubquery is returned when a group callback adds no predicates.
	ErrEmptySubquery = errors.New("group callback added no predicates")

	// ErrInvalidSchema is returned when a schema definition is malformed.
	ErrInvalidSchema = errors.New("invalid schema")
)

// UnknownFieldError is returned when a predicate names a field that the
// schema does not declare.
type UnknownFieldError struct {
	Field string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("The field '%s' is not part of the schema.", e.Field)
}

// IsUnknownField reports whether err is, or wraps, an UnknownFieldError.
func IsUnknownField(err error) bool {
	var target *UnknownFieldError
	return errors.As(err, &target)
}
