package public

import (
	"time"

	"github.com/pkg/errors"

	s "github.com/krew-solutions/ascetic-search-go/asceticsearch/search/domain"
	"github.com/krew-solutions/ascetic-search-go/asceticsearch/search/domain/operators"
	search "github.com/krew-solutions/ascetic-search-go/asceticsearch/search/infrastructure"
)

// Predicate is a field selected by Where, AndWhere or OrWhere, waiting for a
// comparison. The comparison renders one leaf, merges it into the owning
// search with the combine mode captured at selection time, and returns the
// search. A predicate can be used once.
//
// Which comparisons are available depends on the declared field type:
//
//	string   Eq, In
//	number   Eq, Gt, Gte, Lt, Lte, Between
//	boolean  Eq, IsTrue, IsFalse
//	array    Contains, ContainsOneOf
//	text     Match, MatchExact
//	date     Eq/On, After, Before, OnOrAfter, OnOrBefore, Between
//
// Any other combination fails with search.ErrUnsupportedOperation.
type Predicate struct {
	owner    *Search
	field    s.SchemaField
	mode     operators.Operator
	negate   bool
	consumed bool
}

type leafRenderer func(field s.SchemaField, negate bool) (string, error)

// Field returns the selected field declaration.
func (p *Predicate) Field() s.SchemaField {
	return p.field
}

// Not negates the comparison that follows: Where("a").Not().Eq("x")
// renders "(-@a:{x})". It returns the same predicate, so it still produces
// a single leaf.
func (p *Predicate) Not() *Predicate {
	if p != nil {
		p.negate = !p.negate
	}
	return p
}

// Eq matches the value exactly. Strings match as tags, numbers and dates as
// single-point ranges, booleans as "1"/"0" tags.
func (p *Predicate) Eq(value any) *Search {
	return p.apply("eq", func(field s.SchemaField, negate bool) (string, error) {
		switch field.Type {
		case s.FieldTypeString:
			str, ok := value.(string)
			if !ok {
				return "", errors.Wrapf(s.ErrInvalidValue, "string expected, got %T", value)
			}
			return search.TagLeaf(field, negate, str)
		case s.FieldTypeNumber, s.FieldTypeDate:
			r, err := search.ExactRange(value)
			if err != nil {
				return "", err
			}
			return search.RangeLeaf(field, negate, r), nil
		case s.FieldTypeBoolean:
			b, ok := value.(bool)
			if !ok {
				return "", errors.Wrapf(s.ErrInvalidValue, "bool expected, got %T", value)
			}
			return search.BooleanLeaf(field, negate, b), nil
		case s.FieldTypeArray, s.FieldTypeText:
			return "", unsupported(field)
		default:
			return "", unsupported(field)
		}
	})
}

func (p *Predicate) Equal(value any) *Search {
	return p.Eq(value)
}

func (p *Predicate) Equals(value any) *Search {
	return p.Eq(value)
}

func (p *Predicate) EqualTo(value any) *Search {
	return p.Eq(value)
}

// In matches any of the values. It expands to Eq(values[0]) followed by
// OrWhere(field).Eq(v) for every further value, so each value is OR'd onto
// the whole search built so far.
func (p *Predicate) In(values ...string) *Search {
	q, ok := p.usable("in")
	if !ok {
		return q
	}
	switch {
	case p.field.Type != s.FieldTypeString:
		q.fail(errors.Wrapf(unsupported(p.field), "in on field %s", p.field.Name))
		return q
	case p.negate:
		q.fail(errors.Wrapf(s.ErrUnsupportedOperation, "negated in on field %s", p.field.Name))
		return q
	case len(values) == 0:
		q.fail(errors.Wrapf(s.ErrEmptyValues, "in on field %s", p.field.Name))
		return q
	}

	q = p.Eq(values[0])
	for _, value := range values[1:] {
		next := &Predicate{owner: q, field: p.field, mode: operators.OperatorOr}
		q = next.Eq(value)
	}
	return q
}

// Gt matches values strictly greater than value.
func (p *Predicate) Gt(value any) *Search {
	return p.rangeOp("gt", func() (search.Range, error) {
		min, err := search.Exclusive(value)
		if err != nil {
			return search.Range{}, err
		}
		return search.NewRange(min, search.PositiveInfinity)
	}, s.FieldTypeNumber)
}

func (p *Predicate) GreaterThan(value any) *Search {
	return p.Gt(value)
}

// Gte matches values greater than or equal to value.
func (p *Predicate) Gte(value any) *Search {
	return p.rangeOp("gte", func() (search.Range, error) {
		min, err := search.Inclusive(value)
		if err != nil {
			return search.Range{}, err
		}
		return search.NewRange(min, search.PositiveInfinity)
	}, s.FieldTypeNumber)
}

func (p *Predicate) GreaterThanOrEqualTo(value any) *Search {
	return p.Gte(value)
}

// Lt matches values strictly less than value.
func (p *Predicate) Lt(value any) *Search {
	return p.rangeOp("lt", func() (search.Range, error) {
		max, err := search.Exclusive(value)
		if err != nil {
			return search.Range{}, err
		}
		return search.NewRange(search.NegativeInfinity, max)
	}, s.FieldTypeNumber)
}

func (p *Predicate) LessThan(value any) *Search {
	return p.Lt(value)
}

// Lte matches values less than or equal to value.
func (p *Predicate) Lte(value any) *Search {
	return p.rangeOp("lte", func() (search.Range, error) {
		max, err := search.Inclusive(value)
		if err != nil {
			return search.Range{}, err
		}
		return search.NewRange(search.NegativeInfinity, max)
	}, s.FieldTypeNumber)
}

func (p *Predicate) LessThanOrEqualTo(value any) *Search {
	return p.Lte(value)
}

// Between matches values in the closed interval [lower, upper].
func (p *Predicate) Between(lower, upper any) *Search {
	return p.rangeOp("between", func() (search.Range, error) {
		min, err := search.Inclusive(lower)
		if err != nil {
			return search.Range{}, err
		}
		max, err := search.Inclusive(upper)
		if err != nil {
			return search.Range{}, err
		}
		return search.NewRange(min, max)
	}, s.FieldTypeNumber, s.FieldTypeDate)
}

// On matches dates within the same second as t.
func (p *Predicate) On(t time.Time) *Search {
	return p.rangeOp("on", func() (search.Range, error) {
		return search.ExactRange(t)
	}, s.FieldTypeDate)
}

func (p *Predicate) After(t time.Time) *Search {
	return p.rangeOp("after", func() (search.Range, error) {
		min, err := search.Exclusive(t)
		if err != nil {
			return search.Range{}, err
		}
		return search.NewRange(min, search.PositiveInfinity)
	}, s.FieldTypeDate)
}

func (p *Predicate) Before(t time.Time) *Search {
	return p.rangeOp("before", func() (search.Range, error) {
		max, err := search.Exclusive(t)
		if err != nil {
			return search.Range{}, err
		}
		return search.NewRange(search.NegativeInfinity, max)
	}, s.FieldTypeDate)
}

func (p *Predicate) OnOrAfter(t time.Time) *Search {
	return p.rangeOp("onOrAfter", func() (search.Range, error) {
		min, err := search.Inclusive(t)
		if err != nil {
			return search.Range{}, err
		}
		return search.NewRange(min, search.PositiveInfinity)
	}, s.FieldTypeDate)
}

func (p *Predicate) OnOrBefore(t time.Time) *Search {
	return p.rangeOp("onOrBefore", func() (search.Range, error) {
		max, err := search.Inclusive(t)
		if err != nil {
			return search.Range{}, err
		}
		return search.NewRange(search.NegativeInfinity, max)
	}, s.FieldTypeDate)
}

func (p *Predicate) IsTrue() *Search {
	return p.boolOp("isTrue", true)
}

func (p *Predicate) IsFalse() *Search {
	return p.boolOp("isFalse", false)
}

// Contains matches arrays holding value.
func (p *Predicate) Contains(value string) *Search {
	return p.apply("contains", func(field s.SchemaField, negate bool) (string, error) {
		if field.Type != s.FieldTypeArray {
			return "", unsupported(field)
		}
		return search.TagLeaf(field, negate, value)
	})
}

func (p *Predicate) Contain(value string) *Search {
	return p.Contains(value)
}

// ContainsOneOf matches arrays holding at least one of values, as a single
// "{a|b}" leaf.
func (p *Predicate) ContainsOneOf(values ...string) *Search {
	return p.apply("containsOneOf", func(field s.SchemaField, negate bool) (string, error) {
		if field.Type != s.FieldTypeArray {
			return "", unsupported(field)
		}
		return search.TagLeaf(field, negate, values...)
	})
}

func (p *Predicate) ContainOneOf(values ...string) *Search {
	return p.ContainsOneOf(values...)
}

// Match runs a full-text match of value against a text field.
func (p *Predicate) Match(value string) *Search {
	return p.apply("match", func(field s.SchemaField, negate bool) (string, error) {
		if field.Type != s.FieldTypeText {
			return "", unsupported(field)
		}
		return search.TextLeaf(field, negate, value)
	})
}

func (p *Predicate) Matches(value string) *Search {
	return p.Match(value)
}

// MatchExact matches value as a phrase.
func (p *Predicate) MatchExact(value string) *Search {
	return p.apply("matchExact", func(field s.SchemaField, negate bool) (string, error) {
		if field.Type != s.FieldTypeText {
			return "", unsupported(field)
		}
		return search.ExactTextLeaf(field, negate, value)
	})
}

func (p *Predicate) MatchesExactly(value string) *Search {
	return p.MatchExact(value)
}

func (p *Predicate) boolOp(op string, value bool) *Search {
	return p.apply(op, func(field s.SchemaField, negate bool) (string, error) {
		if field.Type != s.FieldTypeBoolean {
			return "", unsupported(field)
		}
		return search.BooleanLeaf(field, negate, value), nil
	})
}

func (p *Predicate) rangeOp(op string, build func() (search.Range, error), types ...s.FieldType) *Search {
	return p.apply(op, func(field s.SchemaField, negate bool) (string, error) {
		if !acceptsType(field.Type, types) {
			return "", unsupported(field)
		}
		r, err := build()
		if err != nil {
			return "", err
		}
		return search.RangeLeaf(field, negate, r), nil
	})
}

// apply renders the leaf and hands it to the owner. Nothing is merged when
// rendering fails.
func (p *Predicate) apply(op string, render leafRenderer) *Search {
	q, ok := p.usable(op)
	if !ok {
		return q
	}
	text, err := render(p.field, p.negate)
	if err != nil {
		q.fail(errors.Wrapf(err, "%s on field %s", op, p.field.Name))
		return q
	}
	p.consumed = true
	q.merge(p.mode, s.Leaf(text))
	return q
}

// usable returns the search to continue with and whether the comparison may
// proceed.
func (p *Predicate) usable(op string) (*Search, bool) {
	if p == nil || p.owner == nil {
		q := NewSearch(nil)
		q.fail(errors.Wrap(s.ErrDetachedPredicate, op))
		return q, false
	}
	q := p.owner
	if q.err != nil {
		return q, false
	}
	if p.consumed {
		q.fail(errors.Wrapf(s.ErrPredicateConsumed, "%s on field %s", op, p.field.Name))
		return q, false
	}
	return q, true
}

func acceptsType(t s.FieldType, types []s.FieldType) bool {
	for _, accepted := range types {
		if t == accepted {
			return true
		}
	}
	return false
}

func unsupported(field s.SchemaField) error {
	return errors.Wrapf(s.ErrUnsupportedOperation, "%s field", field.Type)
}
