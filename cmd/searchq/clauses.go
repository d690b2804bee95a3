package main

import (
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	s "github.com/krew-solutions/ascetic-search-go/asceticsearch/search/domain"
	"github.com/krew-solutions/ascetic-search-go/asceticsearch/search/domain/operators"
	"github.com/krew-solutions/ascetic-search-go/asceticsearch/search/public"
)

// Clause is one "<field> [not] <op> [value...]" group of arguments.
type Clause struct {
	Mode   operators.Operator
	Field  string
	Not    bool
	Op     string
	Values []string
}

// arity is the number of value arguments each operator consumes.
var arity = map[string]int{
	"eq":            1,
	"in":            1,
	"gt":            1,
	"gte":           1,
	"lt":            1,
	"lte":           1,
	"between":       2,
	"isTrue":        0,
	"isFalse":       0,
	"contains":      1,
	"containsOneOf": 1,
	"match":         1,
	"matchExact":    1,
	"on":            1,
	"after":         1,
	"before":        1,
	"onOrAfter":     1,
	"onOrBefore":    1,
}

// ParseClauses splits command line arguments into clauses. The first clause
// is AND'ed like Where; later ones must be introduced by "and" or "or".
func ParseClauses(args []string) ([]Clause, error) {
	var clauses []Clause
	mode := operators.OperatorAnd
	for i := 0; i < len(args); {
		if len(clauses) > 0 {
			switch strings.ToLower(args[i]) {
			case "and":
				mode = operators.OperatorAnd
			case "or":
				mode = operators.OperatorOr
			default:
				return nil, errors.Errorf("expected and/or at argument %d, got %q", i+1, args[i])
			}
			i++
		}
		if i >= len(args) {
			return nil, errors.New("missing predicate after combinator")
		}

		clause := Clause{Mode: mode, Field: args[i]}
		i++
		if i < len(args) && args[i] == "not" {
			clause.Not = true
			i++
		}
		if i >= len(args) {
			return nil, errors.Errorf("missing operator for field %s", clause.Field)
		}
		clause.Op = args[i]
		i++
		n, ok := arity[clause.Op]
		if !ok {
			return nil, errors.Errorf("unknown operator %q", clause.Op)
		}
		if i+n > len(args) {
			return nil, errors.Errorf("%s on field %s expects %d value(s)", clause.Op, clause.Field, n)
		}
		clause.Values = args[i : i+n]
		i += n
		clauses = append(clauses, clause)
	}
	return clauses, nil
}

// Apply adds the clause to q. Arguments that cannot be converted for the
// field type are handed over as strings, so the builder reports them. Only
// malformed timestamps of the date operators fail here.
func (c Clause) Apply(q *public.Search) (*public.Search, error) {
	var p *public.Predicate
	if c.Mode == operators.OperatorOr {
		p = q.OrWhere(c.Field)
	} else {
		p = q.AndWhere(c.Field)
	}
	if c.Not {
		p = p.Not()
	}
	t := p.Field().Type

	switch c.Op {
	case "eq":
		return p.Eq(convert(t, c.Values[0])), nil
	case "in":
		return p.In(splitList(c.Values[0])...), nil
	case "gt":
		return p.Gt(convert(t, c.Values[0])), nil
	case "gte":
		return p.Gte(convert(t, c.Values[0])), nil
	case "lt":
		return p.Lt(convert(t, c.Values[0])), nil
	case "lte":
		return p.Lte(convert(t, c.Values[0])), nil
	case "between":
		return p.Between(convert(t, c.Values[0]), convert(t, c.Values[1])), nil
	case "isTrue":
		return p.IsTrue(), nil
	case "isFalse":
		return p.IsFalse(), nil
	case "contains":
		return p.Contains(c.Values[0]), nil
	case "containsOneOf":
		return p.ContainsOneOf(splitList(c.Values[0])...), nil
	case "match":
		return p.Match(c.Values[0]), nil
	case "matchExact":
		return p.MatchExact(c.Values[0]), nil
	}

	at, err := parseDate(c.Values[0])
	if err != nil {
		return q, errors.Wrapf(err, "%s on field %s", c.Op, c.Field)
	}
	switch c.Op {
	case "on":
		return p.On(at), nil
	case "after":
		return p.After(at), nil
	case "before":
		return p.Before(at), nil
	case "onOrAfter":
		return p.OnOrAfter(at), nil
	default:
		return p.OnOrBefore(at), nil
	}
}

func convert(t s.FieldType, value string) any {
	switch t {
	case s.FieldTypeNumber:
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	case s.FieldTypeBoolean:
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	case s.FieldTypeDate:
		if at, err := parseDate(value); err == nil {
			return at
		}
	}
	return value
}

// parseDate accepts an RFC 3339 timestamp or epoch seconds.
func parseDate(value string) (time.Time, error) {
	at, err := time.Parse(time.RFC3339, value)
	if err == nil {
		return at, nil
	}
	if secs, convErr := strconv.ParseInt(value, 10, 64); convErr == nil {
		return time.Unix(secs, 0).UTC(), nil
	}
	return time.Time{}, errors.Wrapf(err, "%q is neither RFC 3339 nor epoch seconds", value)
}

func splitList(value string) []string {
	var out []string
	for _, v := range strings.Split(value, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
