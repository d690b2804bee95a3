// Package public is the fluent entry point for building RediSearch queries
// against a schema:
//
//	query, err := public.NewSearch(schema).
//		Where("artist").Eq("Mushroomhead").
//		OrWhere("artist").Eq("Ozzy Osbourne").
//		AndWhere("year").Gte(1990).
//		Query()
//
// Every Where call is checked against the schema before anything is built.
// The first error stops the chain; Query then returns that error instead of
// a partial query.
package public

import (
	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"

	"github.com/krew-solutions/ascetic-search-go/asceticsearch/option"
	s "github.com/krew-solutions/ascetic-search-go/asceticsearch/search/domain"
	"github.com/krew-solutions/ascetic-search-go/asceticsearch/search/domain/operators"
	search "github.com/krew-solutions/ascetic-search-go/asceticsearch/search/infrastructure"
)

// SubqueryFunc builds a parenthesized group on the search it receives and
// returns that same search.
type SubqueryFunc func(*Search) *Search

type SearchOption func(*Search)

// WithLogger sets the logger used to trace merges and report errors.
func WithLogger(logger hclog.Logger) SearchOption {
	return func(q *Search) {
		if logger != nil {
			q.logger = logger
		}
	}
}

// Search accumulates predicates into an expression tree. It is not safe for
// concurrent use; the Schema it reads may be shared.
type Search struct {
	schema s.Schema
	root   option.Option[s.Visitable]
	err    error
	logger hclog.Logger
}

func NewSearch(schema s.Schema, opts ...SearchOption) *Search {
	q := &Search{
		schema: schema,
		logger: hclog.NewNullLogger(),
	}
	for i := range opts {
		opts[i](q)
	}
	return q
}

// Where selects a field for the next comparison. On a search that already
// has predicates it behaves like AndWhere.
func (q *Search) Where(field string) *Predicate {
	return q.AndWhere(field)
}

func (q *Search) AndWhere(field string) *Predicate {
	return q.predicate(operators.OperatorAnd, field)
}

func (q *Search) OrWhere(field string) *Predicate {
	return q.predicate(operators.OperatorOr, field)
}

// WhereGroup adds the predicates built by fn as one parenthesized group. On a
// search that already has predicates it behaves like AndWhereGroup.
func (q *Search) WhereGroup(fn SubqueryFunc) *Search {
	return q.AndWhereGroup(fn)
}

func (q *Search) AndWhereGroup(fn SubqueryFunc) *Search {
	return q.group(operators.OperatorAnd, fn)
}

func (q *Search) OrWhereGroup(fn SubqueryFunc) *Search {
	return q.group(operators.OperatorOr, fn)
}

// Root returns the expression tree built so far; Nothing means match all.
func (q *Search) Root() option.Option[s.Visitable] {
	return q.root
}

// Err returns the first error recorded by the chain.
func (q *Search) Err() error {
	return q.err
}

// Query renders the search, or returns the first error of the chain.
func (q *Search) Query() (string, error) {
	if q.err != nil {
		return "", q.err
	}
	query, err := search.CompileRoot(q.root)
	if err != nil {
		return "", errors.Wrap(err, "failed to compile query")
	}
	q.logger.Debug("compiled query", "query", query)
	return query, nil
}

func (q *Search) predicate(mode operators.Operator, name string) *Predicate {
	if q.err != nil {
		return &Predicate{owner: q, mode: mode}
	}
	field, ok := q.resolve(name)
	if !ok {
		return &Predicate{owner: q, mode: mode}
	}
	return &Predicate{owner: q, field: field, mode: mode}
}

func (q *Search) resolve(name string) (s.SchemaField, bool) {
	if q.schema == nil {
		q.fail(&s.UnknownFieldError{Field: name})
		return s.SchemaField{}, false
	}
	field, ok := q.schema.Resolve(name)
	if !ok {
		q.fail(&s.UnknownFieldError{Field: name})
		return s.SchemaField{}, false
	}
	return field, true
}

func (q *Search) group(mode operators.Operator, fn SubqueryFunc) *Search {
	if q.err != nil {
		return q
	}
	if fn == nil {
		q.fail(errors.Wrap(s.ErrEmptySubquery, "group callback is nil"))
		return q
	}
	child := &Search{
		schema: q.schema,
		logger: q.logger,
	}
	result := fn(child)
	switch {
	case result != child:
		q.fail(s.ErrForeignSubquery)
	case child.err != nil:
		q.fail(errors.Wrap(child.err, "group"))
	case child.root.IsNothing():
		q.fail(s.ErrEmptySubquery)
	default:
		q.merge(mode, child.root.Unwrap())
	}
	return q
}

// merge attaches node to the tree. The previous root is never modified, a
// new root referencing it replaces it.
func (q *Search) merge(mode operators.Operator, node s.Visitable) {
	if q.root.IsNothing() {
		q.root = option.Some(node)
		q.logger.Trace("set root predicate")
		return
	}
	q.root = option.Some[s.Visitable](s.NewInfixNode(q.root.Unwrap(), mode, node))
	q.logger.Trace("merged predicate", "mode", mode)
}

// fail keeps the first error only.
func (q *Search) fail(err error) {
	if err == nil || q.err != nil {
		return
	}
	q.err = err
	q.logger.Warn("search predicate rejected", "error", err)
}
