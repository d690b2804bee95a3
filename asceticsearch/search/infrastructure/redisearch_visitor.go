package search

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/krew-solutions/ascetic-search-go/asceticsearch/option"
	s "github.com/krew-solutions/ascetic-search-go/asceticsearch/search/domain"
	"github.com/krew-solutions/ascetic-search-go/asceticsearch/search/domain/operators"
)

// MatchAll is the query that matches every document in an index.
const MatchAll = "*"

// Compile renders an expression tree in RediSearch query syntax.
func Compile(exp s.Visitable) (string, error) {
	v := NewRediSearchVisitor()
	if err := exp.Accept(v); err != nil {
		return "", err
	}
	return v.Result()
}

// CompileRoot is Compile for a possibly empty root; an empty root matches
// everything.
func CompileRoot(root option.Option[s.Visitable]) (string, error) {
	if root.IsNothing() {
		return MatchAll, nil
	}
	return Compile(root.Unwrap())
}

type RediSearchVisitorOption func(*RediSearchVisitor)

// Separator overrides the token placed between the operands of operator.
func Separator(operator operators.Operator, separator string) RediSearchVisitorOption {
	return func(v *RediSearchVisitor) {
		v.separators[operator] = separator
	}
}

func NewRediSearchVisitor(opts ...RediSearchVisitorOption) *RediSearchVisitor {
	v := &RediSearchVisitor{
		separators: map[operators.Operator]string{
			operators.OperatorAnd: " ",
			operators.OperatorOr:  " | ",
		},
	}
	for i := range opts {
		opts[i](v)
	}
	return v
}

// RediSearchVisitor serializes a tree exactly as it was built: every infix
// node becomes its own parenthesized group and nothing is flattened.
type RediSearchVisitor struct {
	query      strings.Builder
	separators map[operators.Operator]string
	visited    bool
}

func (v *RediSearchVisitor) VisitLeaf(n s.LeafNode) error {
	if n.Text() == "" {
		return errors.Wrap(s.ErrInvalidValue, "empty leaf")
	}
	v.visited = true
	v.query.WriteString(n.Text())
	return nil
}

func (v *RediSearchVisitor) VisitInfix(n s.InfixNode) error {
	separator, ok := v.separators[n.Operator()]
	if !ok {
		return errors.Errorf("operator %q is not supported", n.Operator())
	}
	if n.Left() == nil || n.Right() == nil {
		return errors.Errorf("%s node is missing an operand", n.Operator())
	}
	v.visited = true
	v.query.WriteString("( ")
	if err := n.Left().Accept(v); err != nil {
		return err
	}
	v.query.WriteString(separator)
	if err := n.Right().Accept(v); err != nil {
		return err
	}
	v.query.WriteString(" )")
	return nil
}

func (v *RediSearchVisitor) Result() (string, error) {
	if !v.visited {
		return "", errors.New("nothing was visited")
	}
	return v.query.String(), nil
}
