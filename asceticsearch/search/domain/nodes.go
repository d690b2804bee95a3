package search

import "github.com/krew-solutions/ascetic-search-go/asceticsearch/search/domain/operators"

type Visitable interface {
	Accept(Visitor) error
}

type Visitor interface {
	VisitLeaf(LeafNode) error
	VisitInfix(InfixNode) error
}

// Leaf wraps a predicate that is already rendered in the engine's query
// syntax, e.g. "(@name:{foo})".
func Leaf(text string) LeafNode {
	return LeafNode{
		text: text,
	}
}

type LeafNode struct {
	text string
}

func (n LeafNode) Text() string {
	return n.text
}

func (n LeafNode) Accept(v Visitor) error {
	return v.VisitLeaf(n)
}

// And joins its operands into a left-deep chain: And(a, b, c) is
// And(And(a, b), c).
func And(left, right Visitable, rest ...Visitable) InfixNode {
	return fold(operators.OperatorAnd, left, right, rest)
}

// Or joins its operands into a left-deep chain.
func Or(left, right Visitable, rest ...Visitable) InfixNode {
	return fold(operators.OperatorOr, left, right, rest)
}

func fold(operator operators.Operator, left, right Visitable, rest []Visitable) InfixNode {
	node := NewInfixNode(left, operator, right)
	for _, r := range rest {
		node = NewInfixNode(node, operator, r)
	}
	return node
}

func NewInfixNode(left Visitable, operator operators.Operator, right Visitable) InfixNode {
	return InfixNode{
		left:     left,
		operator: operator,
		right:    right,
	}
}

type InfixNode struct {
	left     Visitable
	operator operators.Operator
	right    Visitable
}

func (n InfixNode) Left() Visitable {
	return n.left
}

func (n InfixNode) Operator() operators.Operator {
	return n.operator
}

func (n InfixNode) Right() Visitable {
	return n.right
}

func (n InfixNode) Accept(v Visitor) error {
	return v.VisitInfix(n)
}
