package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krew-solutions/ascetic-search-go/asceticsearch/option"
	s "github.com/krew-solutions/ascetic-search-go/asceticsearch/search/domain"
	"github.com/krew-solutions/ascetic-search-go/asceticsearch/search/domain/operators"
	"github.com/krew-solutions/ascetic-search-go/asceticsearch/utils/testutils"
)

func TestCompileLeaf(t *testing.T) {
	query, err := Compile(s.Leaf("(@aString:{foo})"))
	require.NoError(t, err)
	testutils.AssertQuery(t, "(@aString:{foo})", query)
}

func TestCompileAnd(t *testing.T) {
	query, err := Compile(s.And(s.Leaf("(@aString:{foo})"), s.Leaf("(@aNumber:[42 42])")))
	require.NoError(t, err)
	testutils.AssertQuery(t, "( (@aString:{foo}) (@aNumber:[42 42]) )", query)
}

func TestCompileOr(t *testing.T) {
	query, err := Compile(s.Or(s.Leaf("(@aString:{foo})"), s.Leaf("(@aNumber:[42 42])")))
	require.NoError(t, err)
	testutils.AssertQuery(t, "( (@aString:{foo}) | (@aNumber:[42 42]) )", query)
}

func TestCompileLeftDeepChain(t *testing.T) {
	exp := s.And(s.Leaf("a"), s.Leaf("b"), s.Leaf("c"), s.Leaf("d"))
	query, err := Compile(exp)
	require.NoError(t, err)
	testutils.AssertQuery(t, "( ( ( a b ) c ) d )", query)
}

func TestCompileNeverReordersByPrecedence(t *testing.T) {
	// a OR b AND c keeps call order: (a | b) then AND c.
	exp := s.And(s.Or(s.Leaf("a"), s.Leaf("b")), s.Leaf("c"))
	query, err := Compile(exp)
	require.NoError(t, err)
	testutils.AssertQuery(t, "( ( a | b ) c )", query)
}

func TestCompileNestedRightOperand(t *testing.T) {
	group := s.Or(s.Leaf("b"), s.Leaf("c"))
	exp := s.And(s.Leaf("a"), group)
	query, err := Compile(exp)
	require.NoError(t, err)
	testutils.AssertQuery(t, "( a ( b | c ) )", query)
}

func TestCompileRoot(t *testing.T) {
	t.Run("nothing matches everything", func(t *testing.T) {
		query, err := CompileRoot(option.Nothing[s.Visitable]())
		require.NoError(t, err)
		assert.Equal(t, MatchAll, query)
		assert.Equal(t, "*", query)
	})

	t.Run("some compiles the tree", func(t *testing.T) {
		query, err := CompileRoot(option.Some[s.Visitable](s.Leaf("(@aBoolean:{1})")))
		require.NoError(t, err)
		assert.Equal(t, "(@aBoolean:{1})", query)
	})
}

func TestCompileErrors(t *testing.T) {
	t.Run("unknown operator", func(t *testing.T) {
		exp := s.NewInfixNode(s.Leaf("a"), operators.Operator("XOR"), s.Leaf("b"))
		_, err := Compile(exp)
		assert.ErrorContains(t, err, `operator "XOR" is not supported`)
	})

	t.Run("missing operand", func(t *testing.T) {
		exp := s.NewInfixNode(s.Leaf("a"), operators.OperatorAnd, nil)
		_, err := Compile(exp)
		assert.ErrorContains(t, err, "missing an operand")
	})

	t.Run("empty leaf", func(t *testing.T) {
		_, err := Compile(s.Leaf(""))
		assert.ErrorIs(t, err, s.ErrInvalidValue)
	})
}

func TestVisitorResultWithoutVisit(t *testing.T) {
	_, err := NewRediSearchVisitor().Result()
	assert.Error(t, err)
}

func TestSeparatorOption(t *testing.T) {
	v := NewRediSearchVisitor(Separator(operators.OperatorOr, "|"))
	require.NoError(t, s.Or(s.Leaf("a"), s.Leaf("b")).Accept(v))
	query, err := v.Result()
	require.NoError(t, err)
	assert.Equal(t, "( a|b )", query)
}
