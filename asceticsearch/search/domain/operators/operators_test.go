package operators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperatorIsValid(t *testing.T) {
	assert.True(t, OperatorAnd.IsValid())
	assert.True(t, OperatorOr.IsValid())
	assert.False(t, Operator("NOT").IsValid())
	assert.False(t, Operator("").IsValid())
}
