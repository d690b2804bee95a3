package testutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingTB struct {
	testing.TB
	failed  bool
	message string
}

func (r *recordingTB) Helper() {}

func (r *recordingTB) Errorf(format string, args ...any) {
	r.failed = true
	r.message = format
}

func TestAssertQuery(t *testing.T) {
	t.Run("equal", func(t *testing.T) {
		rec := &recordingTB{TB: t}
		assert.True(t, AssertQuery(rec, "(@a:{x})", "(@a:{x})"))
		assert.False(t, rec.failed)
	})

	t.Run("different", func(t *testing.T) {
		rec := &recordingTB{TB: t}
		assert.False(t, AssertQuery(rec, "( (@a:{x}) (@b:{y}) )", "( (@a:{x}) | (@b:{y}) )"))
		assert.True(t, rec.failed)
		assert.Contains(t, rec.message, "query mismatch")
	})
}

func TestSchemaStub(t *testing.T) {
	stub := NewSchemaStub()
	field, ok := stub.Resolve("aNumber")
	assert.True(t, ok)
	assert.Equal(t, "aNumber", field.Name)

	_, ok = stub.Resolve("missing")
	assert.False(t, ok)
}
