package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type codedError struct {
	code string
}

func (e *codedError) Error() string { return e.code }

func TestAsType(t *testing.T) {
	wrapped := Wrap(&codedError{code: "E1"}, "context")

	got, ok := AsType[*codedError](wrapped)
	assert.True(t, ok)
	assert.Equal(t, "E1", got.code)

	_, ok = AsType[*codedError](New("plain"))
	assert.False(t, ok)
}

func TestWrapKeepsCause(t *testing.T) {
	base := New("root cause")
	err := Wrapf(base, "loading %s", "app")

	assert.True(t, Is(err, base))
	assert.Equal(t, base, Cause(err))
	assert.Equal(t, "loading app: root cause", err.Error())
}
