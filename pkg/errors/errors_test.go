package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithContext(t *testing.T) {
	assert.NoError(t, WithContext(nil, "no-op"))

	base := New("boom")
	wrapped := WithContext(base, "do thing")
	assert.EqualError(t, wrapped, "do thing: boom")
	assert.True(t, errors.Is(wrapped, base))

	doubleWrapped := WithContext(wrapped, "outer")
	assert.EqualError(t, doubleWrapped, "outer: do thing: boom")
	assert.True(t, errors.Is(doubleWrapped, base))
}

func TestGetPrintableMessage(t *testing.T) {
	assert.Equal(t, "plain", GetPrintableMessage(New("plain")))

	friendly := NewFriendlyError("say %q to the user", "hello")
	assert.Equal(t, `say "hello" to the user`, GetPrintableMessage(friendly))

	// Wrapping a friendly error hides the friendly message. This is
	// intentional: the context changes what the user should be told.
	assert.Equal(t, "ctx: say \"hello\" to the user",
		GetPrintableMessage(WithContext(friendly, "ctx")))
}
