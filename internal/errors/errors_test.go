package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var errSentinel = New("sentinel")

func TestWrapKeepsCause(t *testing.T) {
	wrapped := Wrapf(errSentinel, "load guest %s", "g-1")

	assert.True(t, Is(wrapped, errSentinel))
	assert.Equal(t, errSentinel, Cause(wrapped))
	assert.Equal(t, "load guest g-1: sentinel", wrapped.Error())
}

func TestJoin(t *testing.T) {
	other := New("other")
	joined := Join(errSentinel, other)

	assert.True(t, Is(joined, errSentinel))
	assert.True(t, Is(joined, other))
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "decode response"))
	assert.NoError(t, WithStack(nil))
}
