package errors

import (
	"net/http"
	"testing"

	"guestpass/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_WrapMessageKeepsIdentity(t *testing.T) {
	err := ErrDeviceLimitReached.WrapMessage("register device")

	assert.True(t, errors.Is(err, ErrDeviceLimitReached))

	var appErr AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusTooManyRequests, appErr.HTTPCode())
	assert.Equal(t, "DEVICE_LIMIT_REACHED", appErr.ErrorCode())
}

func TestBaseError_WithDetails(t *testing.T) {
	detailed := ErrInvalidQuota.WithDetails("must be between 1 and 20")

	assert.Equal(t, "must be between 1 and 20", detailed.Details())
	assert.Equal(t, ErrInvalidQuota.ErrorCode(), detailed.ErrorCode())
	assert.Empty(t, ErrInvalidQuota.Details())
	assert.True(t, errors.Is(detailed, ErrInvalidQuota))
	assert.False(t, errors.Is(detailed, ErrGuestNotFound))
}

func TestByCode(t *testing.T) {
	got, ok := ByCode("GUEST_NOT_FOUND")
	require.True(t, ok)
	assert.Same(t, ErrGuestNotFound, got)

	_, ok = ByCode("NOPE")
	assert.False(t, ok)

	for code, e := range catalog {
		assert.Equal(t, code, e.ErrorCode())
		assert.NotEmpty(t, e.Message(), code)
		assert.GreaterOrEqual(t, e.HTTPCode(), http.StatusBadRequest, code)
	}
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "lock guest")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.Equal(t, "lock guest", err.Details())
	assert.Equal(t, "database execution failed: lock guest: connection reset", err.Error())
	assert.True(t, errors.Is(err, cause))
}
