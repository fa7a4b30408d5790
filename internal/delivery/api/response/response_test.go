package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	deliverycontext "guestpass/internal/delivery/context"
	domainerrors "guestpass/internal/domain/errors"
	"guestpass/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	deliverycontext.SetRequestID(c, "req-1")

	return c, rec
}

func TestSuccess(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Success(c, http.StatusOK, map[string]string{"state": "granted"}))

	var body SuccessResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "req-1", body.Meta.RequestID)
	assert.Equal(t, map[string]any{"state": "granted"}, body.Data)
}

func TestError_DropsDetailsForServerAndAuthErrors(t *testing.T) {
	tests := []struct {
		status      int
		wantDetails bool
	}{
		{status: http.StatusBadRequest, wantDetails: true},
		{status: http.StatusUnauthorized, wantDetails: false},
		{status: http.StatusForbidden, wantDetails: false},
		{status: http.StatusInternalServerError, wantDetails: false},
	}

	for _, tt := range tests {
		c, rec := newContext()
		require.NoError(t, Error(c, tt.status, "CODE", "message", "detail"))

		var body ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, tt.status, rec.Code)
		assert.Equal(t, tt.wantDetails, body.Error.Details != nil, "status %d", tt.status)
	}
}

func TestTooManyRequests_SetsRetryAfter(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, TooManyRequests(c, "RATE_LIMITED", "slow down", 1500*time.Millisecond))

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "2", rec.Header().Get("Retry-After"))
}

func TestHandleAppError(t *testing.T) {
	c, rec := newContext()

	err := HandleAppError(c, domainerrors.ErrInvalidQuota.WithDetails("quota must be between 1 and 20"))
	require.NoError(t, err)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_QUOTA", body.Error.Code)
	assert.Equal(t, "quota must be between 1 and 20", body.Error.Details)

	c, _ = newContext()
	plain := errors.New("boom")
	assert.True(t, errors.Is(HandleAppError(c, plain), plain))
}
