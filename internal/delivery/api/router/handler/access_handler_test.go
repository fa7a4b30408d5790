package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	domainerrors "guestpass/internal/domain/errors"
	"guestpass/internal/errors"
	mockUsecase "guestpass/internal/mocks/usecase"
	"guestpass/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newAccessTestServer(t *testing.T) (*echo.Echo, *mockUsecase.MockAccessUsecase) {
	accessUC := mockUsecase.NewMockAccessUsecase(t)
	h := NewAccessHandler(AccessHandlerParams{AccessUC: accessUC, Logger: newDiscardLogger()})

	e := newTestEcho()
	e.GET("/api/v1/access/:token", h.VerifyToken)
	e.POST("/api/v1/access/:token/decide", h.Decide)
	e.POST("/api/v1/access/:token/identity", h.SubmitIdentity)
	e.GET("/api/v1/invitation", h.Invitation)

	return e, accessUC
}

func TestAccessHandler_VerifyToken(t *testing.T) {
	e, accessUC := newAccessTestServer(t)
	projection := &usecase.GuestProjection{ID: uuid.New(), Name: "Lin", MaxDevicesAllowed: 2}

	accessUC.EXPECT().Verify(mock.Anything, "good").Return(projection, nil)
	accessUC.EXPECT().Verify(mock.Anything, "gone").Return(nil, domainerrors.ErrTokenInvalid.WrapMessage("no guest"))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/access/good", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	var got usecase.GuestProjection
	decodeData(t, rec, &got)
	assert.Equal(t, *projection, got)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/access/gone", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "TOKEN_INVALID", decodeErrorCode(t, rec))
}

func TestAccessHandler_Decide(t *testing.T) {
	e, accessUC := newAccessTestServer(t)
	expiresAt := time.Date(2026, 5, 1, 20, 0, 0, 0, time.UTC)

	accessUC.EXPECT().Decide(mock.Anything, usecase.DecideInput{
		Token:          "tok",
		Fingerprint:    "fp-1",
		CachedIdentity: "5551234",
	}).Return(&usecase.Decision{
		State:  usecase.StateGranted,
		Reason: usecase.ReasonCachedMatch,
		Guest:  &usecase.GuestProjection{Name: "Lin"},
		Grant:  &usecase.Grant{Token: "grant", ExpiresAt: expiresAt},
	}, nil)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, newJSONRequest(http.MethodPost, "/api/v1/access/tok/decide",
		`{"fingerprint":"fp-1","cachedIdentity":"5551234"}`))

	assert.Equal(t, http.StatusOK, rec.Code)
	var got DecisionResponse
	decodeData(t, rec, &got)
	assert.Equal(t, usecase.StateGranted, got.State)
	assert.Equal(t, usecase.ReasonCachedMatch, got.Reason)
	assert.Equal(t, "grant", got.Grant.Token)
	assert.True(t, expiresAt.Equal(got.Grant.ExpiresAt))
}

func TestAccessHandler_Decide_WithoutFingerprint(t *testing.T) {
	e, accessUC := newAccessTestServer(t)

	accessUC.EXPECT().Decide(mock.Anything, usecase.DecideInput{Token: "tok"}).Return(&usecase.Decision{
		State: usecase.StateIdentityVerification,
	}, nil)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, newJSONRequest(http.MethodPost, "/api/v1/access/tok/decide", `{}`))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), `"grant"`)
	var got DecisionResponse
	decodeData(t, rec, &got)
	assert.Equal(t, usecase.StateIdentityVerification, got.State)
}

func TestAccessHandler_SubmitIdentity(t *testing.T) {
	e, accessUC := newAccessTestServer(t)

	accessUC.EXPECT().Submit(mock.Anything, usecase.SubmitInput{
		Token:       "tok",
		Identity:    "555-1234",
		Fingerprint: "fp-2",
	}).Return(&usecase.SubmitResult{
		Outcome:     usecase.OutcomeDeviceLimitReached,
		Restriction: domainerrors.ErrDeviceLimitReached.Message(),
	}, nil)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, newJSONRequest(http.MethodPost, "/api/v1/access/tok/identity",
		`{"identity":"555-1234","fingerprint":"fp-2"}`))

	assert.Equal(t, http.StatusOK, rec.Code)
	var got SubmitIdentityResponse
	decodeData(t, rec, &got)
	assert.Equal(t, usecase.OutcomeDeviceLimitReached, got.Outcome)
	assert.Equal(t, domainerrors.ErrDeviceLimitReached.Message(), got.Restriction)
	assert.Nil(t, got.Grant)
}

func TestAccessHandler_SubmitIdentity_Errors(t *testing.T) {
	e, accessUC := newAccessTestServer(t)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, newJSONRequest(http.MethodPost, "/api/v1/access/tok/identity", `{"fingerprint":"fp"}`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decodeErrorCode(t, rec))

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, newJSONRequest(http.MethodPost, "/api/v1/access/tok/identity", `{"identity":`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_INPUT", decodeErrorCode(t, rec))

	accessUC.EXPECT().Submit(mock.Anything, mock.Anything).Return(nil, errors.New("connection reset")).Once()
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, newJSONRequest(http.MethodPost, "/api/v1/access/tok/identity", `{"identity":"a@b.com"}`))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection reset")
}

func TestAccessHandler_Invitation(t *testing.T) {
	e, accessUC := newAccessTestServer(t)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/invitation", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "GRANT_INVALID", decodeErrorCode(t, rec))

	accessUC.EXPECT().Invitation(mock.Anything, "grant-token").Return(&usecase.GuestProjection{
		Name:        "Lin",
		EventAccess: []string{"ceremony"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/invitation", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer grant-token")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var got usecase.GuestProjection
	decodeData(t, rec, &got)
	assert.Equal(t, []string{"ceremony"}, got.EventAccess)
}
