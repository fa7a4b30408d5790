package guestclient

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"guestpass/internal/delivery/api/middleware"
	"guestpass/internal/delivery/api/router/handler"
	"guestpass/internal/delivery/api/validator"
	domainerrors "guestpass/internal/domain/errors"
	"guestpass/internal/domain/entity"
	"guestpass/internal/errors"
	mockUsecase "guestpass/internal/mocks/usecase"
	"guestpass/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type clientFixtures struct {
	accessUC *mockUsecase.MockAccessUsecase
	adminUC  *mockUsecase.MockAdminUsecase
	client   *Client
}

// newClientFixtures serves the real handlers over mocked use cases.
func newClientFixtures(t *testing.T) clientFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f := clientFixtures{
		accessUC: mockUsecase.NewMockAccessUsecase(t),
		adminUC:  mockUsecase.NewMockAdminUsecase(t),
	}

	accessHandler := handler.NewAccessHandler(handler.AccessHandlerParams{AccessUC: f.accessUC, Logger: logger})
	adminHandler := handler.NewAdminHandler(handler.AdminHandlerParams{AdminUC: f.adminUC, Logger: logger})

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError
	e.GET("/api/v1/access/:token", accessHandler.VerifyToken)
	e.POST("/api/v1/access/:token/decide", accessHandler.Decide)
	e.POST("/api/v1/access/:token/identity", accessHandler.SubmitIdentity)
	e.GET("/api/v1/invitation", accessHandler.Invitation)
	e.POST("/admin/login", adminHandler.Login)
	e.GET("/admin/guests/:id/qr", adminHandler.InvitationQR)
	e.GET("/admin/guests/:id/events", adminHandler.ListEvents)
	e.PUT("/admin/guests/:id/quota", adminHandler.SetQuota)

	server := httptest.NewServer(e)
	t.Cleanup(server.Close)
	f.client = New(server.URL + "/")

	return f
}

func newTestVisitor(client *Client, store SessionStore, source SignalSource) *Visitor {
	return NewVisitor(client, store, source, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestVisitor_CachesIdentityOnGrant(t *testing.T) {
	f := newClientFixtures(t)
	ctx := context.Background()
	store := NewMemoryStore()
	visitor := newTestVisitor(f.client, store, staticSignals{signals: browserSignals})

	f.accessUC.EXPECT().Decide(mock.Anything, mock.MatchedBy(func(in usecase.DecideInput) bool {
		return in.Token == "tok" && len(in.Fingerprint) == 64 && in.CachedIdentity == ""
	})).Return(&usecase.Decision{State: usecase.StateIdentityVerification}, nil).Once()

	decision, err := visitor.Visit(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, usecase.StateIdentityVerification, decision.State)

	f.accessUC.EXPECT().Submit(mock.Anything, mock.MatchedBy(func(in usecase.SubmitInput) bool {
		return in.Token == "tok" && in.Identity == "555-1234" && in.Fingerprint != ""
	})).Return(&usecase.SubmitResult{
		Outcome:       usecase.OutcomeGranted,
		CacheIdentity: "555-1234",
		Grant:         &usecase.Grant{Token: "grant", ExpiresAt: time.Now().Add(time.Minute)},
	}, nil).Once()

	result, err := visitor.Submit(ctx, "tok", "555-1234")
	require.NoError(t, err)
	assert.Equal(t, usecase.OutcomeGranted, result.Outcome)

	cached, err := NewAccessCache(store).Identity("tok")
	require.NoError(t, err)
	assert.Equal(t, "555-1234", cached)

	f.accessUC.EXPECT().Decide(mock.Anything, mock.MatchedBy(func(in usecase.DecideInput) bool {
		return in.CachedIdentity == "555-1234"
	})).Return(&usecase.Decision{State: usecase.StateGranted, Reason: usecase.ReasonCachedMatch}, nil).Once()

	decision, err = visitor.Visit(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, usecase.StateGranted, decision.State)
}

func TestVisitor_ClearsStaleCache(t *testing.T) {
	f := newClientFixtures(t)
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, NewAccessCache(store).Remember("tok", "old@x.com"))
	visitor := newTestVisitor(f.client, store, staticSignals{signals: browserSignals})

	f.accessUC.EXPECT().Decide(mock.Anything, mock.Anything).Return(&usecase.Decision{
		State:      usecase.StateIdentityVerification,
		ClearCache: true,
	}, nil)

	_, err := visitor.Visit(ctx, "tok")
	require.NoError(t, err)

	cached, err := NewAccessCache(store).Identity("tok")
	require.NoError(t, err)
	assert.Empty(t, cached)
}

func TestVisitor_DegradesWithoutFingerprint(t *testing.T) {
	f := newClientFixtures(t)
	visitor := newTestVisitor(f.client, NewMemoryStore(), staticSignals{err: errors.New("no screen")})

	f.accessUC.EXPECT().Decide(mock.Anything, usecase.DecideInput{Token: "tok"}).Return(&usecase.Decision{
		State: usecase.StateIdentityVerification,
	}, nil)

	decision, err := visitor.Visit(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, usecase.StateIdentityVerification, decision.State)
}

func TestClient_APIError(t *testing.T) {
	f := newClientFixtures(t)

	f.accessUC.EXPECT().Verify(mock.Anything, "gone").Return(nil, domainerrors.ErrTokenInvalid)

	_, err := f.client.VerifyToken(context.Background(), "gone")
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "TOKEN_INVALID", apiErr.Code)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
	assert.False(t, errors.Is(err, domainerrors.ErrGuestNotFound))
}

func TestClient_Invitation(t *testing.T) {
	f := newClientFixtures(t)

	f.accessUC.EXPECT().Invitation(mock.Anything, "grant").Return(&usecase.GuestProjection{Name: "Lin"}, nil)

	projection, err := f.client.Invitation(context.Background(), "grant")
	require.NoError(t, err)
	assert.Equal(t, "Lin", projection.Name)
}

func TestAdminClient(t *testing.T) {
	f := newClientFixtures(t)
	ctx := context.Background()
	guestID := uuid.New()
	admin := NewAdminClient(f.client, "")

	f.adminUC.EXPECT().Login(mock.Anything, "host", "secret").Return(&usecase.AdminLoginOutput{Token: "admin-jwt"}, nil)
	_, err := admin.Login(ctx, "host", "secret")
	require.NoError(t, err)
	assert.Equal(t, "admin-jwt", admin.Token())

	f.adminUC.EXPECT().SetQuota(mock.Anything, guestID, 4).Return(&usecase.GuestDetail{
		Guest: &entity.Guest{ID: guestID, MaxDevicesAllowed: 4},
	}, nil)
	detail, err := admin.SetQuota(ctx, guestID, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, detail.Guest.MaxDevicesAllowed)

	png := []byte{0x89, 'P', 'N', 'G'}
	f.adminUC.EXPECT().InvitationQR(mock.Anything, guestID).Return(png, nil)
	got, err := admin.InvitationQR(ctx, guestID)
	require.NoError(t, err)
	assert.Equal(t, png, got)

	f.adminUC.EXPECT().ListEvents(mock.Anything, guestID, 5).Return([]*entity.AccessEvent{
		{Type: entity.AccessEventGranted},
	}, nil)
	events, err := admin.ListEvents(ctx, guestID, 5)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, entity.AccessEventGranted, events[0].Type)
}
