package cli

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"guestpass/internal/delivery/api/middleware"
	"guestpass/internal/delivery/api/router/handler"
	"guestpass/internal/delivery/api/validator"
	domainerrors "guestpass/internal/domain/errors"
	"guestpass/internal/domain/entity"
	"guestpass/internal/errors"
	"guestpass/internal/guestclient"
	mockUsecase "guestpass/internal/mocks/usecase"
	"guestpass/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	testGuestID = uuid.MustParse("0b7a5a9e-3c1d-4f5e-9a8b-1c2d3e4f5a6b")
	testTime    = time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
)

type cliFixtures struct {
	accessUC *mockUsecase.MockAccessUsecase
	adminUC  *mockUsecase.MockAdminUsecase
	server   string
	session  string
}

func newCLIFixtures(t *testing.T) cliFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f := cliFixtures{
		accessUC: mockUsecase.NewMockAccessUsecase(t),
		adminUC:  mockUsecase.NewMockAdminUsecase(t),
		session:  filepath.Join(t.TempDir(), "session.json"),
	}

	accessHandler := handler.NewAccessHandler(handler.AccessHandlerParams{AccessUC: f.accessUC, Logger: logger})
	adminHandler := handler.NewAdminHandler(handler.AdminHandlerParams{AdminUC: f.adminUC, Logger: logger})

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError
	e.POST("/api/v1/access/:token/decide", accessHandler.Decide)
	e.POST("/api/v1/access/:token/identity", accessHandler.SubmitIdentity)
	e.POST("/admin/login", adminHandler.Login)
	e.GET("/admin/guests/:id", adminHandler.GetGuest)
	e.POST("/admin/guests/:id/token", adminHandler.RegenerateToken)
	e.DELETE("/admin/guests/:id/devices", adminHandler.ClearDevices)
	e.PUT("/admin/guests/:id/quota", adminHandler.SetQuota)
	e.GET("/admin/guests/:id/qr", adminHandler.InvitationQR)
	e.GET("/admin/guests/:id/events", adminHandler.ListEvents)

	server := httptest.NewServer(e)
	t.Cleanup(server.Close)
	f.server = server.URL

	return f
}

func (f cliFixtures) run(t *testing.T, args ...string) (string, error) {
	return runCLI(t, append([]string{"--server", f.server, "--session", f.session}, args...)...)
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())

	return out.String(), err
}

func assertGolden(t *testing.T, name, output string) {
	t.Helper()

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, []byte(output))
}

func TestVisit_Granted(t *testing.T) {
	f := newCLIFixtures(t)

	f.accessUC.EXPECT().Decide(mock.Anything, mock.MatchedBy(func(in usecase.DecideInput) bool {
		return in.Token == "tok" && in.Fingerprint != ""
	})).Return(&usecase.Decision{
		State:  usecase.StateGranted,
		Reason: usecase.ReasonKnownDevice,
		Guest:  &usecase.GuestProjection{ID: testGuestID, Name: "Lin", DeviceCount: 1, MaxDevicesAllowed: 2},
		Grant:  &usecase.Grant{Token: "grant", ExpiresAt: time.Date(2026, 10, 17, 20, 0, 0, 0, time.UTC)},
	}, nil)

	out, err := f.run(t, "visit", "tok")
	require.NoError(t, err)
	assertGolden(t, "visit_granted", out)
}

func TestVisit_AsksForIdentity(t *testing.T) {
	f := newCLIFixtures(t)

	f.accessUC.EXPECT().Decide(mock.Anything, mock.Anything).Return(&usecase.Decision{
		State: usecase.StateIdentityVerification,
	}, nil)

	out, err := f.run(t, "visit", "tok")
	require.NoError(t, err)
	assertGolden(t, "visit_identity_verification", out)
}

func TestVisit_Denied(t *testing.T) {
	f := newCLIFixtures(t)

	f.accessUC.EXPECT().Decide(mock.Anything, mock.Anything).Return(&usecase.Decision{
		State:  usecase.StateAccessDenied,
		Reason: usecase.ReasonTokenInvalid,
	}, nil)

	out, err := f.run(t, "visit", "gone")
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Equal(t, "state: access_denied\nreason: token_invalid\n", out)
}

func TestSubmit_GrantedThenCachedVisit(t *testing.T) {
	f := newCLIFixtures(t)

	f.accessUC.EXPECT().Submit(mock.Anything, mock.MatchedBy(func(in usecase.SubmitInput) bool {
		return in.Token == "tok" && in.Identity == "a@b.com"
	})).Return(&usecase.SubmitResult{
		Outcome:       usecase.OutcomeGranted,
		CacheIdentity: "a@b.com",
	}, nil)

	_, err := f.run(t, "submit", "tok", "a@b.com")
	require.NoError(t, err)

	cached, err := guestclient.NewAccessCache(guestclient.NewFileStore(f.session)).Identity("tok")
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", cached)
}

func TestSubmit_Mismatch(t *testing.T) {
	f := newCLIFixtures(t)

	f.accessUC.EXPECT().Submit(mock.Anything, mock.Anything).Return(&usecase.SubmitResult{
		Outcome:     usecase.OutcomeIdentityMismatch,
		Restriction: "身分資料不符",
	}, nil)

	out, err := f.run(t, "submit", "tok", "555-0000")
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assertGolden(t, "submit_mismatch", out)
}

func TestLogin_SavesToken(t *testing.T) {
	f := newCLIFixtures(t)

	f.adminUC.EXPECT().Login(mock.Anything, "host", "secret").Return(&usecase.AdminLoginOutput{
		Token:     "admin-jwt",
		ExpiresAt: time.Date(2026, 10, 17, 20, 0, 0, 0, time.UTC),
	}, nil)

	out, err := f.run(t, "login", "-u", "host", "-p", "secret")
	require.NoError(t, err)
	assert.Equal(t, "logged in as host until 2026-10-17T20:00:00Z\n", out)

	f.adminUC.EXPECT().ClearDevices(mock.Anything, testGuestID).Return(int64(3), nil)

	out, err = f.run(t, "devices", "clear", testGuestID.String())
	require.NoError(t, err)
	assert.Equal(t, "cleared devices: 3\n", out)
}

func TestAdminCommands_RequireLogin(t *testing.T) {
	f := newCLIFixtures(t)
	t.Setenv("GUESTPASS_ADMIN_TOKEN", "")

	_, err := f.run(t, "guest", "show", testGuestID.String())
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	_, err = f.run(t, "--token", "admin-jwt", "guest", "show", "not-a-uuid")
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestGuestShow(t *testing.T) {
	f := newCLIFixtures(t)
	firstAccess := testTime

	f.adminUC.EXPECT().GetGuest(mock.Anything, testGuestID).Return(&usecase.GuestDetail{
		Guest: &entity.Guest{
			ID:                testGuestID,
			Name:              "王小明",
			Phone:             "5551234",
			EventAccess:       []string{"ceremony", "banquet"},
			MaxDevicesAllowed: 2,
			FirstAccessAt:     &firstAccess,
		},
		Devices: []*entity.GuestDevice{
			{ID: uuid.New(), GuestID: testGuestID, Fingerprint: "a1b2c3d4e5f6a7b8c9d0", CreatedAt: testTime},
		},
		InvitationLink: "https://party.example.com/invite/tok",
	}, nil)

	out, err := f.run(t, "--token", "admin-jwt", "guest", "show", testGuestID.String())
	require.NoError(t, err)
	assertGolden(t, "guest_show", out)
}

func TestGuestShow_NotFound(t *testing.T) {
	f := newCLIFixtures(t)

	f.adminUC.EXPECT().GetGuest(mock.Anything, testGuestID).Return(nil, domainerrors.ErrGuestNotFound)

	_, err := f.run(t, "--token", "admin-jwt", "guest", "show", testGuestID.String())
	var apiErr *guestclient.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "GUEST_NOT_FOUND", apiErr.Code)
	assert.Equal(t, "Error [GUEST_NOT_FOUND]: "+apiErr.Message, ErrorMessage(err))
}

func TestTokenRegenerate(t *testing.T) {
	f := newCLIFixtures(t)

	f.adminUC.EXPECT().RegenerateToken(mock.Anything, testGuestID).Return(&usecase.RegenerateTokenOutput{
		Token:          "fresh-token",
		InvitationLink: "https://party.example.com/invite/fresh-token",
		ClearedDevices: 2,
	}, nil)

	out, err := f.run(t, "--token", "admin-jwt", "token", "regenerate", testGuestID.String())
	require.NoError(t, err)
	assertGolden(t, "token_regenerate", out)
}

func TestQuotaSet(t *testing.T) {
	f := newCLIFixtures(t)

	_, err := f.run(t, "--token", "admin-jwt", "quota", "set", testGuestID.String(), "0")
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	f.adminUC.EXPECT().SetQuota(mock.Anything, testGuestID, 5).Return(&usecase.GuestDetail{
		Guest: &entity.Guest{ID: testGuestID, MaxDevicesAllowed: 5},
	}, nil)

	out, err := f.run(t, "--token", "admin-jwt", "quota", "set", testGuestID.String(), "5")
	require.NoError(t, err)
	assert.Equal(t, "devices: 0/5\n", out)
}

func TestQR_WritesFile(t *testing.T) {
	f := newCLIFixtures(t)
	png := []byte{0x89, 'P', 'N', 'G', '\r', '\n'}
	path := filepath.Join(t.TempDir(), "invite.png")

	f.adminUC.EXPECT().InvitationQR(mock.Anything, testGuestID).Return(png, nil)

	out, err := f.run(t, "--token", "admin-jwt", "qr", testGuestID.String(), "-o", path)
	require.NoError(t, err)
	assert.Equal(t, "wrote "+path+" (6 B)\n", out)

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, png, written)
}

func TestEvents(t *testing.T) {
	f := newCLIFixtures(t)

	f.adminUC.EXPECT().ListEvents(mock.Anything, testGuestID, 2).Return([]*entity.AccessEvent{
		{GuestID: testGuestID, Type: entity.AccessEventGranted, Fingerprint: "a1b2c3d4e5f6a7b8c9d0", OccurredAt: testTime.Add(time.Hour)},
		{GuestID: testGuestID, Type: entity.AccessEventIdentityCaptured, Detail: "phone", OccurredAt: testTime},
	}, nil)

	out, err := f.run(t, "--token", "admin-jwt", "events", testGuestID.String(), "--limit", "2")
	require.NoError(t, err)
	assertGolden(t, "events", out)
}

func TestEvents_JSON(t *testing.T) {
	f := newCLIFixtures(t)

	f.adminUC.EXPECT().ListEvents(mock.Anything, testGuestID, 0).Return([]*entity.AccessEvent{}, nil)

	out, err := f.run(t, "--token", "admin-jwt", "--format", "json", "events", testGuestID.String())
	require.NoError(t, err)
	assert.JSONEq(t, "[]", out)
}
