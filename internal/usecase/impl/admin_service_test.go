package impl

import (
	"context"
	"testing"
	"time"

	"guestpass/internal/domain/entity"
	domainerrors "guestpass/internal/domain/errors"
	"guestpass/internal/domain/repository"
	"guestpass/internal/errors"
	mockRepo "guestpass/internal/mocks/repository"
	mockService "guestpass/internal/mocks/service"
	"guestpass/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// adminServiceFixtures holds all test dependencies for admin service tests.
type adminServiceFixtures struct {
	service      usecase.AdminUsecase
	store        *memStore
	eventRepo    *mockRepo.MockAccessEventRepository
	hasher       *mockService.MockPasswordHasher
	tokenService *mockService.MockTokenService
	inviteTokens *mockService.MockInviteTokenGenerator
	qrService    *mockService.MockQRCodeService
	publisher    *recordingPublisher
}

func createTestAdminService(t *testing.T) adminServiceFixtures {
	store := newMemStore()
	fx := adminServiceFixtures{
		store:        store,
		eventRepo:    mockRepo.NewMockAccessEventRepository(t),
		hasher:       mockService.NewMockPasswordHasher(t),
		tokenService: mockService.NewMockTokenService(t),
		inviteTokens: mockService.NewMockInviteTokenGenerator(t),
		qrService:    mockService.NewMockQRCodeService(t),
		publisher:    &recordingPublisher{},
	}

	fx.service = NewAdminService(AdminServiceParams{
		TxManager:      store.txManager(),
		GuestRepo:      store.guestRepo(),
		DeviceRepo:     store.deviceRepo(),
		EventRepo:      fx.eventRepo,
		DeviceRegistry: newTestDeviceRegistry(store),
		Hasher:         fx.hasher,
		TokenService:   fx.tokenService,
		InviteTokens:   fx.inviteTokens,
		QRService:      fx.qrService,
		Publisher:      fx.publisher,
		Config:         newTestConfig(),
		Logger:         newDiscardLogger(),
	})

	return fx
}

func TestAdminService_Login(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()
	expiresAt := time.Now().Add(time.Hour)

	fx.hasher.EXPECT().Check("secret", "hashed-secret").Return(true)
	fx.tokenService.EXPECT().GenerateAdminToken("host", []string{"admin"}).Return("admin-token", expiresAt, nil)

	out, err := fx.service.Login(ctx, "host", "secret")
	require.NoError(t, err)
	assert.Equal(t, "admin-token", out.Token)
	assert.Equal(t, expiresAt, out.ExpiresAt)
}

func TestAdminService_Login_Rejected(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Check("wrong", "hashed-secret").Return(false)

	_, err := fx.service.Login(ctx, "host", "wrong")
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))

	_, err = fx.service.Login(ctx, "stranger", "secret")
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAdminService_Login_Roles(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Check("pw", "hashed-usher").Return(true)
	fx.tokenService.EXPECT().GenerateAdminToken("usher", []string{"viewer"}).Return("viewer-token", time.Now(), nil)

	out, err := fx.service.Login(ctx, "usher", "pw")
	require.NoError(t, err)
	assert.Equal(t, "viewer-token", out.Token)

	fx.hasher.EXPECT().Check("pw", "hashed-broken").Return(true)

	_, err = fx.service.Login(ctx, "broken", "pw")
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAdminService_GetGuest(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()
	guest := fx.store.addGuest(func(g *entity.Guest) { g.Token = "tok/en" })
	require.NoError(t, fx.store.deviceRepo().Create(ctx, &entity.GuestDevice{ID: uuid.New(), GuestID: guest.ID, Fingerprint: "fp"}))

	detail, err := fx.service.GetGuest(ctx, guest.ID)
	require.NoError(t, err)
	assert.Equal(t, guest.ID, detail.Guest.ID)
	assert.Len(t, detail.Devices, 1)
	assert.Equal(t, "https://party.example.com/invite/tok%2Fen", detail.InvitationLink)

	_, err = fx.service.GetGuest(ctx, uuid.New())
	assert.True(t, errors.Is(err, domainerrors.ErrGuestNotFound))
}

func TestAdminService_RegenerateToken(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()
	guest := fx.store.addGuest(func(g *entity.Guest) {
		g.Phone = "5551234"
		g.Email = "a@b.com"
		g.EventAccess = []string{"dinner"}
	})
	oldToken := guest.Token
	for _, fp := range []string{"a", "b"} {
		require.NoError(t, fx.store.deviceRepo().Create(ctx, &entity.GuestDevice{ID: uuid.New(), GuestID: guest.ID, Fingerprint: fp}))
	}

	fx.inviteTokens.EXPECT().GenerateInviteToken().Return("fresh-token", nil)

	out, err := fx.service.RegenerateToken(ctx, guest.ID)
	require.NoError(t, err)
	assert.Equal(t, "fresh-token", out.Token)
	assert.Equal(t, int64(2), out.ClearedDevices)
	assert.Equal(t, "https://party.example.com/invite/fresh-token", out.InvitationLink)

	_, err = fx.store.guestRepo().FindByToken(ctx, oldToken)
	assert.True(t, errors.Is(err, repository.ErrGuestNotFound))

	stored := fx.store.guest(guest.ID)
	assert.Equal(t, "fresh-token", stored.Token)
	assert.Equal(t, "5551234", stored.Phone)
	assert.Equal(t, "a@b.com", stored.Email)
	assert.Equal(t, []string{"dinner"}, stored.EventAccess)
	assert.Equal(t, 0, fx.store.deviceCount(guest.ID))
	assert.Equal(t, []string{"token_regenerated"}, fx.publisher.types())
}

func TestAdminService_RegenerateToken_Errors(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	fx.inviteTokens.EXPECT().GenerateInviteToken().Return("", errors.New("entropy exhausted")).Once()
	_, err := fx.service.RegenerateToken(ctx, uuid.New())
	assert.True(t, errors.Is(err, domainerrors.ErrTokenGenerationFailed))

	fx.inviteTokens.EXPECT().GenerateInviteToken().Return("fresh", nil).Once()
	_, err = fx.service.RegenerateToken(ctx, uuid.New())
	assert.True(t, errors.Is(err, domainerrors.ErrGuestNotFound))
}

func TestAdminService_ClearDevicesAndSetQuota(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()
	guest := fx.store.addGuest(nil)
	require.NoError(t, fx.store.deviceRepo().Create(ctx, &entity.GuestDevice{ID: uuid.New(), GuestID: guest.ID, Fingerprint: "fp"}))

	cleared, err := fx.service.ClearDevices(ctx, guest.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), cleared)

	detail, err := fx.service.SetQuota(ctx, guest.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, detail.Guest.MaxDevicesAllowed)

	_, err = fx.service.SetQuota(ctx, guest.ID, 0)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidQuota))

	assert.Equal(t, []string{"devices_cleared", "quota_changed"}, fx.publisher.types())
}

func TestAdminService_InvitationQR(t *testing.T) {
	fx := createTestAdminService(t)
	guest := fx.store.addGuest(func(g *entity.Guest) { g.Token = "abc" })

	fx.qrService.EXPECT().GenerateInvitationQR("https://party.example.com/invite/abc").Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	png, err := fx.service.InvitationQR(context.Background(), guest.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png)
}

func TestAdminService_ListEvents(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()
	guest := fx.store.addGuest(nil)
	events := []*entity.AccessEvent{{ID: uuid.New(), GuestID: guest.ID, Type: entity.AccessEventGranted}}

	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{name: "default", limit: 0, want: defaultEventLimit},
		{name: "explicit", limit: 10, want: 10},
		{name: "capped", limit: 1000, want: maxEventLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx.eventRepo.EXPECT().ListByGuest(mock.Anything, guest.ID, tt.want).Return(events, nil).Once()

			got, err := fx.service.ListEvents(ctx, guest.ID, tt.limit)
			require.NoError(t, err)
			assert.Equal(t, events, got)
		})
	}

	_, err := fx.service.ListEvents(ctx, uuid.New(), 10)
	assert.True(t, errors.Is(err, domainerrors.ErrGuestNotFound))
}
