package impl

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"guestpass/config"
	deliverycontext "guestpass/internal/delivery/context"
	"guestpass/internal/domain/entity"
	domainerrors "guestpass/internal/domain/errors"
	"guestpass/internal/domain/repository"
	"guestpass/internal/domain/service"
	"guestpass/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultEventLimit = 50
	maxEventLimit     = 200
)

// adminService implements the AdminUsecase interface.
type adminService struct {
	txManager    repository.TransactionManager
	guestRepo    repository.GuestRepository
	deviceRepo   repository.DeviceRepository
	eventRepo    repository.AccessEventRepository
	devices      usecase.DeviceRegistry
	hasher       service.PasswordHasher
	tokenService service.TokenService
	inviteTokens service.InviteTokenGenerator
	qrService    service.QRCodeService
	events       *eventEmitter
	admins       map[string]config.AdminUser
	baseURL      string
	logger       *slog.Logger
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	GuestRepo      repository.GuestRepository
	DeviceRepo     repository.DeviceRepository
	EventRepo      repository.AccessEventRepository
	DeviceRegistry usecase.DeviceRegistry
	Hasher         service.PasswordHasher
	TokenService   service.TokenService
	InviteTokens   service.InviteTokenGenerator
	QRService      service.QRCodeService
	Publisher      service.EventPublisher
	Config         *config.Config
	Logger         *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	admins := make(map[string]config.AdminUser)
	baseURL := ""
	if params.Config != nil {
		if params.Config.Auth != nil {
			for _, admin := range params.Config.Auth.Admins {
				admins[admin.Username] = admin
			}
		}
		if params.Config.Access != nil {
			baseURL = params.Config.Access.InvitationBaseURL
		}
	}

	return &adminService{
		txManager:    params.TxManager,
		guestRepo:    params.GuestRepo,
		deviceRepo:   params.DeviceRepo,
		eventRepo:    params.EventRepo,
		devices:      params.DeviceRegistry,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		inviteTokens: params.InviteTokens,
		qrService:    params.QRService,
		events:       newEventEmitter(params.Publisher, params.Logger),
		admins:       admins,
		baseURL:      baseURL,
		logger:       params.Logger,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login checks the host credentials against the configured accounts.
func (srv *adminService) Login(ctx context.Context, username, password string) (*usecase.AdminLoginOutput, error) {
	admin, ok := srv.admins[username]
	if !ok || !srv.hasher.Check(password, admin.PasswordHash) {
		srv.log(ctx).Warn("Admin login failed", slog.String("username", username))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("invalid username or password")
	}

	role, ok := entity.ParseRole(admin.Role)
	if !ok {
		srv.log(ctx).Error("Admin account has an unknown role",
			slog.String("username", username),
			slog.String("role", admin.Role),
		)

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("account role is not recognized")
	}

	token, expiresAt, err := srv.tokenService.GenerateAdminToken(username, entity.Roles{role}.ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate admin token")
	}

	srv.log(ctx).Info("Admin logged in", slog.String("username", username))

	return &usecase.AdminLoginOutput{Token: token, ExpiresAt: expiresAt}, nil
}

// GetGuest returns the guest with its devices.
func (srv *adminService) GetGuest(ctx context.Context, guestID uuid.UUID) (*usecase.GuestDetail, error) {
	guest, err := srv.findGuest(ctx, guestID)
	if err != nil {
		return nil, err
	}

	devices, err := srv.deviceRepo.ListByGuest(ctx, guestID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list devices")
	}

	return &usecase.GuestDetail{
		Guest:          guest,
		Devices:        devices,
		InvitationLink: srv.invitationLink(guest.Token),
	}, nil
}

// RegenerateToken swaps the token and clears the devices atomically. The old
// token stops resolving as soon as the transaction commits.
func (srv *adminService) RegenerateToken(ctx context.Context, guestID uuid.UUID) (*usecase.RegenerateTokenOutput, error) {
	token, err := srv.inviteTokens.GenerateInviteToken()
	if err != nil {
		return nil, domainerrors.ErrTokenGenerationFailed.WrapMessage(err.Error())
	}

	var cleared int64
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		guestRepo := repoFactory.GuestRepo()
		if _, err := lockGuest(ctx, guestRepo, guestID); err != nil {
			return err
		}

		err := guestRepo.UpdateToken(ctx, guestID, token)
		if errors.Is(err, repository.ErrDuplicateToken) {
			return domainerrors.ErrTokenGenerationFailed.WrapMessage("generated token collides")
		}
		if err != nil {
			return errors.Wrap(err, "failed to update token")
		}

		cleared, err = repoFactory.DeviceRepo().DeleteByGuest(ctx, guestID)

		return errors.Wrap(err, "failed to clear devices")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to regenerate token")
	}

	srv.log(ctx).Info("Invitation token regenerated",
		slog.String("guest_id", guestID.String()),
		slog.Int64("cleared_devices", cleared),
	)
	srv.events.emit(ctx, guestID, entity.AccessEventTokenRegenerated, "", fmt.Sprintf("cleared_devices=%d", cleared))

	return &usecase.RegenerateTokenOutput{
		Token:          token,
		InvitationLink: srv.invitationLink(token),
		ClearedDevices: cleared,
	}, nil
}

// ClearDevices empties the guest's device list.
func (srv *adminService) ClearDevices(ctx context.Context, guestID uuid.UUID) (int64, error) {
	cleared, err := srv.devices.ClearAll(ctx, guestID)
	if err != nil {
		return 0, err
	}

	srv.events.emit(ctx, guestID, entity.AccessEventDevicesCleared, "", fmt.Sprintf("cleared_devices=%d", cleared))

	return cleared, nil
}

// SetQuota changes the device quota and returns the updated guest.
func (srv *adminService) SetQuota(ctx context.Context, guestID uuid.UUID, maxDevices int) (*usecase.GuestDetail, error) {
	if err := srv.devices.SetQuota(ctx, guestID, maxDevices); err != nil {
		return nil, err
	}

	srv.events.emit(ctx, guestID, entity.AccessEventQuotaChanged, "", fmt.Sprintf("max_devices=%d", maxDevices))

	return srv.GetGuest(ctx, guestID)
}

// InvitationQR renders the guest's invitation link as a PNG.
func (srv *adminService) InvitationQR(ctx context.Context, guestID uuid.UUID) ([]byte, error) {
	guest, err := srv.findGuest(ctx, guestID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateInvitationQR(srv.invitationLink(guest.Token))
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate invitation QR")
	}

	return png, nil
}

// ListEvents returns the newest access events of the guest.
func (srv *adminService) ListEvents(ctx context.Context, guestID uuid.UUID, limit int) ([]*entity.AccessEvent, error) {
	if _, err := srv.findGuest(ctx, guestID); err != nil {
		return nil, err
	}

	switch {
	case limit <= 0:
		limit = defaultEventLimit
	case limit > maxEventLimit:
		limit = maxEventLimit
	}

	events, err := srv.eventRepo.ListByGuest(ctx, guestID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list access events")
	}

	return events, nil
}

func (srv *adminService) findGuest(ctx context.Context, guestID uuid.UUID) (*entity.Guest, error) {
	guest, err := srv.guestRepo.FindByID(ctx, guestID)
	if errors.Is(err, repository.ErrGuestNotFound) {
		return nil, domainerrors.ErrGuestNotFound.WrapMessage("guest not found")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find guest")
	}

	return guest, nil
}

func (srv *adminService) invitationLink(token string) string {
	return strings.TrimRight(srv.baseURL, "/") + "/" + url.PathEscape(token)
}
