package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "guestpass/internal/delivery/context"
	"guestpass/internal/domain/entity"
	domainerrors "guestpass/internal/domain/errors"
	"guestpass/internal/domain/identity"
	"guestpass/internal/domain/repository"
	"guestpass/internal/domain/service"
	"guestpass/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accessService implements the AccessUsecase interface. It sequences the
// token verifier, the device registry and the identity verifier into one
// decision per visit.
type accessService struct {
	tokens       usecase.TokenVerifier
	devices      usecase.DeviceRegistry
	identities   usecase.IdentityVerifier
	guestRepo    repository.GuestRepository
	deviceRepo   repository.DeviceRepository
	tokenService service.TokenService
	events       *eventEmitter
	logger       *slog.Logger
	now          func() time.Time
}

// AccessServiceParams holds dependencies for AccessService, injected by Fx.
type AccessServiceParams struct {
	fx.In

	TokenVerifier    usecase.TokenVerifier
	DeviceRegistry   usecase.DeviceRegistry
	IdentityVerifier usecase.IdentityVerifier
	GuestRepo        repository.GuestRepository
	DeviceRepo       repository.DeviceRepository
	TokenService     service.TokenService
	Publisher        service.EventPublisher
	Logger           *slog.Logger
}

// NewAccessService is the constructor for accessService.
func NewAccessService(params AccessServiceParams) usecase.AccessUsecase {
	return &accessService{
		tokens:       params.TokenVerifier,
		devices:      params.DeviceRegistry,
		identities:   params.IdentityVerifier,
		guestRepo:    params.GuestRepo,
		deviceRepo:   params.DeviceRepo,
		tokenService: params.TokenService,
		events:       newEventEmitter(params.Publisher, params.Logger),
		logger:       params.Logger,
		now:          time.Now,
	}
}

func (srv *accessService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Verify resolves a token to its guest projection.
func (srv *accessService) Verify(ctx context.Context, token string) (*usecase.GuestProjection, error) {
	return srv.tokens.Verify(ctx, token)
}

// Decide runs one visit through the state machine.
func (srv *accessService) Decide(ctx context.Context, input usecase.DecideInput) (*usecase.Decision, error) {
	decision, err := srv.decide(ctx, input)
	if err != nil {
		srv.log(ctx).Error("Access decision failed, denying", slog.Any("error", err))

		return &usecase.Decision{
			State:  usecase.StateAccessDenied,
			Reason: usecase.ReasonUnavailable,
		}, nil
	}

	return decision, nil
}

func (srv *accessService) decide(ctx context.Context, input usecase.DecideInput) (*usecase.Decision, error) {
	guest, err := srv.tokens.Resolve(ctx, input.Token)
	if errors.Is(err, domainerrors.ErrTokenInvalid) {
		srv.events.emit(ctx, uuid.Nil, entity.AccessEventTokenInvalid, input.Fingerprint, "")

		return &usecase.Decision{
			State:      usecase.StateAccessDenied,
			Reason:     usecase.ReasonTokenInvalid,
			ClearCache: input.CachedIdentity != "",
		}, nil
	}
	if err != nil {
		return nil, err
	}
	ctx = deliverycontext.WithGuestID(ctx, guest.ID)

	projection, err := projectGuest(ctx, srv.deviceRepo, guest)
	if err != nil {
		return nil, err
	}

	if !guest.HasIdentity() {
		return &usecase.Decision{
			State:      usecase.StateIdentityRequired,
			ClearCache: input.CachedIdentity != "",
			Guest:      projection,
		}, nil
	}

	clearCache := false
	if input.CachedIdentity != "" {
		cached := identity.Parse(input.CachedIdentity)
		if identity.Matches(cached, guest.Phone, guest.Email) {
			return srv.grant(ctx, guest, projection, usecase.ReasonCachedMatch, cached.Value, input.Fingerprint)
		}
		clearCache = true
	}

	// no fingerprint means the device can never be recognized
	if input.Fingerprint == "" {
		return &usecase.Decision{
			State:      usecase.StateIdentityVerification,
			ClearCache: clearCache,
			Guest:      projection,
		}, nil
	}

	known, err := srv.devices.IsKnown(ctx, guest.ID, input.Fingerprint)
	if err != nil {
		return nil, err
	}
	if known {
		decision, err := srv.grant(ctx, guest, projection, usecase.ReasonKnownDevice, identityOfRecord(guest), input.Fingerprint)
		if err != nil {
			return nil, err
		}
		decision.ClearCache = clearCache

		return decision, nil
	}

	return &usecase.Decision{
		State:      usecase.StateIdentityVerification,
		ClearCache: clearCache,
		Guest:      projection,
	}, nil
}

// Submit checks an identity and registers the presenting device on a match.
func (srv *accessService) Submit(ctx context.Context, input usecase.SubmitInput) (*usecase.SubmitResult, error) {
	verification, err := srv.identities.Verify(ctx, input.Token, input.Identity, input.Fingerprint)
	if errors.Is(err, domainerrors.ErrTokenInvalid) {
		srv.events.emit(ctx, uuid.Nil, entity.AccessEventTokenInvalid, input.Fingerprint, "")

		return nil, err
	}
	if err != nil {
		return nil, err
	}

	guest := verification.Guest
	ctx = deliverycontext.WithGuestID(ctx, guest.ID)
	if verification.Captured {
		srv.events.emit(ctx, guest.ID, entity.AccessEventIdentityCaptured, input.Fingerprint, "")
	}
	if verification.Registration != nil && *verification.Registration == usecase.RegisterResultRegistered {
		srv.events.emit(ctx, guest.ID, entity.AccessEventDeviceRegistered, input.Fingerprint, "")
	}

	switch verification.Outcome {
	case usecase.IdentityMismatched:
		srv.events.emit(ctx, guest.ID, entity.AccessEventIdentityMismatch, input.Fingerprint, "")

		return &usecase.SubmitResult{
			Outcome:     usecase.OutcomeIdentityMismatch,
			Restriction: domainerrors.ErrIdentityMismatch.Message(),
		}, nil

	case usecase.IdentityDeviceLimitReached:
		srv.events.emit(ctx, guest.ID, entity.AccessEventDeviceLimitReached, input.Fingerprint, "")

		return &usecase.SubmitResult{
			Outcome:     usecase.OutcomeDeviceLimitReached,
			Restriction: domainerrors.ErrDeviceLimitReached.Message(),
		}, nil
	}

	projection, err := projectGuest(ctx, srv.deviceRepo, guest)
	if err != nil {
		return nil, err
	}

	decision, err := srv.grant(ctx, guest, projection, usecase.ReasonIdentity, verification.Normalized, input.Fingerprint)
	if err != nil {
		return nil, err
	}

	return &usecase.SubmitResult{
		Outcome:       usecase.OutcomeGranted,
		CacheIdentity: decision.CacheIdentity,
		Guest:         decision.Guest,
		Grant:         decision.Grant,
	}, nil
}

// Invitation resolves a grant token back to the guest it was issued for.
func (srv *accessService) Invitation(ctx context.Context, grantToken string) (*usecase.GuestProjection, error) {
	claims, err := srv.tokenService.ValidateGrant(grantToken)
	if err != nil {
		return nil, domainerrors.ErrGrantInvalid.WrapMessage(err.Error())
	}

	guestID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, domainerrors.ErrGrantInvalid.WrapMessage("grant subject is not a guest id")
	}

	guest, err := srv.guestRepo.FindByID(ctx, guestID)
	if errors.Is(err, repository.ErrGuestNotFound) {
		return nil, domainerrors.ErrTokenInvalid.WrapMessage("guest removed")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find guest")
	}

	return projectGuest(ctx, srv.deviceRepo, guest)
}

func (srv *accessService) grant(
	ctx context.Context,
	guest *entity.Guest,
	projection *usecase.GuestProjection,
	reason, cacheIdentity, fingerprint string,
) (*usecase.Decision, error) {
	token, expiresAt, err := srv.tokenService.GenerateGrant(guest.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue grant")
	}

	if guest.FirstAccessAt == nil {
		now := srv.now().UTC()
		marked, err := srv.guestRepo.MarkFirstAccess(ctx, guest.ID, now)
		if err != nil {
			return nil, errors.Wrap(err, "failed to mark first access")
		}
		if marked {
			srv.log(ctx).Info("First access", slog.String("guest_id", guest.ID.String()))
		}
	}

	srv.events.emit(ctx, guest.ID, entity.AccessEventGranted, fingerprint, reason)

	return &usecase.Decision{
		State:         usecase.StateGranted,
		Reason:        reason,
		CacheIdentity: cacheIdentity,
		Guest:         projection,
		Grant:         &usecase.Grant{Token: token, ExpiresAt: expiresAt},
	}, nil
}

// identityOfRecord is what a recognized device caches for its next visit.
func identityOfRecord(guest *entity.Guest) string {
	if guest.Phone != "" {
		return identity.NormalizePhone(guest.Phone)
	}

	return identity.NormalizeEmail(guest.Email)
}
