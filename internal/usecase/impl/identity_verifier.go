package impl

import (
	"context"
	"log/slog"

	deliverycontext "guestpass/internal/delivery/context"
	domainerrors "guestpass/internal/domain/errors"
	"guestpass/internal/domain/identity"
	"guestpass/internal/domain/repository"
	"guestpass/internal/errors"
	"guestpass/internal/usecase"

	"go.uber.org/fx"
)

// identityVerifier implements the IdentityVerifier interface.
type identityVerifier struct {
	txManager repository.TransactionManager
	tokens    usecase.TokenVerifier
	logger    *slog.Logger
}

// IdentityVerifierParams holds dependencies for the IdentityVerifier, injected by Fx.
type IdentityVerifierParams struct {
	fx.In

	TxManager     repository.TransactionManager
	TokenVerifier usecase.TokenVerifier
	Logger        *slog.Logger
}

// NewIdentityVerifier is the constructor for identityVerifier.
func NewIdentityVerifier(params IdentityVerifierParams) usecase.IdentityVerifier {
	return &identityVerifier{
		txManager: params.TxManager,
		tokens:    params.TokenVerifier,
		logger:    params.Logger,
	}
}

func (v *identityVerifier) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, v.logger)
}

// Verify compares the submission with the identity of record and, on a match,
// registers the fingerprint. A guest with nothing on file takes the submission
// as its identity of record. The comparison, the capture and the registration
// happen under the guest's row lock.
func (v *identityVerifier) Verify(ctx context.Context, token, submitted, fingerprint string) (*usecase.IdentityVerification, error) {
	parsed := identity.Parse(submitted)
	if parsed.Empty() {
		return nil, domainerrors.ErrIdentityEmpty.WrapMessage("nothing comparable in submission")
	}

	guest, err := v.tokens.Resolve(ctx, token)
	if err != nil {
		return nil, err
	}

	var result *usecase.IdentityVerification
	err = v.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		guestRepo := repoFactory.GuestRepo()

		locked, err := guestRepo.LockByID(ctx, guest.ID)
		if errors.Is(err, repository.ErrGuestNotFound) {
			return domainerrors.ErrTokenInvalid.WrapMessage("guest removed")
		}
		if err != nil {
			return errors.Wrap(err, "failed to lock guest")
		}
		// the token may have been regenerated since it was resolved
		if locked.Token != token {
			return domainerrors.ErrTokenInvalid.WrapMessage("token regenerated")
		}

		result = &usecase.IdentityVerification{Guest: locked, Normalized: parsed.Value}

		if !locked.HasIdentity() {
			phone, email := identity.Record(parsed)
			if err := guestRepo.UpdateIdentity(ctx, locked.ID, phone, email); err != nil {
				return errors.Wrap(err, "failed to store identity")
			}
			locked.Phone, locked.Email = phone, email
			result.Captured = true
		} else if !identity.Matches(parsed, locked.Phone, locked.Email) {
			result.Outcome = usecase.IdentityMismatched

			return nil
		}

		// an unidentified browser registers nothing but still needs a free slot
		if fingerprint == "" {
			count, err := repoFactory.DeviceRepo().CountByGuest(ctx, locked.ID)
			if err != nil {
				return errors.Wrap(err, "failed to count devices")
			}
			if count >= locked.MaxDevicesAllowed {
				result.Outcome = usecase.IdentityDeviceLimitReached
			} else {
				result.Outcome = usecase.IdentityMatched
			}

			return nil
		}

		registration, err := registerLocked(ctx, repoFactory.DeviceRepo(), locked, fingerprint)
		if err != nil {
			return err
		}
		result.Registration = &registration

		if registration == usecase.RegisterResultLimitReached {
			result.Outcome = usecase.IdentityDeviceLimitReached
		} else {
			result.Outcome = usecase.IdentityMatched
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to verify identity")
	}

	v.log(ctx).Debug("Identity verified",
		slog.String("guest_id", result.Guest.ID.String()),
		slog.String("kind", parsed.Kind.String()),
		slog.Int("outcome", int(result.Outcome)),
		slog.Bool("captured", result.Captured),
	)

	return result, nil
}
