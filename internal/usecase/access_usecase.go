// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"guestpass/internal/domain/entity"

	"github.com/google/uuid"
)

// AccessState is the state the access flow settles in for one visit.
type AccessState string

const (
	// StateAccessDenied is terminal: the token is unknown or the server could not decide.
	StateAccessDenied AccessState = "access_denied"
	// StateIdentityRequired asks for a first identity, which becomes the identity of record.
	StateIdentityRequired AccessState = "identity_required"
	// StateIdentityVerification asks for an identity to compare with the one on file.
	StateIdentityVerification AccessState = "identity_verification"
	// StateGranted is terminal: the invitation may be shown.
	StateGranted AccessState = "granted"
)

// Reasons attached to an AccessDenied decision or a granted one.
const (
	ReasonTokenInvalid = "token_invalid"
	ReasonUnavailable  = "unavailable"
	ReasonCachedMatch  = "cached_identity"
	ReasonKnownDevice  = "known_device"
	ReasonIdentity     = "identity"
)

// SubmitOutcome is the result of an identity submission.
type SubmitOutcome string

const (
	OutcomeGranted            SubmitOutcome = "granted"
	OutcomeIdentityMismatch   SubmitOutcome = "identity_mismatch"
	OutcomeDeviceLimitReached SubmitOutcome = "device_limit_reached"
)

// GuestProjection is the part of a guest record the access flow exposes.
type GuestProjection struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	HasIdentity       bool      `json:"has_identity"`
	EventAccess       []string  `json:"event_access"`
	DeviceCount       int       `json:"device_count"`
	MaxDevicesAllowed int       `json:"max_devices_allowed"`
}

// Grant is the short-lived credential the invitation view accepts.
type Grant struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// --- Input DTOs ---

// DecideInput is one visit. Fingerprint is empty when the client could not compute one.
type DecideInput struct {
	Token          string
	Fingerprint    string
	CachedIdentity string
}

// SubmitInput is an identity typed in by the guest.
type SubmitInput struct {
	Token       string
	Identity    string
	Fingerprint string
}

// --- Output DTOs ---

// Decision tells the client what to show and how to update its access cache.
type Decision struct {
	State         AccessState
	Reason        string
	ClearCache    bool
	CacheIdentity string
	Guest         *GuestProjection
	Grant         *Grant
}

// SubmitResult is the outcome of an identity submission.
type SubmitResult struct {
	Outcome       SubmitOutcome
	Restriction   string // message for a restricted outcome
	CacheIdentity string
	Guest         *GuestProjection
	Grant         *Grant
}

// TokenVerifier resolves invitation tokens. It never mutates anything.
type TokenVerifier interface {
	// Resolve returns the guest holding token, or ErrTokenInvalid.
	Resolve(ctx context.Context, token string) (*entity.Guest, error)

	// Verify returns the projection of the guest holding token, or ErrTokenInvalid.
	Verify(ctx context.Context, token string) (*GuestProjection, error)
}

// RegisterResult is the outcome of a device registration.
type RegisterResult int

const (
	RegisterResultRegistered RegisterResult = iota
	RegisterResultAlreadyRegistered
	RegisterResultLimitReached
)

func (r RegisterResult) String() string {
	switch r {
	case RegisterResultRegistered:
		return "registered"
	case RegisterResultAlreadyRegistered:
		return "already_registered"
	case RegisterResultLimitReached:
		return "limit_reached"
	default:
		return "unknown"
	}
}

// DeviceRegistry owns the set of fingerprints admitted to each guest.
// The number of devices of a guest never exceeds its quota.
type DeviceRegistry interface {
	IsKnown(ctx context.Context, guestID uuid.UUID, fingerprint string) (bool, error)
	Register(ctx context.Context, guestID uuid.UUID, fingerprint string) (RegisterResult, error)
	ClearAll(ctx context.Context, guestID uuid.UUID) (int64, error)
	SetQuota(ctx context.Context, guestID uuid.UUID, maxDevices int) error
}

// IdentityOutcome is the result of comparing a submitted identity.
type IdentityOutcome int

const (
	IdentityMatched IdentityOutcome = iota
	IdentityMismatched
	IdentityDeviceLimitReached
)

// IdentityVerification reports what the identity verifier did.
type IdentityVerification struct {
	Outcome IdentityOutcome
	Guest   *entity.Guest
	// Captured is set when the submission became the identity of record.
	Captured bool
	// Registration is set when a fingerprint was presented and the identity matched.
	Registration *RegisterResult
	// Normalized is the comparable form of the submission.
	Normalized string
}

// IdentityVerifier compares submitted identities and registers the device on a match.
type IdentityVerifier interface {
	Verify(ctx context.Context, token, submitted, fingerprint string) (*IdentityVerification, error)
}

// AccessUsecase is the decision surface used by the invitation pages.
type AccessUsecase interface {
	// Verify resolves a token to its guest projection.
	Verify(ctx context.Context, token string) (*GuestProjection, error)

	// Decide runs one visit through the access state machine. Unexpected
	// failures are reported as AccessDenied, never as Granted.
	Decide(ctx context.Context, input DecideInput) (*Decision, error)

	// Submit checks an identity and registers the device on a match.
	Submit(ctx context.Context, input SubmitInput) (*SubmitResult, error)

	// Invitation returns the guest projection a grant token was issued for.
	Invitation(ctx context.Context, grantToken string) (*GuestProjection, error)
}
