package service

import (
	"time"

	"github.com/google/uuid"
)

// Token types carried in the "type" claim.
const (
	TokenTypeGrant = "grant"
	TokenTypeAdmin = "admin"
)

// Claims defines the claims read back from a validated token.
type Claims struct {
	Subject   string
	Roles     []string
	Type      string
	ExpiresAt time.Time
}

// TokenService defines the interface for generating and validating JWTs.
type TokenService interface {
	// GenerateGrant issues the short-lived token the invitation view accepts after access is granted.
	GenerateGrant(guestID uuid.UUID) (token string, expiresAt time.Time, err error)

	// ValidateGrant checks a grant token and returns its claims.
	ValidateGrant(tokenString string) (*Claims, error)

	// GenerateAdminToken issues a host session token.
	GenerateAdminToken(username string, roles []string) (token string, expiresAt time.Time, err error)

	// ValidateAdminToken checks a host session token and returns its claims.
	ValidateAdminToken(tokenString string) (*Claims, error)
}

// InviteTokenGenerator creates the opaque secrets embedded in invitation links.
type InviteTokenGenerator interface {
	GenerateInviteToken() (string, error)
}
