// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"guestpass/config"
	"guestpass/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const issuer = "guestpass"

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	grantSecret string        // Secret key for signing invitation grants.
	adminSecret string        // Secret key for signing host sessions.
	grantTTL    time.Duration // Time-to-live for invitation grants.
	adminTTL    time.Duration // Time-to-live for host sessions.
	now         func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Grant == "" || cfg.SecretKey.Admin == "" {
		return nil, errors.New("jwt secrets must be provided")
	}
	if cfg.SecretKey.Grant == cfg.SecretKey.Admin {
		return nil, errors.New("grant and admin secrets must differ")
	}

	grantTTL, adminTTL := 30*time.Minute, 8*time.Hour
	if cfg.Auth != nil {
		if cfg.Auth.GrantTokenTTL > 0 {
			grantTTL = cfg.Auth.GrantTokenTTL
		}
		if cfg.Auth.AdminTokenTTL > 0 {
			adminTTL = cfg.Auth.AdminTokenTTL
		}
	}

	return &jwtService{
		grantSecret: cfg.SecretKey.Grant,
		adminSecret: cfg.SecretKey.Admin,
		grantTTL:    grantTTL,
		adminTTL:    adminTTL,
		now:         time.Now,
	}, nil
}

// GenerateGrant issues the token the invitation view accepts.
func (s *jwtService) GenerateGrant(guestID uuid.UUID) (string, time.Time, error) {
	return s.generateToken(guestID.String(), nil, s.grantTTL, s.grantSecret, service.TokenTypeGrant)
}

// ValidateGrant checks a grant token.
func (s *jwtService) ValidateGrant(tokenString string) (*service.Claims, error) {
	return s.validateToken(tokenString, s.grantSecret, service.TokenTypeGrant)
}

// GenerateAdminToken issues a host session token.
func (s *jwtService) GenerateAdminToken(username string, roles []string) (string, time.Time, error) {
	return s.generateToken(username, roles, s.adminTTL, s.adminSecret, service.TokenTypeAdmin)
}

// ValidateAdminToken checks a host session token.
func (s *jwtService) ValidateAdminToken(tokenString string) (*service.Claims, error) {
	return s.validateToken(tokenString, s.adminSecret, service.TokenTypeAdmin)
}

func (s *jwtService) generateToken(subject string, roles []string, ttl time.Duration, secret, tokenType string) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(ttl)

	claims := jwt.MapClaims{
		"iss":  issuer,
		"sub":  subject,
		"iat":  now.Unix(),
		"exp":  expiresAt.Unix(),
		"type": tokenType,
	}
	if roles != nil {
		claims["roles"] = roles
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "failed to sign token")
	}

	return signed, time.Unix(expiresAt.Unix(), 0), nil
}

func (s *jwtService) validateToken(tokenString, secret, wantType string) (*service.Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(secret), nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}

	tokenType, _ := mapClaims["type"].(string)
	if tokenType != wantType {
		return nil, errors.Errorf("unexpected token type %q", tokenType)
	}

	subject, err := mapClaims.GetSubject()
	if err != nil || subject == "" {
		return nil, errors.New("token subject missing")
	}

	exp, err := mapClaims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, errors.New("token expiry missing")
	}

	var roles []string
	if rawRoles, ok := mapClaims["roles"].([]any); ok {
		for _, r := range rawRoles {
			if role, ok := r.(string); ok {
				roles = append(roles, role)
			}
		}
	}

	return &service.Claims{
		Subject:   subject,
		Roles:     roles,
		Type:      tokenType,
		ExpiresAt: exp.Time,
	}, nil
}
