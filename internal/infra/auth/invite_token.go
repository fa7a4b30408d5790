package auth

import (
	"crypto/rand"
	"encoding/base64"

	"guestpass/config"
	"guestpass/internal/domain/service"

	"github.com/pkg/errors"
)

const minInviteTokenBytes = 16

type inviteTokenGenerator struct {
	size int
}

// NewInviteTokenGenerator returns a generator producing URL-safe tokens of access.tokenBytes random bytes.
func NewInviteTokenGenerator(cfg *config.Config) service.InviteTokenGenerator {
	size := 24
	if cfg != nil && cfg.Access != nil && cfg.Access.TokenBytes >= minInviteTokenBytes {
		size = cfg.Access.TokenBytes
	}

	return &inviteTokenGenerator{size: size}
}

// GenerateInviteToken returns a fresh opaque token.
func (g *inviteTokenGenerator) GenerateInviteToken() (string, error) {
	buf := make([]byte, g.size)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to read random bytes")
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}
