package auth

import (
	"encoding/base64"
	"testing"

	"guestpass/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInviteTokenGenerator(t *testing.T) {
	gen := NewInviteTokenGenerator(&config.Config{Access: &config.AccessConfig{TokenBytes: 32}})

	seen := make(map[string]struct{})
	for range 50 {
		token, err := gen.GenerateInviteToken()
		require.NoError(t, err)

		raw, err := base64.RawURLEncoding.DecodeString(token)
		require.NoError(t, err)
		assert.Len(t, raw, 32)

		_, dup := seen[token]
		assert.False(t, dup)
		seen[token] = struct{}{}
	}
}

func TestInviteTokenGenerator_TooSmallFallsBack(t *testing.T) {
	gen := NewInviteTokenGenerator(&config.Config{Access: &config.AccessConfig{TokenBytes: 4}}).(*inviteTokenGenerator)
	assert.Equal(t, 24, gen.size)
}
