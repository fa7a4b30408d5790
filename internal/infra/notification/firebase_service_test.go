package notification

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"guestpass/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNotificationService_NoCredentials(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name string
		cfg  *config.Config
	}{
		{name: "no firebase section", cfg: &config.Config{}},
		{name: "empty credentials path", cfg: &config.Config{Firebase: &config.FirebaseConfig{ProjectID: "demo"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewNotificationService(context.Background(), tt.cfg, logger)
			require.NoError(t, err)
			assert.IsType(t, &noopNotifier{}, svc)
			assert.NoError(t, svc.SendTopicNotification(context.Background(), "host", "title", "body", nil))
		})
	}
}
