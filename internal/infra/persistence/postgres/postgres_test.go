package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPoolWatch_Observe(t *testing.T) {
	var buf bytes.Buffer
	watch := &poolWatch{logger: slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))}
	ctx := context.Background()

	watch.observe(ctx, sql.DBStats{})
	assert.Empty(t, buf.String())

	watch.observe(ctx, sql.DBStats{WaitCount: 2, WaitDuration: 10 * time.Millisecond})
	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "waits=2")

	buf.Reset()
	watch.observe(ctx, sql.DBStats{WaitCount: 3, WaitDuration: 110 * time.Millisecond})
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "waits=1")
	assert.Contains(t, buf.String(), "avgWait=100ms")
}
