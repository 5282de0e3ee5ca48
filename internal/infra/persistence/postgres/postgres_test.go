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

func TestPoolMonitor_Sample(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	samples := []sql.DBStats{
		{},
		{WaitCount: 0},
		{WaitCount: 2, WaitDuration: 10 * time.Millisecond, MaxOpenConnections: 4, InUse: 4},
		{WaitCount: 3, WaitDuration: 90 * time.Millisecond},
	}
	i := 0
	monitor := newPoolMonitor(logger, func() sql.DBStats {
		s := samples[i]
		i++

		return s
	})

	monitor.sample(context.Background())
	assert.Empty(t, buf.String())

	monitor.sample(context.Background())
	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "waits=2")
	assert.Contains(t, buf.String(), "avg_wait=5ms")
	buf.Reset()

	monitor.sample(context.Background())
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "waits=1")
	assert.Contains(t, buf.String(), "waited=80ms")
}
