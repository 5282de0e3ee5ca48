package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"pushgate/config"
	deliverycontext "pushgate/internal/delivery/context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestGormLogger(buf *bytes.Buffer, debug bool, slow time.Duration) logger.Interface {
	cfg := &config.Config{}
	cfg.Env.Debug = debug
	cfg.Env.Log.SlowQueryThreshold = slow

	return newGormSlogLogger(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), cfg)
}

func sqlFn(sql string) func() (string, int64) {
	return func() (string, int64) { return sql, 1 }
}

func TestGormSlogLogger_Trace(t *testing.T) {
	t.Run("uses the request logger", func(t *testing.T) {
		var base, scoped bytes.Buffer
		l := newTestGormLogger(&base, false, time.Second)
		ctx := deliverycontext.WithLogger(context.Background(),
			slog.New(slog.NewTextHandler(&scoped, nil)).With(slog.String("app_id", "app-1")))

		l.Trace(ctx, time.Now(), sqlFn("SELECT 1"), errors.New("boom"))

		assert.Empty(t, base.String())
		assert.Contains(t, scoped.String(), "app_id=app-1")
		assert.Contains(t, scoped.String(), "error=boom")
	})

	t.Run("record not found is not an error", func(t *testing.T) {
		var buf bytes.Buffer
		l := newTestGormLogger(&buf, false, time.Second)

		l.Trace(context.Background(), time.Now(), sqlFn("SELECT 1"), gorm.ErrRecordNotFound)

		assert.Empty(t, buf.String())
	})

	t.Run("slow query", func(t *testing.T) {
		var buf bytes.Buffer
		l := newTestGormLogger(&buf, false, time.Millisecond)

		l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn("SELECT 1"), nil)

		assert.Contains(t, buf.String(), "Slow SQL query")
	})

	t.Run("fast queries only in debug", func(t *testing.T) {
		var quiet, verbose bytes.Buffer

		newTestGormLogger(&quiet, false, time.Second).Trace(context.Background(), time.Now(), sqlFn("SELECT 1"), nil)
		newTestGormLogger(&verbose, true, time.Second).Trace(context.Background(), time.Now(), sqlFn("SELECT 1"), nil)

		assert.Empty(t, quiet.String())
		assert.Contains(t, verbose.String(), "SELECT 1")
	})

	t.Run("silent", func(t *testing.T) {
		var buf bytes.Buffer
		l := newTestGormLogger(&buf, true, time.Second).LogMode(logger.Silent)

		l.Trace(context.Background(), time.Now(), sqlFn("SELECT 1"), errors.New("boom"))

		assert.Empty(t, buf.String())
	})
}

func TestTruncateSQL(t *testing.T) {
	short := "SELECT 1"
	assert.Equal(t, short, truncateSQL(short))

	long := "SELECT * FROM users WHERE reference IN (" + strings.Repeat("'ref',", 1000) + "'ref')"
	got := truncateSQL(long)
	assert.True(t, strings.HasPrefix(got, long[:maxLoggedSQLLength]))
	assert.Contains(t, got, "bytes)")
	assert.Less(t, len(got), len(long))
}
