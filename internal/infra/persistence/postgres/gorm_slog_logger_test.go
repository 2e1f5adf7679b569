package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"estatex/config"
	deliverycontext "estatex/internal/delivery/context"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferedLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestGormSlogLogger_Trace(t *testing.T) {
	sqlFn := func() (string, int64) { return "SELECT 1", 1 }

	t.Run("record not found is ignored", func(t *testing.T) {
		var buf bytes.Buffer
		l := newGormSlogLogger(newBufferedLogger(&buf), &config.Config{})

		l.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrRecordNotFound)

		assert.Empty(t, buf.String())
	})

	t.Run("failures carry the request logger attributes", func(t *testing.T) {
		var buf bytes.Buffer
		base := newBufferedLogger(&buf)
		l := newGormSlogLogger(slog.New(slog.DiscardHandler), &config.Config{})
		ctx := deliverycontext.WithLogger(context.Background(), base.With(slog.String("request_id", "req-1")))

		l.Trace(ctx, time.Now(), sqlFn, assert.AnError)

		assert.Contains(t, buf.String(), "GORM query failed")
		assert.Contains(t, buf.String(), "req-1")
	})

	t.Run("slow queries warn", func(t *testing.T) {
		var buf bytes.Buffer
		l := newGormSlogLogger(newBufferedLogger(&buf), &config.Config{})

		l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn, nil)

		assert.Contains(t, buf.String(), "GORM slow query")
	})

	t.Run("silent mode logs nothing", func(t *testing.T) {
		var buf bytes.Buffer
		l := newGormSlogLogger(newBufferedLogger(&buf), &config.Config{}).LogMode(logger.Silent)

		l.Trace(context.Background(), time.Now(), sqlFn, assert.AnError)

		assert.Empty(t, buf.String())
	})
}
