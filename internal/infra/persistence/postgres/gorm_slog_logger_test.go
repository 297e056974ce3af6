package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"devicequote/config"
	deliverycontext "devicequote/internal/delivery/context"
	"devicequote/internal/infra/metrics"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestGormLogger(t *testing.T, debug bool) (*gormSlogLogger, *bytes.Buffer, *metrics.Registry) {
	t.Helper()

	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{}
	cfg.Env.Debug = debug
	cfg.Database.SlowQueryThreshold = 50 * time.Millisecond
	reg := metrics.NewRegistry()

	l, ok := newGormSlogLogger(base, cfg, reg).(*gormSlogLogger)
	if !ok {
		t.Fatal("unexpected logger type")
	}

	return l, &buf, reg
}

func selectDevice() (string, int64) {
	return `SELECT * FROM "devices" WHERE id = 'samsung-galaxy-s25'`, 1
}

func TestGormSlogLogger_Trace(t *testing.T) {
	tests := []struct {
		name      string
		debug     bool
		elapsed   time.Duration
		err       error
		wantLog   string
		wantSlow  float64
		wantEmpty bool
	}{
		{
			name:    "failed query",
			elapsed: time.Millisecond,
			err:     errors.New("relation \"devices\" does not exist"),
			wantLog: "GORM query failed",
		},
		{
			name:      "record not found is quiet",
			elapsed:   time.Millisecond,
			err:       gorm.ErrRecordNotFound,
			wantEmpty: true,
		},
		{
			name:     "slow query",
			elapsed:  time.Second,
			wantLog:  "GORM slow query",
			wantSlow: 1,
		},
		{
			name:      "fast query outside debug",
			elapsed:   time.Millisecond,
			wantEmpty: true,
		},
		{
			name:    "fast query in debug",
			debug:   true,
			elapsed: time.Millisecond,
			wantLog: "GORM query",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, buf, reg := newTestGormLogger(t, tt.debug)

			l.Trace(context.Background(), time.Now().Add(-tt.elapsed), selectDevice, tt.err)

			if tt.wantEmpty {
				assert.Empty(t, buf.String())
			} else {
				assert.Contains(t, buf.String(), tt.wantLog)
				assert.Contains(t, buf.String(), `"component":"gorm"`)
			}
			assert.InDelta(t, tt.wantSlow, testutil.ToFloat64(reg.DBSlowQueries), 0)
		})
	}
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	l, _, _ := newTestGormLogger(t, false)

	var reqBuf bytes.Buffer
	reqLogger := slog.New(slog.NewJSONHandler(&reqBuf, nil)).With(slog.String("request_id", "req-42"))
	ctx := deliverycontext.WithLogger(context.Background(), reqLogger)

	l.Trace(ctx, time.Now().Add(-time.Second), selectDevice, nil)

	assert.Contains(t, reqBuf.String(), `"request_id":"req-42"`)
	assert.Contains(t, reqBuf.String(), "GORM slow query")
}

func TestGormSlogLogger_Silent(t *testing.T) {
	l, buf, _ := newTestGormLogger(t, true)

	l.LogMode(logger.Silent).Trace(context.Background(), time.Now(), selectDevice, errors.New("boom"))
	assert.Empty(t, buf.String())

	// LogMode returns a copy.
	assert.Equal(t, logger.Info, l.level)
}

func TestLogPoolWait(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	prev := sql.DBStats{WaitCount: 10, WaitDuration: 100 * time.Millisecond}

	logPoolWait(context.Background(), log, prev, prev)
	assert.Empty(t, buf.String())

	logPoolWait(context.Background(), log, prev, sql.DBStats{WaitCount: 12, WaitDuration: 200 * time.Millisecond, InUse: 10})
	assert.Contains(t, buf.String(), `"level":"WARN"`)
	assert.Contains(t, buf.String(), `"waits":2`)
}
