package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/devconnector/internal/models"
	"github.com/ahmetcoskunkizilkaya/devconnector/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPGHandlerPersistsErrorsOnStop(t *testing.T) {
	db := testutil.NewDB(t)
	h := NewPGHandler(db, time.Hour)

	logger := slog.New(h).With("request_id", "req-1")
	logger.Info("ignored")
	logger.Error("boom",
		"error", "db down",
		"method", "GET",
		"path", "/api/posts",
		"user_id", "u-1",
		"latency_ms", 12.6,
		"attempt", 3,
	)

	h.Stop()
	h.Stop()

	var logs []models.SystemLog
	require.NoError(t, db.Find(&logs).Error)
	require.Len(t, logs, 1)

	got := logs[0]
	assert.Equal(t, "ERROR", got.Level)
	assert.Equal(t, "boom", got.Message)
	assert.Equal(t, "req-1", got.RequestID)
	assert.Equal(t, "db down", got.Error)
	assert.Equal(t, "GET", got.Method)
	assert.Equal(t, "/api/posts", got.Path)
	assert.Equal(t, 13, got.LatencyMs)
	require.NotNil(t, got.UserID)
	assert.Equal(t, "u-1", *got.UserID)

	var extra map[string]any
	require.NoError(t, json.Unmarshal(got.Extra, &extra))
	assert.EqualValues(t, 3, extra["attempt"])
}

func TestMultiHandlerFansOutByLevel(t *testing.T) {
	var info, errs bytes.Buffer
	m := NewMultiHandler(
		slog.NewJSONHandler(&info, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewJSONHandler(&errs, &slog.HandlerOptions{Level: slog.LevelError}),
	)
	logger := slog.New(m).WithGroup("req").With("id", 7)

	logger.Info("hello")
	logger.Error("bad")

	assert.Contains(t, info.String(), `"msg":"hello"`)
	assert.Contains(t, info.String(), `"msg":"bad"`)
	assert.NotContains(t, errs.String(), "hello")
	assert.Contains(t, errs.String(), `"req":{"id":7}`)
	assert.False(t, m.Enabled(context.Background(), slog.LevelDebug))
}

func TestCleanupDeletesOnlyOldLogs(t *testing.T) {
	db := testutil.NewDB(t)
	now := time.Now()

	old := models.SystemLog{ID: uuid.New(), Timestamp: now.AddDate(0, 0, -40), Level: "ERROR", Message: "old"}
	fresh := models.SystemLog{ID: uuid.New(), Timestamp: now.AddDate(0, 0, -1), Level: "ERROR", Message: "fresh"}
	require.NoError(t, db.Create(&old).Error)
	require.NoError(t, db.Create(&fresh).Error)

	deleted, err := Cleanup(context.Background(), db, now.AddDate(0, 0, -30))
	require.NoError(t, err)
	assert.EqualValues(t, 1, deleted)

	var left []models.SystemLog
	require.NoError(t, db.Find(&left).Error)
	require.Len(t, left, 1)
	assert.Equal(t, "fresh", left[0].Message)
}
