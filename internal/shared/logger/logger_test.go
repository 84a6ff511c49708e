package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"summary-generator/internal/shared/contextkeys"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggerInterface_Contract(t *testing.T) {
	var _ Logger = NewLogger()
	var _ Logger = NewLoggerWithWriter(&bytes.Buffer{}, "info", "json")
	var _ Logger = NewZapLogger("debug", "json")
	var _ Logger = NewNopLogger()
}

func TestLogrusLogger_WithContextAddsFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewLoggerWithWriter(&buf, "info", "json")

	ctx := context.WithValue(context.Background(), contextkeys.UsernameKey, "testuser")
	ctx = context.WithValue(ctx, contextkeys.RequestIDKey, "req-1")
	ctx = context.WithValue(ctx, contextkeys.OperationKey, "generate_summary")
	log.WithContext(ctx).WithComponent("auth").Info("login succeeded")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "testuser", entry["username"])
	assert.Equal(t, "req-1", entry["request_id"])
	assert.Equal(t, "auth", entry["component"])
	assert.Equal(t, "generate_summary", entry["operation"])
	assert.Equal(t, "login succeeded", entry["msg"])
}

func TestLogrusLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewLoggerWithWriter(&buf, "warn", "text")

	log.Info("hidden")
	assert.Empty(t, buf.String())

	log.Warnf("visible %d", 1)
	assert.Contains(t, buf.String(), "visible 1")
}

func TestLogrusLogger_InvalidLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := NewLoggerWithWriter(&buf, "nonsense", "text")

	log.Debug("hidden")
	log.Info("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestZapLogger_WithFieldsAndContext(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	log := NewZapLoggerFrom(zap.New(core))

	ctx := context.WithValue(context.Background(), contextkeys.UsernameKey, "testuser")
	log.WithContext(ctx).WithFields(map[string]interface{}{"path": "/token"}).Infof("hello %s", "world")

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "hello world", entry.Message)
	fields := entry.ContextMap()
	assert.Equal(t, "testuser", fields["username"])
	assert.Equal(t, "/token", fields["path"])
}

func TestNewFromEnv_SelectsDriver(t *testing.T) {
	t.Setenv("LOG_DRIVER", "zap")
	_, ok := NewFromEnv().(*ZapLogger)
	assert.True(t, ok)

	t.Setenv("LOG_DRIVER", "")
	_, ok = NewFromEnv().(*LogrusLogger)
	assert.True(t, ok)
}

func TestNopLogger_Chains(t *testing.T) {
	log := NewNopLogger()
	assert.NotNil(t, log.WithComponent("x").WithContext(context.Background()).WithFields(nil))
}
