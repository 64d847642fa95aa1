package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestBuildConfigByEnvironment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		env           string
		wantLevel     zapcore.Level
		wantStack     bool
		wantCaller    bool
		wantCallerKey string
		wantEncoding  string
	}{
		{name: "development", env: "development", wantLevel: zap.DebugLevel, wantCallerKey: zapcore.OmitKey, wantEncoding: "console"},
		{name: "debug", env: " DEBUG ", wantLevel: zap.DebugLevel, wantStack: true, wantCaller: true, wantCallerKey: "caller", wantEncoding: "console"},
		{name: "production", env: "production", wantLevel: zap.InfoLevel, wantCallerKey: zapcore.OmitKey, wantEncoding: "json"},
		{name: "fallback", env: "", wantLevel: zap.InfoLevel, wantCallerKey: zapcore.OmitKey, wantEncoding: "console"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg, withCaller := buildConfig(tc.env)

			require.Equal(t, tc.wantLevel, cfg.Level.Level())
			require.Equal(t, !tc.wantStack, cfg.DisableStacktrace)
			require.Equal(t, tc.wantCaller, withCaller)
			require.Equal(t, tc.wantCallerKey, cfg.EncoderConfig.CallerKey)
			require.Equal(t, tc.wantEncoding, cfg.Encoding)
			require.Equal(t, "timestamp", cfg.EncoderConfig.TimeKey)
			require.Equal(t, "msg", cfg.EncoderConfig.MessageKey)
			require.Equal(t, []string{"stderr"}, cfg.OutputPaths)
		})
	}
}

func TestNewReturnsLogger(t *testing.T) {
	t.Parallel()

	l, err := New("ibancheck", "production")
	require.NoError(t, err)
	require.NotNil(t, l)

	l.Infow("startup", "component", "logger")
	l.SafeSync()
}

func TestFromZap_WithAddsFields(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.DebugLevel)
	l := FromZap(zap.New(core))

	l.With("run", "r1").Infow("validated", "country", "DE")
	l.Debugf("checked %d", 3)
	l.Warn("slow")

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, "validated", entries[0].Message)
	assert.Equal(t, map[string]any{"run": "r1", "country": "DE"}, entries[0].ContextMap())
	assert.Equal(t, "checked 3", entries[1].Message)
	assert.Equal(t, zap.WarnLevel, entries[2].Level)
}

func TestNop_SafeSync(t *testing.T) {
	t.Parallel()

	l := NewNop()
	l.Errorw("dropped", "k", "v")
	l.SafeSync()

	var nilLogger *Logger
	nilLogger.SafeSync()
}

func TestIsIgnorableSyncError(t *testing.T) {
	t.Parallel()

	assert.False(t, isIgnorableSyncError(nil))
	assert.True(t, isIgnorableSyncError(errors.New("sync /dev/stderr: invalid argument")))
	assert.True(t, isIgnorableSyncError(errors.New("sync /dev/stderr: inappropriate ioctl for device")))
	assert.False(t, isIgnorableSyncError(errors.New("disk write failed")))
}
