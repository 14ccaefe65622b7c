package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("WARN"))
	assert.Equal(t, zapcore.ErrorLevel, parseLevel(" error "))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("nonsense"))
}

func TestZapLogger_WritesFieldsAndErrors(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := &ZapLogger{z: zap.New(core)}

	l.Info("Cerveja criada.", map[string]interface{}{"id": "abc"})
	l.Error("Falha no DB.", errors.New("timeout"))
	l.Debug("sem campos", nil)

	entries := logs.All()
	assert.Len(t, entries, 3)
	assert.Equal(t, "abc", entries[0].ContextMap()["id"])
	assert.Equal(t, "timeout", entries[1].ContextMap()["error"])
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
}

func TestNewNop_DoesNotPanic(t *testing.T) {
	l := NewNop()
	l.Warn("nada", map[string]interface{}{"k": 1})
	l.Error("nada", errors.New("x"))
	assert.NoError(t, l.Sync())
}
