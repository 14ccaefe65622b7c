package logger

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger define a interface para logging estruturado.
// A aplicação (Handler, Service, Repository) deve depender apenas desta interface.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error)
	Fatal(msg string, err error)
	// Sync descarrega o buffer; chamado no encerramento do processo.
	Sync() error
}

// ZapLogger é a implementação concreta da interface Logger sobre o zap.
type ZapLogger struct {
	z *zap.Logger
}

// NewLogger cria um Logger com saída JSON no nível informado ("debug", "info", "warn", "error").
// Esta função é chamada no main.go.
func NewLogger(level string) Logger {
	return newZapLogger(level, false)
}

// NewDevelopmentLogger usa o encoder de console colorido, útil com ENV=development.
func NewDevelopmentLogger(level string) Logger {
	return newZapLogger(level, true)
}

// NewNop descarta todos os logs. Usado em testes.
func NewNop() Logger {
	return &ZapLogger{z: zap.NewNop()}
}

func newZapLogger(level string, development bool) Logger {
	var config zap.Config
	if development {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		config = zap.NewProductionConfig()
	}
	config.Level = zap.NewAtomicLevelAt(parseLevel(level))
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.MessageKey = "message"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	// Fatal é tratado por nós (os.Exit) para manter o mesmo comportamento em qualquer config.
	config.DisableStacktrace = true

	z, err := config.Build(zap.AddCallerSkip(1))
	if err != nil {
		// Sem logger não há como reportar; cai para um core mínimo em stderr.
		z = zap.New(zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.Lock(os.Stderr),
			parseLevel(level),
		))
	}
	return &ZapLogger{z: z}
}

// parseLevel converte o nível textual; valores desconhecidos viram "info".
func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	case "fatal":
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

func toZapFields(fields map[string]interface{}) []zap.Field {
	if len(fields) == 0 {
		return nil
	}
	zf := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		zf = append(zf, zap.Any(k, v))
	}
	return zf
}

// Implementações da Interface Logger

func (l *ZapLogger) Debug(msg string, fields map[string]interface{}) {
	l.z.Debug(msg, toZapFields(fields)...)
}

func (l *ZapLogger) Info(msg string, fields map[string]interface{}) {
	l.z.Info(msg, toZapFields(fields)...)
}

func (l *ZapLogger) Warn(msg string, fields map[string]interface{}) {
	l.z.Warn(msg, toZapFields(fields)...)
}

func (l *ZapLogger) Error(msg string, err error) {
	l.z.Error(msg, zap.Error(err))
}

// Fatal registra o erro e encerra o processo.
func (l *ZapLogger) Fatal(msg string, err error) {
	l.z.Error(msg, zap.Error(err))
	_ = l.z.Sync()
	os.Exit(1)
}

// Sync descarrega buffers pendentes; chamado no shutdown.
func (l *ZapLogger) Sync() error {
	return l.z.Sync()
}
