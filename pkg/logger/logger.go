// Package logger wraps a process-wide zap logger. Messages keep the
// "[area][layer] event key=value" shape used across the service.
package logger

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

func init() {
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if strings.EqualFold(strings.TrimSpace(os.Getenv("LOG_LEVEL")), "debug") {
		level.SetLevel(zapcore.DebugLevel)
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.Lock(os.Stdout),
		level,
	)
	logger = zap.New(core)
}

// Replace swaps the global logger. Tests use it with zaptest/observer cores.
func Replace(l *zap.Logger) {
	logger = l
}

// Sync flushes buffered log entries. Call it before the process exits.
func Sync() {
	err := logger.Sync()
	if err != nil && !strings.Contains(err.Error(), "sync /dev/stdout: invalid argument") {
		Errorf("failed to drain log queues: %s", err)
	}
}

func Debugf(format string, v ...interface{}) {
	logger.Sugar().Debugf(format, v...)
}

func Infof(format string, v ...interface{}) {
	logger.Sugar().Infof(format, v...)
}

func Warningf(format string, v ...interface{}) {
	logger.Sugar().Warnf(format, v...)
}

func Errorf(format string, v ...interface{}) {
	logger.Sugar().Errorf(format, v...)
}

// Fatalf logs and exits the process.
func Fatalf(format string, v ...interface{}) {
	logger.Sugar().Fatalf(format, v...)
}
