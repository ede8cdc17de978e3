package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggerWrappers(t *testing.T) {
	previous := logger
	t.Cleanup(func() { Replace(previous) })

	core, logs := observer.New(zapcore.DebugLevel)
	Replace(zap.New(core))

	Debugf("[test] debug n=%d", 1)
	Infof("[test] info order_id=%s", "ord_123")
	Warningf("[test] warn")
	Errorf("[test] error err=%v", "boom")

	entries := logs.AllUntimed()
	if len(entries) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(entries))
	}
	if entries[1].Message != "[test] info order_id=ord_123" || entries[1].Level != zapcore.InfoLevel {
		t.Fatalf("unexpected info entry: %+v", entries[1])
	}
	if entries[2].Level != zapcore.WarnLevel || entries[3].Level != zapcore.ErrorLevel {
		t.Fatalf("unexpected levels: %v %v", entries[2].Level, entries[3].Level)
	}
}
