package rapporthttp

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// Light smoke tests ensuring exported logger APIs do not panic and remain
// callable with and without key/value pairs.
func TestSimpleLoggerLevels(t *testing.T) {
	logger := NewSimpleLogger()

	logger.Debug("debug message")
	logger.Info("info message", "key", "value")
	logger.Warn("warn message", "count", 3)
	logger.Error("error message", "dangling") // odd pair is tolerated
}

func TestZapLoggerForwarding(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := NewZapLogger(zap.New(core))

	logger.Debug("debug message", "requestID", "req-1")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	if got := logs.Len(); got != 4 {
		t.Fatalf("Expected 4 log entries, got %d", got)
	}

	first := logs.All()[0]
	if first.Message != "debug message" {
		t.Errorf("Expected message to be forwarded, got %q", first.Message)
	}
	if value, ok := first.ContextMap()["requestID"]; !ok || value != "req-1" {
		t.Errorf("Expected requestID field, got %v", first.ContextMap())
	}
}

func TestClientDebugLogging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	socket := &fakeSocket{reply: Reply{"_s": 200}}
	client := New(socket,
		WithZapLogger(zap.New(core)),
		WithRequestIDGenerator(func() string { return "req-42" }),
	)

	var done = make(chan struct{})
	client.Get("/items").SendCallback(func(reply Reply, err error) { close(done) })
	<-done

	if logs.FilterMessage("Starting request").Len() != 1 {
		t.Errorf("Expected a Starting request log, got %v", logs.All())
	}
	if logs.FilterMessage("Request completed").Len() != 1 {
		t.Errorf("Expected a Request completed log, got %v", logs.All())
	}
}
