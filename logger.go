package rapporthttp

import (
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Logger is the structured logging interface consumed by the client. Message
// plus alternating key/value pairs, matching the shape of most structured
// loggers so adapters stay thin.
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)
}

// SimpleLogger is a minimal console logger for development use.
type SimpleLogger struct {
	logger *log.Logger
}

// NewSimpleLogger returns a logger writing to stderr with timestamps.
func NewSimpleLogger() *SimpleLogger {
	return &SimpleLogger{
		logger: log.New(os.Stderr, "", log.LstdFlags),
	}
}

// Debug logs at debug level.
func (l *SimpleLogger) Debug(msg string, keysAndValues ...any) {
	l.print("DEBUG", msg, keysAndValues)
}

// Info logs at info level.
func (l *SimpleLogger) Info(msg string, keysAndValues ...any) {
	l.print("INFO", msg, keysAndValues)
}

// Warn logs at warn level.
func (l *SimpleLogger) Warn(msg string, keysAndValues ...any) {
	l.print("WARN", msg, keysAndValues)
}

// Error logs at error level.
func (l *SimpleLogger) Error(msg string, keysAndValues ...any) {
	l.print("ERROR", msg, keysAndValues)
}

func (l *SimpleLogger) print(level, msg string, keysAndValues []any) {
	line := level + " " + msg
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		line += fmt.Sprintf(" %v=%v", keysAndValues[i], keysAndValues[i+1])
	}
	l.logger.Println(line)
}

// ZapLogger adapts a zap logger to the Logger interface.
type ZapLogger struct {
	sugar *zap.SugaredLogger
}

// NewZapLogger wraps a *zap.Logger for use as the client's Logger.
func NewZapLogger(logger *zap.Logger) *ZapLogger {
	return &ZapLogger{sugar: logger.Sugar()}
}

// Debug logs at debug level.
func (l *ZapLogger) Debug(msg string, keysAndValues ...any) {
	l.sugar.Debugw(msg, keysAndValues...)
}

// Info logs at info level.
func (l *ZapLogger) Info(msg string, keysAndValues ...any) {
	l.sugar.Infow(msg, keysAndValues...)
}

// Warn logs at warn level.
func (l *ZapLogger) Warn(msg string, keysAndValues ...any) {
	l.sugar.Warnw(msg, keysAndValues...)
}

// Error logs at error level.
func (l *ZapLogger) Error(msg string, keysAndValues ...any) {
	l.sugar.Errorw(msg, keysAndValues...)
}

// DebugConfig controls per-concern debug logging. Logging only happens when
// Enabled is true and a Logger is configured.
type DebugConfig struct {
	Enabled      bool
	LogRequests  bool
	LogSends     bool
	RequestIDGen func() string
}

// DefaultDebugConfig returns a disabled config with all concerns selected and
// UUID request IDs, so WithDebug alone turns everything on.
func DefaultDebugConfig() *DebugConfig {
	return &DebugConfig{
		Enabled:      false,
		LogRequests:  true,
		LogSends:     true,
		RequestIDGen: uuid.NewString,
	}
}
