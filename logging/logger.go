package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// globalLogger discards everything until Init, which keeps tests quiet.
var globalLogger = zap.NewNop().Sugar()

// Init builds the global logger. Output goes to stderr in console encoding
// so it never lands in the menus printed on stdout.
func Init(level string) error {
	if strings.TrimSpace(level) == "" {
		level = "warn"
	}
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	config := zap.NewDevelopmentConfig()
	config.Level = zap.NewAtomicLevelAt(lvl)
	config.Development = lvl == zapcore.DebugLevel
	config.Encoding = "console"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.DisableStacktrace = true
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}

	logger, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	globalLogger = logger.Sugar()
	return nil
}

// Get returns the global logger.
func Get() *zap.SugaredLogger {
	return globalLogger
}

// Sync flushes any buffered logs.
func Sync() error {
	return globalLogger.Sync()
}

// Info logs an info message with optional key/value pairs
func Info(message string, fields ...interface{}) {
	Get().Infow(message, fields...)
}

// Debug logs a debug message with optional key/value pairs
func Debug(message string, fields ...interface{}) {
	Get().Debugw(message, fields...)
}

// Warn logs a warning message with optional key/value pairs
func Warn(message string, fields ...interface{}) {
	Get().Warnw(message, fields...)
}

// Error logs an error message with optional key/value pairs
func Error(message string, fields ...interface{}) {
	Get().Errorw(message, fields...)
}
