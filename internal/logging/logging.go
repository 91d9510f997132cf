package logging

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevel represents the severity of a log message
type LogLevel int

const (
	// LevelDebug is the debug log level
	LevelDebug LogLevel = iota
	// LevelInfo is the info log level
	LevelInfo
	// LevelWarn is the warning log level
	LevelWarn
	// LevelError is the error log level
	LevelError
)

var (
	currentLevel atomic.Int32
	levelOnce    sync.Once

	loggerMu sync.RWMutex
	sugar    *zap.SugaredLogger
)

// initLevel initializes the log level from environment variables
func initLevel() {
	levelOnce.Do(func() {
		currentLevel.Store(int32(parseLevel(os.Getenv("DEBUG"), os.Getenv("LOG_LEVEL"))))
	})
}

// Configure replaces the environment-derived level and encoder with
// explicit values, such as those read from an env file. Empty debug and
// level select LevelInfo; an empty format selects the console encoder.
func Configure(debug, level, format string) {
	levelOnce.Do(func() {})
	currentLevel.Store(int32(parseLevel(debug, level)))
	SetLogger(newZapLogger(format))
}

// parseLevel resolves the effective level. DEBUG wins over LOG_LEVEL.
func parseLevel(debug, level string) LogLevel {
	switch strings.ToLower(debug) {
	case "1", "true", "yes", "on":
		return LevelDebug
	}

	switch strings.ToLower(level) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// newZapLogger builds the backing logger. LOG_FORMAT=json selects the
// production encoder, anything else the console encoder.
func newZapLogger(format string) *zap.Logger {
	var cfg zap.Config
	if strings.EqualFold(format, "json") {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		cfg.DisableStacktrace = true
	}
	// Filtering happens in this package so the level switch stays cheap.
	cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	cfg.DisableCaller = true

	l, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return l
}

func logger() *zap.SugaredLogger {
	loggerMu.RLock()
	s := sugar
	loggerMu.RUnlock()
	if s != nil {
		return s
	}

	loggerMu.Lock()
	defer loggerMu.Unlock()
	if sugar == nil {
		sugar = newZapLogger(os.Getenv("LOG_FORMAT")).Sugar()
	}
	return sugar
}

// SetLogger replaces the backing zap logger. Passing nil restores the
// environment-configured default on next use.
func SetLogger(l *zap.Logger) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	if l == nil {
		sugar = nil
		return
	}
	sugar = l.Sugar()
}

// Sync flushes any buffered log entries
func Sync() error {
	return logger().Sync()
}

// GetLevel returns the current log level
func GetLevel() LogLevel {
	initLevel()
	return LogLevel(currentLevel.Load())
}

// IsDebugEnabled returns true if debug logging is enabled
func IsDebugEnabled() bool {
	return GetLevel() <= LevelDebug
}

// Debug logs a debug message (only if DEBUG=true or LOG_LEVEL=debug)
func Debug(format string, args ...interface{}) {
	if GetLevel() <= LevelDebug {
		logger().Debugf(format, args...)
	}
}

// Info logs an info message
func Info(format string, args ...interface{}) {
	if GetLevel() <= LevelInfo {
		logger().Infof(format, args...)
	}
}

// Warn logs a warning message
func Warn(format string, args ...interface{}) {
	if GetLevel() <= LevelWarn {
		logger().Warnf(format, args...)
	}
}

// Error logs an error message
func Error(format string, args ...interface{}) {
	if GetLevel() <= LevelError {
		logger().Errorf(format, args...)
	}
}

// Fatal logs an error message and exits
func Fatal(format string, args ...interface{}) {
	logger().Fatalf(format, args...)
}

// Printf logs a message regardless of the configured level
func Printf(format string, args ...interface{}) {
	logger().Infof(format, args...)
}

// Println logs its operands separated by spaces regardless of the configured level
func Println(args ...interface{}) {
	logger().Info(strings.TrimSuffix(fmt.Sprintln(args...), "\n"))
}

// String returns the string representation of a log level
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return fmt.Sprintf("unknown(%d)", l)
	}
}
