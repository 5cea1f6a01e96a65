package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// DefaultLogFile is used when no log file is configured
	DefaultLogFile = "~/.gnureadline/logs/gnureadline.log"
)

var (
	// Logger is the global logger instance, a no-op until InitLogger runs
	Logger = zap.NewNop()

	// logPath is the file the current logger writes to
	logPath string
)

// InitLogger initializes the logger with file output only, so log lines
// never interleave with the line editor's terminal output
func InitLogger(path, level string) error {
	if path == "" {
		path = DefaultLogFile
	}
	path, err := expandPath(path)
	if err != nil {
		return fmt.Errorf("failed to expand log file path: %w", err)
	}

	// Create log directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	loggerConfig := zap.NewProductionConfig()
	loggerConfig.Level = zap.NewAtomicLevelAt(lvl)
	loggerConfig.OutputPaths = []string{path}
	loggerConfig.ErrorOutputPaths = []string{path}
	loggerConfig.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder

	logger, err := loggerConfig.Build()
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	Logger = logger
	logPath = path
	Logger.Info("Logger initialized", zap.String("path", path))
	return nil
}

// expandPath expands the ~ to the user's home directory
func expandPath(path string) (string, error) {
	if len(path) == 0 || path[0] != '~' {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, path[1:]), nil
}

// Path returns the file the logger writes to, empty before InitLogger
func Path() string {
	return logPath
}

// Close flushes the logger and falls back to a no-op logger
func Close() {
	if Logger != nil {
		Logger.Sync()
	}
	Logger = zap.NewNop()
	logPath = ""
}

// LogAppStart logs application startup
func LogAppStart(version, library string) {
	Logger.Info("App Started", zap.String("version", version), zap.String("library", library))
}

// LogAppExit logs application exit
func LogAppExit() {
	Logger.Info("App Exited")
}

// LogHistory logs a history file operation
func LogHistory(op, path string, entries int, err error) {
	if err != nil {
		Logger.Error("History operation failed",
			zap.String("op", op),
			zap.String("path", path),
			zap.Error(err))
		return
	}
	Logger.Info("History operation",
		zap.String("op", op),
		zap.String("path", path),
		zap.Int("entries", entries))
}

// LogError logs an error
func LogError(msg string, err error, fields ...zap.Field) {
	Logger.Error(msg, append(fields, zap.Error(err))...)
}
