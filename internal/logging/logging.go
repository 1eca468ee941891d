// Package logging builds the application logger. The TUI owns the terminal,
// so log output goes to a file.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a sugared logger writing JSON lines to path at the given
// level. An empty path disables logging. Unknown levels fall back to info.
func New(path, level string) (*zap.SugaredLogger, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return zap.NewNop().Sugar(), nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(ParseLevel(level))
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.Sampling = nil

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger.Sugar(), nil
}

// ParseLevel maps a level name to a zap level.
func ParseLevel(level string) zapcore.Level {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(level)))); err != nil {
		return zapcore.InfoLevel
	}
	return lvl
}

// Sync flushes buffered entries. Errors from syncing a terminal or a
// closed file are not actionable and are dropped.
func Sync(log *zap.SugaredLogger) {
	if log != nil {
		_ = log.Sync()
	}
}
