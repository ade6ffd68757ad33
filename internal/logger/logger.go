// Package logger constructs the application's zap logger.
package logger

import (
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New creates a sugared logger writing console-formatted lines to w.
// Pass os.Stderr for normal use; the TUI redirects logs to a file so they
// do not fight the alternate screen.
func New(level zapcore.Level, w io.Writer) *zap.SugaredLogger {
	if w == nil {
		w = os.Stderr
	}

	encoder := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		MessageKey:     "message",
		LevelKey:       "level",
		TimeKey:        "time",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	})

	core := zapcore.NewCore(encoder, zapcore.AddSync(w), level)

	return zap.New(core).Sugar()
}

// ParseLevel converts a config string to a zap level, defaulting to info.
func ParseLevel(s string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zapcore.DebugLevel
	case "info", "":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Discard returns a logger that drops everything, for tests.
func Discard() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
