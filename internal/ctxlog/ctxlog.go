// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ctxlog

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/matt-FFFFFF/xcrun/internal/environ"
)

type loggerKey struct{}

// LevelVar is the level shared by DefaultLogger and JSONLogger.
var LevelVar = &slog.LevelVar{}

// DefaultLogger is used when the context carries no logger.
var DefaultLogger = slog.New(NewPrettyHandler(&slog.HandlerOptions{
	Level: LevelVar,
},
	WithAutoColour(),
	WithDestinationWriter(os.Stderr),
))

// JSONLogger writes JSON lines to stderr at LevelVar.
var JSONLogger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
	Level: LevelVar,
}))

func init() {
	exe, _ := os.Executable()
	LevelVar.Set(LevelFromEnv(environ.OS(), exe))
}

// New returns a context carrying logger, or DefaultLogger if logger is nil.
func New(ctx context.Context, logger *slog.Logger) context.Context {
	if logger == nil {
		logger = DefaultLogger
	}

	return context.WithValue(ctx, loggerKey{}, logger)
}

// Logger returns the logger from the context, or the default logger if not found.
func Logger(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(loggerKey{}).(*slog.Logger)
	if !ok || logger == nil {
		return DefaultLogger
	}

	return logger
}

// Info logs an info message with the given context.
func Info(ctx context.Context, msg string, args ...any) {
	Logger(ctx).Info(msg, args...)
}

// Debug logs a debug message with the given context.
func Debug(ctx context.Context, msg string, args ...any) {
	Logger(ctx).Debug(msg, args...)
}

// Warn logs a warning message with the given context.
func Warn(ctx context.Context, msg string, args ...any) {
	Logger(ctx).Warn(msg, args...)
}

// Error logs an error message with the given context.
func Error(ctx context.Context, msg string, args ...any) {
	Logger(ctx).Error(msg, args...)
}

// LevelEnvName returns the name of the variable holding the log level for the
// executable at path. Hyphens become underscores so the name is usable from a shell.
func LevelEnvName(path string) string {
	name := filepath.Base(path)
	name = strings.TrimSuffix(name, ".exe")
	name = strings.ReplaceAll(name, "-", "_")

	return strings.ToUpper(name) + "_LOG_LEVEL"
}

// FormatEnvName returns the name of the variable selecting the log format for
// the executable at path.
func FormatEnvName(path string) string {
	return strings.TrimSuffix(LevelEnvName(path), "_LOG_LEVEL") + "_LOG_FORMAT"
}

// LoggerFromEnv returns JSONLogger when the format variable for path is "json",
// otherwise DefaultLogger.
func LoggerFromEnv(env environ.Env, path string) *slog.Logger {
	if strings.EqualFold(env.Get(FormatEnvName(path)), "json") {
		return JSONLogger
	}

	return DefaultLogger
}

// LevelFromEnv reads the log level for the executable at path from env.
func LevelFromEnv(env environ.Env, path string) slog.Level {
	switch strings.ToUpper(env.Get(LevelEnvName(path))) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
