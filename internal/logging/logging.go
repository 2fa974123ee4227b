// Package logging builds the zap logger shared by every component.
package logging

import (
	"errors"
	"fmt"
	"io"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options controls where logs go.
type Options struct {
	// Debug lowers the level to debug.
	Debug bool
	// Console receives human-readable logs. Nil disables console output.
	Console io.Writer
	// File receives JSON logs, rotated by size. Empty disables file output.
	File string
}

// Rotation limits for the log file.
const (
	maxSizeMB  = 10
	maxBackups = 3
	maxAgeDays = 28
)

// New returns a logger and a function that flushes and closes its outputs.
func New(opts Options) (*zap.Logger, func() error) {
	level := zap.NewAtomicLevelAt(zap.InfoLevel)
	if opts.Debug {
		level.SetLevel(zap.DebugLevel)
	}

	var cores []zapcore.Core
	var console zapcore.WriteSyncer
	var rotator *lumberjack.Logger

	if opts.Console != nil {
		encCfg := zap.NewDevelopmentEncoderConfig()
		encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		console = zapcore.Lock(zapcore.AddSync(opts.Console))
		cores = append(cores, zapcore.NewCore(
			zapcore.NewConsoleEncoder(encCfg),
			console,
			level,
		))
	}

	if opts.File != "" {
		rotator = &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    maxSizeMB,
			MaxBackups: maxBackups,
			MaxAge:     maxAgeDays,
		}
		encCfg := zap.NewProductionEncoderConfig()
		encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(encCfg),
			zapcore.AddSync(rotator),
			level,
		))
	}

	if len(cores) == 0 {
		return zap.NewNop(), func() error { return nil }
	}

	logger := zap.New(zapcore.NewTee(cores...)).Named("afk")
	closeFn := func() error {
		var errs []error
		if console != nil {
			if err := console.Sync(); err != nil && !isIgnorableSyncError(err) {
				errs = append(errs, fmt.Errorf("syncing console log: %w", err))
			}
		}
		if rotator != nil {
			if err := rotator.Close(); err != nil {
				errs = append(errs, fmt.Errorf("closing log file: %w", err))
			}
		}
		return errors.Join(errs...)
	}
	return logger, closeFn
}

// Syncing a terminal or pipe fails with EINVAL or ENOTTY on some platforms.
func isIgnorableSyncError(err error) bool {
	return errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.ENOTTY)
}
