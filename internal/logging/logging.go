// Package logging provides the sugared zap logger threaded through the
// manager. The manager logs its construction, its shutdown and each
// failed Evaluate call at debug level; unique tables, caches, set
// operations and homomorphism evaluation do not log.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a sugared logger. verbose selects debug level; otherwise info.
func New(verbose bool) *zap.SugaredLogger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.Encoding = "console"
	cfg.EncoderConfig.TimeKey = ""
	logger, err := cfg.Build()
	if err != nil {
		// Fall back to a no-op logger rather than panic: logging must
		// never be why the manager fails to start.
		logger = zap.NewNop()
	}
	return logger.Sugar()
}

// Nop returns a logger that discards everything. The manager does not
// use it: manager.New always builds its logger with New.
func Nop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
