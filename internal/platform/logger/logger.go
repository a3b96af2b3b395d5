package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var globalLogger *zap.Logger

// Init builds the global logger.
// "production" produces JSON; anything else produces colored console output.
// An unparsable level keeps the config default.
func Init(environment string, level string) error {
	var config zap.Config

	if environment == "production" {
		config = zap.NewProductionConfig()
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	if l, err := zapcore.ParseLevel(level); err == nil {
		config.Level = zap.NewAtomicLevelAt(l)
	}

	// Keep stdout for program output (estimate lines, JSON bodies).
	config.OutputPaths = []string{"stderr"}

	l, err := config.Build()
	if err != nil {
		return err
	}

	globalLogger = l
	return nil
}

// Get returns the global logger, or a no-op logger before Init.
func Get() *zap.Logger {
	if globalLogger == nil {
		return zap.NewNop()
	}
	return globalLogger
}

// Set replaces the global logger. Intended for tests.
func Set(l *zap.Logger) {
	globalLogger = l
}

func Sync() {
	if globalLogger != nil {
		_ = globalLogger.Sync()
	}
}
