package utils

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewApplicationLogger constructs a zap logger writing human-readable console
// output to standard error, so standard output carries only the total.
func NewApplicationLogger(applicationName string) (*zap.Logger, error) {
	return newLogger(applicationName, zapcore.InfoLevel)
}

func newLogger(applicationName string, level zapcore.Level) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(level)
	config.Encoding = "console"
	config.OutputPaths = []string{StandardErrorSink}
	config.ErrorOutputPaths = []string{StandardErrorSink}
	config.DisableCaller = true
	config.DisableStacktrace = true
	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	config.EncoderConfig.TimeKey = ""
	config.EncoderConfig.LevelKey = ""
	config.EncoderConfig.NameKey = ""
	config.EncoderConfig.CallerKey = ""
	config.EncoderConfig.MessageKey = "message"
	config.EncoderConfig.StacktraceKey = ""
	logger, buildError := config.Build()
	if buildError != nil {
		return nil, buildError
	}
	return logger.Named(applicationName), nil
}
