package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger = zap.NewNop()

// Init builds the process-wide logger. Progress output goes to stdout
// separately; the logger writes diagnostics to stderr so batch
// summaries stay parseable. Quiet mode raises the threshold to Warn.
func Init(quiet bool) {
	level := zap.InfoLevel
	if quiet {
		level = zap.WarnLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(os.Stderr),
		level,
	)

	logger = zap.New(core)
}

// L returns the process logger.
func L() *zap.Logger {
	return logger
}
