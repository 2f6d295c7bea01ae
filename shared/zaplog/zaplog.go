// Package zaplog builds the zap loggers used around funcore.
package zaplog

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewConsole returns a development-style console logger writing to stdout.
func NewConsole(level zapcore.Level) *zap.Logger {
	return New(os.Stdout, level)
}

// New returns a console logger writing to w at or above level.
func New(w io.Writer, level zapcore.Level) *zap.Logger {
	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(zapcore.AddSync(w)),
		level,
	)
	return zap.New(consoleCore)
}
