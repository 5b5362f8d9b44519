package main

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger logs to w at the configured level. verbose lowers it to info
// and debug to everything.
func newLogger(w io.Writer, configured string, verbose, debug bool) *zap.Logger {
	level, err := zapcore.ParseLevel(configured)
	if err != nil {
		level = zapcore.WarnLevel
	}

	switch {
	case debug:
		level = zapcore.DebugLevel
	case verbose && level > zapcore.InfoLevel:
		level = zapcore.InfoLevel
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), level)

	return zap.New(core)
}

// traceSink forwards conversion progress to the logger. Warnings are left
// to the final report.
type traceSink struct {
	log *zap.Logger
}

func (s traceSink) Log(message string) { s.log.Info(message) }

func (s traceSink) Warn(string) {}
