package chem

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

//NewLogger builds the console logger used by the sim and its tools. Level
//takes zap's level names; an empty level means info.
func NewLogger(p LogConfig) (*zap.SugaredLogger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(p.LogLevel)); err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	enc := zap.NewDevelopmentEncoderConfig()
	enc.EncodeLevel = zapcore.CapitalColorLevelEncoder
	enc.TimeKey = ""
	enc.StacktraceKey = ""
	if !p.LogShowCaller {
		enc.CallerKey = ""
	}

	out := []string{"stderr"}
	if p.LogFile != "" {
		out = []string{p.LogFile}
	}

	logger, err := zap.Config{
		Level:            zap.NewAtomicLevelAt(lvl),
		Development:      true,
		Encoding:         "console",
		EncoderConfig:    enc,
		OutputPaths:      out,
		ErrorOutputPaths: []string{"stderr"},
	}.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}
