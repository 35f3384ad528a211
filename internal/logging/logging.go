// Package logging builds the named zap loggers used across the runtime.
// Every name gets its own atomic level so individual subsystems can be
// turned up or down at runtime without rebuilding loggers.
package logging

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var encoderConfig = zapcore.EncoderConfig{
	TimeKey:        "ts",
	LevelKey:       "level",
	NameKey:        "logger",
	CallerKey:      "caller",
	FunctionKey:    zapcore.OmitKey,
	MessageKey:     "msg",
	StacktraceKey:  "stacktrace",
	LineEnding:     zapcore.DefaultLineEnding,
	EncodeLevel:    zapcore.LowercaseLevelEncoder,
	EncodeTime:     zapcore.RFC3339NanoTimeEncoder,
	EncodeDuration: zapcore.SecondsDurationEncoder,
	EncodeCaller:   zapcore.ShortCallerEncoder,
}

var (
	mu     sync.Mutex
	levels = make(map[string]zap.AtomicLevel)
)

func levelFor(name string) zap.AtomicLevel {
	mu.Lock()
	defer mu.Unlock()

	if l, ok := levels[name]; ok {
		return l
	}
	l := zap.NewAtomicLevelAt(zap.InfoLevel)
	levels[name] = l
	return l
}

// SetLevel adjusts the level of every logger created under name,
// including ones created after the call.
func SetLevel(name string, level zapcore.Level) {
	levelFor(name).SetLevel(level)
}

// Level reports the current level for name. Names that have never been
// seen report the default info level.
func Level(name string) zapcore.Level {
	return levelFor(name).Level()
}

// New returns a named console logger writing to stdout.
func New(name string) *zap.SugaredLogger {
	cfg := zap.Config{
		Level:            levelFor(name),
		Encoding:         "console",
		EncoderConfig:    encoderConfig,
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stdout"},
	}
	return zap.Must(cfg.Build(zap.AddStacktrace(zapcore.PanicLevel))).Named(name).Sugar()
}
