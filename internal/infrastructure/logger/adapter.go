package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"medical-agents/internal/application/port/output"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ output.LoggerPort = (*LoggerAdapter)(nil)

type LoggerAdapter struct {
	base  *zap.Logger
	sugar *zap.SugaredLogger
	file  *os.File
}

type Config struct {
	// Level is one of debug, info, warn, error.
	Level string
	// FilePath, when set, receives JSON lines next to the console output.
	FilePath string
}

func NewLoggerAdapter(cfg Config) (*LoggerAdapter, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", cfg.Level, err)
	}

	consoleCfg := zap.NewDevelopmentEncoderConfig()
	consoleCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(consoleCfg), zapcore.Lock(os.Stderr), level),
	}

	var file *os.File
	if cfg.FilePath != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0755); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
		file, err = os.OpenFile(cfg.FilePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.AddSync(file),
			level,
		))
	}

	adapter := New(zap.New(zapcore.NewTee(cores...)))
	adapter.file = file
	return adapter, nil
}

// New wraps an existing zap logger. Close syncs it but never closes its sinks.
func New(l *zap.Logger) *LoggerAdapter {
	return &LoggerAdapter{
		base:  l,
		sugar: l.Sugar(),
	}
}

func NewNop() *LoggerAdapter {
	return New(zap.NewNop())
}

func (l *LoggerAdapter) Debug(msg string, args ...any) {
	l.sugar.Debugw(msg, args...)
}

func (l *LoggerAdapter) Info(msg string, args ...any) {
	l.sugar.Infow(msg, args...)
}

func (l *LoggerAdapter) Warn(msg string, args ...any) {
	l.sugar.Warnw(msg, args...)
}

func (l *LoggerAdapter) Error(msg string, args ...any) {
	l.sugar.Errorw(msg, args...)
}

func (l *LoggerAdapter) Named(name string) output.LoggerPort {
	return l.derive(l.base.Named(name))
}

func (l *LoggerAdapter) WithField(key string, value any) output.LoggerPort {
	return l.derive(l.base.With(zap.Any(key, value)))
}

func (l *LoggerAdapter) WithFields(fields map[string]any) output.LoggerPort {
	zf := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		zf = append(zf, zap.Any(k, v))
	}
	return l.derive(l.base.With(zf...))
}

// derive shares the file so that only the root adapter closes it.
func (l *LoggerAdapter) derive(z *zap.Logger) *LoggerAdapter {
	return &LoggerAdapter{base: z, sugar: z.Sugar()}
}

func (l *LoggerAdapter) Close() error {
	// Sync on a console core reports EINVAL/ENOTTY for stderr; ignore it.
	_ = l.base.Sync()
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
