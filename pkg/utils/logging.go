package utils

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var logger *zap.Logger

// Logger returns the process logger configured from LOG_FILE and LOG_LEVEL.
func Logger() *zap.Logger {
	if logger != nil {
		return logger
	}
	l, err := NewLogger(os.Getenv("LOG_FILE"), os.Getenv("LOG_LEVEL"))
	if err != nil {
		l, _ = zap.NewProduction()
	}
	logger = l
	return logger
}

// NewLogger builds a JSON logger on stdout. With a file it tees into a
// rotated log file as well.
func NewLogger(file, level string) (*zap.Logger, error) {
	lvl := zapcore.InfoLevel
	if level != "" {
		if err := lvl.UnmarshalText([]byte(level)); err != nil {
			return nil, err
		}
	}
	enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	consoleCore := zapcore.NewCore(enc, zapcore.AddSync(os.Stdout), lvl)
	if file == "" {
		return zap.New(consoleCore, zap.AddCaller()), nil
	}
	if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		return nil, err
	}
	rotator := &lumberjack.Logger{
		Filename:   file,
		MaxSize:    50,
		MaxBackups: 5,
		MaxAge:     30,
		Compress:   true,
	}
	fileCore := zapcore.NewCore(enc, zapcore.AddSync(rotator), lvl)
	return zap.New(zapcore.NewTee(fileCore, consoleCore), zap.AddCaller()), nil
}
