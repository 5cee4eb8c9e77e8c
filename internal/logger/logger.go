package logger

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger wraps a sugared zap logger behind printf-style helpers.
type Logger struct {
	sugar *zap.SugaredLogger
}

// New builds a console logger at the given level. When dir is non-empty the
// same output also goes to a rotated file under dir.
func New(level, dir string) *Logger {
	zlevel := zapcore.InfoLevel
	switch level {
	case "debug":
		zlevel = zapcore.DebugLevel
	case "error":
		zlevel = zapcore.ErrorLevel
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	cores := []zapcore.Core{
		zapcore.NewCore(
			zapcore.NewConsoleEncoder(encCfg),
			zapcore.Lock(os.Stdout),
			zlevel,
		),
	}

	if dir != "" {
		fileWriter := &lumberjack.Logger{
			Filename:   filepath.Join(dir, "storefront.log"),
			MaxSize:    100, // megabytes
			MaxBackups: 3,
			MaxAge:     30, // days
			Compress:   true,
		}
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(encCfg),
			zapcore.AddSync(fileWriter),
			zlevel,
		))
	}

	zl := zap.New(zapcore.NewTee(cores...))
	return &Logger{sugar: zl.Sugar()}
}

func (l *Logger) Info(msg string, args ...interface{}) {
	l.sugar.Infof(msg, args...)
}

func (l *Logger) Debug(msg string, args ...interface{}) {
	l.sugar.Debugf(msg, args...)
}

func (l *Logger) Error(msg string, args ...interface{}) {
	l.sugar.Errorf(msg, args...)
}

func (l *Logger) Fatal(msg string, args ...interface{}) {
	l.sugar.Fatalf(msg, args...)
}

func (l *Logger) Sync() {
	_ = l.sugar.Sync()
}
