package logger

import (
	"context"
	"os"
	"path/filepath"

	"uniformnavi/internal/config"
	"uniformnavi/internal/reqctx"

	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is a no-op until InitLogger runs, so packages can log from tests.
var Log = zap.NewNop()

// LogDir holds app.log and its rotated backups.
const LogDir = "logs"

func InitLogger(cfg *config.Config) {
	logLevel := parseLevel(cfg.LogLevel)

	if cfg.Log == "dev" {
		devCfg := zap.NewDevelopmentConfig()
		devCfg.Level = zap.NewAtomicLevelAt(logLevel)
		logger, err := devCfg.Build()
		if err != nil {
			panic("cannot build dev logger: " + err.Error())
		}
		Log = logger
		return
	}

	if err := os.MkdirAll(LogDir, os.ModePerm); err != nil {
		panic("cannot create log directory: " + err.Error())
	}

	encoderCfg := zapcore.EncoderConfig{
		TimeKey:      "time",
		LevelKey:     "level",
		MessageKey:   "message",
		CallerKey:    "caller",
		EncodeTime:   zapcore.ISO8601TimeEncoder,
		EncodeLevel:  zapcore.CapitalLevelEncoder,
		EncodeCaller: zapcore.ShortCallerEncoder,
	}

	writer := zapcore.AddSync(&lumberjack.Logger{
		Filename:   filepath.Join(LogDir, "app.log"),
		MaxSize:    10,
		MaxBackups: 5,
		MaxAge:     7,
		Compress:   true,
	})

	console := zapcore.Lock(os.Stdout)

	core := zapcore.NewTee(
		zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), writer, logLevel),
		zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg), console, logLevel),
	)

	Log = zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
}

// WithCtx returns the global logger annotated with the request id, if any.
func WithCtx(ctx context.Context) *zap.Logger {
	if ctx == nil {
		return Log
	}
	if rid, ok := reqctx.GetRequestID(ctx); ok && rid != "" {
		return Log.With(zap.String("request_id", rid))
	}
	return Log
}

func parseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
