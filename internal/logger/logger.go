// Package logger wraps zap to provide logging across the application.
package logger

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/speero/partsbilling/internal/config"
	"github.com/speero/partsbilling/internal/types"
)

// Logger wraps zap.SugaredLogger to provide logging functionality
type Logger struct {
	*zap.SugaredLogger
}

// Global logger for convenience
var L *Logger

// NewLogger creates and returns a new Logger instance
func NewLogger(cfg *config.Configuration) (*Logger, error) {
	zapCfg := zap.NewProductionConfig()
	if cfg.Logging.Level == types.LogLevelDebug {
		zapCfg = zap.NewDevelopmentConfig()
	}

	zapCfg.EncoderConfig.TimeKey = "timestamp"
	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	// Disable stack traces for warnings to reduce log noise
	zapCfg.DisableStacktrace = true

	if lvl, err := zapcore.ParseLevel(string(cfg.Logging.Level)); err == nil {
		zapCfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	zapLogger, err := zapCfg.Build()
	if err != nil {
		return nil, err
	}

	return &Logger{SugaredLogger: zapLogger.Sugar()}, nil
}

// Initialize default logger and set it as global while also using Dependency
// Injection. The global exists for scripts and early-startup paths; everywhere
// else the injected instance should be used.
func init() {
	L, _ = NewLogger(config.GetDefaultConfig())
}

func GetLogger() *Logger {
	if L == nil {
		L, _ = NewLogger(config.GetDefaultConfig())
	}
	return L
}

// WithContext returns a logger annotated with identifiers from the context.
func (l *Logger) WithContext(ctx context.Context) *Logger {
	runID := types.GetRunID(ctx)
	if runID == "" {
		return l
	}
	return &Logger{SugaredLogger: l.SugaredLogger.With("run_id", runID)}
}
