package logger

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger struct {
	Logger *zap.Logger
}

var (
	ProductionMode  = "production"
	DevelopmentMode = "development"
)

func New(mode string) *Logger {
	var config zap.Config
	if mode == ProductionMode {
		config = zap.NewProductionConfig()
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	zapLogger, err := config.Build(zap.AddCallerSkip(1))
	if err != nil {
		panic(err)
	}
	return &Logger{Logger: zapLogger}
}

// NewWithCore builds a Logger on top of an existing core, mostly for tests.
func NewWithCore(core zapcore.Core) *Logger {
	return &Logger{Logger: zap.New(core, zap.AddCallerSkip(1))}
}

// Nop discards everything.
func Nop() *Logger {
	return &Logger{Logger: zap.NewNop()}
}

type ctxKey string

var RequestIdKey ctxKey = "request_id"

func (l *Logger) withContext(ctx context.Context) *zap.Logger {
	var fields []zap.Field
	if ctx != nil {
		if requestId, ok := ctx.Value(RequestIdKey).(string); ok {
			fields = append(fields, zap.String(string(RequestIdKey), requestId))
		}
	}
	return l.Logger.With(fields...)
}

// WithRequestID stores the request id where withContext picks it up.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIdKey, requestID)
}

var logger *Logger

func SetGlobalLogger(l *Logger) {
	logger = l
}

func GetGlobalLogger() *Logger {
	return logger
}

func (l *Logger) Infof(template string, args ...interface{}) {
	l.Logger.Sugar().Infof(template, args...)
}

func (l *Logger) Warnf(template string, args ...interface{}) {
	l.Logger.Sugar().Warnf(template, args...)
}

func (l *Logger) Errorf(template string, args ...interface{}) {
	l.Logger.Sugar().Errorf(template, args...)
}

// WarnCtx logs msg with the request id carried by ctx.
func (l *Logger) WarnCtx(ctx context.Context, msg string, err error) {
	l.withContext(ctx).Warn(msg, zap.Error(err))
}

// ErrorCtx logs msg with the request id carried by ctx, the error and the
// stack of the caller.
func (l *Logger) ErrorCtx(ctx context.Context, msg string, err error) {
	l.withContext(ctx).Error(msg, zap.Error(err), zap.StackSkip("trace", 1))
}

func (l *Logger) Sync() {
	_ = l.Logger.Sync()
}
