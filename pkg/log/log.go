package log

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapConfig configures the zap-backed Logger.
type ZapConfig struct {
	Level        string
	Mode         string // "production" or anything else for development
	Encoding     string // "console" or "json"
	ColorEnabled bool
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}

// Init builds the process-wide Logger. Invalid levels fall back to the mode
// default instead of failing startup.
func Init(cfg ZapConfig) Logger {
	var zcfg zap.Config
	if cfg.Mode == "production" {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
		if cfg.ColorEnabled {
			zcfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		}
	}

	if cfg.Encoding != "" {
		zcfg.Encoding = cfg.Encoding
	}
	if lvl, err := zapcore.ParseLevel(cfg.Level); err == nil {
		zcfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	l, err := zcfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		panic("pkg/log: build zap logger: " + err.Error())
	}
	return &zapLogger{sugar: l.Sugar()}
}

func (z *zapLogger) Debug(_ context.Context, arg ...any) { z.sugar.Debug(arg...) }
func (z *zapLogger) Debugf(_ context.Context, template string, arg ...any) {
	z.sugar.Debugf(template, arg...)
}
func (z *zapLogger) Info(_ context.Context, arg ...any) { z.sugar.Info(arg...) }
func (z *zapLogger) Infof(_ context.Context, template string, arg ...any) {
	z.sugar.Infof(template, arg...)
}
func (z *zapLogger) Warn(_ context.Context, arg ...any) { z.sugar.Warn(arg...) }
func (z *zapLogger) Warnf(_ context.Context, template string, arg ...any) {
	z.sugar.Warnf(template, arg...)
}
func (z *zapLogger) Error(_ context.Context, arg ...any) { z.sugar.Error(arg...) }
func (z *zapLogger) Errorf(_ context.Context, template string, arg ...any) {
	z.sugar.Errorf(template, arg...)
}
func (z *zapLogger) Fatal(_ context.Context, arg ...any) { z.sugar.Fatal(arg...) }
func (z *zapLogger) Fatalf(_ context.Context, template string, arg ...any) {
	z.sugar.Fatalf(template, arg...)
}
func (z *zapLogger) DPanic(_ context.Context, arg ...any) { z.sugar.DPanic(arg...) }
func (z *zapLogger) DPanicf(_ context.Context, template string, arg ...any) {
	z.sugar.DPanicf(template, arg...)
}
func (z *zapLogger) Panic(_ context.Context, arg ...any) { z.sugar.Panic(arg...) }
func (z *zapLogger) Panicf(_ context.Context, template string, arg ...any) {
	z.sugar.Panicf(template, arg...)
}
