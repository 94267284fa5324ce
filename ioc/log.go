package ioc

import (
	"os"

	"github.com/asynccnu/be-toolkit/pkg/logger"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

func InitLogger() logger.Logger {
	type Config struct {
		Level      string `yaml:"level"`
		File       string `yaml:"file"` // 为空时只写 stdout
		MaxSize    int    `yaml:"maxSize"`
		MaxAge     int    `yaml:"maxAge"`
		MaxBackups int    `yaml:"maxBackups"`
	}
	cfg := Config{
		Level:      "info",
		MaxSize:    50,
		MaxAge:     7,
		MaxBackups: 3,
	}
	err := viper.UnmarshalKey("log", &cfg)
	if err != nil {
		panic(err)
	}
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		panic(err)
	}

	ws := zapcore.AddSync(os.Stdout)
	if cfg.File != "" {
		ws = zapcore.NewMultiWriteSyncer(ws, zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSize, // MB
			MaxAge:     cfg.MaxAge,  // 天
			MaxBackups: cfg.MaxBackups,
			Compress:   true,
		}))
	}
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), ws, level)
	return logger.NewZapLogger(zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)))
}
