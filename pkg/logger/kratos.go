package logger

import (
	"fmt"

	"github.com/go-kratos/kratos/v2/log"
)

// KratosLogger 把 kratos 框架内部日志转到我们自己的 Logger 上
type KratosLogger struct {
	l Logger
}

var _ log.Logger = (*KratosLogger)(nil)

func NewKratosLogger(l Logger) *KratosLogger {
	return &KratosLogger{l: l}
}

func (k *KratosLogger) Log(level log.Level, keyvals ...interface{}) error {
	if len(keyvals) == 0 {
		return nil
	}
	if len(keyvals)%2 != 0 {
		keyvals = append(keyvals, "KEYVALS UNPAIRED")
	}
	msg := ""
	fields := make([]Field, 0, len(keyvals)/2)
	for i := 0; i < len(keyvals); i += 2 {
		key := fmt.Sprint(keyvals[i])
		if key == log.DefaultMessageKey {
			msg = fmt.Sprint(keyvals[i+1])
			continue
		}
		fields = append(fields, Any(key, keyvals[i+1]))
	}
	switch level {
	case log.LevelDebug:
		k.l.Debug(msg, fields...)
	case log.LevelWarn:
		k.l.Warn(msg, fields...)
	case log.LevelError, log.LevelFatal:
		k.l.Error(msg, fields...)
	default:
		k.l.Info(msg, fields...)
	}
	return nil
}
