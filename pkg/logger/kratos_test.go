package logger

import (
	"testing"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/stretchr/testify/assert"
)

type recordLogger struct {
	level  string
	msg    string
	fields []Field
}

func (r *recordLogger) record(level, msg string, args []Field) {
	r.level, r.msg, r.fields = level, msg, args
}

func (r *recordLogger) Debug(msg string, args ...Field) { r.record("debug", msg, args) }
func (r *recordLogger) Info(msg string, args ...Field)  { r.record("info", msg, args) }
func (r *recordLogger) Warn(msg string, args ...Field)  { r.record("warn", msg, args) }
func (r *recordLogger) Error(msg string, args ...Field) { r.record("error", msg, args) }

func TestKratosLogger_Log(t *testing.T) {
	testCases := []struct {
		name       string
		level      log.Level
		keyvals    []interface{}
		wantLevel  string
		wantMsg    string
		wantFields []Field
	}{
		{
			name:       "消息字段被提取",
			level:      log.LevelInfo,
			keyvals:    []interface{}{log.DefaultMessageKey, "server started", "addr", ":8080"},
			wantLevel:  "info",
			wantMsg:    "server started",
			wantFields: []Field{{Key: "addr", Val: ":8080"}},
		},
		{
			name:       "fatal 降级为 error",
			level:      log.LevelFatal,
			keyvals:    []interface{}{"k", 1},
			wantLevel:  "error",
			wantFields: []Field{{Key: "k", Val: 1}},
		},
		{
			name:       "奇数个参数",
			level:      log.LevelWarn,
			keyvals:    []interface{}{"only"},
			wantLevel:  "warn",
			wantFields: []Field{{Key: "only", Val: "KEYVALS UNPAIRED"}},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rl := &recordLogger{}
			err := NewKratosLogger(rl).Log(tc.level, tc.keyvals...)
			assert.NoError(t, err)
			assert.Equal(t, tc.wantLevel, rl.level)
			assert.Equal(t, tc.wantMsg, rl.msg)
			assert.Equal(t, tc.wantFields, rl.fields)
		})
	}
}
