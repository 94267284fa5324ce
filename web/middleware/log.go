package middleware

import (
	"bytes"
	"context"
	"io"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	maxPathLen = 1024
	maxBodyLen = 2048
)

type LogMiddlewareBuilder struct {
	logFn     func(ctx context.Context, l AccessLog)
	allowReq  bool
	allowResp bool
	skip      []string
}

func NewLogMiddlewareBuilder(logFn func(ctx context.Context, l AccessLog)) *LogMiddlewareBuilder {
	return &LogMiddlewareBuilder{logFn: logFn}
}

type AccessLog struct {
	Path     string        `json:"path"`
	Method   string        `json:"method"`
	ReqBody  string        `json:"req_body"`
	Status   int           `json:"status"`
	RespBody string        `json:"resp_body"`
	Duration time.Duration `json:"duration"`
}

func (m *LogMiddlewareBuilder) AllowReq() *LogMiddlewareBuilder {
	m.allowReq = true
	return m
}

func (m *LogMiddlewareBuilder) AllowResp() *LogMiddlewareBuilder {
	m.allowResp = true
	return m
}

// IgnorePaths 前缀匹配，websocket 和 /metrics 这种没必要记
func (m *LogMiddlewareBuilder) IgnorePaths(prefixes ...string) *LogMiddlewareBuilder {
	m.skip = append(m.skip, prefixes...)
	return m
}

func (m *LogMiddlewareBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		path := ctx.Request.URL.Path
		for _, p := range m.skip {
			if strings.HasPrefix(path, p) {
				ctx.Next()
				return
			}
		}
		if len(path) > maxPathLen {
			path = path[:maxPathLen]
		}
		al := AccessLog{
			Path:   path,
			Method: ctx.Request.Method,
		}
		// 上传文件和二进制内容不记
		if m.allowReq && isTextual(ctx.ContentType()) {
			// request 是一个stream对象，只能读一次
			body, _ := ctx.GetRawData()
			al.ReqBody = truncate(body)
			// 放回去
			ctx.Request.Body = io.NopCloser(bytes.NewReader(body))
		}
		if m.allowResp {
			ctx.Writer = &responseWriter{
				ResponseWriter: ctx.Writer,
				al:             &al,
			}
		}

		start := time.Now()
		defer func() {
			al.Duration = time.Since(start)
			al.Status = ctx.Writer.Status()
			m.logFn(ctx, al)
		}()
		ctx.Next()
	}
}

func isTextual(contentType string) bool {
	return contentType == "" ||
		strings.HasPrefix(contentType, "application/json") ||
		strings.HasPrefix(contentType, "text/")
}

func truncate(body []byte) string {
	if len(body) > maxBodyLen {
		return string(body[:maxBodyLen])
	}
	return string(body)
}

type responseWriter struct {
	gin.ResponseWriter
	al *AccessLog
}

func (w *responseWriter) Write(data []byte) (int, error) {
	if len(w.al.RespBody) < maxBodyLen && isTextual(w.Header().Get("Content-Type")) {
		w.al.RespBody = truncate([]byte(w.al.RespBody + string(data)))
	}
	return w.ResponseWriter.Write(data)
}
