package ginx

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/asynccnu/be-toolkit/pkg/logger"
	kerrors "github.com/go-kratos/kratos/v2/errors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// InvalidInput 请求体或者查询参数解析失败时用的错误码
const InvalidInput = 400000

var L logger.Logger = logger.NewNopLogger()

var vector *prometheus.CounterVec

func SetLogger(l logger.Logger) {
	L = l
}

// InitCounter 按业务错误码统计请求数
func InitCounter(opt prometheus.CounterOpts) {
	v := prometheus.NewCounterVec(opt, []string{"code"})
	err := prometheus.Register(v)
	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		v = are.ExistingCollector.(*prometheus.CounterVec)
	}
	vector = v
}

func Wrap(fn func(ctx *gin.Context) (Result, error)) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		res, err := fn(ctx)
		write(ctx, res, err)
	}
}

func WrapReq[Req any](fn func(ctx *gin.Context, req Req) (Result, error)) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req Req
		if err := ctx.ShouldBind(&req); err != nil {
			L.Warn("解析请求失败",
				logger.String("path", ctx.Request.URL.Path),
				logger.Error(err))
			write(ctx, Result{Code: InvalidInput, Msg: "invalid request: " + err.Error()},
				kerrors.BadRequest("INVALID_INPUT", err.Error()))
			return
		}
		res, err := fn(ctx, req)
		write(ctx, res, err)
	}
}

// write 有 err 时 HTTP 状态码取 kratos 错误上的 code，普通 error 一律 500
func write(ctx *gin.Context, res Result, err error) {
	status := http.StatusOK
	if err != nil {
		status = kerrors.Code(err)
		if status >= http.StatusInternalServerError {
			L.Error("执行业务逻辑失败",
				logger.String("path", ctx.Request.URL.Path),
				logger.String("route", ctx.FullPath()),
				logger.Error(err))
		}
	}
	if vector != nil {
		vector.WithLabelValues(strconv.Itoa(res.Code)).Inc()
	}
	ctx.JSON(status, res)
}
