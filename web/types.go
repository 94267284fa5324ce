package web

import (
	"net/http"

	"github.com/asynccnu/be-toolkit/errs"
	"github.com/asynccnu/be-toolkit/pkg/ginx"
	kerrors "github.com/go-kratos/kratos/v2/errors"
	"github.com/gin-gonic/gin"
)

type handler interface {
	RegisterRoutes(s *gin.Engine)
}

// ErrorResp 旧接口（汇率、天气、PDF）约定的错误返回体
type ErrorResp struct {
	Error string `json:"error"`
}

// writeError 状态码来自 kratos 错误，未知错误不把内部信息带出去
func writeError(ctx *gin.Context, err error) {
	e := kerrors.FromError(err)
	if e.Reason == "" {
		ctx.JSON(http.StatusInternalServerError, ErrorResp{Error: "Internal server error"})
		return
	}
	ctx.JSON(int(e.Code), ErrorResp{Error: e.Message})
}

func errorResult(code int, err error) (ginx.Result, error) {
	e := kerrors.FromError(err)
	if e.Reason == "" {
		return ginx.Result{
			Code: errs.InternalServerError,
			Msg:  "Internal server error",
		}, err
	}
	return ginx.Result{
		Code: code,
		Msg:  e.Message,
	}, err
}
