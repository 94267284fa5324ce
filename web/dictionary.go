package web

import (
	"github.com/asynccnu/be-toolkit/errs"
	"github.com/asynccnu/be-toolkit/pkg/ginx"
	"github.com/asynccnu/be-toolkit/service"
	"github.com/gin-gonic/gin"
)

type DictionaryHandler struct {
	svc service.DictionaryService
}

func NewDictionaryHandler(svc service.DictionaryService) *DictionaryHandler {
	return &DictionaryHandler{svc: svc}
}

func (h *DictionaryHandler) RegisterRoutes(s *gin.Engine) {
	g := s.Group("/api/dictionary")
	g.GET("", ginx.WrapReq(h.Define))
	g.GET("/history", ginx.Wrap(h.History))
	g.DELETE("/history", ginx.Wrap(h.ClearHistory))
}

// Define 查词
// @Summary 查询英文单词释义
// @Tags 词典
// @Produce json
// @Param word query string true "单词"
// @Success 200 {object} ginx.Result{data=[]domain.DictionaryEntry}
// @Router /api/dictionary [get]
func (h *DictionaryHandler) Define(ctx *gin.Context, req DefineReq) (ginx.Result, error) {
	entries, err := h.svc.Define(ctx.Request.Context(), req.Word)
	switch {
	case err == nil:
		return ginx.Result{
			Msg:  "Success",
			Data: entries,
		}, nil
	case errs.IsMissingParameter(err), errs.IsInvalidParameter(err):
		return errorResult(errs.DictionaryInvalidInput, err)
	case errs.IsNotFound(err):
		return errorResult(errs.DictionaryNotFound, err)
	default:
		return errorResult(errs.InternalServerError, err)
	}
}

// History 最近查过的词，最新的在前
// @Summary 查词历史
// @Tags 词典
// @Produce json
// @Success 200 {object} ginx.Result{data=[]string}
// @Router /api/dictionary/history [get]
func (h *DictionaryHandler) History(ctx *gin.Context) (ginx.Result, error) {
	words, err := h.svc.History(ctx.Request.Context())
	if err != nil {
		return errorResult(errs.InternalServerError, err)
	}
	return ginx.Result{
		Msg:  "Success",
		Data: words,
	}, nil
}

// ClearHistory 清空查词历史
// @Summary 清空查词历史
// @Tags 词典
// @Success 200 {object} ginx.Result
// @Router /api/dictionary/history [delete]
func (h *DictionaryHandler) ClearHistory(ctx *gin.Context) (ginx.Result, error) {
	if err := h.svc.ClearHistory(ctx.Request.Context()); err != nil {
		return errorResult(errs.InternalServerError, err)
	}
	return ginx.Result{Msg: "Success"}, nil
}

type DefineReq struct {
	Word string `form:"word"`
}
