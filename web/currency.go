package web

import (
	"net/http"

	"github.com/asynccnu/be-toolkit/pkg/ginx"
	"github.com/asynccnu/be-toolkit/pkg/logger"
	"github.com/asynccnu/be-toolkit/service"
	"github.com/gin-gonic/gin"
)

type CurrencyHandler struct {
	svc service.CurrencyService
	l   logger.Logger
}

func NewCurrencyHandler(svc service.CurrencyService, l logger.Logger) *CurrencyHandler {
	return &CurrencyHandler{svc: svc, l: l}
}

func (h *CurrencyHandler) RegisterRoutes(s *gin.Engine) {
	s.GET("/api/convert", h.Convert)
	s.GET("/api/currencies", ginx.Wrap(h.Currencies))
}

// Convert 汇率换算
// @Summary 汇率换算
// @Tags 汇率
// @Produce json
// @Param amount query string true "金额"
// @Param from query string true "源币种"
// @Param to query string true "目标币种"
// @Success 200 {object} ConvertResp
// @Failure 400 {object} ErrorResp
// @Router /api/convert [get]
func (h *CurrencyHandler) Convert(ctx *gin.Context) {
	res, err := h.svc.Convert(ctx.Request.Context(),
		ctx.Query("amount"), ctx.Query("from"), ctx.Query("to"))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, ConvertResp{
		ConversionRate:  res.ConversionRate,
		ConvertedAmount: res.ConvertedAmount,
	})
}

// Currencies 支持的币种
// @Summary 支持的币种列表
// @Tags 汇率
// @Produce json
// @Success 200 {object} ginx.Result{data=[]string}
// @Router /api/currencies [get]
func (h *CurrencyHandler) Currencies(ctx *gin.Context) (ginx.Result, error) {
	return ginx.Result{
		Msg:  "Success",
		Data: h.svc.Currencies(),
	}, nil
}

type ConvertResp struct {
	ConversionRate  float64 `json:"conversionRate"`
	ConvertedAmount float64 `json:"convertedAmount"`
}
