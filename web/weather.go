package web

import (
	"net/http"

	"github.com/asynccnu/be-toolkit/service"
	"github.com/gin-gonic/gin"
)

type WeatherHandler struct {
	svc service.WeatherService
}

func NewWeatherHandler(svc service.WeatherService) *WeatherHandler {
	return &WeatherHandler{svc: svc}
}

func (h *WeatherHandler) RegisterRoutes(s *gin.Engine) {
	s.GET("/api/weather", h.Weather)
}

// Weather 查询城市天气
// @Summary 城市天气
// @Description 原样返回 openweathermap 的结果
// @Tags 天气
// @Produce json
// @Param city query string true "城市名"
// @Success 200 {object} object
// @Failure 400 {object} ErrorResp
// @Failure 404 {object} ErrorResp
// @Router /api/weather [get]
func (h *WeatherHandler) Weather(ctx *gin.Context) {
	w, err := h.svc.Lookup(ctx.Request.Context(), ctx.Query("city"))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.Data(http.StatusOK, "application/json; charset=utf-8", w.Raw)
}
