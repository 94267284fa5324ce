package web

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/asynccnu/be-toolkit/domain"
	"github.com/asynccnu/be-toolkit/errs"
	"github.com/asynccnu/be-toolkit/pkg/ginx"
	"github.com/asynccnu/be-toolkit/service"
	"github.com/ecodeclub/ekit/slice"
	"github.com/gin-gonic/gin"
)

type PaletteHandler struct {
	svc service.PaletteService
}

func NewPaletteHandler(svc service.PaletteService) *PaletteHandler {
	return &PaletteHandler{svc: svc}
}

func (h *PaletteHandler) RegisterRoutes(s *gin.Engine) {
	g := s.Group("/api/palettes")
	g.GET("", ginx.Wrap(h.List))
	g.POST("", ginx.WrapReq(h.Create))
	g.PUT("/:id", ginx.WrapReq(h.Rename))
	g.DELETE("/:id", ginx.Wrap(h.Delete))
	g.POST("/:id/colors", ginx.WrapReq(h.AddColor))
	g.DELETE("/:id/colors/:index", ginx.Wrap(h.RemoveColor))
	g.GET("/:id/export", h.Export)
}

// List 调色板列表
// @Summary 调色板列表
// @Tags 调色板
// @Produce json
// @Success 200 {object} ginx.Result{data=[]PaletteVo}
// @Router /api/palettes [get]
func (h *PaletteHandler) List(ctx *gin.Context) (ginx.Result, error) {
	ps, err := h.svc.List(ctx.Request.Context())
	if err != nil {
		return errorResult(errs.InternalServerError, err)
	}
	return ginx.Result{
		Msg:  "Success",
		Data: slice.Map(ps, func(idx int, src domain.Palette) PaletteVo { return toPaletteVo(src) }),
	}, nil
}

// Create 新建调色板，名字为空时自动命名
// @Summary 新建调色板
// @Tags 调色板
// @Accept json
// @Produce json
// @Param PaletteNameReq body PaletteNameReq false "名字"
// @Success 200 {object} ginx.Result{data=PaletteVo}
// @Router /api/palettes [post]
func (h *PaletteHandler) Create(ctx *gin.Context, req PaletteNameReq) (ginx.Result, error) {
	p, err := h.svc.Create(ctx.Request.Context(), req.Name)
	if err != nil {
		return h.paletteError(err)
	}
	return ginx.Result{
		Msg:  "Success",
		Data: toPaletteVo(p),
	}, nil
}

// Rename 重命名
// @Summary 重命名调色板
// @Tags 调色板
// @Accept json
// @Produce json
// @Param id path string true "调色板 id"
// @Param PaletteNameReq body PaletteNameReq true "名字"
// @Success 200 {object} ginx.Result{data=PaletteVo}
// @Router /api/palettes/{id} [put]
func (h *PaletteHandler) Rename(ctx *gin.Context, req PaletteNameReq) (ginx.Result, error) {
	p, err := h.svc.Rename(ctx.Request.Context(), ctx.Param("id"), req.Name)
	if err != nil {
		return h.paletteError(err)
	}
	return ginx.Result{
		Msg:  "Success",
		Data: toPaletteVo(p),
	}, nil
}

// Delete 删除调色板
// @Summary 删除调色板
// @Tags 调色板
// @Param id path string true "调色板 id"
// @Success 200 {object} ginx.Result
// @Router /api/palettes/{id} [delete]
func (h *PaletteHandler) Delete(ctx *gin.Context) (ginx.Result, error) {
	if err := h.svc.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		return h.paletteError(err)
	}
	return ginx.Result{Msg: "Success"}, nil
}

// AddColor 追加颜色
// @Summary 追加颜色
// @Tags 调色板
// @Accept json
// @Produce json
// @Param id path string true "调色板 id"
// @Param AddColorReq body AddColorReq true "颜色"
// @Success 200 {object} ginx.Result{data=PaletteVo}
// @Router /api/palettes/{id}/colors [post]
func (h *PaletteHandler) AddColor(ctx *gin.Context, req AddColorReq) (ginx.Result, error) {
	p, err := h.svc.AddColor(ctx.Request.Context(), ctx.Param("id"), req.Color)
	if err != nil {
		return h.paletteError(err)
	}
	return ginx.Result{
		Msg:  "Success",
		Data: toPaletteVo(p),
	}, nil
}

// RemoveColor 按下标删除颜色
// @Summary 删除颜色
// @Tags 调色板
// @Produce json
// @Param id path string true "调色板 id"
// @Param index path int true "颜色下标，从 0 开始"
// @Success 200 {object} ginx.Result{data=PaletteVo}
// @Router /api/palettes/{id}/colors/{index} [delete]
func (h *PaletteHandler) RemoveColor(ctx *gin.Context) (ginx.Result, error) {
	index, err := strconv.Atoi(ctx.Param("index"))
	if err != nil {
		return ginx.Result{
			Code: errs.PaletteInvalidInput,
			Msg:  "color index must be an integer",
		}, errs.ErrorInvalidParameter("bad color index %q", ctx.Param("index"))
	}
	p, err := h.svc.RemoveColor(ctx.Request.Context(), ctx.Param("id"), index)
	if err != nil {
		return h.paletteError(err)
	}
	return ginx.Result{
		Msg:  "Success",
		Data: toPaletteVo(p),
	}, nil
}

// Export 导出为 CSS 变量文件
// @Summary 导出 CSS
// @Tags 调色板
// @Produce text/css
// @Param id path string true "调色板 id"
// @Router /api/palettes/{id}/export [get]
func (h *PaletteHandler) Export(ctx *gin.Context) {
	filename, css, err := h.svc.ExportCSS(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.Data(http.StatusOK, "text/css; charset=utf-8", []byte(css))
}

func (h *PaletteHandler) paletteError(err error) (ginx.Result, error) {
	switch {
	case errs.IsPaletteNotFound(err):
		return errorResult(errs.PaletteNotFound, err)
	case errs.IsMissingParameter(err), errs.IsInvalidParameter(err):
		return errorResult(errs.PaletteInvalidInput, err)
	default:
		return errorResult(errs.InternalServerError, err)
	}
}

func toPaletteVo(p domain.Palette) PaletteVo {
	return PaletteVo{
		Id:     p.Id,
		Name:   p.Name,
		Colors: p.Colors,
		Ctime:  p.Ctime,
		Utime:  p.Utime,
	}
}

type PaletteVo struct {
	Id     string   `json:"id"`
	Name   string   `json:"name"`
	Colors []string `json:"colors"`
	Ctime  int64    `json:"ctime"`
	Utime  int64    `json:"utime"`
}

type PaletteNameReq struct {
	Name string `json:"name"`
}

type AddColorReq struct {
	Color string `json:"color"`
}
