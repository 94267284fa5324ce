package web

import (
	"io"
	"net/http"
	"strconv"

	"github.com/asynccnu/be-toolkit/errs"
	"github.com/asynccnu/be-toolkit/pkg/ginx"
	"github.com/asynccnu/be-toolkit/pkg/logger"
	"github.com/asynccnu/be-toolkit/service"
	"github.com/gin-gonic/gin"
)

const maxMarkdownBytes = 1 << 20

// ToolHandler 二维码、markdown 预览、配色对比度这类无状态的小工具
type ToolHandler struct {
	qr service.QRService
	md service.MarkdownService
	l  logger.Logger
}

func NewToolHandler(qr service.QRService, md service.MarkdownService, l logger.Logger) *ToolHandler {
	return &ToolHandler{qr: qr, md: md, l: l}
}

func (h *ToolHandler) RegisterRoutes(s *gin.Engine) {
	s.GET("/api/qr", h.QR)
	s.POST("/api/markdown", h.Markdown)
	s.GET("/api/colors/contrast", ginx.WrapReq(h.Contrast))
}

// QR 生成二维码
// @Summary 生成二维码 PNG
// @Tags 工具
// @Produce image/png
// @Param text query string true "内容"
// @Param size query int false "边长像素"
// @Param fg query string false "前景色"
// @Param bg query string false "背景色"
// @Router /api/qr [get]
func (h *ToolHandler) QR(ctx *gin.Context) {
	size := 0
	if raw := ctx.Query("size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(ctx, errs.ErrorInvalidParameter("size must be an integer"))
			return
		}
		size = n
	}
	png, err := h.qr.Generate(ctx.Query("text"), size, ctx.Query("fg"), ctx.Query("bg"))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.Data(http.StatusOK, "image/png", png)
}

// Markdown 预览
// @Summary markdown 转 HTML
// @Tags 工具
// @Accept plain
// @Produce html
// @Router /api/markdown [post]
func (h *ToolHandler) Markdown(ctx *gin.Context) {
	source, err := io.ReadAll(io.LimitReader(ctx.Request.Body, maxMarkdownBytes+1))
	if err != nil {
		writeError(ctx, errs.ErrorInvalidParameter("failed to read body"))
		return
	}
	if len(source) > maxMarkdownBytes {
		ctx.JSON(http.StatusRequestEntityTooLarge, ErrorResp{Error: "Document is too large"})
		return
	}
	html, err := h.md.Render(source)
	if err != nil {
		h.l.Error("渲染 markdown 失败", logger.Error(err))
		writeError(ctx, err)
		return
	}
	ctx.Data(http.StatusOK, "text/html; charset=utf-8", html)
}

// Contrast 给定背景色，返回可读的文字颜色
// @Summary 对比色
// @Tags 工具
// @Produce json
// @Param hex query string true "背景色"
// @Success 200 {object} ginx.Result{data=ContrastVo}
// @Router /api/colors/contrast [get]
func (h *ToolHandler) Contrast(ctx *gin.Context, req ContrastReq) (ginx.Result, error) {
	hex, err := service.NormalizeHex(req.Hex)
	if err != nil {
		return errorResult(errs.PaletteInvalidInput, err)
	}
	c, err := service.ContrastColor(hex)
	if err != nil {
		return errorResult(errs.PaletteInvalidInput, err)
	}
	return ginx.Result{
		Msg: "Success",
		Data: ContrastVo{
			Hex:      hex,
			Contrast: c,
		},
	}, nil
}

type ContrastReq struct {
	Hex string `form:"hex"`
}

type ContrastVo struct {
	Hex      string `json:"hex"`
	Contrast string `json:"contrast"`
}
