package web

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/asynccnu/be-toolkit/errs"
	"github.com/asynccnu/be-toolkit/pkg/logger"
	"github.com/asynccnu/be-toolkit/service"
	"github.com/gin-gonic/gin"
)

// DefaultMaxUploadBytes 所有上传文件加起来的上限
const DefaultMaxUploadBytes = 32 << 20

type PDFHandler struct {
	svc      service.PDFService
	maxBytes int64
	l        logger.Logger
}

func NewPDFHandler(svc service.PDFService, maxBytes int64, l logger.Logger) *PDFHandler {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxUploadBytes
	}
	return &PDFHandler{svc: svc, maxBytes: maxBytes, l: l}
}

func (h *PDFHandler) RegisterRoutes(s *gin.Engine) {
	s.POST("/api/pdf-merger", h.Merge)
}

// Merge 合并 PDF
// @Summary 合并多个 PDF
// @Tags PDF
// @Accept multipart/form-data
// @Produce application/pdf
// @Param file formData file true "PDF 文件，可重复"
// @Success 200 {file} file
// @Failure 400 {object} ErrorResp
// @Router /api/pdf-merger [post]
func (h *PDFHandler) Merge(ctx *gin.Context) {
	ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, h.maxBytes)
	form, err := ctx.MultipartForm()
	if err != nil {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			ctx.JSON(http.StatusRequestEntityTooLarge, ErrorResp{Error: "Uploaded files are too large"})
			return
		}
		writeError(ctx, errs.ErrorMissingParameter("No files uploaded"))
		return
	}
	headers := form.File["file"]
	files := make([]io.ReadSeeker, 0, len(headers))
	opened := make([]multipart.File, 0, len(headers))
	defer func() {
		for _, f := range opened {
			_ = f.Close()
		}
	}()
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			h.l.Warn("打开上传文件失败",
				logger.String("filename", fh.Filename),
				logger.Error(err))
			writeError(ctx, errs.ErrorInvalidDocument("failed to read %s", fh.Filename))
			return
		}
		opened = append(opened, f)
		files = append(files, f)
	}
	merged, err := h.svc.Merge(files)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.Header("Content-Disposition", `attachment; filename="merged.pdf"`)
	ctx.Data(http.StatusOK, "application/pdf", merged)
}
