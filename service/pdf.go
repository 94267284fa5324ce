package service

import (
	"bytes"
	"io"

	"github.com/asynccnu/be-toolkit/errs"
	"github.com/asynccnu/be-toolkit/pkg/logger"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

type PDFService interface {
	// Merge 按上传顺序把每个文件的全部页面拼到一起
	Merge(files []io.ReadSeeker) ([]byte, error)
}

type pdfService struct {
	l logger.Logger
}

func NewPDFService(l logger.Logger) PDFService {
	// 不需要 pdfcpu 在用户目录下生成配置文件
	api.DisableConfigDir()
	return &pdfService{l: l}
}

func (s *pdfService) Merge(files []io.ReadSeeker) ([]byte, error) {
	if len(files) == 0 {
		return nil, errs.ErrorMissingParameter("at least one PDF file is required")
	}
	conf := s.config()
	for i, f := range files {
		if err := api.Validate(f, conf); err != nil {
			s.l.Warn("PDF 校验失败", logger.Int("index", i), logger.Error(err))
			return nil, errs.ErrorInvalidDocument("file %d is not a valid PDF", i+1)
		}
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := api.MergeRaw(files, &buf, false, s.config()); err != nil {
		s.l.Error("合并 PDF 失败", logger.Int("files", len(files)), logger.Error(err))
		return nil, errs.ErrorInvalidDocument("failed to merge PDF files")
	}
	return buf.Bytes(), nil
}

func (s *pdfService) config() *model.Configuration {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return conf
}
