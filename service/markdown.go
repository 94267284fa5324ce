package service

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

type MarkdownService interface {
	Render(source []byte) ([]byte, error)
}

type markdownService struct {
	md goldmark.Markdown
}

// NewMarkdownService GFM：表格、删除线、任务列表、自动链接。原始 HTML 默认不输出
func NewMarkdownService() MarkdownService {
	return &markdownService{
		md: goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
}

func (s *markdownService) Render(source []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := s.md.Convert(source, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
