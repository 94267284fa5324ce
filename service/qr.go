package service

import (
	"github.com/asynccnu/be-toolkit/errs"
	"github.com/skip2/go-qrcode"
)

const (
	DefaultQRSize = 200
	MinQRSize     = 64
	MaxQRSize     = 1024
)

type QRService interface {
	// Generate 返回 PNG，size 为 0 时用默认尺寸，颜色为空时黑码白底
	Generate(text string, size int, fg, bg string) ([]byte, error)
}

type qrService struct{}

func NewQRService() QRService {
	return &qrService{}
}

func (s *qrService) Generate(text string, size int, fg, bg string) ([]byte, error) {
	if text == "" {
		return nil, errs.ErrorMissingParameter("text is required")
	}
	if size == 0 {
		size = DefaultQRSize
	}
	if size < MinQRSize || size > MaxQRSize {
		return nil, errs.ErrorInvalidParameter("size must be between %d and %d", MinQRSize, MaxQRSize)
	}
	if fg == "" {
		fg = "#000000"
	}
	if bg == "" {
		bg = "#ffffff"
	}
	fgColor, err := ParseHex(fg)
	if err != nil {
		return nil, err
	}
	bgColor, err := ParseHex(bg)
	if err != nil {
		return nil, err
	}

	q, err := qrcode.New(text, qrcode.Medium)
	if err != nil {
		return nil, errs.ErrorInvalidParameter("text cannot be encoded: %v", err)
	}
	q.ForegroundColor = fgColor
	q.BackgroundColor = bgColor
	return q.PNG(size)
}
