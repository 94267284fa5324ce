package service

import (
	"image/color"
	"regexp"
	"strconv"
	"strings"

	"github.com/asynccnu/be-toolkit/errs"
)

var hexColorRegexp = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// NormalizeHex 统一成小写 #rrggbb，不带 # 的也接受
func NormalizeHex(hex string) (string, error) {
	hex = strings.TrimSpace(hex)
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	if !hexColorRegexp.MatchString(hex) {
		return "", errs.ErrorInvalidParameter("invalid color %q, want #rrggbb", hex)
	}
	return strings.ToLower(hex), nil
}

func ParseHex(hex string) (color.RGBA, error) {
	hex, err := NormalizeHex(hex)
	if err != nil {
		return color.RGBA{}, err
	}
	v, _ := strconv.ParseUint(hex[1:], 16, 32)
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}, nil
}

// ContrastColor 亮色背景配黑字，暗色背景配白字
func ContrastColor(hex string) (string, error) {
	c, err := ParseHex(hex)
	if err != nil {
		return "", err
	}
	luminance := (0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)) / 255
	if luminance > 0.5 {
		return "#000000", nil
	}
	return "#ffffff", nil
}
