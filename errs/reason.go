package errs

import (
	"fmt"
	"net/http"

	"github.com/go-kratos/kratos/v2/errors"
)

const (
	ReasonMissingParameter    = "MISSING_PARAMETER"
	ReasonInvalidParameter    = "INVALID_PARAMETER"
	ReasonInvalidAmount       = "INVALID_AMOUNT"
	ReasonInvalidCurrencyCode = "INVALID_CURRENCY_CODE"
	ReasonInvalidDocument     = "INVALID_DOCUMENT"
	ReasonUpstreamError       = "UPSTREAM_ERROR"
	ReasonUpstreamUnavailable = "UPSTREAM_UNAVAILABLE"
	ReasonNotFound            = "NOT_FOUND"
	ReasonCourseNotFound      = "COURSE_NOT_FOUND"
	ReasonPaletteNotFound     = "PALETTE_NOT_FOUND"
)

func ErrorMissingParameter(format string, args ...interface{}) *errors.Error {
	return errors.New(http.StatusBadRequest, ReasonMissingParameter, fmt.Sprintf(format, args...))
}

func IsMissingParameter(err error) bool {
	return is(err, ReasonMissingParameter)
}

func ErrorInvalidParameter(format string, args ...interface{}) *errors.Error {
	return errors.New(http.StatusBadRequest, ReasonInvalidParameter, fmt.Sprintf(format, args...))
}

func IsInvalidParameter(err error) bool {
	return is(err, ReasonInvalidParameter)
}

func ErrorInvalidAmount(format string, args ...interface{}) *errors.Error {
	return errors.New(http.StatusBadRequest, ReasonInvalidAmount, fmt.Sprintf(format, args...))
}

func IsInvalidAmount(err error) bool {
	return is(err, ReasonInvalidAmount)
}

func ErrorInvalidCurrencyCode(format string, args ...interface{}) *errors.Error {
	return errors.New(http.StatusBadRequest, ReasonInvalidCurrencyCode, fmt.Sprintf(format, args...))
}

func IsInvalidCurrencyCode(err error) bool {
	return is(err, ReasonInvalidCurrencyCode)
}

func ErrorInvalidDocument(format string, args ...interface{}) *errors.Error {
	return errors.New(http.StatusBadRequest, ReasonInvalidDocument, fmt.Sprintf(format, args...))
}

func IsInvalidDocument(err error) bool {
	return is(err, ReasonInvalidDocument)
}

// ErrorUpstreamError 下游返回了非 2xx，code 直接透传下游的状态码
func ErrorUpstreamError(status int, format string, args ...interface{}) *errors.Error {
	if status < http.StatusBadRequest {
		status = http.StatusBadGateway
	}
	return errors.New(status, ReasonUpstreamError, fmt.Sprintf(format, args...))
}

func IsUpstreamError(err error) bool {
	return is(err, ReasonUpstreamError)
}

func ErrorUpstreamUnavailable(format string, args ...interface{}) *errors.Error {
	return errors.New(http.StatusInternalServerError, ReasonUpstreamUnavailable, fmt.Sprintf(format, args...))
}

func IsUpstreamUnavailable(err error) bool {
	return is(err, ReasonUpstreamUnavailable)
}

func ErrorNotFound(format string, args ...interface{}) *errors.Error {
	return errors.New(http.StatusNotFound, ReasonNotFound, fmt.Sprintf(format, args...))
}

func IsNotFound(err error) bool {
	return is(err, ReasonNotFound)
}

func ErrorCourseNotFound(format string, args ...interface{}) *errors.Error {
	return errors.New(http.StatusNotFound, ReasonCourseNotFound, fmt.Sprintf(format, args...))
}

func IsCourseNotFound(err error) bool {
	return is(err, ReasonCourseNotFound)
}

func ErrorPaletteNotFound(format string, args ...interface{}) *errors.Error {
	return errors.New(http.StatusNotFound, ReasonPaletteNotFound, fmt.Sprintf(format, args...))
}

func IsPaletteNotFound(err error) bool {
	return is(err, ReasonPaletteNotFound)
}

func is(err error, reason string) bool {
	if err == nil {
		return false
	}
	return errors.Reason(err) == reason
}
