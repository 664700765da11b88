package apperror

import "net/http"

// Kind is a stable machine-readable error category exposed alongside the
// human message, so clients can branch without parsing message text.
type Kind string

const (
	KindUnauthorized Kind = "unauthorized"
	KindForbidden    Kind = "forbidden"
	KindNotFound     Kind = "not_found"
	KindValidation   Kind = "validation"
	KindConflict     Kind = "conflict"
	KindBusinessRule Kind = "business_rule"
	KindInternal     Kind = "internal"
)

type AppError struct {
	Code    int    `json:"code"`
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code int, kind Kind, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, KindValidation, message, nil)
}

// BusinessRule marks a well-formed request rejected by a domain rule
// (capacity reached, duplicate application, ineligible rating).
func BusinessRule(message string) *AppError {
	return New(http.StatusBadRequest, KindBusinessRule, message, nil)
}

func Unauthorized(message string) *AppError {
	return New(http.StatusUnauthorized, KindUnauthorized, message, nil)
}

func Forbidden(message string) *AppError {
	return New(http.StatusForbidden, KindForbidden, message, nil)
}

func NotFound(message string) *AppError {
	return New(http.StatusNotFound, KindNotFound, message, nil)
}

func Conflict(message string) *AppError {
	return New(http.StatusConflict, KindConflict, message, nil)
}

func Internal(err error) *AppError {
	return New(http.StatusInternalServerError, KindInternal, "Internal Server Error", err)
}
