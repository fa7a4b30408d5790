// Package errors holds the failures use cases report to callers. Each carries
// an HTTP status, a stable code clients switch on and a message shown to guests.
package errors

import (
	"net/http"

	"guestpass/internal/errors"
)

// AppError is an error with a client-facing rendering.
type AppError interface {
	error
	HTTPCode() int
	ErrorCode() string
	Message() string
	Details() string // optional, never shown for 5xx
}

// BaseError is a catalog entry, or a copy of one carrying details.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

var catalog = map[string]*BaseError{}

// define registers a catalog entry; codes are unique.
func define(httpCode int, code, message string) *BaseError {
	if _, dup := catalog[code]; dup {
		panic("duplicate error code " + code)
	}
	e := &BaseError{httpCode: httpCode, errorCode: code, message: message}
	catalog[code] = e

	return e
}

// ByCode returns the catalog entry for a code received over the wire.
func ByCode(code string) (*BaseError, bool) {
	e, ok := catalog[code]

	return e, ok
}

// NewBaseError builds an error outside the catalog.
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{httpCode: httpCode, errorCode: errorCode, message: message, details: details}
}

func (e *BaseError) Error() string     { return e.message }
func (e *BaseError) HTTPCode() int     { return e.httpCode }
func (e *BaseError) ErrorCode() string { return e.errorCode }
func (e *BaseError) Message() string   { return e.message }
func (e *BaseError) Details() string   { return e.details }

// WrapMessage adds log context while keeping errors.Is and errors.As working.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// WithDetails returns a copy of e with details set.
func (e *BaseError) WithDetails(details string) *BaseError {
	c := *e
	c.details = details

	return &c
}

// Is compares codes, so a detailed copy still matches its catalog entry.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
}

// Invitation access.
var (
	ErrTokenInvalid       = define(http.StatusNotFound, "TOKEN_INVALID", "邀請連結無效或已失效")
	ErrIdentityMismatch   = define(http.StatusForbidden, "IDENTITY_MISMATCH", "身分驗證失敗，請聯繫主辦人")
	ErrDeviceLimitReached = define(http.StatusTooManyRequests, "DEVICE_LIMIT_REACHED", "此邀請已達可使用裝置數量上限，請聯繫主辦人")
	ErrIdentityEmpty      = define(http.StatusBadRequest, "IDENTITY_EMPTY", "請輸入電話號碼或電子郵件")
	ErrGrantInvalid       = define(http.StatusUnauthorized, "GRANT_INVALID", "存取憑證無效或已過期")
	ErrRateLimited        = define(http.StatusTooManyRequests, "RATE_LIMITED", "嘗試次數過多，請稍後再試")
)

// Guest administration.
var (
	ErrGuestNotFound         = define(http.StatusNotFound, "GUEST_NOT_FOUND", "找不到該賓客")
	ErrInvalidQuota          = define(http.StatusBadRequest, "INVALID_QUOTA", "裝置數量上限設定無效")
	ErrTokenGenerationFailed = define(http.StatusInternalServerError, "TOKEN_GENERATION_FAILED", "產生邀請連結失敗")
	ErrInvalidCredentials    = define(http.StatusUnauthorized, "INVALID_CREDENTIALS", "帳號或密碼錯誤")
	ErrForbidden             = define(http.StatusForbidden, "FORBIDDEN", "存取被拒絕")
)

var (
	ErrValidationFailed = define(http.StatusBadRequest, "VALIDATION_FAILED", "輸入資料驗證失敗")
	ErrInternalError    = define(http.StatusInternalServerError, "INTERNAL_ERROR", "系統內部錯誤")
)

const codeDatabaseExecute = "DATABASE_EXECUTE_FAILED"

// DatabaseExecuteError wraps a storage failure. The driver error stays
// reachable through Unwrap for logs but is never rendered to clients.
type DatabaseExecuteError struct {
	err       error
	operation string
}

func NewDatabaseExecuteError(err error, operation string) AppError {
	return &DatabaseExecuteError{err: err, operation: operation}
}

func (e *DatabaseExecuteError) Error() string {
	return "database execution failed: " + e.operation + ": " + e.err.Error()
}

func (e *DatabaseExecuteError) Unwrap() error     { return e.err }
func (e *DatabaseExecuteError) HTTPCode() int     { return http.StatusInternalServerError }
func (e *DatabaseExecuteError) ErrorCode() string { return codeDatabaseExecute }
func (e *DatabaseExecuteError) Message() string   { return "資料庫執行失敗" }
func (e *DatabaseExecuteError) Details() string   { return e.operation }
