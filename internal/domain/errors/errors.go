package errors

import (
	"net/http"

	"flint/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"找不到該使用者",
		"",
	)

	// Like-related errors
	ErrSelfLike = NewBaseError(
		http.StatusBadRequest,
		"SELF_LIKE_FORBIDDEN",
		"不能對自己送出喜歡",
		"",
	)

	ErrLikeQuotaExceeded = NewBaseError(
		http.StatusTooManyRequests,
		"LIKE_QUOTA_EXCEEDED",
		"今日喜歡次數已達上限",
		"",
	)

	// Match-related errors
	ErrMatchNotFound = NewBaseError(
		http.StatusNotFound,
		"MATCH_NOT_FOUND",
		"找不到該配對",
		"",
	)

	ErrNotMatchParticipant = NewBaseError(
		http.StatusForbidden,
		"NOT_MATCH_PARTICIPANT",
		"您不是此配對的成員",
		"",
	)

	// ErrMatchIntegrity marks a duplicate Match record for one pair. It is
	// repaired in place but always surfaced, never swallowed; seeing it in a
	// healthy system is a bug signal.
	ErrMatchIntegrity = NewBaseError(
		http.StatusInternalServerError,
		"MATCH_INTEGRITY_FAULT",
		"配對資料不一致",
		"",
	)

	// Reminder-related errors
	ErrReminderNotFound = NewBaseError(
		http.StatusNotFound,
		"REMINDER_NOT_FOUND",
		"找不到該提醒",
		"",
	)

	ErrReminderOwnershipViolation = NewBaseError(
		http.StatusForbidden,
		"REMINDER_OWNERSHIP_VIOLATION",
		"您沒有權限存取此提醒",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"輸入資料驗證失敗",
		"",
	)

	// ErrStorage is a transient backend failure; the caller retries the
	// whole logical operation.
	ErrStorage = NewBaseError(
		http.StatusServiceUnavailable,
		"STORAGE_ERROR",
		"資料存取暫時失敗，請稍後再試",
		"",
	)
)
