package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Economy Business Logic (ECO) ----

func ErrInsufficientFunds() *AppError {
	return New("ECO_001", "Insufficient balance", http.StatusPaymentRequired)
}

func ErrInvalidAmount() *AppError {
	return New("ECO_002", "Invalid amount", http.StatusBadRequest)
}

func ErrAlreadyClaimedToday() *AppError {
	return New("ECO_003", "Daily reward already claimed today", http.StatusConflict)
}

func ErrInvalidRewardRange() *AppError {
	return New("ECO_004", "Reward minimum must not exceed maximum", http.StatusBadRequest)
}

func ErrAccountNotRanked() *AppError {
	return New("ECO_005", "Account has no recorded balance", http.StatusNotFound)
}

func ErrInvalidCurrencyName() *AppError {
	return New("ECO_006", "Currency name must not be empty", http.StatusBadRequest)
}

func ErrInvalidLocale(tag string) *AppError {
	return New("ECO_007", fmt.Sprintf("Unrecognized locale tag %q", tag), http.StatusBadRequest)
}

func ErrNotFound(entity string) *AppError {
	return New("ECO_008", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ---- Authentication (AUTH) ----

func ErrInvalidCredentials() *AppError {
	return New("AUTH_001", "Invalid credentials", http.StatusUnauthorized)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_002", "Invalid or expired token", http.StatusUnauthorized)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

func ErrStorageError(err error) *AppError {
	return Wrap("SYS_002", "Storage backend error", http.StatusInternalServerError, err)
}

// Validation returns an ECO_002-style validation error with a custom message.
func Validation(message string) *AppError {
	return New("ECO_002", message, http.StatusBadRequest)
}
