// Package errors provides custom error types for the Skillmart API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Authentication & authorization errors.
var (
	ErrUnauthorized  = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrNotOwner      = &AppError{Code: "NOT_OWNER", Message: "Caller does not own this asset", StatusCode: http.StatusForbidden}
	ErrNotAuthorized = &AppError{Code: "NOT_AUTHORIZED", Message: "Caller is neither creator nor owner of this asset", StatusCode: http.StatusForbidden}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Asset errors.
var (
	ErrAssetNotFound = &AppError{Code: "ASSET_NOT_FOUND", Message: "Asset not found", StatusCode: http.StatusNotFound}
	ErrInactiveAsset = &AppError{Code: "INACTIVE_ASSET", Message: "Asset is inactive", StatusCode: http.StatusConflict}
	ErrNotListed     = &AppError{Code: "NOT_LISTED", Message: "Asset is not listed for sale", StatusCode: http.StatusConflict}
	ErrInvalidPrice  = &AppError{Code: "INVALID_PRICE", Message: "Price must be a positive amount", StatusCode: http.StatusBadRequest}
	ErrSelfPurchase  = &AppError{Code: "SELF_PURCHASE", Message: "Cannot purchase an asset you already own", StatusCode: http.StatusBadRequest}
)

// Ledger errors.
var (
	ErrInsufficientFunds = &AppError{Code: "INSUFFICIENT_FUNDS", Message: "Insufficient balance", StatusCode: http.StatusBadRequest}
)

// Snapshot errors.
var (
	ErrIncompatibleVersion = &AppError{Code: "INCOMPATIBLE_VERSION", Message: "Snapshot format version is newer than supported", StatusCode: http.StatusInternalServerError}
)
