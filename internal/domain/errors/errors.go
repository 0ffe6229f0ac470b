package errors

import (
	"net/http"

	"capsule/internal/errors"
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
	// Catalog-related errors
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"找不到該商品",
		"",
	)

	ErrProductSlugTaken = NewBaseError(
		http.StatusConflict,
		"PRODUCT_SLUG_TAKEN",
		"此商品代稱已被使用",
		"",
	)

	ErrInsufficientStock = NewBaseError(
		http.StatusConflict,
		"INSUFFICIENT_STOCK",
		"商品庫存不足",
		"",
	)

	// Drop-related errors
	ErrDropNotFound = NewBaseError(
		http.StatusNotFound,
		"DROP_NOT_FOUND",
		"找不到該企劃系列",
		"",
	)

	ErrDropCodeTaken = NewBaseError(
		http.StatusConflict,
		"DROP_CODE_TAKEN",
		"此系列代碼已被使用",
		"",
	)

	// Cart-related errors
	ErrCartEmpty = NewBaseError(
		http.StatusBadRequest,
		"CART_EMPTY",
		"購物車是空的",
		"",
	)

	ErrCartItemNotFound = NewBaseError(
		http.StatusNotFound,
		"CART_ITEM_NOT_FOUND",
		"找不到該購物車品項",
		"",
	)

	ErrVariantUnavailable = NewBaseError(
		http.StatusBadRequest,
		"VARIANT_UNAVAILABLE",
		"所選的尺寸或顏色不存在",
		"",
	)

	// Order-related errors
	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"找不到該訂單",
		"",
	)

	ErrOrderOwnershipViolation = NewBaseError(
		http.StatusForbidden,
		"ORDER_OWNERSHIP_VIOLATION",
		"您沒有權限存取此訂單",
		"",
	)

	ErrInvalidOrderStatus = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ORDER_STATUS",
		"無效的訂單狀態",
		"",
	)

	ErrOrderAlreadyPaid = NewBaseError(
		http.StatusConflict,
		"ORDER_ALREADY_PAID",
		"此訂單已完成付款",
		"",
	)

	ErrOrderCancelled = NewBaseError(
		http.StatusConflict,
		"ORDER_CANCELLED",
		"此訂單已取消",
		"",
	)

	// Payment-related errors
	ErrPaymentVerificationFailed = NewBaseError(
		http.StatusUnauthorized,
		"PAYMENT_VERIFICATION_FAILED",
		"付款驗證失敗",
		"",
	)

	ErrPaymentGatewayFailure = NewBaseError(
		http.StatusBadGateway,
		"PAYMENT_GATEWAY_FAILURE",
		"付款服務暫時無法使用",
		"",
	)

	ErrUnsupportedPaymentMethod = NewBaseError(
		http.StatusBadRequest,
		"UNSUPPORTED_PAYMENT_METHOD",
		"不支援的付款方式",
		"",
	)

	// Wishlist-related errors
	ErrWishlistItemExists = NewBaseError(
		http.StatusConflict,
		"WISHLIST_ITEM_EXISTS",
		"此商品已在願望清單中",
		"",
	)

	ErrWishlistItemNotFound = NewBaseError(
		http.StatusNotFound,
		"WISHLIST_ITEM_NOT_FOUND",
		"找不到該願望清單品項",
		"",
	)

	// Address-related errors
	ErrAddressNotFound = NewBaseError(
		http.StatusNotFound,
		"ADDRESS_NOT_FOUND",
		"找不到該地址",
		"",
	)

	ErrAddressOwnershipViolation = NewBaseError(
		http.StatusForbidden,
		"ADDRESS_OWNERSHIP_VIOLATION",
		"您沒有權限存取此地址",
		"",
	)

	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"找不到該使用者",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"此電子郵件已被註冊",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"電子郵件或密碼錯誤",
		"",
	)

	ErrRefreshTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_TOKEN_INVALID",
		"無效或已過期的重新整理權杖",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"密碼處理錯誤",
		"",
	)

	// Media-related errors
	ErrUploadTooLarge = NewBaseError(
		http.StatusRequestEntityTooLarge,
		"UPLOAD_TOO_LARGE",
		"上傳的檔案過大",
		"",
	)

	ErrUnsupportedMediaType = NewBaseError(
		http.StatusUnsupportedMediaType,
		"UNSUPPORTED_MEDIA_TYPE",
		"不支援的檔案格式",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"輸入資料驗證失敗",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"資料庫交易失敗",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"系統內部錯誤",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"存取被拒絕",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"找不到該資源",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"資源衝突",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "資料庫執行失敗"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
