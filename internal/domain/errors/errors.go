package errors

import (
	"fmt"
	"net/http"

	"checkout/internal/errors"
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
	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrInvalidNationalID = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"National identity number must be exactly 8 digits",
		"",
	)

	ErrInvalidQuantity = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Quantity must be at least 1",
		"",
	)

	ErrInvalidPaymentMethod = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Unsupported payment method",
		"",
	)

	ErrNoOperator = NewBaseError(
		http.StatusBadRequest,
		"NO_OPERATOR",
		"No operator is assigned to this checkout",
		"",
	)

	ErrEmptyCart = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_CART",
		"The cart has no items",
		"",
	)

	// Cart-related errors
	ErrNoSelection = NewBaseError(
		http.StatusBadRequest,
		"NO_SELECTION",
		"Select an item before adding it to the cart",
		"",
	)

	ErrLineNotFound = NewBaseError(
		http.StatusNotFound,
		"LINE_NOT_FOUND",
		"The item is not in the cart",
		"",
	)

	ErrCatalogItemNotFound = NewBaseError(
		http.StatusNotFound,
		"ITEM_NOT_FOUND",
		"Catalog item not found",
		"",
	)

	// Session-related errors
	ErrSessionNotFound = NewBaseError(
		http.StatusNotFound,
		"SESSION_NOT_FOUND",
		"Checkout session not found",
		"",
	)

	ErrSessionForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"The checkout session belongs to another operator",
		"",
	)

	ErrCheckoutLocked = NewBaseError(
		http.StatusConflict,
		"CHECKOUT_LOCKED",
		"The checkout is being submitted or waiting for dismissal",
		"",
	)

	ErrSubmissionInProgress = NewBaseError(
		http.StatusConflict,
		"SUBMISSION_IN_PROGRESS",
		"A submission for this cart is already running or completed",
		"",
	)

	ErrNothingToDismiss = NewBaseError(
		http.StatusConflict,
		"NOTHING_TO_DISMISS",
		"There is no completed checkout to dismiss",
		"",
	)

	ErrReceiptUnavailable = NewBaseError(
		http.StatusNotFound,
		"RECEIPT_UNAVAILABLE",
		"No completed checkout to print",
		"",
	)

	// Customer resolution errors
	ErrLookupNotFound = NewBaseError(
		http.StatusNotFound,
		"LOOKUP_NOT_FOUND",
		"Customer not found",
		"",
	)

	ErrResolutionInProgress = NewBaseError(
		http.StatusConflict,
		"RESOLUTION_IN_PROGRESS",
		"A customer lookup is already running",
		"",
	)

	ErrResolutionNotConfirmable = NewBaseError(
		http.StatusConflict,
		"RESOLUTION_NOT_CONFIRMABLE",
		"There is no resolved customer to confirm",
		"",
	)

	ErrRegistrationFailed = NewBaseError(
		http.StatusInternalServerError,
		"REGISTRATION_FAILED",
		"The customer could not be registered",
		"",
	)

	// Submission errors
	ErrFallbackPersistFailed = NewBaseError(
		http.StatusInternalServerError,
		"FALLBACK_PERSIST_FAILED",
		"The sale could not be recorded locally",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
		"",
	)
)

// InsufficientStockError reports a cart commit that would exceed the item's stock.
// The cart is left unchanged when it is returned.
type InsufficientStockError struct {
	ItemID    string
	Requested int
	Remaining int
}

// NewInsufficientStockError creates a stock error for the given item
func NewInsufficientStockError(itemID string, requested, remaining int) *InsufficientStockError {
	return &InsufficientStockError{
		ItemID:    itemID,
		Requested: requested,
		Remaining: remaining,
	}
}

// Error implements the error interface
func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for item %s: requested %d, remaining %d", e.ItemID, e.Requested, e.Remaining)
}

// HTTPCode returns the HTTP status code
func (e *InsufficientStockError) HTTPCode() int {
	return http.StatusConflict
}

// ErrorCode returns the business error code
func (e *InsufficientStockError) ErrorCode() string {
	return "INSUFFICIENT_STOCK"
}

// Message returns the user-friendly error message
func (e *InsufficientStockError) Message() string {
	return fmt.Sprintf("Only %d units available", e.Remaining)
}

// Details returns detailed error information
func (e *InsufficientStockError) Details() string {
	return fmt.Sprintf("requested=%d remaining=%d", e.Requested, e.Remaining)
}

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
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
