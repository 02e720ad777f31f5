package errors

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error represents an application error carrying the HTTP status to report.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a new Error
func New(code int, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Validation error types
var (
	ErrValidation     = New(http.StatusBadRequest, "Validation error", nil)
	ErrInvalidInput   = New(http.StatusBadRequest, "Invalid input", nil)
	ErrMissingAddress = New(http.StatusUnprocessableEntity, "Address id is required", nil)
	ErrQuantityRange  = New(http.StatusBadRequest, "Quantity must be between 0 and 5", nil)
)

// Not-found error types
var (
	ErrProductNotFound  = New(http.StatusNotFound, "Product not found", nil)
	ErrSkuNotFound      = New(http.StatusNotFound, "Size variant not found", nil)
	ErrCartItemNotFound = New(http.StatusNotFound, "Cart item not found", nil)
	ErrCartEmpty        = New(http.StatusNotFound, "Cart is empty", nil)
	ErrAddressNotFound  = New(http.StatusNotFound, "Address not found", nil)
	ErrOrderNotFound    = New(http.StatusNotFound, "Order not found", nil)
)

// Checkout error types. SignatureMismatch is raised before any mutation;
// StockConflict and TransactionFailure are always paired with a refund attempt.
var (
	ErrSignatureMismatch  = New(http.StatusBadRequest, "Payment signature mismatch", nil)
	ErrStockConflict      = New(http.StatusConflict, "Insufficient stock, refund initiated", nil)
	ErrDuplicateCheckout  = New(http.StatusConflict, "Payment already processed", nil)
	ErrTransactionFailure = New(http.StatusInternalServerError, "Order placement failed, refund attempted", nil)
)

var (
	ErrUnauthorized   = New(http.StatusUnauthorized, "Unauthorized", nil)
	ErrInternalServer = New(http.StatusInternalServerError, "Internal server error", nil)
)

// WithCause returns a copy of e wrapping cause, so the package-level
// sentinels are never mutated.
func WithCause(e *Error, cause error) *Error {
	return &Error{Code: e.Code, Message: e.Message, Err: cause}
}

// Respond writes err as the JSON response. Non-application errors are
// reported as generic 500s without leaking internals.
func Respond(c *gin.Context, err error) {
	if appErr, ok := err.(*Error); ok {
		c.JSON(appErr.Code, gin.H{"error": appErr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": ErrInternalServer.Message})
}
