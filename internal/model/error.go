package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string `json:"error"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON        = "INVALID_JSON"
	ErrCodeValidationFailed   = "VALIDATION_FAILED"
	ErrCodeProductNotFound    = "PRODUCT_NOT_FOUND"
	ErrCodeDuplicateSKU       = "DUPLICATE_SKU"
	ErrCodeInvalidQuantity    = "INVALID_QUANTITY"
	ErrCodeInsufficientStock  = "INSUFFICIENT_STOCK"
	ErrCodeInvalidTransaction = "INVALID_TRANSACTION_TYPE"
	ErrCodeUnauthorised       = "UNAUTHORIZED"
	ErrCodeInternalError      = "INTERNAL_ERROR"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrProductNotFound    = NewDomainError(ErrCodeProductNotFound, "Product not found")
	ErrDuplicateSKU       = NewDomainError(ErrCodeDuplicateSKU, "A product with this SKU already exists")
	ErrInvalidQuantity    = NewDomainError(ErrCodeInvalidQuantity, "Quantity delta must be a non-zero integer")
	ErrInsufficientStock  = NewDomainError(ErrCodeInsufficientStock, "Requested quantity exceeds available stock")
	ErrInvalidTransaction = NewDomainError(ErrCodeInvalidTransaction, "Transaction type must be sale, restock or adjustment")
	ErrReasonRequired     = NewDomainError(ErrCodeValidationFailed, "A reason is required for every stock movement")
)
