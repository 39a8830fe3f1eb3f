package domain

import (
	"errors"
	"fmt"
)

// Error types with HTTP status codes
type AppError struct {
	Message string
	Code    int
	// Reason is a stable machine readable code
	Reason string
	// Field names the offending payload field, when there is one
	Field string
}

func (e *AppError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Field)
	}
	return e.Message
}

// Is matches any AppError with the same Reason so field-scoped copies still
// compare equal to their sentinel.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Reason == t.Reason
}

// WithField returns a copy of e scoped to field
func (e *AppError) WithField(field string) *AppError {
	c := *e
	c.Field = field
	return &c
}

// WithMessage returns a copy of e with a more specific message
func (e *AppError) WithMessage(message string) *AppError {
	c := *e
	c.Message = message
	return &c
}

// Order lifecycle errors
var (
	ErrMissingVendor = &AppError{
		Message: "vendor does not exist",
		Code:    404, // StatusNotFound
		Reason:  "MISSING_VENDOR",
	}
	ErrForbiddenField = &AppError{
		Message: "field may not be set",
		Code:    400, // StatusBadRequest
		Reason:  "FORBIDDEN_FIELD",
	}
	ErrUnknownField = &AppError{
		Message: "unknown field",
		Code:    400, // StatusBadRequest
		Reason:  "UNKNOWN_FIELD",
	}
	ErrImmutable = &AppError{
		Message: "purchase order is no longer pending and cannot be edited",
		Code:    409, // StatusConflict
		Reason:  "IMMUTABLE",
	}
	ErrInvalidRating = &AppError{
		Message: "quality rating must be a number between 0 and 10",
		Code:    400, // StatusBadRequest
		Reason:  "INVALID_RATING",
	}
	ErrInvalidStatus = &AppError{
		Message: "status must be one of Pending, Completed, Cancelled",
		Code:    400, // StatusBadRequest
		Reason:  "INVALID_STATUS",
	}
	ErrNotAcknowledged = &AppError{
		Message: "purchase order must be acknowledged before its status or quality rating can change",
		Code:    400, // StatusBadRequest
		Reason:  "NOT_ACKNOWLEDGED",
	}
	ErrAlreadyAcknowledged = &AppError{
		Message: "purchase order has already been acknowledged",
		Code:    409, // StatusConflict
		Reason:  "ALREADY_ACKNOWLEDGED",
	}
	ErrMalformedIdentifier = &AppError{
		Message: "stored purchase order number is malformed",
		Code:    500, // StatusInternalServerError
		Reason:  "MALFORMED_IDENTIFIER",
	}
	ErrInvalidTimestamp = &AppError{
		Message: "invalid timestamp",
		Code:    400, // StatusBadRequest
		Reason:  "INVALID_TIMESTAMP",
	}
)

// CRUD errors
var (
	ErrVendorNotFound = &AppError{
		Message: "vendor not found",
		Code:    404, // StatusNotFound
		Reason:  "NOT_FOUND",
	}
	ErrPurchaseOrderNotFound = &AppError{
		Message: "purchase order not found",
		Code:    404, // StatusNotFound
		Reason:  "NOT_FOUND",
	}
	ErrVendorCodeRequired = &AppError{
		Message: "vendor code is required",
		Code:    400, // StatusBadRequest
		Reason:  "VENDOR_CODE_REQUIRED",
	}
	ErrVendorNameRequired = &AppError{
		Message: "vendor name is required",
		Code:    400, // StatusBadRequest
		Reason:  "VENDOR_NAME_REQUIRED",
	}
	ErrVendorCodeAlreadyExists = &AppError{
		Message: "vendor with this code already exists",
		Code:    409, // StatusConflict
		Reason:  "VENDOR_CODE_CONFLICT",
	}
	ErrVendorNameAlreadyExists = &AppError{
		Message: "vendor with this name already exists",
		Code:    409, // StatusConflict
		Reason:  "VENDOR_NAME_CONFLICT",
	}
	ErrInvalidPayload = &AppError{
		Message: "request body must be a JSON object",
		Code:    400, // StatusBadRequest
		Reason:  "INVALID_PAYLOAD",
	}
)

// Standard error types for repositories
var (
	ErrNotFound = errors.New("not found")
)
