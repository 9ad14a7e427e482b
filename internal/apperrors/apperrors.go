// Package apperrors defines the application error taxonomy. Every error
// carries a stable machine code for client branching and the HTTP status
// it maps to at the transport boundary.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

type Error struct {
	Code    string
	Message string
	Status  int
}

func (e *Error) Error() string { return e.Message }

func New(status int, code, format string, args ...any) *Error {
	return &Error{Status: status, Code: code, Message: fmt.Sprintf(format, args...)}
}

func Validation(format string, args ...any) *Error {
	return New(http.StatusBadRequest, "VALIDATION_ERROR", format, args...)
}

func MissingField(field string) *Error {
	return New(http.StatusBadRequest, "MISSING_FIELD", "%s is required", field)
}

func InvalidVehicleType(t string) *Error {
	return New(http.StatusBadRequest, "INVALID_VEHICLE_TYPE", "invalid vehicle type: %s", t)
}

func InvalidNumber(field string) *Error {
	return New(http.StatusBadRequest, "INVALID_NUMBER", "%s must be an integer", field)
}

func PartnerNotFound(id uint) *Error {
	return New(http.StatusBadRequest, "PARTNER_NOT_FOUND", "partner %d does not exist", id)
}

func DuplicateRegistration(reg string) *Error {
	return New(http.StatusConflict, "DUPLICATE_REGISTRATION", "registration number %s already exists", reg)
}

func DuplicateEmail(email string) *Error {
	return New(http.StatusConflict, "DUPLICATE_EMAIL", "email %s already registered", email)
}

func DuplicateCode(code string) *Error {
	return New(http.StatusConflict, "DUPLICATE_CODE", "coupon code %s already exists", code)
}

func NotFound(entity string) *Error {
	return New(http.StatusNotFound, "NOT_FOUND", "%s not found", entity)
}

func Unauthorized(msg string) *Error {
	return New(http.StatusUnauthorized, "UNAUTHORIZED", "%s", msg)
}

func Forbidden(msg string) *Error {
	return New(http.StatusForbidden, "FORBIDDEN", "%s", msg)
}

// Persistence deliberately hides the store error from clients.
func Persistence() *Error {
	return New(http.StatusInternalServerError, "PERSISTENCE_ERROR", "storage failure")
}

// From extracts the taxonomy error, or falls back to a generic 500.
func From(err error) *Error {
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return Persistence()
}
