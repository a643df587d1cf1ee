package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// Client-facing error messages. These strings are part of the HTTP contract.
const (
	MsgInvalidPlan           = "Invalid plan name"
	MsgNotConfigured         = "Payment service is not configured"
	MsgCreateOrderFailed     = "Failed to create order"
	MsgMissingPaymentDetails = "Missing payment details"
	MsgInvalidSignature      = "Invalid signature"
	MsgVerificationFailed    = "Verification failed"
	MsgMethodNotAllowed      = "Method not allowed"
	MsgNotFound              = "Not found"
	MsgInvalidJSON           = "invalid JSON body"
)

// AppError is a structured application error with HTTP status code.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"error"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Common error constructors.

func ErrNotFound(msg string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: msg}
}

func ErrUnauthorized(msg string) *AppError {
	return &AppError{Code: http.StatusUnauthorized, Message: msg}
}

func ErrForbidden(msg string) *AppError {
	return &AppError{Code: http.StatusForbidden, Message: msg}
}

func ErrBadRequest(msg string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: msg}
}

func ErrMethodNotAllowed() *AppError {
	return &AppError{Code: http.StatusMethodNotAllowed, Message: MsgMethodNotAllowed}
}

func ErrInternal(msg string, err error) *AppError {
	return &AppError{Code: http.StatusInternalServerError, Message: msg, Err: err}
}

// AsAppError attempts to extract an AppError from an error chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
