// Copyright Berytech and each contributor.
// SPDX-License-Identifier: MIT

package domain

import "errors"

// ErrorType represents the semantic category of an error
type ErrorType int

const (
	ErrorTypeValidation     ErrorType = iota // Input validation errors (400 Bad Request)
	ErrorTypeInvalidDate                     // Row date column unparsable; the row is skipped
	ErrorTypeProvisioning                    // External meeting creation failed; no write-back happened
	ErrorTypeInviteDispatch                  // Invite dispatch failed after write-back committed
	ErrorTypeSessionExpired                  // Commit referenced an unknown, consumed or expired session
	ErrorTypeInternal                        // Internal errors (500 Internal Server Error)
)

// DomainError represents an error with semantic type information
type DomainError struct {
	Type    ErrorType
	Message string
	Err     error // underlying error for wrapping
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// GetErrorType returns the semantic type of an error
func GetErrorType(err error) ErrorType {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Type
	}
	return ErrorTypeInternal // default fallback
}

// Error constructors for different types
func NewValidationError(message string, err ...error) *DomainError {
	return &DomainError{Type: ErrorTypeValidation, Message: message, Err: errors.Join(err...)}
}

func NewInvalidDateError(message string, err ...error) *DomainError {
	return &DomainError{Type: ErrorTypeInvalidDate, Message: message, Err: errors.Join(err...)}
}

func NewProvisioningError(message string, err ...error) *DomainError {
	return &DomainError{Type: ErrorTypeProvisioning, Message: message, Err: errors.Join(err...)}
}

func NewInviteDispatchError(message string, err ...error) *DomainError {
	return &DomainError{Type: ErrorTypeInviteDispatch, Message: message, Err: errors.Join(err...)}
}

func NewSessionExpiredError(message string, err ...error) *DomainError {
	return &DomainError{Type: ErrorTypeSessionExpired, Message: message, Err: errors.Join(err...)}
}

func NewInternalError(message string, err ...error) *DomainError {
	return &DomainError{Type: ErrorTypeInternal, Message: message, Err: errors.Join(err...)}
}
