package common

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Common application errors. Failures are isolated at the smallest unit
// that can absorb them: a collaborator error fails one task, an
// enumeration error fails one job, and neither is ever process-fatal.
var (
	ErrNotFound     = errors.New("resource not found")
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
	ErrInternal     = errors.New("internal error")
	ErrDatabase     = errors.New("database error")
	ErrCollaborator = errors.New("collaborator failure")
	ErrEnumeration  = errors.New("enumeration failure")
)

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// CollaboratorError wraps a fetch/extract/persist failure from an external
// dependency so callers can classify it without string matching.
func CollaboratorError(stage string, cause error) error {
	return NewAppError("COLLABORATOR_ERROR", stage, fmt.Errorf("%w: %w", ErrCollaborator, cause))
}

// EnumerationError wraps a document-listing failure; it is fatal to the one
// job whose enumeration failed.
func EnumerationError(cause error) error {
	return NewAppError("ENUMERATION_ERROR", "listing documents", fmt.Errorf("%w: %w", ErrEnumeration, cause))
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// gRPC error helpers
func InvalidArgumentError(message string) error {
	return status.Error(codes.InvalidArgument, message)
}

func NotFoundError(message string) error {
	return status.Error(codes.NotFound, message)
}

func InternalError(message string) error {
	return status.Error(codes.Internal, message)
}

func UnauthenticatedError(message string) error {
	return status.Error(codes.Unauthenticated, message)
}

func PermissionDeniedError(message string) error {
	return status.Error(codes.PermissionDenied, message)
}

func InvalidArgumentErrorf(format string, args ...interface{}) error {
	return InvalidArgumentError(fmt.Sprintf(format, args...))
}

func InternalErrorf(format string, args ...interface{}) error {
	return InternalError(fmt.Sprintf(format, args...))
}
