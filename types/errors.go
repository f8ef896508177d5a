/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package types

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by the core packages and their callers.
var (
	// ErrInvalidArgument marks a call rejected because a required argument
	// is missing or outside its allowed values.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrPathEscape marks a scan root that resolves outside the working directory.
	ErrPathEscape = errors.New("path escapes working directory")

	// ErrUnknownOperation is raised by transports for tool or command names
	// the core does not define.
	ErrUnknownOperation = errors.New("unknown operation")
)

// Error codes carried by MCPError.
const (
	CodeInvalidArgument  = "INVALID_ARGUMENT"
	CodePathEscape       = "PATH_ESCAPE"
	CodeUnknownOperation = "UNKNOWN_OPERATION"
	CodeInternal         = "INTERNAL"
)

// ArgumentError names the argument that failed validation.
type ArgumentError struct {
	Field   string
	Message string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrInvalidArgument, e.Field, e.Message)
}

// Is makes errors.Is(err, ErrInvalidArgument) match.
func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// NewArgumentError creates an ArgumentError for field.
func NewArgumentError(field, message string) *ArgumentError {
	return &ArgumentError{Field: field, Message: message}
}

// PathEscapeError is returned when a requested directory is not inside Base.
type PathEscapeError struct {
	Requested string
	Base      string
}

func (e *PathEscapeError) Error() string {
	return fmt.Sprintf("rootDir %q must stay within the working directory %s", e.Requested, e.Base)
}

// Is makes errors.Is(err, ErrPathEscape) match.
func (e *PathEscapeError) Is(target error) bool {
	return target == ErrPathEscape
}

// MCPError provides structured error information for MCP responses
type MCPError struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

func (e *MCPError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewMCPError creates a new structured MCP error
func NewMCPError(code string, message string, details map[string]any) *MCPError {
	return &MCPError{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// ToMCPError classifies err into one of the MCP error codes.
func ToMCPError(err error) *MCPError {
	var argErr *ArgumentError
	var pathErr *PathEscapeError
	switch {
	case errors.As(err, &argErr):
		return NewMCPError(CodeInvalidArgument, err.Error(), map[string]any{"field": argErr.Field})
	case errors.As(err, &pathErr):
		return NewMCPError(CodePathEscape, err.Error(), map[string]any{"rootDir": pathErr.Requested})
	case errors.Is(err, ErrInvalidArgument):
		return NewMCPError(CodeInvalidArgument, err.Error(), nil)
	case errors.Is(err, ErrPathEscape):
		return NewMCPError(CodePathEscape, err.Error(), nil)
	case errors.Is(err, ErrUnknownOperation):
		return NewMCPError(CodeUnknownOperation, err.Error(), nil)
	default:
		return NewMCPError(CodeInternal, err.Error(), nil)
	}
}
