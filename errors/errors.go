// Package errors provides error types and handling for Uploadcare API operations.
package errors

import (
	"errors"
	"fmt"
)

// Error represents an API operation error with context about the operation that failed.
// It wraps the underlying transport or decoding error with additional context
// for better debugging.
type Error struct {
	// Op is the operation that failed (e.g., "upload", "multipartStart", "uploadPart")
	Op string

	// URL is the request URL involved in the failure (if applicable)
	URL string

	// FileID is the server-side file or session identifier (if applicable)
	FileID string

	// Err is the underlying error from the transport, codec, or other source
	Err error
}

// Error implements the error interface by providing a formatted error message.
func (e *Error) Error() string {
	if e.URL != "" && e.FileID != "" {
		return fmt.Sprintf("ucare.%s %s %s: %v", e.Op, e.FileID, e.URL, e.Err)
	}
	if e.URL != "" {
		return fmt.Sprintf("ucare.%s %s: %v", e.Op, e.URL, e.Err)
	}
	if e.FileID != "" {
		return fmt.Sprintf("ucare.%s file %s: %v", e.Op, e.FileID, e.Err)
	}
	return fmt.Sprintf("ucare.%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for error chaining support.
func (e *Error) Unwrap() error {
	return e.Err
}

// WithURL adds request URL context to an existing error.
func (e *Error) WithURL(url string) *Error {
	e.URL = url
	return e
}

// WithFileID adds file or session identifier context to an existing error.
func (e *Error) WithFileID(id string) *Error {
	e.FileID = id
	return e
}

// WithMessage wraps the underlying error with a custom message.
func (e *Error) WithMessage(message string) *Error {
	e.Err = fmt.Errorf("%s: %w", message, e.Err)
	return e
}

// NewError creates a new Error with the given operation and underlying error.
func NewError(op string, err error) *Error {
	return &Error{
		Op:  op,
		Err: err,
	}
}

// NewInvalidInputError creates a new Error for a caller-supplied value that
// cannot be used, keeping both the ErrInvalidInput sentinel and the underlying
// cause in the chain.
func NewInvalidInputError(op string, cause error) *Error {
	return &Error{
		Op:  op,
		Err: fmt.Errorf("%w: %w", ErrInvalidInput, cause),
	}
}

// NewTransportError creates a new Error for an HTTP-layer failure, keeping both
// the ErrTransport sentinel and the underlying cause in the chain.
func NewTransportError(op, url string, cause error) *Error {
	return &Error{
		Op:  op,
		URL: url,
		Err: fmt.Errorf("%w: %w", ErrTransport, cause),
	}
}

// NewMalformedResponseError creates a new Error for a response body that does not
// decode to the expected shape.
func NewMalformedResponseError(op string, cause error) *Error {
	return &Error{
		Op:  op,
		Err: fmt.Errorf("%w: %w", ErrMalformedResponse, cause),
	}
}

// Sentinel errors for common upload operation failures.
// These can be used with errors.Is() for error checking.
var (
	// ErrInvalidInput indicates that the provided input is invalid
	ErrInvalidInput = errors.New("ucare: invalid input")

	// ErrTransport indicates an HTTP-layer failure (connection, timeout,
	// or a protocol-level HTTP error status)
	ErrTransport = errors.New("ucare: upload transport failure")

	// ErrMalformedResponse indicates a server response that does not decode
	// to the expected shape or is missing a required key
	ErrMalformedResponse = errors.New("ucare: malformed server response")

	// ErrEmptySession indicates a multipart start response without a session
	// identifier or signed part list
	ErrEmptySession = errors.New("ucare: empty multipart session")

	// ErrMissingSecretKey indicates that a REST operation was attempted
	// without a configured secret key
	ErrMissingSecretKey = errors.New("ucare: secret key is required")
)

// IsInvalidInput checks if an error indicates invalid input.
// This is a convenience function that handles both sentinel errors and wrapped errors.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsTransport checks if an error indicates an HTTP-layer failure.
// This is a convenience function that handles both sentinel errors and wrapped errors.
func IsTransport(err error) bool {
	return errors.Is(err, ErrTransport)
}

// IsMalformedResponse checks if an error indicates an undecodable server response.
// This is a convenience function that handles both sentinel errors and wrapped errors.
func IsMalformedResponse(err error) bool {
	return errors.Is(err, ErrMalformedResponse)
}
