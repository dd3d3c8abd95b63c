package decoder

import (
	"errors"
	"fmt"
)

// ErrorType represents the category of a decode-pipeline error.
type ErrorType int

const (
	// ErrTypeSource indicates the capture source could not be opened
	// or read. This is the only fatal class: per-record problems are
	// reported inline in the decoded output instead.
	ErrTypeSource ErrorType = iota
	// ErrTypeTables indicates the decode tables could not be loaded.
	ErrTypeTables
	// ErrTypeClosed indicates input was fed to a closed session.
	ErrTypeClosed
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeSource:
		return "Source Error"
	case ErrTypeTables:
		return "Table Error"
	case ErrTypeClosed:
		return "Session Closed"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// SourceError wraps a failure of the decode pipeline's collaborators.
type SourceError struct {
	Type    ErrorType
	Path    string // capture file or feed URL, when known
	Message string
	Err     error
}

// Error implements the error interface
func (e *SourceError) Error() string {
	msg := e.Message
	if e.Path != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.Path)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, msg)
}

// Unwrap returns the underlying error for error chain inspection
func (e *SourceError) Unwrap() error {
	return e.Err
}

// NewSourceError creates a fatal source-unavailable error.
func NewSourceError(path string, err error) *SourceError {
	return &SourceError{
		Type:    ErrTypeSource,
		Path:    path,
		Message: "cannot read capture source",
		Err:     err,
	}
}

// NewTableError creates a table-load error.
func NewTableError(path string, err error) *SourceError {
	return &SourceError{
		Type:    ErrTypeTables,
		Path:    path,
		Message: "cannot load decode tables",
		Err:     err,
	}
}

// IsSourceError checks if an error is a fatal source error.
func IsSourceError(err error) bool {
	var se *SourceError
	return errors.As(err, &se) && se.Type == ErrTypeSource
}

// errClosed is returned by Feed after Close.
var errClosed = &SourceError{Type: ErrTypeClosed, Message: "session is closed"}
