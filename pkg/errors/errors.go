package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrInvalidSpec is matched by every InvalidSpecError via errors.Is.
var ErrInvalidSpec = stderrors.New("invalid spec")

// InvalidSpecError reports a malformed grid or row specification. It is a
// programming error: the offending row must not be rendered.
type InvalidSpecError struct {
	Field   string
	Value   any
	Message string
	Err     error
}

// NewInvalidSpecError constructs an InvalidSpecError.
func NewInvalidSpecError(field string, value any, message string) error {
	return &InvalidSpecError{Field: field, Value: value, Message: message}
}

// WrapInvalidSpec constructs an InvalidSpecError around an underlying cause.
func WrapInvalidSpec(field, message string, err error) error {
	return &InvalidSpecError{Field: field, Message: message, Err: err}
}

func (e *InvalidSpecError) Error() string {
	if e == nil {
		return ""
	}
	switch {
	case e.Field != "" && e.Value != nil:
		return fmt.Sprintf("invalid spec: %s=%v: %s", e.Field, e.Value, e.Message)
	case e.Field != "":
		return fmt.Sprintf("invalid spec: %s: %s", e.Field, e.Message)
	default:
		return fmt.Sprintf("invalid spec: %s", e.Message)
	}
}

// Is reports whether target is ErrInvalidSpec.
func (e *InvalidSpecError) Is(target error) bool {
	return target == ErrInvalidSpec
}

// Unwrap exposes the underlying error.
func (e *InvalidSpecError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ParseError represents a layout document decoding failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures layout document validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
