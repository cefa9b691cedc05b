package blueprint

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrUndefinedView indicates the requested view name has no registered
	// definition.
	ErrUndefinedView = errors.New("undefined view")

	// ErrInvalidRoot indicates the root option is present but not of string
	// kind.
	ErrInvalidRoot = errors.New("invalid root")

	// ErrMetaRequiresRoot indicates the meta option is present without a root.
	ErrMetaRequiresRoot = errors.New("meta requires root")

	// ErrEncode indicates the codec failed to marshal rendered output.
	ErrEncode = errors.New("encode failed")
)

// ViewError represents a view resolution failure.
// It wraps ErrUndefinedView with the view name that was requested.
type ViewError struct {
	Err  error  // Underlying sentinel error
	View string // View name that failed to resolve
}

func (e *ViewError) Error() string {
	return fmt.Sprintf("%s %q", e.Err.Error(), e.View)
}

func (e *ViewError) Unwrap() error {
	return e.Err
}

// OptionError represents an invalid render option combination.
// It wraps a sentinel error with the offending option and value.
type OptionError struct {
	Err    error  // Underlying sentinel error (ErrInvalidRoot, ErrMetaRequiresRoot)
	Option string // Option name ("root", "meta")
	Value  any    // Offending value, if any
}

func (e *OptionError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("%s: option %s has value %v (%T)", e.Err.Error(), e.Option, e.Value, e.Value)
	}
	return fmt.Sprintf("%s: option %s", e.Err.Error(), e.Option)
}

func (e *OptionError) Unwrap() error {
	return e.Err
}

// CodecError represents a marshal error from the configured codec.
type CodecError struct {
	Err   error // Underlying sentinel error (ErrEncode)
	Cause error // Original error from the codec
}

func (e *CodecError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Cause)
	}
	return e.Err.Error()
}

func (e *CodecError) Unwrap() error {
	return e.Err
}

// newViewError creates a ViewError for unresolved view names.
func newViewError(view string) error {
	return &ViewError{Err: ErrUndefinedView, View: view}
}

// newOptionError creates an OptionError for invalid option combinations.
func newOptionError(sentinel error, option string, value any) error {
	return &OptionError{Err: sentinel, Option: option, Value: value}
}

// newCodecError creates a CodecError for marshal failures.
func newCodecError(cause error) error {
	return &CodecError{Err: ErrEncode, Cause: cause}
}
