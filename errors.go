package censor

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrInvalidPattern indicates an exclude pattern failed to compile.
	ErrInvalidPattern = errors.New("invalid exclude pattern")

	// ErrTooManyPatterns indicates more exclude patterns than the engine accepts.
	ErrTooManyPatterns = errors.New("too many exclude patterns")

	// ErrEmptyMaskValue indicates the mask token was set to an empty string.
	ErrEmptyMaskValue = errors.New("mask value cannot be empty")

	// ErrInvalidFormat indicates an unknown output format.
	ErrInvalidFormat = errors.New("invalid output format")

	// ErrInvalidConfig indicates a serialized configuration could not be decoded.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrNilHandler indicates a type handler registration without a function.
	ErrNilHandler = errors.New("nil type handler")

	// ErrUnknownMasker indicates a MaskType with no built-in masker.
	ErrUnknownMasker = errors.New("unknown masker")

	// ErrMarshal indicates a codec failed to marshal a masked result.
	ErrMarshal = errors.New("marshal failed")
)

// ConfigError represents a processor configuration error.
// It wraps a sentinel error with the offending option and value.
type ConfigError struct {
	Err    error  // Underlying sentinel error (ErrInvalidPattern, etc.)
	Option string // Option that was rejected (e.g. "exclude-patterns")
	Value  string // Offending value, when there is one
	Cause  error  // Original error, e.g. from regexp or yaml
}

func (e *ConfigError) Error() string {
	msg := e.Err.Error()
	if e.Value != "" {
		msg = fmt.Sprintf("%s %q", msg, e.Value)
	}
	if e.Option != "" {
		msg = fmt.Sprintf("%s (option %s)", msg, e.Option)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// newConfigError creates a ConfigError for a rejected option.
func newConfigError(sentinel error, option, value string, cause error) error {
	return &ConfigError{
		Err:    sentinel,
		Option: option,
		Value:  value,
		Cause:  cause,
	}
}

// CodecError represents a marshal error raised by a Codec.
type CodecError struct {
	Err         error  // Underlying sentinel error (ErrMarshal)
	ContentType string // Content type of the failing codec
	Cause       error  // Original error from the codec
}

func (e *CodecError) Error() string {
	msg := e.Err.Error()
	if e.ContentType != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.ContentType)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *CodecError) Unwrap() error {
	return e.Err
}

// newCodecError creates a CodecError for marshal failures.
func newCodecError(sentinel error, contentType string, cause error) error {
	return &CodecError{
		Err:         sentinel,
		ContentType: contentType,
		Cause:       cause,
	}
}
