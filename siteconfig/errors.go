package siteconfig

import (
	"errors"
	"fmt"
	"strings"
)

// InvalidConfigError is returned when a required field is missing or a
// field has a value that cannot be used.
type InvalidConfigError struct {
	// Field is the declaration path, e.g. "siteURL" or "extensions[2].options".
	Field string
	Value any

	Reason string
	Err    error
}

func (e *InvalidConfigError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "invalid site config: %s", e.Field)
	if e.Value != nil {
		fmt.Fprintf(&sb, " (%#v)", e.Value)
	}
	if e.Reason != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Reason)
	}
	if e.Err != nil {
		fmt.Fprintf(&sb, ": %s", e.Err)
	}
	return sb.String()
}

func (e *InvalidConfigError) Unwrap() error {
	return e.Err
}

// UnknownExtensionError is returned when an extension identifier is not
// known to the host environment.
type UnknownExtensionError struct {
	Name  string
	Index int

	// Known lists the identifiers that would have been accepted.
	Known []string
}

func (e *UnknownExtensionError) Error() string {
	return fmt.Sprintf("unknown extension %q at extensions[%d], known extensions are: %s", e.Name, e.Index, strings.Join(e.Known, ", "))
}

// IsInvalidConfig reports whether err is or wraps an InvalidConfigError.
func IsInvalidConfig(err error) bool {
	var e *InvalidConfigError
	return errors.As(err, &e)
}

// IsUnknownExtension reports whether err is or wraps an UnknownExtensionError.
func IsUnknownExtension(err error) bool {
	var e *UnknownExtensionError
	return errors.As(err, &e)
}

func invalid(field string, value any, reason string) *InvalidConfigError {
	return &InvalidConfigError{Field: field, Value: value, Reason: reason}
}

func invalidErr(field string, value any, err error) *InvalidConfigError {
	return &InvalidConfigError{Field: field, Value: value, Err: err}
}
