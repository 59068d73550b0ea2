package chaincli

import (
	"strings"

	"github.com/napalu/chaincli/i18n"
)

// ParseError is returned by Parser.Parse for every parse-time failure. It wraps exactly one translatable error from
// package errs, so errors.Is(err, errs.ErrMalformedCommand) and friends work on it, and carries the details of the
// failure for callers using errors.As.
type ParseError struct {
	// Command is the path of the resolved command
	Command []string
	// Argument names the offending argument, if any
	Argument string
	// Input is the offending raw token or value, if any
	Input string
	// TargetType is the type name the value failed to convert to
	TargetType string
	// Group names the violated argument group
	Group string

	err i18n.TranslatableError
}

// Error returns the translated message of the wrapped error
func (e *ParseError) Error() string {
	return e.err.Error()
}

// Unwrap returns the wrapped translatable error
func (e *ParseError) Unwrap() error {
	return e.err
}

// Key returns the translation key of the wrapped error
func (e *ParseError) Key() string {
	return e.err.Key()
}

// CommandPath returns Command joined for display
func (e *ParseError) CommandPath() string {
	return strings.Join(e.Command, pathSep)
}
