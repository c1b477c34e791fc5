// Package tserr provides standardized error handling for tabsynth.
// All errors have stable, machine-readable codes, structured context, and proper wrapping.
package tserr

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Code represents a stable, machine-readable error code.
// Format: E{category}{number} where category is 1-9 and number is 001-999.
type Code string

// Error codes organized by category.
const (
	// Schema errors (E1xxx) - structural violations in column specs
	ErrSchemaInvalid   Code = "E1001" // Column spec violates a structural invariant
	ErrSchemaDuplicate Code = "E1002" // Column with same name already declared
	ErrSchemaEmpty     Code = "E1003" // Schema has no columns
	ErrRowCount        Code = "E1004" // Requested row count is not positive

	// Prompt errors (E2xxx) - problems parsing the textual prompt grammar
	ErrPromptSyntax    Code = "E2001" // Prompt is malformed
	ErrPromptColumn    Code = "E2002" // A column definition failed to parse
	ErrPromptType      Code = "E2003" // Unknown or unsupported column type
	ErrPromptRowCount  Code = "E2004" // Row count section has no digits
	ErrPromptSeparator Code = "E2005" // Missing "columns:" separator

	// Augmentation errors (E3xxx) - problems growing an existing dataset
	ErrAugmentInvalid Code = "E3001" // Invalid augmentation request
	ErrAugmentEmpty   Code = "E3002" // Dataset has no columns
	ErrAugmentUnfit   Code = "E3003" // Column has no observed values to fit
	ErrStrategy       Code = "E3004" // Unknown strategy or strategy for unknown column

	// Source/sink errors (E4xxx) - dataset I/O collaborators
	ErrSourceRead  Code = "E4001" // Reading a dataset failed
	ErrSinkWrite   Code = "E4002" // Writing a dataset failed
	ErrSinkDialect Code = "E4003" // Unsupported output format

	// Compute errors (E5xxx) - computed column expression evaluation
	ErrComputeEval Code = "E5001" // Expression evaluation failed
	ErrComputeKind Code = "E5002" // Expression result has an unsupported kind

	// Internal errors (E9xxx) - unexpected internal errors
	ErrInternal Code = "E9001" // Internal error
)

// Error is the standard error type for tabsynth.
// It provides structured error information with codes, context, and wrapping support.
type Error struct {
	code    Code           // Machine-readable error code
	message string         // Human-readable error message
	context map[string]any // Structured context data
	cause   error          // Wrapped underlying error
}

// Error returns the formatted error string.
// Format:
//
//	[E2002] missing numeric range
//	  column: age
//	  fragment: age int
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("[%s] %s", e.code, e.message))

	// Write context in sorted order for deterministic output
	if len(e.context) > 0 {
		keys := make([]string, 0, len(e.context))
		for k := range e.context {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			b.WriteString(fmt.Sprintf("\n  %s: %v", k, e.context[k]))
		}
	}

	if e.cause != nil {
		b.WriteString(fmt.Sprintf("\n  cause: %v", e.cause))
	}

	return b.String()
}

// Unwrap returns the underlying cause error for errors.Unwrap compatibility.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether the target error matches this error.
// It matches if target is an *Error with the same code.
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}

	var targetErr *Error
	if errors.As(target, &targetErr) {
		return e.code == targetErr.code
	}

	return false
}

// GetCode returns the error code.
func (e *Error) GetCode() Code {
	return e.code
}

// GetMessage returns the error message.
func (e *Error) GetMessage() string {
	return e.message
}

// GetContext returns the error context map.
func (e *Error) GetContext() map[string]any {
	return e.context
}

// With adds a key-value pair to the error context.
// Returns the error for method chaining.
func (e *Error) With(key string, value any) *Error {
	if e.context == nil {
		e.context = make(map[string]any)
	}
	e.context[key] = value
	return e
}

// WithColumn adds column context to the error.
func (e *Error) WithColumn(name string) *Error {
	return e.With("column", name)
}

// WithFragment adds the offending prompt fragment to the error.
func (e *Error) WithFragment(fragment string) *Error {
	return e.With("fragment", fragment)
}

// WithHelp adds a help suggestion to the error (displayed as "help: ...").
func (e *Error) WithHelp(help string) *Error {
	helps, _ := e.context["helps"].([]string)
	helps = append(helps, help)
	return e.With("helps", helps)
}

// Helps returns all help suggestions attached to this error.
func (e *Error) Helps() []string {
	helps, _ := e.context["helps"].([]string)
	return helps
}

// New creates a new Error with the given code and message.
func New(code Code, msg string) *Error {
	return &Error{
		code:    code,
		message: msg,
		context: make(map[string]any),
	}
}

// Newf creates a new Error with the given code and formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{
		code:    code,
		message: fmt.Sprintf(format, args...),
		context: make(map[string]any),
	}
}

// Wrap creates a new Error that wraps an existing error.
func Wrap(code Code, err error, msg string) *Error {
	if err == nil {
		return New(code, msg)
	}
	return &Error{
		code:    code,
		message: msg,
		context: make(map[string]any),
		cause:   err,
	}
}

// Wrapf creates a new Error that wraps an existing error with a formatted message.
func Wrapf(code Code, err error, format string, args ...any) *Error {
	return Wrap(code, err, fmt.Sprintf(format, args...))
}

// GetErrorCode extracts the error code from an error chain.
// Returns empty string if no code is found.
func GetErrorCode(err error) Code {
	if err == nil {
		return ""
	}

	var terr *Error
	if errors.As(err, &terr) {
		return terr.code
	}

	return ""
}

// Is checks if an error has the specified code.
func Is(err error, code Code) bool {
	return GetErrorCode(err) == code
}

// HasCode checks if an error has any error code.
func HasCode(err error) bool {
	return GetErrorCode(err) != ""
}

// IsSchema reports whether err is any schema error (E1xxx).
func IsSchema(err error) bool {
	return strings.HasPrefix(string(GetErrorCode(err)), "E1")
}

// IsPrompt reports whether err is any prompt syntax error (E2xxx).
func IsPrompt(err error) bool {
	return strings.HasPrefix(string(GetErrorCode(err)), "E2")
}

// IsAugment reports whether err is any augmentation error (E3xxx).
func IsAugment(err error) bool {
	return strings.HasPrefix(string(GetErrorCode(err)), "E3")
}
