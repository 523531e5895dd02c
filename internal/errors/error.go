package errors

import (
	"fmt"
	"log/slog"
)

// Category represents the type of error.
type Category string

const (
	CategoryInteraction Category = "interaction"
	CategoryGeometry    Category = "geometry"
	CategoryProps       Category = "props"
	CategoryConfig      Category = "config"
	CategoryAssets      Category = "assets"
	CategoryTransport   Category = "transport"
	CategoryCLI         Category = "cli"
)

// SliderError is a structured error with a registered code, suggestions and documentation.
type SliderError struct {
	// Code is a unique error identifier (e.g., "E201").
	Code string

	// Category is the error type (interaction, geometry, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Example is code showing the correct approach.
	Example string

	// DocURL is a link to documentation about this error.
	DocURL string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *SliderError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *SliderError) Unwrap() error {
	return e.Wrapped
}

// WithSuggestion adds a fix suggestion to the error.
func (e *SliderError) WithSuggestion(s string) *SliderError {
	e.Suggestion = s
	return e
}

// WithExample adds a code example to the error.
func (e *SliderError) WithExample(ex string) *SliderError {
	e.Example = ex
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *SliderError) WithDetail(d string) *SliderError {
	e.Detail = d
	return e
}

// Wrap wraps another error.
func (e *SliderError) Wrap(err error) *SliderError {
	e.Wrapped = err
	return e
}

// LogValue lets slog render the error as a group instead of a flat string.
func (e *SliderError) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("code", e.Code),
		slog.String("category", string(e.Category)),
		slog.String("message", e.Message),
	}
	if e.Detail != "" {
		attrs = append(attrs, slog.String("detail", e.Detail))
	}
	if e.Wrapped != nil {
		attrs = append(attrs, slog.String("cause", e.Wrapped.Error()))
	}
	return slog.GroupValue(attrs...)
}

// New creates a SliderError from a registered error code.
func New(code string) *SliderError {
	template, ok := registry[code]
	if !ok {
		return &SliderError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &SliderError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
		DocURL:   template.DocURL,
	}
}

// Newf creates a new SliderError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *SliderError {
	return &SliderError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a SliderError.
func FromError(err error, code string) *SliderError {
	if err == nil {
		return nil
	}
	if se, ok := err.(*SliderError); ok {
		return se
	}
	return New(code).Wrap(err)
}
