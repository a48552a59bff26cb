package errors

import (
	"context"
	"errors"
)

// ErrorSeverity indicates the severity of an error for UI presentation.
type ErrorSeverity int

const (
	SeverityInfo    ErrorSeverity = iota // User should know, not blocking
	SeverityWarning                      // Degraded functionality
	SeverityError                        // Operation failed, can retry
	SeverityFatal                        // Application must exit
)

// UIError wraps an error with UI-friendly presentation metadata.
type UIError struct {
	Err      error
	Severity ErrorSeverity
	Title    string   // Short user-facing title
	Message  string   // Detailed user-facing message
	Recovery []string // Suggested actions (bullet points)
	Details  string   // Technical details (collapsed by default)
}

func (e UIError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Title
}

// Unwrap returns the underlying error.
func (e UIError) Unwrap() error {
	return e.Err
}

// ClassifyError converts an error raised before or during a submission into
// a UIError with a title, message and recovery suggestions.
func ClassifyError(err error) *UIError {
	if err == nil {
		return nil
	}

	var uiErr *UIError
	if errors.As(err, &uiErr) {
		return uiErr
	}

	switch {
	case errors.Is(err, ErrMalformedBody):
		return &UIError{
			Err:      err,
			Severity: SeverityWarning,
			Title:    "Invalid Body",
			Message:  "JSON data is malformed",
			Recovery: []string{"Fix the JSON in the body editor", "Clear the body to send no payload"},
			Details:  err.Error(),
		}

	case errors.Is(err, context.Canceled):
		return &UIError{
			Err:      err,
			Severity: SeverityInfo,
			Title:    "Request Cancelled",
			Message:  "The request was cancelled.",
			Recovery: []string{},
		}
	}

	var validationErr ValidationError
	if errors.As(err, &validationErr) {
		return &UIError{
			Err:      err,
			Severity: SeverityError,
			Title:    "Validation Error",
			Message:  validationErr.Message,
			Recovery: []string{"Correct the field value and try again"},
			Details:  validationErr.Error(),
		}
	}

	if transportErr := ClassifyTransportError(err); transportErr != nil {
		return transportErr
	}

	return &UIError{
		Err:      err,
		Severity: SeverityError,
		Title:    "Unexpected Error",
		Message:  "An unexpected error occurred.",
		Recovery: []string{"Try again"},
		Details:  err.Error(),
	}
}
