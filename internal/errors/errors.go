package errors

import "errors"

// Sentinel errors for common failure modes.
var (
	ErrMalformedBody    = errors.New("JSON data is malformed")
	ErrInvalidDraft     = errors.New("invalid request")
	ErrConnectionFailed = errors.New("connection failed")
	ErrTimeout          = errors.New("request timed out")
)

// ValidationError represents a field validation failure.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// Unwrap lets errors.Is match ErrInvalidDraft.
func (e ValidationError) Unwrap() error {
	return ErrInvalidDraft
}
