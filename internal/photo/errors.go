// Package photo accepts profile picture uploads and publishes them to the editing store.
package photo

import "fmt"

// Rejection reasons.
const (
	ReasonTooLarge        = "file_too_large"
	ReasonUnsupportedType = "unsupported_type"
	ReasonEmpty           = "empty_file"
)

// RejectedError is returned when an upload fails validation. Message is
// safe to show to the user; nothing has been dispatched.
type RejectedError struct {
	Reason  string
	Message string
	Cause   error
}

func (e *RejectedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("photo rejected (%s): %s: %v", e.Reason, e.Message, e.Cause)
	}
	return fmt.Sprintf("photo rejected (%s): %s", e.Reason, e.Message)
}

func (e *RejectedError) Unwrap() error {
	return e.Cause
}

// NewTooLargeError reports an upload over maxBytes.
func NewTooLargeError(maxBytes int64, cause error) *RejectedError {
	return &RejectedError{
		Reason:  ReasonTooLarge,
		Message: fmt.Sprintf("File size must be less than %s", humanSize(maxBytes)),
		Cause:   cause,
	}
}
