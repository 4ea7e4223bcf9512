package youtube

import (
	"errors"
	"fmt"

	"google.golang.org/api/googleapi"
)

var (
	// ErrNotConfigured indicates the client was built without an API key
	ErrNotConfigured = errors.New("youtube client not configured")

	// ErrNotFound indicates the channel or playlist does not exist upstream
	ErrNotFound = errors.New("resource not found on youtube")

	// ErrQuotaExceeded indicates the API quota or rate limit was hit.
	// Distinguished from generic upstream failures so callers can back off.
	ErrQuotaExceeded = errors.New("youtube api quota exceeded")

	// ErrInvalidIdentifier indicates the channel identifier could not be resolved
	ErrInvalidIdentifier = errors.New("invalid channel identifier")
)

// UpstreamError wraps any other provider-side failure, preserving the
// upstream message verbatim for operator diagnosis.
type UpstreamError struct {
	Op      string
	Message string
	Cause   error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("youtube %s: %s", e.Op, e.Message)
}

func (e *UpstreamError) Unwrap() error {
	return e.Cause
}

// mapError converts a googleapi error into the client's error taxonomy
func mapError(op string, err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case 403:
			for _, item := range apiErr.Errors {
				if item.Reason == "quotaExceeded" || item.Reason == "rateLimitExceeded" {
					return fmt.Errorf("%w: %s", ErrQuotaExceeded, apiErr.Message)
				}
			}
		case 404:
			return fmt.Errorf("%w: %s", ErrNotFound, apiErr.Message)
		case 429:
			return fmt.Errorf("%w: %s", ErrQuotaExceeded, apiErr.Message)
		}
		return &UpstreamError{Op: op, Message: apiErr.Message, Cause: err}
	}
	return &UpstreamError{Op: op, Message: err.Error(), Cause: err}
}

// IsQuotaExceeded reports whether err represents upstream throttling
func IsQuotaExceeded(err error) bool {
	return errors.Is(err, ErrQuotaExceeded)
}

// IsNotFound reports whether err represents a missing upstream resource
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
