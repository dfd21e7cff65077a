package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	// ErrBoardNotFound means the given page URL matched none of the caller's
	// boards. It should not happen under correct navigation, but it must be
	// handled rather than assumed away.
	ErrBoardNotFound = errors.New("board not found")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// FetchError represents a failed API call or attachment download: a network
// error, a non-2xx status, or a body of an unexpected shape.
type FetchError struct {
	URL    string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.Status)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// EncodingError represents a failed read of attachment content while
// converting it for storage.
type EncodingError struct {
	Name string
	Err  error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("encode %s: %v", e.Name, e.Err)
}

func (e *EncodingError) Unwrap() error { return e.Err }
