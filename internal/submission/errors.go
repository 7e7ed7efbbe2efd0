package submission

import (
	"errors"
	"fmt"
)

var (
	// ErrBusy is returned when a submission is already in flight.
	ErrBusy = errors.New("submission already in progress")
	// ErrMalformedResult is returned when the analyzer answers without a recommendation.
	ErrMalformedResult = errors.New("analysis result has no recommendation")
	// ErrNoResult is returned when editing the analysis before a result exists.
	ErrNoResult = errors.New("no analysis result")
)

// Error represents a failed submission
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}
