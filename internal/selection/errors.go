// Package selection provides the pure rules behind bounded multi-select groups
// and the ranked priority list.
package selection

import (
	"errors"
	"fmt"
)

// ErrSelectionLimit is returned when a bounded group is already full.
var ErrSelectionLimit = errors.New("selection limit reached")

// Error represents an error that occurs while applying a selection rule
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
