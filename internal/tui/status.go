package tui

import (
	"sync"

	"github.com/jonathan/pathfinder/internal/submission"
)

// Status is the notification line under the page. It implements
// submission.Notifier and is safe to use from the submit goroutine.
type Status struct {
	mu   sync.Mutex
	kind submission.Kind
	msg  string
}

// NewStatus returns an empty status line.
func NewStatus() *Status {
	return &Status{}
}

// Notify replaces the current message.
func (s *Status) Notify(kind submission.Kind, msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.kind = kind
	s.msg = msg
}

// Message returns the current message and its kind.
func (s *Status) Message() (submission.Kind, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.kind, s.msg
}

// Clear drops the current message.
func (s *Status) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.msg = ""
}
