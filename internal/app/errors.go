package app

import (
	"errors"
	"fmt"
)

// ErrSessionNotFound is returned when a session ID has no live session,
// usually because it expired or the server restarted.
var ErrSessionNotFound = errors.New("session not found")

// SessionError represents session-related errors
type SessionError struct {
	SessionID string
	Operation string
	Cause     error
}

func (e *SessionError) Error() string {
	return fmt.Sprintf("session error [%s] during %s: %v", e.SessionID, e.Operation, e.Cause)
}

func (e *SessionError) Unwrap() error {
	return e.Cause
}

// NewSessionError creates a new session error
func NewSessionError(sessionID, operation string, cause error) *SessionError {
	return &SessionError{
		SessionID: sessionID,
		Operation: operation,
		Cause:     cause,
	}
}
