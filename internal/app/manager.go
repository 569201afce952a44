package app

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"promptforge/internal/rewrite"
)

// SessionManager handles creation and lifecycle of rewrite sessions
type SessionManager interface {
	CreateSession(mode string) (*RewriteSession, error)
	GetSession(sessionID string) (*RewriteSession, error)
	CloseSession(sessionID string) error
	CleanupExpiredSessions() int
	ActiveSessions() int
}

// ManagerConfig holds the knobs shared by every session a manager creates
type ManagerConfig struct {
	Defaults   rewrite.Options
	LogDir     string
	KeepRecent int
	MaxAge     time.Duration
	Recorder   Recorder // optional, nil disables persistence
}

// InMemorySessionManager implements SessionManager with in-memory storage
type InMemorySessionManager struct {
	sessions   map[string]*RewriteSession
	sessionAge map[string]time.Time
	mutex      sync.RWMutex
	config     ManagerConfig
}

// NewInMemorySessionManager creates a new session manager
func NewInMemorySessionManager(config ManagerConfig) *InMemorySessionManager {
	return &InMemorySessionManager{
		sessions:   make(map[string]*RewriteSession),
		sessionAge: make(map[string]time.Time),
		config:     config,
	}
}

// CreateSession creates a new rewrite session for the given mode
func (sm *InMemorySessionManager) CreateSession(mode string) (*RewriteSession, error) {
	sessionID := GenerateSessionID(mode)

	session, err := NewRewriteSession(SessionConfig{
		ID:         sessionID,
		Mode:       mode,
		Defaults:   sm.config.Defaults,
		LogDir:     sm.config.LogDir,
		KeepRecent: sm.config.KeepRecent,
		Recorder:   sm.config.Recorder,
	})
	if err != nil {
		return nil, NewSessionError(sessionID, "create", err)
	}

	sm.mutex.Lock()
	sm.sessions[sessionID] = session
	sm.sessionAge[sessionID] = time.Now()
	sm.mutex.Unlock()

	return session, nil
}

// GetSession retrieves an existing session
func (sm *InMemorySessionManager) GetSession(sessionID string) (*RewriteSession, error) {
	sm.mutex.RLock()
	session, exists := sm.sessions[sessionID]
	sm.mutex.RUnlock()

	if !exists {
		return nil, NewSessionError(sessionID, "get", ErrSessionNotFound)
	}

	// Update last access time
	sm.mutex.Lock()
	sm.sessionAge[sessionID] = time.Now()
	sm.mutex.Unlock()

	return session, nil
}

// CloseSession closes and removes a session
func (sm *InMemorySessionManager) CloseSession(sessionID string) error {
	sm.mutex.Lock()
	defer sm.mutex.Unlock()

	session, exists := sm.sessions[sessionID]
	if !exists {
		return NewSessionError(sessionID, "close", ErrSessionNotFound)
	}

	if err := session.Close(); err != nil {
		return NewSessionError(sessionID, "close", err)
	}

	delete(sm.sessions, sessionID)
	delete(sm.sessionAge, sessionID)
	return nil
}

// CleanupExpiredSessions removes sessions idle longer than MaxAge.
// A zero or negative MaxAge disables expiry.
func (sm *InMemorySessionManager) CleanupExpiredSessions() int {
	if sm.config.MaxAge <= 0 {
		return 0
	}

	sm.mutex.Lock()
	defer sm.mutex.Unlock()

	now := time.Now()
	var expired []string

	for sessionID, lastAccess := range sm.sessionAge {
		if now.Sub(lastAccess) > sm.config.MaxAge {
			expired = append(expired, sessionID)
		}
	}

	for _, sessionID := range expired {
		if session, exists := sm.sessions[sessionID]; exists {
			session.Close() // Best effort cleanup
		}
		delete(sm.sessions, sessionID)
		delete(sm.sessionAge, sessionID)
	}

	return len(expired)
}

// ActiveSessions reports how many sessions are currently live.
func (sm *InMemorySessionManager) ActiveSessions() int {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()
	return len(sm.sessions)
}

// GenerateSessionID creates a unique session ID scoped to the given mode
func GenerateSessionID(mode string) string {
	return fmt.Sprintf("%s_%s", mode, uuid.NewString())
}
