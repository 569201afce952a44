package app

import (
	"errors"
	"strings"
	"testing"
	"time"

	"promptforge/internal/rewrite"
)

func newTestManager(t *testing.T) *InMemorySessionManager {
	t.Helper()
	return NewInMemorySessionManager(ManagerConfig{
		Defaults: rewrite.Options{Objective: rewrite.ObjectivePrecision},
		LogDir:   t.TempDir(),
		MaxAge:   time.Minute,
	})
}

func TestCreateAndGetSession(t *testing.T) {
	manager := newTestManager(t)

	session, err := manager.CreateSession("web")
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	if !strings.HasPrefix(session.ID, "web_") {
		t.Errorf("session ID %q missing mode prefix", session.ID)
	}
	if session.Mode != "web" {
		t.Errorf("session mode = %q, want web", session.Mode)
	}
	if got := session.CurrentOptions().Objective; got != rewrite.ObjectivePrecision {
		t.Errorf("session defaults not applied: objective %q", got)
	}

	got, err := manager.GetSession(session.ID)
	if err != nil {
		t.Fatalf("GetSession: %v", err)
	}
	if got != session {
		t.Error("GetSession returned a different session")
	}
	if n := manager.ActiveSessions(); n != 1 {
		t.Errorf("ActiveSessions = %d, want 1", n)
	}
}

func TestGetSessionMissing(t *testing.T) {
	manager := newTestManager(t)

	_, err := manager.GetSession("web_missing")
	if !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("GetSession error = %v, want ErrSessionNotFound", err)
	}
	var sessionErr *SessionError
	if !errors.As(err, &sessionErr) || sessionErr.SessionID != "web_missing" {
		t.Errorf("error does not carry the session ID: %v", err)
	}
}

func TestCloseSession(t *testing.T) {
	manager := newTestManager(t)

	session, err := manager.CreateSession("cli")
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	if err := manager.CloseSession(session.ID); err != nil {
		t.Fatalf("CloseSession: %v", err)
	}
	if _, err := manager.GetSession(session.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("closed session still reachable: %v", err)
	}
	if err := manager.CloseSession(session.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("second close = %v, want ErrSessionNotFound", err)
	}
}

func TestCleanupExpiredSessions(t *testing.T) {
	manager := newTestManager(t)

	stale, err := manager.CreateSession("web")
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	fresh, err := manager.CreateSession("web")
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	manager.mutex.Lock()
	manager.sessionAge[stale.ID] = time.Now().Add(-time.Hour)
	manager.mutex.Unlock()

	if n := manager.CleanupExpiredSessions(); n != 1 {
		t.Fatalf("CleanupExpiredSessions removed %d, want 1", n)
	}
	if _, err := manager.GetSession(stale.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("stale session survived cleanup")
	}
	if _, err := manager.GetSession(fresh.ID); err != nil {
		t.Errorf("fresh session removed by cleanup: %v", err)
	}
}

func TestGenerateSessionID(t *testing.T) {
	a := GenerateSessionID("cli")
	b := GenerateSessionID("cli")

	if !strings.HasPrefix(a, "cli_") {
		t.Errorf("ID %q missing mode prefix", a)
	}
	if a == b {
		t.Errorf("consecutive IDs collided: %q", a)
	}
}
