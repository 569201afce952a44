// Package history persists rewrite outcomes and session preferences in a
// local SQLite database so the web and CLI modes can list past results.
package history

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"promptforge/internal/rewrite"
)

// ErrRecordNotFound reports a lookup for a record ID that was never stored.
var ErrRecordNotFound = errors.New("record not found")

// Record represents one persisted rewrite outcome
type Record struct {
	ID        string
	SessionID string
	RawPrompt string
	Result    rewrite.Result
	Explored  bool
	CreatedAt time.Time
}

// Store handles persistence of rewrite records and preferences using SQLite
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// NewStore creates a new SQLite-backed history store at the given path
func NewStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set WAL mode: %w", err)
	}

	s := &Store{db: db}

	if err := s.init(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return s, nil
}

// init creates the necessary tables if they don't exist
func (s *Store) init() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS records (
			id          TEXT PRIMARY KEY,
			session_id  TEXT NOT NULL,
			raw_prompt  TEXT NOT NULL,
			result      TEXT NOT NULL,
			explored    INTEGER NOT NULL DEFAULT 0,
			created_at  TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS preferences (
			session_id  TEXT NOT NULL,
			key         TEXT NOT NULL,
			value       TEXT NOT NULL,
			updated_at  TEXT NOT NULL,
			PRIMARY KEY (session_id, key)
		);

		CREATE INDEX IF NOT EXISTS idx_records_session ON records(session_id, created_at);
	`)
	return err
}

// SaveRecord persists one rewrite outcome and returns the stored record
func (s *Store) SaveRecord(sessionID, rawPrompt string, explored bool, res rewrite.Result) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := Record{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		RawPrompt: rawPrompt,
		Result:    res,
		Explored:  explored,
		CreatedAt: time.Now().UTC(),
	}

	resultJSON, err := json.Marshal(res)
	if err != nil {
		return Record{}, fmt.Errorf("encode result: %w", err)
	}

	exploredInt := 0
	if explored {
		exploredInt = 1
	}

	_, err = s.db.Exec(`
		INSERT INTO records (id, session_id, raw_prompt, result, explored, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.SessionID, rec.RawPrompt, string(resultJSON), exploredInt,
		rec.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return Record{}, err
	}

	return rec, nil
}

// GetRecord loads a single record by ID
func (s *Store) GetRecord(id string) (Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow(`
		SELECT id, session_id, raw_prompt, result, explored, created_at
		FROM records
		WHERE id = ?
	`, id)

	rec, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return Record{}, fmt.Errorf("%w: %s", ErrRecordNotFound, id)
	}
	return rec, err
}

// ListRecords returns a session's records, newest first
func (s *Store) ListRecords(sessionID string, limit int) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.Query(`
		SELECT id, session_id, raw_prompt, result, explored, created_at
		FROM records
		WHERE session_id = ?
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, sessionID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// CountRecords reports the total number of stored records
func (s *Store) CountRecords() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM records`).Scan(&n)
	return n, err
}

// DeleteSession removes a session's records and preferences
func (s *Store) DeleteSession(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec(`DELETE FROM records WHERE session_id = ?`, sessionID); err != nil {
		return err
	}
	_, err := s.db.Exec(`DELETE FROM preferences WHERE session_id = ?`, sessionID)
	return err
}

// SetPreference stores one session-scoped key/value pair
func (s *Store) SetPreference(sessionID, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.Exec(`
		INSERT INTO preferences (session_id, key, value, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(session_id, key) DO UPDATE SET
			value=excluded.value, updated_at=excluded.updated_at
	`, sessionID, key, value, now)
	return err
}

// GetPreference loads one session-scoped value; ok is false when unset
func (s *Store) GetPreference(sessionID, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var value string
	err := s.db.QueryRow(`
		SELECT value FROM preferences WHERE session_id = ? AND key = ?
	`, sessionID, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// scanner covers both *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (Record, error) {
	var rec Record
	var resultJSON, createdAt string
	var explored int

	if err := row.Scan(&rec.ID, &rec.SessionID, &rec.RawPrompt, &resultJSON, &explored, &createdAt); err != nil {
		return Record{}, err
	}

	if err := json.Unmarshal([]byte(resultJSON), &rec.Result); err != nil {
		return Record{}, fmt.Errorf("decode result: %w", err)
	}
	rec.Explored = explored != 0
	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		rec.CreatedAt = t
	}

	return rec, nil
}
