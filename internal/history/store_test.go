package history

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"promptforge/internal/rewrite"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveAndGetRecord(t *testing.T) {
	store := newTestStore(t)

	res := rewrite.Optimize("Summarize this article", rewrite.Options{Objective: rewrite.ObjectivePrecision})
	rec, err := store.SaveRecord("web_abc", "Summarize this article", false, res)
	assert.NoError(t, err)
	assert.NotEmpty(t, rec.ID)
	assert.False(t, rec.CreatedAt.IsZero())

	got, err := store.GetRecord(rec.ID)
	assert.NoError(t, err)
	assert.Equal(t, rec.ID, got.ID)
	assert.Equal(t, "web_abc", got.SessionID)
	assert.Equal(t, "Summarize this article", got.RawPrompt)
	assert.False(t, got.Explored)
	assert.Equal(t, res, got.Result)
	assert.WithinDuration(t, rec.CreatedAt, got.CreatedAt, time.Second)

	explored, err := store.SaveRecord("web_abc", "Compare A and B", true, rewrite.Optimize("Compare A and B", rewrite.Options{}))
	assert.NoError(t, err)

	got, err = store.GetRecord(explored.ID)
	assert.NoError(t, err)
	assert.True(t, got.Explored)
}

func TestGetRecordMissing(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetRecord("no-such-id")
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestListRecordsNewestFirst(t *testing.T) {
	store := newTestStore(t)

	for _, p := range []string{"first", "second", "third"} {
		if _, err := store.SaveRecord("cli_1", p, false, rewrite.Optimize(p, rewrite.Options{})); err != nil {
			t.Fatalf("SaveRecord: %v", err)
		}
	}
	if _, err := store.SaveRecord("cli_2", "elsewhere", false, rewrite.Optimize("elsewhere", rewrite.Options{})); err != nil {
		t.Fatalf("SaveRecord: %v", err)
	}

	records, err := store.ListRecords("cli_1", 0)
	assert.NoError(t, err)
	if assert.Len(t, records, 3) {
		assert.Equal(t, "third", records[0].RawPrompt)
		assert.Equal(t, "second", records[1].RawPrompt)
		assert.Equal(t, "first", records[2].RawPrompt)
	}

	limited, err := store.ListRecords("cli_1", 2)
	assert.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestPreferencesRoundTrip(t *testing.T) {
	store := newTestStore(t)

	_, ok, err := store.GetPreference("web_1", "options")
	assert.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, store.SetPreference("web_1", "options", `{"objective":"brevity"}`))
	assert.NoError(t, store.SetPreference("web_1", "options", `{"objective":"safety"}`))

	value, ok, err := store.GetPreference("web_1", "options")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"objective":"safety"}`, value)

	_, ok, err = store.GetPreference("web_2", "options")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestDeleteSession(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.SaveRecord("web_1", "keep me", false, rewrite.Optimize("keep me", rewrite.Options{})); err != nil {
		t.Fatalf("SaveRecord: %v", err)
	}
	rec, err := store.SaveRecord("web_2", "drop me", true, rewrite.Optimize("drop me", rewrite.Options{}))
	if err != nil {
		t.Fatalf("SaveRecord: %v", err)
	}
	assert.NoError(t, store.SetPreference("web_2", "options", "{}"))

	assert.NoError(t, store.DeleteSession("web_2"))

	_, err = store.GetRecord(rec.ID)
	assert.ErrorIs(t, err, ErrRecordNotFound)

	kept, err := store.ListRecords("web_1", 0)
	assert.NoError(t, err)
	assert.Len(t, kept, 1)

	_, ok, err := store.GetPreference("web_2", "options")
	assert.NoError(t, err)
	assert.False(t, ok)

	n, err := store.CountRecords()
	assert.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestReopenKeepsRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	store, err := NewStore(path)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	rec, err := store.SaveRecord("web_1", "persist me", false, rewrite.Optimize("persist me", rewrite.Options{}))
	if err != nil {
		t.Fatalf("SaveRecord: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened, err := NewStore(path)
	if err != nil {
		t.Fatalf("NewStore reopen: %v", err)
	}
	defer reopened.Close()

	got, err := reopened.GetRecord(rec.ID)
	assert.NoError(t, err)
	assert.Equal(t, "persist me", got.RawPrompt)
}
