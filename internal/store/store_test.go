package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/evharlow/lumen/internal/models"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestJournalStore(t *testing.T) {
	db := setupTestDB(t)
	s := NewJournalStore(db)

	now := time.Now().Unix()
	for i, content := range []string{"first entry", "second entry", "third entry"} {
		err := s.Insert(&models.JournalEntry{
			ID:        uuid.New().String(),
			UserID:    "user-1",
			Content:   content,
			Mood:      "calm",
			EntryDate: now + int64(i)*86400,
			CreatedAt: now,
		})
		if err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	t.Run("lists newest first", func(t *testing.T) {
		entries, err := s.List("user-1", models.EntryFilter{})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(entries) != 3 || entries[0].Content != "third entry" {
			t.Fatalf("unexpected listing: %+v", entries)
		}
	})

	t.Run("date filter bounds results", func(t *testing.T) {
		entries, err := s.List("user-1", models.EntryFilter{From: now + 86400})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(entries) != 2 {
			t.Fatalf("expected 2 entries in range, got %d", len(entries))
		}
	})

	t.Run("scoped to user", func(t *testing.T) {
		entries, err := s.List("someone-else", models.EntryFilter{})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(entries) != 0 {
			t.Fatalf("expected no entries for another user, got %d", len(entries))
		}
	})
}

func TestTodoStore(t *testing.T) {
	db := setupTestDB(t)
	s := NewTodoStore(db)

	now := time.Now().Unix()
	dated := &models.Todo{ID: uuid.New().String(), UserID: "user-1", Title: "dated", DueDate: "2025-06-10", Priority: models.PriorityHigh, CreatedAt: now}
	undated := &models.Todo{ID: uuid.New().String(), UserID: "user-1", Title: "undated", Priority: models.PriorityLow, CreatedAt: now + 1}
	for _, td := range []*models.Todo{undated, dated} {
		if err := s.Insert(td); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	t.Run("upcoming orders dated before undated", func(t *testing.T) {
		todos, err := s.ListUpcoming("user-1", 10)
		if err != nil {
			t.Fatalf("list upcoming: %v", err)
		}
		if len(todos) != 2 || todos[0].Title != "dated" {
			t.Fatalf("unexpected order: %+v", todos)
		}
	})

	t.Run("complete removes from upcoming", func(t *testing.T) {
		if err := s.Complete("user-1", dated.ID, now); err != nil {
			t.Fatalf("complete: %v", err)
		}
		todos, _ := s.ListUpcoming("user-1", 10)
		if len(todos) != 1 || todos[0].Title != "undated" {
			t.Fatalf("completed todo still upcoming: %+v", todos)
		}
	})

	t.Run("complete unknown id reports not found", func(t *testing.T) {
		if err := s.Complete("user-1", "nope", now); err == nil {
			t.Fatal("expected an error")
		}
	})

	t.Run("delete is user scoped", func(t *testing.T) {
		if err := s.Delete("intruder", undated.ID); err == nil {
			t.Fatal("expected not-found for another user's todo")
		}
		if err := s.Delete("user-1", undated.ID); err != nil {
			t.Fatalf("delete: %v", err)
		}
	})
}

func TestHabitStore(t *testing.T) {
	db := setupTestDB(t)
	s := NewHabitStore(db)

	h := &models.Habit{
		ID: uuid.New().String(), UserID: "user-1", Name: "stretch",
		Frequency: "daily", Active: true, CreatedAt: time.Now().Unix(),
	}
	if err := s.Insert(h); err != nil {
		t.Fatalf("insert: %v", err)
	}

	t.Run("first check-in starts the streak", func(t *testing.T) {
		got, err := s.CheckIn("user-1", h.ID, "2025-06-01")
		if err != nil {
			t.Fatalf("check in: %v", err)
		}
		if got.Streak != 1 {
			t.Fatalf("expected streak 1, got %d", got.Streak)
		}
	})

	t.Run("consecutive day extends the streak", func(t *testing.T) {
		got, err := s.CheckIn("user-1", h.ID, "2025-06-02")
		if err != nil {
			t.Fatalf("check in: %v", err)
		}
		if got.Streak != 2 {
			t.Fatalf("expected streak 2, got %d", got.Streak)
		}
	})

	t.Run("same day is a no-op", func(t *testing.T) {
		got, err := s.CheckIn("user-1", h.ID, "2025-06-02")
		if err != nil {
			t.Fatalf("check in: %v", err)
		}
		if got.Streak != 2 {
			t.Fatalf("repeat check-in changed the streak: %d", got.Streak)
		}
	})

	t.Run("skipped day resets the streak", func(t *testing.T) {
		got, err := s.CheckIn("user-1", h.ID, "2025-06-05")
		if err != nil {
			t.Fatalf("check in: %v", err)
		}
		if got.Streak != 1 {
			t.Fatalf("expected streak reset to 1, got %d", got.Streak)
		}
	})

	t.Run("archive hides from active list", func(t *testing.T) {
		if err := s.Archive("user-1", h.ID); err != nil {
			t.Fatalf("archive: %v", err)
		}
		habits, err := s.ListActive("user-1")
		if err != nil {
			t.Fatalf("list active: %v", err)
		}
		if len(habits) != 0 {
			t.Fatalf("archived habit still listed: %+v", habits)
		}
	})
}

func TestMediaStore(t *testing.T) {
	db := setupTestDB(t)
	s := NewMediaStore(db)

	m := &models.Media{
		ID: uuid.New().String(), UserID: "user-1", Title: "Dune", Type: "book",
		Status: models.MediaPlanned, CreatedAt: 100, UpdatedAt: 100,
	}
	if err := s.Insert(m); err != nil {
		t.Fatalf("insert: %v", err)
	}

	t.Run("update changes status and rating", func(t *testing.T) {
		rating := 5
		if err := s.Update("user-1", m.ID, models.MediaFinished, &rating, 200); err != nil {
			t.Fatalf("update: %v", err)
		}
		items, err := s.ListRecent("user-1", 10)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if items[0].Status != models.MediaFinished || items[0].Rating == nil || *items[0].Rating != 5 {
			t.Fatalf("update not applied: %+v", items[0])
		}
	})

	t.Run("recent ordering follows updated_at", func(t *testing.T) {
		second := &models.Media{
			ID: uuid.New().String(), UserID: "user-1", Title: "Severance", Type: "show",
			Status: models.MediaInProgress, CreatedAt: 150, UpdatedAt: 300,
		}
		if err := s.Insert(second); err != nil {
			t.Fatalf("insert: %v", err)
		}
		items, _ := s.ListRecent("user-1", 10)
		if items[0].Title != "Severance" {
			t.Fatalf("expected most recently updated first: %+v", items)
		}
	})
}

func TestPreferenceStore(t *testing.T) {
	db := setupTestDB(t)
	s := NewPreferenceStore(db)

	t.Run("first access creates defaults", func(t *testing.T) {
		p, err := s.Get("user-1")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if p.ConfidenceThreshold != 0.7 || p.PromptStyle != models.StyleReflective {
			t.Fatalf("unexpected defaults: %+v", p)
		}
		if len(p.SuggestionTypes) != 5 {
			t.Fatalf("expected all suggestion types enabled, got %v", p.SuggestionTypes)
		}
	})

	t.Run("put then get round trips", func(t *testing.T) {
		want := &models.Preferences{
			UserID:              "user-1",
			ConfidenceThreshold: 0.8,
			SuggestionTypes:     []string{"mood", "reflection"},
			PromptStyle:         models.StyleAnalytical,
			UpdatedAt:           time.Now().Unix(),
		}
		if err := s.Put(want); err != nil {
			t.Fatalf("put: %v", err)
		}

		got, err := s.Get("user-1")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.ConfidenceThreshold != 0.8 || got.PromptStyle != models.StyleAnalytical {
			t.Fatalf("record not replaced: %+v", got)
		}
		if len(got.SuggestionTypes) != 2 || got.SuggestionTypes[0] != "mood" || got.SuggestionTypes[1] != "reflection" {
			t.Fatalf("suggestion types not preserved: %v", got.SuggestionTypes)
		}
	})
}

func TestMigrations(t *testing.T) {
	// Opening twice must be safe: schema init and migrations are idempotent.
	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")

	db, err := Open(path)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	db.Close()

	db, err = Open(path)
	if err != nil {
		t.Fatalf("second open: %v", err)
	}
	defer db.Close()

	if _, err := db.EntryCount(); err != nil {
		t.Fatalf("entry count after reopen: %v", err)
	}
}
