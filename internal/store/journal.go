package store

import (
	"fmt"

	"github.com/evharlow/lumen/internal/models"
)

const entryColumns = `id, user_id, content, mood, energy, entry_date, created_at`

// JournalStore handles journal entry persistence.
type JournalStore struct {
	db *DB
}

func NewJournalStore(db *DB) *JournalStore {
	return &JournalStore{db: db}
}

// Insert stores a new entry. The caller must set ID and timestamps.
func (s *JournalStore) Insert(e *models.JournalEntry) error {
	_, err := s.db.Exec(`
		INSERT INTO journal_entries (id, user_id, content, mood, energy, entry_date, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, e.ID, e.UserID, e.Content, nullable(e.Mood), nullable(e.Energy), e.EntryDate, e.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert journal entry: %w", err)
	}
	return nil
}

// List returns a user's entries newest-first, bounded by the filter.
func (s *JournalStore) List(userID string, f models.EntryFilter) ([]models.JournalEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM journal_entries WHERE user_id = ?`
	args := []any{userID}

	if f.From > 0 {
		query += ` AND entry_date >= ?`
		args = append(args, f.From)
	}
	if f.To > 0 {
		query += ` AND entry_date <= ?`
		args = append(args, f.To)
	}
	query += ` ORDER BY entry_date DESC`

	limit := f.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	query += ` LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list journal entries: %w", err)
	}
	defer rows.Close()

	var entries []models.JournalEntry
	for rows.Next() {
		var e models.JournalEntry
		var mood, energy *string
		if err := rows.Scan(&e.ID, &e.UserID, &e.Content, &mood, &energy, &e.EntryDate, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan journal entry: %w", err)
		}
		e.Mood = deref(mood)
		e.Energy = deref(energy)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// ListRecent returns the newest entries for context aggregation.
func (s *JournalStore) ListRecent(userID string, limit int) ([]models.JournalEntry, error) {
	return s.List(userID, models.EntryFilter{Limit: limit})
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
