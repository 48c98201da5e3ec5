package store

import (
	"fmt"

	"github.com/evharlow/lumen/internal/models"
)

// MoodStore handles mood reading persistence.
type MoodStore struct {
	db *DB
}

func NewMoodStore(db *DB) *MoodStore {
	return &MoodStore{db: db}
}

func (s *MoodStore) Insert(m *models.Mood) error {
	_, err := s.db.Exec(`
		INSERT INTO moods (id, user_id, mood, energy, note, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, m.ID, m.UserID, m.Mood, nullable(m.Energy), nullable(m.Note), m.RecordedAt)
	if err != nil {
		return fmt.Errorf("insert mood: %w", err)
	}
	return nil
}

// ListRecent returns the newest readings first.
func (s *MoodStore) ListRecent(userID string, limit int) ([]models.Mood, error) {
	rows, err := s.db.Query(`
		SELECT id, user_id, mood, energy, note, recorded_at FROM moods
		WHERE user_id = ?
		ORDER BY recorded_at DESC
		LIMIT ?
	`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list moods: %w", err)
	}
	defer rows.Close()

	var moods []models.Mood
	for rows.Next() {
		var m models.Mood
		var energy, note *string
		if err := rows.Scan(&m.ID, &m.UserID, &m.Mood, &energy, &note, &m.RecordedAt); err != nil {
			return nil, fmt.Errorf("scan mood: %w", err)
		}
		m.Energy = deref(energy)
		m.Note = deref(note)
		moods = append(moods, m)
	}
	return moods, rows.Err()
}
