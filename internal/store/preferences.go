package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/evharlow/lumen/internal/models"
)

// PreferenceStore handles the per-user tuning record.
type PreferenceStore struct {
	db *DB
}

func NewPreferenceStore(db *DB) *PreferenceStore {
	return &PreferenceStore{db: db}
}

// Get returns the user's preferences, creating the default record on first
// access so subsequent reads and writes see the same row.
func (s *PreferenceStore) Get(userID string) (*models.Preferences, error) {
	row := s.db.QueryRow(`
		SELECT confidence_threshold, suggestion_types, prompt_style, updated_at
		FROM preferences WHERE user_id = ?
	`, userID)

	var p models.Preferences
	var typesJSON string
	var style string
	err := row.Scan(&p.ConfidenceThreshold, &typesJSON, &style, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		defaults := models.DefaultPreferences(userID)
		defaults.UpdatedAt = time.Now().Unix()
		if err := s.Put(defaults); err != nil {
			return nil, err
		}
		return defaults, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get preferences: %w", err)
	}

	p.UserID = userID
	p.PromptStyle = models.PromptStyle(style)
	if err := json.Unmarshal([]byte(typesJSON), &p.SuggestionTypes); err != nil {
		return nil, fmt.Errorf("decode suggestion types: %w", err)
	}
	return &p, nil
}

// Put replaces the whole record (last writer wins).
func (s *PreferenceStore) Put(p *models.Preferences) error {
	typesJSON, err := json.Marshal(p.SuggestionTypes)
	if err != nil {
		return fmt.Errorf("encode suggestion types: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO preferences (user_id, confidence_threshold, suggestion_types, prompt_style, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			confidence_threshold = excluded.confidence_threshold,
			suggestion_types = excluded.suggestion_types,
			prompt_style = excluded.prompt_style,
			updated_at = excluded.updated_at
	`, p.UserID, p.ConfidenceThreshold, string(typesJSON), string(p.PromptStyle), p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("put preferences: %w", err)
	}
	return nil
}
