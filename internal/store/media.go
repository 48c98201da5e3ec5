package store

import (
	"fmt"

	"github.com/evharlow/lumen/internal/models"
)

// MediaStore handles tracked media persistence.
type MediaStore struct {
	db *DB
}

func NewMediaStore(db *DB) *MediaStore {
	return &MediaStore{db: db}
}

func (s *MediaStore) Insert(m *models.Media) error {
	_, err := s.db.Exec(`
		INSERT INTO media (id, user_id, title, media_type, status, rating, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, m.ID, m.UserID, m.Title, nullable(m.Type), string(m.Status), m.Rating, m.CreatedAt, m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert media: %w", err)
	}
	return nil
}

// ListRecent returns the most recently touched items first.
func (s *MediaStore) ListRecent(userID string, limit int) ([]models.Media, error) {
	rows, err := s.db.Query(`
		SELECT id, user_id, title, media_type, status, rating, created_at, updated_at FROM media
		WHERE user_id = ?
		ORDER BY updated_at DESC
		LIMIT ?
	`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list media: %w", err)
	}
	defer rows.Close()

	var items []models.Media
	for rows.Next() {
		var m models.Media
		var mtype *string
		var status string
		if err := rows.Scan(&m.ID, &m.UserID, &m.Title, &mtype, &status, &m.Rating, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan media: %w", err)
		}
		m.Type = deref(mtype)
		m.Status = models.MediaStatus(status)
		items = append(items, m)
	}
	return items, rows.Err()
}

// Update changes status and/or rating. Zero values leave a field untouched.
func (s *MediaStore) Update(userID, id string, status models.MediaStatus, rating *int, updatedAt int64) error {
	query := `UPDATE media SET updated_at = ?`
	args := []any{updatedAt}

	if status != "" {
		query += `, status = ?`
		args = append(args, string(status))
	}
	if rating != nil {
		query += `, rating = ?`
		args = append(args, *rating)
	}
	query += ` WHERE id = ? AND user_id = ?`
	args = append(args, id, userID)

	res, err := s.db.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("update media: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("media not found: %s", id)
	}
	return nil
}
