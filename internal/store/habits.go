package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/evharlow/lumen/internal/models"
)

const habitColumns = `id, user_id, name, frequency, streak, last_checked_day, active, created_at`

// HabitStore handles habit persistence and streak bookkeeping.
type HabitStore struct {
	db *DB
}

func NewHabitStore(db *DB) *HabitStore {
	return &HabitStore{db: db}
}

func (s *HabitStore) Insert(h *models.Habit) error {
	_, err := s.db.Exec(`
		INSERT INTO habits (id, user_id, name, frequency, streak, last_checked_day, active, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, h.ID, h.UserID, h.Name, h.Frequency, h.Streak, nullable(h.LastCheckedDay), h.Active, h.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert habit: %w", err)
	}
	return nil
}

// ListActive returns the user's active habits, longest streak first.
func (s *HabitStore) ListActive(userID string) ([]models.Habit, error) {
	rows, err := s.db.Query(`
		SELECT `+habitColumns+` FROM habits
		WHERE user_id = ? AND active = 1
		ORDER BY streak DESC, created_at ASC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list habits: %w", err)
	}
	defer rows.Close()

	var habits []models.Habit
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			return nil, err
		}
		habits = append(habits, *h)
	}
	return habits, rows.Err()
}

// GetByID fetches one habit, nil when absent.
func (s *HabitStore) GetByID(userID, id string) (*models.Habit, error) {
	row := s.db.QueryRow(`SELECT `+habitColumns+` FROM habits WHERE id = ? AND user_id = ?`, id, userID)
	h, err := scanHabitRow(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return h, err
}

// CheckIn records today's completion. Consecutive days extend the streak, a
// gap resets it to 1, and a repeat check-in on the same day is a no-op.
func (s *HabitStore) CheckIn(userID, id, day string) (*models.Habit, error) {
	h, err := s.GetByID(userID, id)
	if err != nil {
		return nil, err
	}
	if h == nil {
		return nil, fmt.Errorf("habit not found: %s", id)
	}
	if h.LastCheckedDay == day {
		return h, nil
	}

	if isNextDay(h.LastCheckedDay, day) {
		h.Streak++
	} else {
		h.Streak = 1
	}
	h.LastCheckedDay = day

	_, err = s.db.Exec(`
		UPDATE habits SET streak = ?, last_checked_day = ? WHERE id = ? AND user_id = ?
	`, h.Streak, h.LastCheckedDay, id, userID)
	if err != nil {
		return nil, fmt.Errorf("check in habit: %w", err)
	}
	return h, nil
}

// Archive deactivates a habit without deleting its history.
func (s *HabitStore) Archive(userID, id string) error {
	res, err := s.db.Exec(`UPDATE habits SET active = 0 WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("archive habit: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("habit not found: %s", id)
	}
	return nil
}

func isNextDay(prev, next string) bool {
	if prev == "" {
		return false
	}
	p, err := time.Parse("2006-01-02", prev)
	if err != nil {
		return false
	}
	n, err := time.Parse("2006-01-02", next)
	if err != nil {
		return false
	}
	return n.Sub(p) == 24*time.Hour
}

func scanHabit(rows *sql.Rows) (*models.Habit, error) {
	var h models.Habit
	var last *string
	if err := rows.Scan(&h.ID, &h.UserID, &h.Name, &h.Frequency, &h.Streak, &last, &h.Active, &h.CreatedAt); err != nil {
		return nil, fmt.Errorf("scan habit: %w", err)
	}
	h.LastCheckedDay = deref(last)
	return &h, nil
}

func scanHabitRow(row *sql.Row) (*models.Habit, error) {
	var h models.Habit
	var last *string
	if err := row.Scan(&h.ID, &h.UserID, &h.Name, &h.Frequency, &h.Streak, &last, &h.Active, &h.CreatedAt); err != nil {
		return nil, err
	}
	h.LastCheckedDay = deref(last)
	return &h, nil
}
