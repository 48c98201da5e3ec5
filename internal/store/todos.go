package store

import (
	"database/sql"
	"fmt"

	"github.com/evharlow/lumen/internal/models"
)

const todoColumns = `id, user_id, title, description, due_date, priority, completed, created_at, completed_at`

// TodoStore handles todo persistence.
type TodoStore struct {
	db *DB
}

func NewTodoStore(db *DB) *TodoStore {
	return &TodoStore{db: db}
}

func (s *TodoStore) Insert(t *models.Todo) error {
	_, err := s.db.Exec(`
		INSERT INTO todos (id, user_id, title, description, due_date, priority, completed, created_at, completed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, t.ID, t.UserID, t.Title, nullable(t.Description), nullable(t.DueDate),
		string(t.Priority), t.Completed, t.CreatedAt, t.CompletedAt)
	if err != nil {
		return fmt.Errorf("insert todo: %w", err)
	}
	return nil
}

// ListUpcoming returns open todos, dated ones first by due date, then
// undated ones by creation time. This ordering is part of the snapshot
// contract, so it lives here, not in the aggregator.
func (s *TodoStore) ListUpcoming(userID string, limit int) ([]models.Todo, error) {
	rows, err := s.db.Query(`
		SELECT `+todoColumns+` FROM todos
		WHERE user_id = ? AND completed = 0
		ORDER BY due_date IS NULL, due_date ASC, created_at ASC
		LIMIT ?
	`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list upcoming todos: %w", err)
	}
	return scanTodos(rows)
}

// List returns all of a user's todos, open ones first.
func (s *TodoStore) List(userID string) ([]models.Todo, error) {
	rows, err := s.db.Query(`
		SELECT `+todoColumns+` FROM todos
		WHERE user_id = ?
		ORDER BY completed ASC, created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	return scanTodos(rows)
}

// Complete marks a todo done. Missing or foreign rows report not-found.
func (s *TodoStore) Complete(userID, id string, completedAt int64) error {
	res, err := s.db.Exec(`
		UPDATE todos SET completed = 1, completed_at = ?
		WHERE id = ? AND user_id = ?
	`, completedAt, id, userID)
	if err != nil {
		return fmt.Errorf("complete todo: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("todo not found: %s", id)
	}
	return nil
}

func (s *TodoStore) Delete(userID, id string) error {
	res, err := s.db.Exec(`DELETE FROM todos WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("delete todo: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("todo not found: %s", id)
	}
	return nil
}

func scanTodos(rows *sql.Rows) ([]models.Todo, error) {
	defer rows.Close()

	var todos []models.Todo
	for rows.Next() {
		var t models.Todo
		var desc, due *string
		var priority string
		if err := rows.Scan(&t.ID, &t.UserID, &t.Title, &desc, &due, &priority,
			&t.Completed, &t.CreatedAt, &t.CompletedAt); err != nil {
			return nil, fmt.Errorf("scan todo: %w", err)
		}
		t.Description = deref(desc)
		t.DueDate = deref(due)
		t.Priority = models.TodoPriority(priority)
		todos = append(todos, t)
	}
	return todos, rows.Err()
}
