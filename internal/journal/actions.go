package journal

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/evharlow/lumen/internal/models"
)

// TodoSink, MoodSink, HabitSink, and MediaSink are the write sides of the
// domain collaborators.
type TodoSink interface {
	Insert(t *models.Todo) error
}

type MoodSink interface {
	Insert(m *models.Mood) error
}

type HabitSink interface {
	Insert(h *models.Habit) error
}

type MediaSink interface {
	Insert(m *models.Media) error
}

// Persister converts user-confirmed candidates into domain records. This is
// the one core operation allowed to fail visibly: a rejected write surfaces
// as an error, never a silent drop.
type Persister struct {
	todos  TodoSink
	moods  MoodSink
	habits HabitSink
	media  MediaSink
	now    func() time.Time
}

func NewPersister(todos TodoSink, moods MoodSink, habits HabitSink, media MediaSink) *Persister {
	return &Persister{
		todos:  todos,
		moods:  moods,
		habits: habits,
		media:  media,
		now:    time.Now,
	}
}

// Persist creates one record per confirmed candidate, in order. The first
// failing write aborts and returns the error along with what was created
// before it, so the caller can report partial progress.
func (p *Persister) Persist(userID string, candidates []models.ExtractedCandidate) (*models.PersistResult, error) {
	result := &models.PersistResult{Created: []models.CreatedRecord{}}

	for i, c := range candidates {
		id, err := p.persistOne(userID, c)
		if err != nil {
			return result, fmt.Errorf("persist candidate %d (%s): %w", i, c.Kind, err)
		}
		result.Created = append(result.Created, models.CreatedRecord{Kind: c.Kind, ID: id})
	}
	return result, nil
}

func (p *Persister) persistOne(userID string, c models.ExtractedCandidate) (string, error) {
	now := p.now().Unix()
	id := uuid.New().String()

	switch c.Kind {
	case models.KindTodo:
		if c.Todo == nil || c.Todo.Title == "" {
			return "", &models.ValidationError{Field: "todo", Msg: "missing payload"}
		}
		priority := models.TodoPriority(c.Todo.Priority)
		if !priority.IsValid() {
			priority = models.PriorityMedium
		}
		return id, p.todos.Insert(&models.Todo{
			ID:        id,
			UserID:    userID,
			Title:     c.Todo.Title,
			DueDate:   c.Todo.DueDate,
			Priority:  priority,
			CreatedAt: now,
		})

	case models.KindMood:
		if c.Mood == nil || c.Mood.Mood == "" {
			return "", &models.ValidationError{Field: "mood", Msg: "missing payload"}
		}
		return id, p.moods.Insert(&models.Mood{
			ID:         id,
			UserID:     userID,
			Mood:       c.Mood.Mood,
			RecordedAt: now,
		})

	case models.KindHabit:
		if c.Habit == nil || c.Habit.Name == "" {
			return "", &models.ValidationError{Field: "habit", Msg: "missing payload"}
		}
		frequency := c.Habit.Frequency
		if frequency == "" {
			frequency = "daily"
		}
		return id, p.habits.Insert(&models.Habit{
			ID:        id,
			UserID:    userID,
			Name:      c.Habit.Name,
			Frequency: frequency,
			Active:    true,
			CreatedAt: now,
		})

	case models.KindMedia:
		if c.Media == nil || c.Media.Title == "" {
			return "", &models.ValidationError{Field: "media", Msg: "missing payload"}
		}
		status := models.MediaStatus(c.Media.Status)
		if !status.IsValid() {
			status = models.MediaPlanned
		}
		return id, p.media.Insert(&models.Media{
			ID:        id,
			UserID:    userID,
			Title:     c.Media.Title,
			Type:      c.Media.Type,
			Status:    status,
			CreatedAt: now,
			UpdatedAt: now,
		})

	default:
		return "", &models.ValidationError{Field: "kind", Msg: "unknown candidate kind: " + string(c.Kind)}
	}
}
