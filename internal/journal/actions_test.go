package journal

import (
	"errors"
	"testing"

	"github.com/evharlow/lumen/internal/models"
)

type recordingSinks struct {
	todos  []*models.Todo
	moods  []*models.Mood
	habits []*models.Habit
	media  []*models.Media

	failMood bool
}

var errRejected = errors.New("write rejected")

type todoSink struct{ s *recordingSinks }

func (t todoSink) Insert(v *models.Todo) error {
	t.s.todos = append(t.s.todos, v)
	return nil
}

type moodSink struct{ s *recordingSinks }

func (m moodSink) Insert(v *models.Mood) error {
	if m.s.failMood {
		return errRejected
	}
	m.s.moods = append(m.s.moods, v)
	return nil
}

type habitSink struct{ s *recordingSinks }

func (h habitSink) Insert(v *models.Habit) error {
	h.s.habits = append(h.s.habits, v)
	return nil
}

type mediaSink struct{ s *recordingSinks }

func (m mediaSink) Insert(v *models.Media) error {
	m.s.media = append(m.s.media, v)
	return nil
}

func newTestPersister(s *recordingSinks) *Persister {
	return NewPersister(todoSink{s}, moodSink{s}, habitSink{s}, mediaSink{s})
}

func confirmedCandidates() []models.ExtractedCandidate {
	return []models.ExtractedCandidate{
		{Kind: models.KindTodo, Confidence: 0.9, Todo: &models.TodoCandidate{Title: "Call bank", Priority: "high"}},
		{Kind: models.KindMood, Confidence: 0.8, Mood: &models.MoodCandidate{Mood: "content"}},
		{Kind: models.KindHabit, Confidence: 0.85, Habit: &models.HabitCandidate{Name: "journaling"}},
		{Kind: models.KindMedia, Confidence: 0.9, Media: &models.MediaCandidate{Title: "Dune", Type: "book"}},
	}
}

func TestPersist(t *testing.T) {
	t.Run("creates one record per candidate", func(t *testing.T) {
		sinks := &recordingSinks{}
		result, err := newTestPersister(sinks).Persist("user-1", confirmedCandidates())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(result.Created) != 4 {
			t.Fatalf("expected 4 created records, got %d", len(result.Created))
		}
		if len(sinks.todos) != 1 || sinks.todos[0].Title != "Call bank" || sinks.todos[0].UserID != "user-1" {
			t.Fatalf("todo not persisted correctly: %+v", sinks.todos)
		}
		if sinks.habits[0].Frequency != "daily" || !sinks.habits[0].Active {
			t.Fatalf("habit defaults not applied: %+v", sinks.habits[0])
		}
		if sinks.media[0].Status != models.MediaPlanned {
			t.Fatalf("media status default not applied: %+v", sinks.media[0])
		}
		for i, rec := range result.Created {
			if rec.ID == "" {
				t.Errorf("created record %d has no ID", i)
			}
		}
	})

	t.Run("store rejection surfaces with partial progress", func(t *testing.T) {
		sinks := &recordingSinks{failMood: true}
		result, err := newTestPersister(sinks).Persist("user-1", confirmedCandidates())
		if !errors.Is(err, errRejected) {
			t.Fatalf("expected the store error to surface, got %v", err)
		}
		if len(result.Created) != 1 || result.Created[0].Kind != models.KindTodo {
			t.Fatalf("expected only the todo to precede the failure, got %+v", result.Created)
		}
	})

	t.Run("rejects candidates with missing payloads", func(t *testing.T) {
		sinks := &recordingSinks{}
		_, err := newTestPersister(sinks).Persist("user-1", []models.ExtractedCandidate{
			{Kind: models.KindTodo, Confidence: 0.9},
		})
		var verr *models.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected a validation error, got %v", err)
		}
	})

	t.Run("rejects unknown kinds", func(t *testing.T) {
		sinks := &recordingSinks{}
		_, err := newTestPersister(sinks).Persist("user-1", []models.ExtractedCandidate{
			{Kind: "reflection", Confidence: 0.9},
		})
		var verr *models.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected a validation error, got %v", err)
		}
	})
}
