package journal

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/evharlow/lumen/internal/models"
)

// How much of each domain the snapshot carries. The prompt engine works
// with digests, so these stay small.
const (
	todoLimit    = 5
	moodLimit    = 7
	mediaLimit   = 5
	journalLimit = 3
)

// TodoSource, MoodSource, HabitSource, MediaSource, and EntrySource are the
// read sides of the domain collaborators. The sqlite stores satisfy them.
type TodoSource interface {
	ListUpcoming(userID string, limit int) ([]models.Todo, error)
}

type MoodSource interface {
	ListRecent(userID string, limit int) ([]models.Mood, error)
}

type HabitSource interface {
	ListActive(userID string) ([]models.Habit, error)
}

type MediaSource interface {
	ListRecent(userID string, limit int) ([]models.Media, error)
}

type EntrySource interface {
	ListRecent(userID string, limit int) ([]models.JournalEntry, error)
}

// Aggregator builds the per-request context snapshot. It is a pure
// fan-out/fan-in composition point: no cross-domain computation, no
// reordering of what the sources return.
type Aggregator struct {
	todos   TodoSource
	moods   MoodSource
	habits  HabitSource
	media   MediaSource
	entries EntrySource
	logger  *slog.Logger
}

func NewAggregator(todos TodoSource, moods MoodSource, habits HabitSource, media MediaSource, entries EntrySource, logger *slog.Logger) *Aggregator {
	return &Aggregator{
		todos:   todos,
		moods:   moods,
		habits:  habits,
		media:   media,
		entries: entries,
		logger:  logger,
	}
}

// Aggregate fetches the five sub-lists concurrently. A failed sub-fetch
// degrades that field to an empty list; only context cancellation fails the
// whole snapshot.
func (a *Aggregator) Aggregate(ctx context.Context, userID string) (*models.ContextSnapshot, error) {
	snap := &models.ContextSnapshot{
		UpcomingTodos:  []models.Todo{},
		RecentMoods:    []models.Mood{},
		ActiveHabits:   []models.Habit{},
		RecentMedia:    []models.Media{},
		RecentJournals: []models.JournalEntry{},
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		todos, err := a.todos.ListUpcoming(userID, todoLimit)
		if err != nil {
			return a.degrade(ctx, "todos", err)
		}
		if todos != nil {
			snap.UpcomingTodos = todos
		}
		return nil
	})
	g.Go(func() error {
		moods, err := a.moods.ListRecent(userID, moodLimit)
		if err != nil {
			return a.degrade(ctx, "moods", err)
		}
		if moods != nil {
			snap.RecentMoods = moods
		}
		return nil
	})
	g.Go(func() error {
		habits, err := a.habits.ListActive(userID)
		if err != nil {
			return a.degrade(ctx, "habits", err)
		}
		if habits != nil {
			snap.ActiveHabits = habits
		}
		return nil
	})
	g.Go(func() error {
		media, err := a.media.ListRecent(userID, mediaLimit)
		if err != nil {
			return a.degrade(ctx, "media", err)
		}
		if media != nil {
			snap.RecentMedia = media
		}
		return nil
	})
	g.Go(func() error {
		entries, err := a.entries.ListRecent(userID, journalLimit)
		if err != nil {
			return a.degrade(ctx, "journals", err)
		}
		if entries != nil {
			snap.RecentJournals = entries
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return snap, nil
}

// degrade logs a failed sub-fetch and swallows it, unless the request
// itself is already dead.
func (a *Aggregator) degrade(ctx context.Context, field string, err error) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	a.logger.Warn("context sub-fetch failed, field degraded to empty", "field", field, "error", err)
	return nil
}
