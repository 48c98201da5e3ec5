package journal

import (
	"context"
	"log/slog"

	"github.com/evharlow/lumen/internal/ai"
	"github.com/evharlow/lumen/internal/models"
)

// FallbackPrompt is served whenever the engine cannot produce one. It is a
// successful response from the caller's point of view; the prompt surface
// never fails visibly.
const FallbackPrompt = "What's on your mind today?"

// PromptGenerator turns a context snapshot into the user's next journal
// prompt via the engine, with a fixed local fallback.
type PromptGenerator struct {
	engine *ai.Client
	logger *slog.Logger
}

func NewPromptGenerator(engine *ai.Client, logger *slog.Logger) *PromptGenerator {
	return &PromptGenerator{engine: engine, logger: logger}
}

// Generate projects the snapshot down to the digest fields the engine needs
// and requests a prompt in the user's configured style. Any engine failure
// yields FallbackPrompt.
func (g *PromptGenerator) Generate(ctx context.Context, credential string, snap *models.ContextSnapshot, prefs *models.Preferences) string {
	prompt, err := g.engine.GeneratePrompt(ctx, credential, project(snap), prefs.PromptStyle)
	if err != nil {
		g.logger.Warn("prompt generation degraded to fallback", "error", err)
		return FallbackPrompt
	}
	return prompt
}

// project keeps only the fields the engine's prompt endpoint consumes.
// Journal entries pass through unmodified.
func project(snap *models.ContextSnapshot) ai.PromptContext {
	pctx := ai.PromptContext{
		UpcomingTodos:  []ai.TodoDigest{},
		RecentMoods:    []ai.MoodDigest{},
		ActiveHabits:   []ai.HabitDigest{},
		RecentMedia:    []ai.MediaDigest{},
		RecentJournals: []models.JournalEntry{},
	}
	if snap == nil {
		return pctx
	}

	for _, t := range snap.UpcomingTodos {
		pctx.UpcomingTodos = append(pctx.UpcomingTodos, ai.TodoDigest{
			Title:    t.Title,
			DueDate:  t.DueDate,
			Priority: string(t.Priority),
		})
	}
	for _, m := range snap.RecentMoods {
		pctx.RecentMoods = append(pctx.RecentMoods, ai.MoodDigest{
			Mood:   m.Mood,
			Date:   m.RecordedAt,
			Energy: m.Energy,
		})
	}
	for _, h := range snap.ActiveHabits {
		pctx.ActiveHabits = append(pctx.ActiveHabits, ai.HabitDigest{
			Name:      h.Name,
			Streak:    h.Streak,
			Frequency: h.Frequency,
		})
	}
	for _, m := range snap.RecentMedia {
		pctx.RecentMedia = append(pctx.RecentMedia, ai.MediaDigest{
			Title:  m.Title,
			Type:   m.Type,
			Status: string(m.Status),
		})
	}
	pctx.RecentJournals = append(pctx.RecentJournals, snap.RecentJournals...)

	return pctx
}
