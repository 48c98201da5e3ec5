package api

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/evharlow/lumen/internal/ai"
	"github.com/evharlow/lumen/internal/auth"
	"github.com/evharlow/lumen/internal/journal"
	"github.com/evharlow/lumen/internal/ratelimit"
	"github.com/evharlow/lumen/internal/store"
)

// Stores bundles the domain stores the router wires into handlers.
type Stores struct {
	Journal     *store.JournalStore
	Todos       *store.TodoStore
	Moods       *store.MoodStore
	Habits      *store.HabitStore
	Media       *store.MediaStore
	Preferences *store.PreferenceStore
}

// NewRouter creates the Chi router with all routes and middleware.
func NewRouter(
	db *store.DB,
	stores Stores,
	engine *ai.Client,
	aggregator *journal.Aggregator,
	prompts *journal.PromptGenerator,
	persister *journal.Persister,
	limiter *ratelimit.Limiter,
	verifier auth.Verifier,
	logger *slog.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware (runs on ALL routes including /health)
	r.Use(CORS)
	r.Use(RequestID)
	r.Use(Logger(logger))
	r.Use(Recovery(logger))

	// Handlers
	healthH := NewHealthHandler(db, engine)
	aiH := NewAIHandler(engine, prompts, stores.Preferences)
	journalH := NewJournalHandler(stores.Journal, stores.Preferences, aggregator, persister)
	todoH := NewTodoHandler(stores.Todos)
	trackingH := NewTrackingHandler(stores.Moods, stores.Habits, stores.Media)

	// Unauthenticated routes
	r.Get("/health", healthH.Health)

	// Authenticated routes; auth runs before rate limiting so budgets are
	// keyed by user identity, not by address.
	r.Group(func(r chi.Router) {
		r.Use(BearerAuth(verifier))

		r.With(RateLimit(limiter, ratelimit.ClassRealtime)).
			Post("/ai/analyze-journal", aiH.AnalyzeJournal)
		r.With(RateLimit(limiter, ratelimit.ClassSuggestions)).
			Post("/ai/journal-prompt", aiH.JournalPrompt)

		r.Group(func(r chi.Router) {
			r.Use(RateLimit(limiter, ratelimit.ClassContext))
			r.Get("/journal/context", journalH.Context)
		})

		r.Group(func(r chi.Router) {
			r.Use(RateLimit(limiter, ratelimit.ClassGeneral))

			r.Route("/journal", func(r chi.Router) {
				r.Get("/", journalH.List)
				r.Post("/", journalH.Create)
				r.Post("/actions", journalH.Actions)
				r.Get("/preferences", journalH.GetPreferences)
				r.Put("/preferences", journalH.PutPreferences)
			})

			r.Route("/todos", func(r chi.Router) {
				r.Get("/", todoH.List)
				r.Post("/", todoH.Create)
				r.Post("/{id}/complete", todoH.Complete)
				r.Delete("/{id}", todoH.Delete)
			})

			r.Route("/moods", func(r chi.Router) {
				r.Get("/", trackingH.ListMoods)
				r.Post("/", trackingH.RecordMood)
			})

			r.Route("/habits", func(r chi.Router) {
				r.Get("/", trackingH.ListHabits)
				r.Post("/", trackingH.CreateHabit)
				r.Post("/{id}/checkin", trackingH.CheckInHabit)
				r.Post("/{id}/archive", trackingH.ArchiveHabit)
			})

			r.Route("/media", func(r chi.Router) {
				r.Get("/", trackingH.ListMedia)
				r.Post("/", trackingH.CreateMedia)
				r.Patch("/{id}", trackingH.UpdateMedia)
			})
		})
	})

	return r
}
