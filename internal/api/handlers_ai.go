package api

import (
	"net/http"

	"github.com/evharlow/lumen/internal/ai"
	"github.com/evharlow/lumen/internal/journal"
	"github.com/evharlow/lumen/internal/models"
	"github.com/evharlow/lumen/internal/store"
)

type AIHandler struct {
	engine  *ai.Client
	prompts *journal.PromptGenerator
	prefs   *store.PreferenceStore
}

func NewAIHandler(engine *ai.Client, prompts *journal.PromptGenerator, prefs *store.PreferenceStore) *AIHandler {
	return &AIHandler{engine: engine, prompts: prompts, prefs: prefs}
}

// AnalyzeJournal handles POST /ai/analyze-journal. Engine failure never
// reaches the client: the response is 200 with the degraded analysis and an
// empty candidate list.
func (h *AIHandler) AnalyzeJournal(w http.ResponseWriter, r *http.Request) {
	var req models.AnalyzeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.Content == "" {
		writeError(w, http.StatusBadRequest, "Content is required")
		return
	}

	result, err := h.engine.Analyze(r.Context(), Credential(r.Context()), &req)
	if err != nil {
		// Only validation can error here, and content was checked above.
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	prefs, err := h.prefs.Get(UserID(r.Context()))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	candidates := journal.FilterCandidates(journal.ExtractCandidates(result), prefs)
	writeJSON(w, http.StatusOK, models.AnalyzeResponse{
		Analysis:   result,
		Candidates: candidates,
	})
}

// JournalPrompt handles POST /ai/journal-prompt. The body is a context
// snapshot assembled by the client (usually from GET /journal/context).
// Always 200: the generator falls back internally.
func (h *AIHandler) JournalPrompt(w http.ResponseWriter, r *http.Request) {
	var snap models.ContextSnapshot
	if err := decodeJSON(r, &snap); err != nil && r.ContentLength > 0 {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	prefs, err := h.prefs.Get(UserID(r.Context()))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	prompt := h.prompts.Generate(r.Context(), Credential(r.Context()), &snap, prefs)
	writeJSON(w, http.StatusOK, models.PromptResponse{Prompt: prompt})
}
