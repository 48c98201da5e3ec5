package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/evharlow/lumen/internal/journal"
	"github.com/evharlow/lumen/internal/models"
	"github.com/evharlow/lumen/internal/store"
)

type JournalHandler struct {
	entries    *store.JournalStore
	prefs      *store.PreferenceStore
	aggregator *journal.Aggregator
	persister  *journal.Persister
}

func NewJournalHandler(entries *store.JournalStore, prefs *store.PreferenceStore, aggregator *journal.Aggregator, persister *journal.Persister) *JournalHandler {
	return &JournalHandler{
		entries:    entries,
		prefs:      prefs,
		aggregator: aggregator,
		persister:  persister,
	}
}

// List handles GET /journal with optional from/to/limit query params.
func (h *JournalHandler) List(w http.ResponseWriter, r *http.Request) {
	from, _ := strconv.ParseInt(r.URL.Query().Get("from"), 10, 64)
	to, _ := strconv.ParseInt(r.URL.Query().Get("to"), 10, 64)
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	entries, err := h.entries.List(UserID(r.Context()), models.EntryFilter{From: from, To: to, Limit: limit})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if entries == nil {
		entries = []models.JournalEntry{}
	}

	writeJSON(w, http.StatusOK, map[string]any{"entries": entries})
}

// Create handles POST /journal.
func (h *JournalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateEntryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.Content == "" {
		writeError(w, http.StatusBadRequest, "Content is required")
		return
	}

	now := time.Now().Unix()
	entry := &models.JournalEntry{
		ID:        uuid.New().String(),
		UserID:    UserID(r.Context()),
		Content:   req.Content,
		Mood:      req.Mood,
		Energy:    req.Energy,
		EntryDate: req.EntryDate,
		CreatedAt: now,
	}
	if entry.EntryDate == 0 {
		entry.EntryDate = now
	}

	if err := h.entries.Insert(entry); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

// Context handles GET /journal/context. Partial sub-fetch failures degrade
// per field inside the aggregator; only a dead request context errors.
func (h *JournalHandler) Context(w http.ResponseWriter, r *http.Request) {
	snap, err := h.aggregator.Aggregate(r.Context(), UserID(r.Context()))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

// Actions handles POST /journal/actions: persist user-confirmed candidates.
// This path fails loudly; a confirmed action that cannot be saved is an
// error, never a silent drop.
func (h *JournalHandler) Actions(w http.ResponseWriter, r *http.Request) {
	var req models.ActionsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if len(req.Candidates) == 0 {
		writeError(w, http.StatusBadRequest, "candidates are required")
		return
	}

	result, err := h.persister.Persist(UserID(r.Context()), req.Candidates)
	if err != nil {
		var verr *models.ValidationError
		if errors.As(err, &verr) {
			writeError(w, http.StatusBadRequest, verr.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, result)
}

// GetPreferences handles GET /journal/preferences.
func (h *JournalHandler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	prefs, err := h.prefs.Get(UserID(r.Context()))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, prefs)
}

// PutPreferences handles PUT /journal/preferences (full replace).
func (h *JournalHandler) PutPreferences(w http.ResponseWriter, r *http.Request) {
	var prefs models.Preferences
	if err := decodeJSON(r, &prefs); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := prefs.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	prefs.UserID = UserID(r.Context())
	prefs.UpdatedAt = time.Now().Unix()

	if err := h.prefs.Put(&prefs); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, prefs)
}
