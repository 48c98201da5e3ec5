package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/evharlow/lumen/internal/models"
	"github.com/evharlow/lumen/internal/store"
)

// TrackingHandler serves the mood, habit, and media collaborators.
type TrackingHandler struct {
	moods  *store.MoodStore
	habits *store.HabitStore
	media  *store.MediaStore
}

func NewTrackingHandler(moods *store.MoodStore, habits *store.HabitStore, media *store.MediaStore) *TrackingHandler {
	return &TrackingHandler{moods: moods, habits: habits, media: media}
}

// ListMoods handles GET /moods
func (h *TrackingHandler) ListMoods(w http.ResponseWriter, r *http.Request) {
	moods, err := h.moods.ListRecent(UserID(r.Context()), 30)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if moods == nil {
		moods = []models.Mood{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"moods": moods})
}

// RecordMood handles POST /moods
func (h *TrackingHandler) RecordMood(w http.ResponseWriter, r *http.Request) {
	var req models.RecordMoodRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.Mood == "" {
		writeError(w, http.StatusBadRequest, "mood is required")
		return
	}

	mood := &models.Mood{
		ID:         uuid.New().String(),
		UserID:     UserID(r.Context()),
		Mood:       req.Mood,
		Energy:     req.Energy,
		Note:       req.Note,
		RecordedAt: time.Now().Unix(),
	}
	if err := h.moods.Insert(mood); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, mood)
}

// ListHabits handles GET /habits
func (h *TrackingHandler) ListHabits(w http.ResponseWriter, r *http.Request) {
	habits, err := h.habits.ListActive(UserID(r.Context()))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if habits == nil {
		habits = []models.Habit{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"habits": habits})
}

// CreateHabit handles POST /habits
func (h *TrackingHandler) CreateHabit(w http.ResponseWriter, r *http.Request) {
	var req models.CreateHabitRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	frequency := req.Frequency
	if frequency == "" {
		frequency = "daily"
	}

	habit := &models.Habit{
		ID:        uuid.New().String(),
		UserID:    UserID(r.Context()),
		Name:      req.Name,
		Frequency: frequency,
		Active:    true,
		CreatedAt: time.Now().Unix(),
	}
	if err := h.habits.Insert(habit); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, habit)
}

// CheckInHabit handles POST /habits/{id}/checkin
func (h *TrackingHandler) CheckInHabit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	day := time.Now().UTC().Format("2006-01-02")

	habit, err := h.habits.CheckIn(UserID(r.Context()), id, day)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, habit)
}

// ArchiveHabit handles POST /habits/{id}/archive
func (h *TrackingHandler) ArchiveHabit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.habits.Archive(UserID(r.Context()), id); err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListMedia handles GET /media
func (h *TrackingHandler) ListMedia(w http.ResponseWriter, r *http.Request) {
	items, err := h.media.ListRecent(UserID(r.Context()), 50)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if items == nil {
		items = []models.Media{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"media": items})
}

// CreateMedia handles POST /media
func (h *TrackingHandler) CreateMedia(w http.ResponseWriter, r *http.Request) {
	var req models.CreateMediaRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.Title == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}
	status := req.Status
	if status == "" {
		status = models.MediaPlanned
	}
	if !status.IsValid() {
		writeError(w, http.StatusBadRequest, "invalid status")
		return
	}

	now := time.Now().Unix()
	item := &models.Media{
		ID:        uuid.New().String(),
		UserID:    UserID(r.Context()),
		Title:     req.Title,
		Type:      req.Type,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := h.media.Insert(item); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

// UpdateMedia handles PATCH /media/{id}
func (h *TrackingHandler) UpdateMedia(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req models.UpdateMediaRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.Status != "" && !req.Status.IsValid() {
		writeError(w, http.StatusBadRequest, "invalid status")
		return
	}

	if err := h.media.Update(UserID(r.Context()), id, req.Status, req.Rating, time.Now().Unix()); err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
