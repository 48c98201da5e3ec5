package api

import (
	"net/http"

	"github.com/evharlow/lumen/internal/ai"
	"github.com/evharlow/lumen/internal/models"
	"github.com/evharlow/lumen/internal/store"
)

type HealthHandler struct {
	db     *store.DB
	engine *ai.Client
}

func NewHealthHandler(db *store.DB, engine *ai.Client) *HealthHandler {
	return &HealthHandler{db: db, engine: engine}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	resp := models.HealthResponse{
		Status: "ok",
	}

	// An unreachable engine degrades analysis but the service still works,
	// so it never takes health below "degraded".
	if err := h.engine.HealthCheck(r.Context()); err != nil {
		resp.Engine = models.ServiceCheck{Status: "error", Message: err.Error()}
		resp.Status = "degraded"
	} else {
		resp.Engine = models.ServiceCheck{Status: "ok"}
	}

	count, err := h.db.EntryCount()
	if err != nil {
		resp.DB = models.ServiceCheck{Status: "error", Message: err.Error()}
		resp.Status = "degraded"
	} else {
		resp.DB = models.ServiceCheck{Status: "ok"}
		resp.EntryCount = count
	}

	status := http.StatusOK
	if resp.Status != "ok" {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, resp)
}
