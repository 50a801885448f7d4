package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/heshanf/agridataset-backend/internal/domain"
	"github.com/heshanf/agridataset-backend/internal/generation"
)

// generationService defines the minimal interface needed by GenerateHandler.
type generationService interface {
	GenerateBatch(ctx context.Context, sub domain.Subdomain, count int) (*generation.BatchResult, error)
}

// GenerateHandler serves the batch-generation endpoint.
type GenerateHandler struct {
	svc generationService
	log *slog.Logger
}

// NewGenerateHandler creates a GenerateHandler.
func NewGenerateHandler(svc generationService, logger *slog.Logger) *GenerateHandler {
	return &GenerateHandler{svc: svc, log: logger.With("handler", "generate")}
}

type generateBatchRequest struct {
	Subdomain string `json:"subdomain"`
	Count     int    `json:"count"`
}

// GenerateBatch handles POST /api/generate-batch.
func (h *GenerateHandler) GenerateBatch(w http.ResponseWriter, r *http.Request) {
	var req generateBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Subdomain == "" {
		writeError(w, http.StatusBadRequest, "subdomain is required")
		return
	}

	result, err := h.svc.GenerateBatch(r.Context(), domain.Subdomain(req.Subdomain), req.Count)
	if err != nil {
		h.log.ErrorContext(r.Context(), "batch generation failed",
			slog.String("subdomain", req.Subdomain),
			slog.Any("error", err),
		)
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
