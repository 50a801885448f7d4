package rest

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/heshanf/agridataset-backend/internal/domain"
)

// datasetService defines the minimal interface needed by DatasetHandler.
type datasetService interface {
	List(ctx context.Context, filter domain.DatasetFilter) ([]domain.TranslationRecord, error)
	Statistics(ctx context.Context) ([]domain.SubdomainStat, error)
	ExportCSV(ctx context.Context, w io.Writer, sub domain.Subdomain) error
}

// DatasetHandler serves read and export endpoints over the stored dataset.
type DatasetHandler struct {
	svc datasetService
	log *slog.Logger
}

// NewDatasetHandler creates a DatasetHandler.
func NewDatasetHandler(svc datasetService, logger *slog.Logger) *DatasetHandler {
	return &DatasetHandler{svc: svc, log: logger.With("handler", "dataset")}
}

// Subdomains handles GET /api/subdomains.
func (h *DatasetHandler) Subdomains(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, domain.Subdomains())
}

// List handles GET /api/datasets.
func (h *DatasetHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := domain.DatasetFilter{
		Subdomain: domain.Subdomain(r.URL.Query().Get("subdomain")),
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		filter.Limit = limit
	}

	records, err := h.svc.List(r.Context(), filter)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, records)
}

// Statistics handles GET /api/statistics.
func (h *DatasetHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Statistics(r.Context())
	if err != nil {
		h.log.ErrorContext(r.Context(), "statistics failed", slog.Any("error", err))
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

// ExportCSV handles GET /api/export-csv. The export is buffered so a storage
// failure still yields a clean error status instead of a truncated download.
func (h *DatasetHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	sub := domain.Subdomain(r.URL.Query().Get("subdomain"))

	var buf bytes.Buffer
	if err := h.svc.ExportCSV(r.Context(), &buf, sub); err != nil {
		h.log.ErrorContext(r.Context(), "csv export failed",
			slog.String("subdomain", sub.String()),
			slog.Any("error", err),
		)
		writeDomainError(w, err)
		return
	}

	filename := "agricultural_dataset"
	if sub != "" {
		filename += "_" + sub.String()
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s.csv", filename))
	w.Write(buf.Bytes()) //nolint:errcheck
}
