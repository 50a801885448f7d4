package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"

	"github.com/heshanf/agridataset-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type datasetRepo interface {
	List(ctx context.Context, filter domain.DatasetFilter) ([]domain.TranslationRecord, error)
	AggregateCounts(ctx context.Context) ([]domain.SubdomainStat, error)
	CountAll(ctx context.Context) (int, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service exposes read and export operations over the stored dataset.
type Service struct {
	log     *slog.Logger
	dataset datasetRepo
}

// NewService creates a new dataset read service.
func NewService(logger *slog.Logger, dataset datasetRepo) *Service {
	return &Service{
		log:     logger.With("service", "dataset"),
		dataset: dataset,
	}
}

// List returns stored records, newest first, optionally filtered by subdomain.
func (s *Service) List(ctx context.Context, filter domain.DatasetFilter) ([]domain.TranslationRecord, error) {
	if filter.Subdomain != "" && !filter.Subdomain.IsValid() {
		return nil, fmt.Errorf("unknown subdomain %q: %w", filter.Subdomain, domain.ErrValidation)
	}
	return s.dataset.List(ctx, filter)
}

// Count returns the total number of stored records.
func (s *Service) Count(ctx context.Context) (int, error) {
	return s.dataset.CountAll(ctx)
}

// Statistics returns the subdomain/kind record counts, ordered by subdomain
// then kind. Only combinations with at least one record appear.
func (s *Service) Statistics(ctx context.Context) ([]domain.SubdomainStat, error) {
	stats, err := s.dataset.AggregateCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("aggregate counts: %w", err)
	}
	return stats, nil
}

var csvHeader = []string{
	"sinhala", "singlish1", "singlish2", "singlish3",
	"english1", "english2", "english3", "subdomain", "type",
}

// ExportCSV streams the dataset (optionally one subdomain) to w as UTF-8 CSV.
// A byte-order mark is written first so spreadsheet tools detect the encoding
// and render Sinhala script correctly.
func (s *Service) ExportCSV(ctx context.Context, w io.Writer, sub domain.Subdomain) error {
	if sub != "" && !sub.IsValid() {
		return fmt.Errorf("unknown subdomain %q: %w", sub, domain.ErrValidation)
	}

	records, err := s.dataset.List(ctx, domain.DatasetFilter{Subdomain: sub})
	if err != nil {
		return fmt.Errorf("load records: %w", err)
	}

	if _, err := w.Write([]byte("\xEF\xBB\xBF")); err != nil {
		return fmt.Errorf("write BOM: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, rec := range records {
		if err := cw.Write(csvRow(rec)); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}

	s.log.InfoContext(ctx, "dataset exported",
		"subdomain", sub,
		"records", len(records),
	)
	return nil
}

func csvRow(rec domain.TranslationRecord) []string {
	return []string{
		rec.SourceText,
		rec.Roman1,
		deref(rec.Roman2),
		deref(rec.Roman3),
		rec.English1,
		rec.English2,
		rec.English3,
		rec.Subdomain.String(),
		rec.Kind.String(),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
