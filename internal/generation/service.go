package generation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heshanf/agridataset-backend/internal/config"
	"github.com/heshanf/agridataset-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type datasetRepo interface {
	InsertIfNew(ctx context.Context, rec *domain.TranslationRecord) (*domain.TranslationRecord, error)
	SourceTexts(ctx context.Context, sub domain.Subdomain) ([]string, error)
}

type textGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// BatchResult summarizes one generation run. Every candidate returned by the
// model is accounted for in exactly one counter.
type BatchResult struct {
	Generated  int                        `json:"generated"`
	Duplicates int                        `json:"duplicates"`
	Rejected   int                        `json:"rejected"`
	Errors     int                        `json:"errors"`
	Items      []domain.TranslationRecord `json:"items"`
}

// Service orchestrates a generation batch: prompt assembly, the LLM call,
// response recovery and persistence of the surviving records.
type Service struct {
	log     *slog.Logger
	dataset datasetRepo
	llm     textGenerator
	cfg     config.GenerationConfig
}

// NewService creates a new generation service.
func NewService(logger *slog.Logger, dataset datasetRepo, llm textGenerator, cfg config.GenerationConfig) *Service {
	return &Service{
		log:     logger.With("service", "generation"),
		dataset: dataset,
		llm:     llm,
		cfg:     cfg,
	}
}

// GenerateBatch produces up to count new records for the given subdomain.
// Malformed model output aborts the whole batch; failures on individual
// records (validation, duplicates, storage errors) only affect that record.
func (s *Service) GenerateBatch(ctx context.Context, sub domain.Subdomain, count int) (*BatchResult, error) {
	if !sub.IsValid() {
		return nil, fmt.Errorf("unknown subdomain %q: %w", sub, domain.ErrValidation)
	}
	if count <= 0 {
		count = s.cfg.DefaultCount
	}
	if count > s.cfg.MaxCount {
		count = s.cfg.MaxCount
	}

	known, err := s.dataset.SourceTexts(ctx, sub)
	if err != nil {
		return nil, fmt.Errorf("load known terms: %w", err)
	}

	prompt, err := BuildPrompt(sub, count, known, s.cfg.KnownTermsBudget)
	if err != nil {
		return nil, err
	}

	raw, err := s.llm.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	candidates, err := Normalize(raw)
	if err != nil {
		s.log.ErrorContext(ctx, "unrecoverable model response",
			"subdomain", sub,
			"response_len", len(raw),
			"error", err,
		)
		return nil, err
	}

	result := &BatchResult{Items: []domain.TranslationRecord{}}
	for _, c := range candidates {
		rec, err := Coerce(c, sub)
		if err != nil {
			result.Rejected++
			continue
		}

		stored, err := s.dataset.InsertIfNew(ctx, &rec)
		switch {
		case err == nil:
			result.Generated++
			result.Items = append(result.Items, *stored)
		case errors.Is(err, domain.ErrAlreadyExists):
			result.Duplicates++
		default:
			result.Errors++
			s.log.WarnContext(ctx, "failed to store record",
				"subdomain", sub,
				"error", err,
			)
		}
	}

	s.log.InfoContext(ctx, "batch complete",
		"subdomain", sub,
		"requested", count,
		"candidates", len(candidates),
		"generated", result.Generated,
		"duplicates", result.Duplicates,
		"rejected", result.Rejected,
		"errors", result.Errors,
	)

	return result, nil
}
