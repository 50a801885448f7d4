// Package dataset implements the translation-record repository using
// PostgreSQL. Deduplication is enforced by the database itself via the
// UNIQUE (source_text, subdomain) constraint and ON CONFLICT DO NOTHING,
// so concurrent writers of a colliding key race safely without caller-side
// locking.
package dataset

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heshanf/agridataset-backend/internal/adapter/postgres"
	"github.com/heshanf/agridataset-backend/internal/domain"
)

const table = "datasets"

var columns = []string{
	"id", "source_text", "roman1", "roman2", "roman3",
	"english1", "english2", "english3", "subdomain", "kind", "created_at",
}

var insertColumns = []string{
	"source_text", "roman1", "roman2", "roman3",
	"english1", "english2", "english3", "subdomain", "kind",
}

// psql builds queries with PostgreSQL $N placeholders.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides translation-record persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new dataset repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// InsertIfNew persists a record unless its (source_text, subdomain) pair
// already exists, in which case it returns domain.ErrAlreadyExists and leaves
// the stored record untouched. ID and CreatedAt are assigned by the database
// and returned on the inserted record.
func (r *Repo) InsertIfNew(ctx context.Context, rec *domain.TranslationRecord) (*domain.TranslationRecord, error) {
	query := psql.Insert(table).
		Columns(insertColumns...).
		Values(
			rec.SourceText, rec.Roman1, rec.Roman2, rec.Roman3,
			rec.English1, rec.English2, rec.English3, rec.Subdomain, rec.Kind,
		).
		Suffix("ON CONFLICT (source_text, subdomain) DO NOTHING RETURNING " + strings.Join(columns, ", "))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert: %w", err)
	}

	var inserted domain.TranslationRecord
	if err := pgxscan.Get(ctx, r.db, &inserted, sql, args...); err != nil {
		// DO NOTHING yields zero RETURNING rows on conflict.
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("dataset %q/%s: %w", rec.SourceText, rec.Subdomain, domain.ErrAlreadyExists)
		}
		return nil, mapError(err)
	}

	return &inserted, nil
}

// List returns records newest-first, optionally filtered by subdomain.
func (r *Repo) List(ctx context.Context, filter domain.DatasetFilter) ([]domain.TranslationRecord, error) {
	query := psql.Select(columns...).
		From(table).
		OrderBy("created_at DESC", "id DESC")

	if filter.Subdomain != "" {
		query = query.Where(squirrel.Eq{"subdomain": filter.Subdomain})
	}
	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list: %w", err)
	}

	var records []domain.TranslationRecord
	if err := pgxscan.Select(ctx, r.db, &records, sql, args...); err != nil {
		return nil, mapError(err)
	}
	if records == nil {
		records = []domain.TranslationRecord{}
	}

	return records, nil
}

// SourceTexts returns every stored source text for a subdomain. The result is
// the duplicate-avoidance snapshot embedded into generation prompts.
func (r *Repo) SourceTexts(ctx context.Context, sub domain.Subdomain) ([]string, error) {
	query := psql.Select("source_text").
		From(table).
		Where(squirrel.Eq{"subdomain": sub}).
		OrderBy("id ASC")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build source texts: %w", err)
	}

	var texts []string
	if err := pgxscan.Select(ctx, r.db, &texts, sql, args...); err != nil {
		return nil, mapError(err)
	}

	return texts, nil
}

// AggregateCounts returns the subdomain/kind cross-tabulation. Only observed
// combinations appear.
func (r *Repo) AggregateCounts(ctx context.Context) ([]domain.SubdomainStat, error) {
	query := psql.Select("subdomain", "kind", "COUNT(*) AS count").
		From(table).
		GroupBy("subdomain", "kind").
		OrderBy("subdomain", "kind")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build aggregate counts: %w", err)
	}

	var stats []domain.SubdomainStat
	if err := pgxscan.Select(ctx, r.db, &stats, sql, args...); err != nil {
		return nil, mapError(err)
	}
	if stats == nil {
		stats = []domain.SubdomainStat{}
	}

	return stats, nil
}

// CountAll returns the total number of stored records.
func (r *Repo) CountAll(ctx context.Context) (int, error) {
	sql, args, err := psql.Select("COUNT(*)").From(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count: %w", err)
	}

	var count int
	if err := pgxscan.Get(ctx, r.db, &count, sql, args...); err != nil {
		return 0, mapError(err)
	}

	return count, nil
}

// mapError converts pgx/pgconn errors into domain errors.
func mapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("dataset: %w", err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("dataset: %w", domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("dataset: %w", domain.ErrAlreadyExists)
		case "23514": // check_violation
			return fmt.Errorf("dataset: %w", domain.ErrValidation)
		}
	}

	return fmt.Errorf("dataset: %w", err)
}
