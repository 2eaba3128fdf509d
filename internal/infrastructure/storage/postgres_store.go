package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"FormationImporter/internal/domain"
	"FormationImporter/internal/ports"
)

const uniqueViolation = "23505"

// PostgresStore persists import entities in a single import_entities table
// (id uuid, kind text, natural_key text, attrs jsonb) with a unique
// constraint on (kind, natural_key).
type PostgresStore struct {
	db      *sql.DB
	builder sq.StatementBuilderType
}

var _ ports.EntityStore = (*PostgresStore)(nil)

// NewPostgresStore wires a sql.DB implementation.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{
		db:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// FindEntity returns the entity with the given kind and natural key, or nil.
func (s *PostgresStore) FindEntity(ctx context.Context, kind domain.EntityKind, key string) (*domain.Entity, error) {
	query, args, err := s.builder.
		Select("id", "attrs").
		From("import_entities").
		Where(sq.Eq{"kind": string(kind), "natural_key": key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build find query: %w", err)
	}

	var (
		id    string
		attrs []byte
	)
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&id, &attrs)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find entity: %w", err)
	}

	fields := map[string]string{}
	if len(attrs) > 0 {
		if err := json.Unmarshal(attrs, &fields); err != nil {
			return nil, fmt.Errorf("decode attrs: %w", err)
		}
	}

	return &domain.Entity{ID: id, Kind: kind, Key: key, Fields: fields}, nil
}

// CreateEntity inserts a new entity. A concurrent job creating the same
// natural key surfaces the unique violation to the caller, which records it
// as a per-row error instead of crashing the job.
func (s *PostgresStore) CreateEntity(ctx context.Context, kind domain.EntityKind, key string, fields map[string]string) (*domain.Entity, error) {
	attrs, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("encode attrs: %w", err)
	}

	id := uuid.NewString()
	query, args, err := s.builder.
		Insert("import_entities").
		Columns("id", "kind", "natural_key", "attrs").
		Values(id, string(kind), key, attrs).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert query: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, fmt.Errorf("%s %q already exists: %w", kind, key, err)
		}
		return nil, fmt.Errorf("create entity: %w", err)
	}

	return &domain.Entity{ID: id, Kind: kind, Key: key, Fields: fields}, nil
}

// CreateOrUpdatePrimary upserts the primary row entity by business id.
// The xmax = 0 check distinguishes a fresh insert from a conflict update.
func (s *PostgresStore) CreateOrUpdatePrimary(ctx context.Context, kind domain.EntityKind, businessID string, fields map[string]string) (*domain.Entity, bool, error) {
	attrs, err := json.Marshal(fields)
	if err != nil {
		return nil, false, fmt.Errorf("encode attrs: %w", err)
	}

	query, args, err := s.builder.
		Insert("import_entities").
		Columns("id", "kind", "natural_key", "attrs").
		Values(uuid.NewString(), string(kind), businessID, attrs).
		Suffix(`ON CONFLICT (kind, natural_key) DO UPDATE
                SET attrs = EXCLUDED.attrs, updated_at = NOW()
                RETURNING id, (xmax = 0)`).
		ToSql()
	if err != nil {
		return nil, false, fmt.Errorf("build upsert query: %w", err)
	}

	var (
		id      string
		created bool
	)
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&id, &created); err != nil {
		return nil, false, fmt.Errorf("upsert %s %q: %w", kind, businessID, err)
	}

	return &domain.Entity{ID: id, Kind: kind, Key: businessID, Fields: fields}, created, nil
}
