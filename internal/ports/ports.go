package ports

import (
	"context"

	"FormationImporter/internal/domain"
)

// EntityStore persists import entities addressable by natural/business key.
// Implementations back the reconciliation step of an import job.
type EntityStore interface {
	// FindEntity returns the entity with the given kind and natural key,
	// or nil when it does not exist.
	FindEntity(ctx context.Context, kind domain.EntityKind, key string) (*domain.Entity, error)

	// CreateEntity stores a new entity under the given natural key.
	CreateEntity(ctx context.Context, kind domain.EntityKind, key string, fields map[string]string) (*domain.Entity, error)

	// CreateOrUpdatePrimary upserts the primary entity of an import row,
	// keyed by its business identifier. The boolean reports whether the
	// entity was created (true) or updated (false).
	CreateOrUpdatePrimary(ctx context.Context, kind domain.EntityKind, businessID string, fields map[string]string) (*domain.Entity, bool, error)
}

// ProgressFunc observes cumulative import progress. Invoked synchronously
// after each row, in strict row order.
type ProgressFunc func(domain.ImportProgress)
