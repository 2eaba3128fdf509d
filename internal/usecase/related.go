package usecase

import (
	"context"

	"FormationImporter/internal/domain"
	"FormationImporter/internal/ports"
)

// RelatedTracker resolves related entities (company, trainer, salesperson,
// course plan) by natural key, creating them when absent, and remembers which
// ones were newly created so the final summary can surface them to the
// operator. Lookups are cached for the lifetime of one job, so repeated rows
// never create the same entity twice.
type RelatedTracker struct {
	store ports.EntityStore
	cache map[string]*domain.Entity

	createdOrder []string
	created      map[string][]string
}

// NewRelatedTracker builds a tracker bound to one store.
func NewRelatedTracker(store ports.EntityStore) *RelatedTracker {
	return &RelatedTracker{
		store:   store,
		cache:   map[string]*domain.Entity{},
		created: map[string][]string{},
	}
}

// FindOrCreate returns the entity with the given kind and natural key,
// creating it when the store has none. An empty key resolves to nil without
// touching the store.
func (t *RelatedTracker) FindOrCreate(ctx context.Context, kind domain.EntityKind, key string, fields map[string]string) (*domain.Entity, error) {
	if key == "" {
		return nil, nil
	}

	cacheKey := string(kind) + "\x00" + key
	if entity, ok := t.cache[cacheKey]; ok {
		return entity, nil
	}

	entity, err := t.store.FindEntity(ctx, kind, key)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		entity, err = t.store.CreateEntity(ctx, kind, key, fields)
		if err != nil {
			return nil, err
		}
		if _, seen := t.created[string(kind)]; !seen {
			t.createdOrder = append(t.createdOrder, string(kind))
		}
		t.created[string(kind)] = append(t.created[string(kind)], key)
	}

	t.cache[cacheKey] = entity
	return entity, nil
}

// Created returns the natural keys of newly created entities grouped by
// category, in creation order.
func (t *RelatedTracker) Created() map[string][]string {
	out := make(map[string][]string, len(t.created))
	for _, kind := range t.createdOrder {
		out[kind] = append([]string(nil), t.created[kind]...)
	}
	return out
}
