package storage

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"FormationImporter/internal/domain"
	"FormationImporter/internal/ports"
)

// MemoryStore is a map-backed entity store used for dry runs and tests.
// Safe for concurrent jobs, though the pipeline itself is sequential.
type MemoryStore struct {
	mu       sync.Mutex
	entities map[string]*domain.Entity
}

var _ ports.EntityStore = (*MemoryStore)(nil)

// NewMemoryStore builds an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entities: map[string]*domain.Entity{}}
}

func storeKey(kind domain.EntityKind, key string) string {
	return string(kind) + "\x00" + key
}

// FindEntity returns the stored entity or nil.
func (s *MemoryStore) FindEntity(ctx context.Context, kind domain.EntityKind, key string) (*domain.Entity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entity, ok := s.entities[storeKey(kind, key)]; ok {
		copied := *entity
		return &copied, nil
	}
	return nil, nil
}

// CreateEntity stores a new entity with a fresh id.
func (s *MemoryStore) CreateEntity(ctx context.Context, kind domain.EntityKind, key string, fields map[string]string) (*domain.Entity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entity := &domain.Entity{
		ID:     uuid.NewString(),
		Kind:   kind,
		Key:    key,
		Fields: fields,
	}
	s.entities[storeKey(kind, key)] = entity

	copied := *entity
	return &copied, nil
}

// CreateOrUpdatePrimary upserts by business identifier.
func (s *MemoryStore) CreateOrUpdatePrimary(ctx context.Context, kind domain.EntityKind, businessID string, fields map[string]string) (*domain.Entity, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.entities[storeKey(kind, businessID)]; ok {
		existing.Fields = fields
		copied := *existing
		return &copied, false, nil
	}

	entity := &domain.Entity{
		ID:     uuid.NewString(),
		Kind:   kind,
		Key:    businessID,
		Fields: fields,
	}
	s.entities[storeKey(kind, businessID)] = entity

	copied := *entity
	return &copied, true, nil
}

// Count reports how many entities of a kind are stored.
func (s *MemoryStore) Count(kind domain.EntityKind) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, entity := range s.entities {
		if entity.Kind == kind {
			n++
		}
	}
	return n
}
