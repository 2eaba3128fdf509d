package source

import (
	"context"
	"fmt"

	"FormationImporter/internal/domain"
)

// Source loads one import file format (CSV export, XLSX workbook, etc.) into
// the format-independent sheet the pipeline runs on.
type Source interface {
	Name() string
	Load(ctx context.Context, path string) (domain.Sheet, error)
}

// Registry keeps a mapping from format names to their source implementations.
type Registry struct {
	sources map[string]Source
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{sources: map[string]Source{}}
}

// Register adds or replaces a source implementation.
func (r *Registry) Register(src Source) {
	if r.sources == nil {
		r.sources = map[string]Source{}
	}
	r.sources[src.Name()] = src
}

// Resolve returns a source by format name or an error if it is absent.
func (r *Registry) Resolve(name string) (Source, error) {
	if src, ok := r.sources[name]; ok {
		return src, nil
	}
	return nil, fmt.Errorf("source format %s is not registered", name)
}
