package source

import (
	"context"
	"fmt"

	"stixgraph/internal/domain"
	"stixgraph/internal/query"
	"stixgraph/internal/repository"
	"stixgraph/internal/repository/sqlite"
)

// MemorySource holds a fully loaded object list in an in-memory index
type MemorySource struct {
	location string
	repo     repository.ObjectRepository
}

// NewMemorySource indexes objects. location only labels errors.
func NewMemorySource(ctx context.Context, location string, objects []domain.Object) (*MemorySource, error) {
	repo, err := sqlite.NewMemory()
	if err != nil {
		return nil, fmt.Errorf("failed to create object index: %w", err)
	}

	if err := repo.Insert(ctx, objects); err != nil {
		repo.Close()
		return nil, &domain.SourceError{Location: location, Err: err}
	}

	return &MemorySource{location: location, repo: repo}, nil
}

// Location returns the file or URL the objects came from
func (s *MemorySource) Location() string {
	return s.location
}

// Query returns the matching objects in load order
func (s *MemorySource) Query(ctx context.Context, filters []query.Filter) ([]domain.Object, error) {
	objects, err := s.repo.Query(ctx, filters)
	if err != nil {
		return nil, &domain.SourceError{Location: s.location, Err: err}
	}
	return objects, nil
}

// Close releases the index
func (s *MemorySource) Close() error {
	return s.repo.Close()
}
