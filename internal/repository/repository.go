package repository

import (
	"context"

	"stixgraph/internal/domain"
	"stixgraph/internal/query"
)

// ObjectRepository stores STIX objects and answers filter queries over them
type ObjectRepository interface {
	// Insert appends objects, keeping their order
	Insert(ctx context.Context, objects []domain.Object) error

	// Query returns the objects matching every filter, in insertion order
	Query(ctx context.Context, filters []query.Filter) ([]domain.Object, error)

	// Count returns the number of stored objects
	Count(ctx context.Context) (int, error)

	// Close releases resources
	Close() error
}
