package source

import (
	"context"
	"errors"

	"stixgraph/internal/domain"
	"stixgraph/internal/query"
)

// CompositeSource queries its children in order and concatenates the results
type CompositeSource struct {
	sources []Source
}

// NewCompositeSource combines sources
func NewCompositeSource(sources ...Source) *CompositeSource {
	return &CompositeSource{sources: sources}
}

// Sources returns the children in query order
func (c *CompositeSource) Sources() []Source {
	return c.sources
}

// Query runs filters against every child
func (c *CompositeSource) Query(ctx context.Context, filters []query.Filter) ([]domain.Object, error) {
	objects := make([]domain.Object, 0)
	for _, src := range c.sources {
		found, err := src.Query(ctx, filters)
		if err != nil {
			return nil, err
		}
		objects = append(objects, found...)
	}
	return objects, nil
}

// Close closes every child
func (c *CompositeSource) Close() error {
	var errs []error
	for _, src := range c.sources {
		if err := src.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
