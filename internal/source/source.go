package source

import (
	"context"
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"stixgraph/internal/ctxlog"
	"stixgraph/internal/domain"
	"stixgraph/internal/loader"
	"stixgraph/internal/query"
)

// DefaultHTTPTimeout bounds a single remote fetch
const DefaultHTTPTimeout = 60 * time.Second

// ErrNoLocations is returned by Open when called without locations
var ErrNoLocations = errors.New("no source locations given")

var errUnknownLocation = errors.New("not a directory, file or http(s) URL")

// Source answers filter queries over a collection of objects
type Source interface {
	// Query returns the objects matching every filter
	Query(ctx context.Context, filters []query.Filter) ([]domain.Object, error)

	// Close releases resources
	Close() error
}

// Options controls how Open loads locations
type Options struct {
	// HTTPTimeout bounds each remote fetch; zero means DefaultHTTPTimeout
	HTTPTimeout time.Duration

	// MaxParallel limits concurrent loads; zero or less is unlimited
	MaxParallel int

	// Client overrides the HTTP client used for URLs
	Client *http.Client
}

func (o Options) client() *http.Client {
	if o.Client != nil {
		return o.Client
	}
	timeout := o.HTTPTimeout
	if timeout <= 0 {
		timeout = DefaultHTTPTimeout
	}
	return &http.Client{Timeout: timeout}
}

// IsURL reports whether location names an http or https resource
func IsURL(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}

// Open turns each location into a Source. Files and URLs are loaded in
// parallel. One location yields its own Source; several yield a
// CompositeSource in argument order.
func Open(ctx context.Context, locations []string, opts Options) (Source, error) {
	if len(locations) == 0 {
		return nil, ErrNoLocations
	}

	client := opts.client()
	sources := make([]Source, len(locations))

	g, gctx := errgroup.WithContext(ctx)
	if opts.MaxParallel > 0 {
		g.SetLimit(opts.MaxParallel)
	}

	for i, location := range locations {
		g.Go(func() error {
			src, err := openLocation(gctx, location, client)
			if err != nil {
				return err
			}
			sources[i] = src
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		for _, src := range sources {
			if src != nil {
				src.Close()
			}
		}
		return nil, err
	}

	if len(sources) == 1 {
		return sources[0], nil
	}
	return NewCompositeSource(sources...), nil
}

func openLocation(ctx context.Context, location string, client *http.Client) (Source, error) {
	logger := ctxlog.FromContext(ctx)

	if IsURL(location) {
		objects, err := loader.Fetch(ctx, client, location)
		if err != nil {
			return nil, &domain.SourceError{Location: location, Err: err}
		}
		logger.Debug("fetched source", "location", location, "objects", len(objects))
		return NewMemorySource(ctx, location, objects)
	}

	info, err := os.Stat(location)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &domain.SourceError{Location: location, Err: errUnknownLocation}
		}
		return nil, &domain.SourceError{Location: location, Err: err}
	}

	if info.IsDir() {
		logger.Debug("opened directory store", "location", location)
		return NewFileSystemSource(location), nil
	}

	objects, err := loader.LoadFile(location)
	if err != nil {
		return nil, &domain.SourceError{Location: location, Err: err}
	}
	logger.Debug("loaded source", "location", location, "objects", len(objects))
	return NewMemorySource(ctx, location, objects)
}
