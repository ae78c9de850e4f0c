package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"stixgraph/internal/codec"
	"stixgraph/internal/ctxlog"
	"stixgraph/internal/domain"
	"stixgraph/internal/query"
	"stixgraph/internal/source"
)

// Options holds the per-run pipeline settings
type Options struct {
	Lifecycle domain.LifecyclePolicy
	Build     domain.BuildOptions
	Aliases   domain.AliasOptions

	// Predicates are ANDed with the filters passed to each call
	Predicates []string
}

// DefaultOptions mirrors the config defaults
func DefaultOptions() Options {
	return Options{
		Lifecycle: domain.DefaultLifecyclePolicy(),
		Aliases:   domain.DefaultAliasOptions(),
	}
}

// GraphService provides the object, graph and alias operations over a source
type GraphService struct {
	source source.Source
	opts   Options
}

// NewGraphService creates a new graph service
func NewGraphService(src source.Source, opts Options) *GraphService {
	return &GraphService{
		source: src,
		opts:   opts,
	}
}

// Objects returns the objects matching every filter that survive the lifecycle policy.
// Filter texts that do not parse are ignored.
func (s *GraphService) Objects(ctx context.Context, filterTexts []string) ([]domain.Object, error) {
	logger := ctxlog.FromContext(ctx)

	texts := make([]string, 0, len(s.opts.Predicates)+len(filterTexts))
	texts = append(texts, s.opts.Predicates...)
	texts = append(texts, filterTexts...)

	filters, ignored := query.ParseAll(texts)
	for _, text := range ignored {
		logger.Debug("ignoring unparseable filter", "filter", text)
	}

	objects, err := s.source.Query(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("query objects: %w", err)
	}

	kept := domain.FilterObjects(objects, s.opts.Lifecycle)
	logger.Debug("queried objects",
		"filters", len(filters),
		"matched", len(objects),
		"kept", len(kept),
	)

	return kept, nil
}

// Graph builds the graph of the selected objects. Malformed objects abort
// the build unless Build.SkipMalformed is set, in which case each is logged.
func (s *GraphService) Graph(ctx context.Context, filterTexts []string) (*domain.Graph, error) {
	objects, err := s.Objects(ctx, filterTexts)
	if err != nil {
		return nil, err
	}

	g, err := domain.BuildGraph(objects, s.opts.Build)
	if err != nil {
		return nil, fmt.Errorf("build graph: %w", err)
	}

	logger := ctxlog.FromContext(ctx)
	for _, skipped := range g.Skipped {
		logger.Warn("skipped malformed object",
			"id", skipped.ID,
			"type", skipped.Type,
			"missing", skipped.Field,
		)
	}
	logger.Info("built graph",
		"rules", domain.RuleSet,
		"nodes", g.NumNodes(),
		"edges", g.NumEdges(),
		"skipped", len(g.Skipped),
	)

	return g, nil
}

// AliasMap derives the alias map of the selected objects
func (s *GraphService) AliasMap(ctx context.Context, filterTexts []string) (domain.AliasMap, error) {
	objects, err := s.Objects(ctx, filterTexts)
	if err != nil {
		return nil, err
	}

	aliases := domain.BuildAliasMap(objects, s.opts.Aliases)
	ctxlog.FromContext(ctx).Info("built alias map", "aliases", len(aliases))

	return aliases, nil
}

// ExportGraph builds the graph and writes it with exporter
func (s *GraphService) ExportGraph(ctx context.Context, filterTexts []string, exporter codec.Exporter, w io.Writer) error {
	g, err := s.Graph(ctx, filterTexts)
	if err != nil {
		return err
	}

	return exporter.Export(g, w)
}

// ExportAliases builds the alias map and writes it with exporter
func (s *GraphService) ExportAliases(ctx context.Context, filterTexts []string, exporter codec.AliasExporter, w io.Writer) error {
	aliases, err := s.AliasMap(ctx, filterTexts)
	if err != nil {
		return err
	}

	return exporter.ExportAliases(aliases, w)
}

// ExportObjects writes the selected objects as a JSON array
func (s *GraphService) ExportObjects(ctx context.Context, filterTexts []string, opts codec.Options, w io.Writer) error {
	objects, err := s.Objects(ctx, filterTexts)
	if err != nil {
		return err
	}

	return codec.ExportObjects(objects, w, opts)
}

// LoadGraph reads a graph previously written by the json or yaml exporter.
// The format follows the file extension.
func LoadGraph(ctx context.Context, path string) (*domain.Graph, error) {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	importer, err := codec.LookupImporter(format)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &domain.SourceError{Location: path, Err: err}
	}
	defer f.Close()

	g, err := importer.Parse(f)
	if err != nil {
		return nil, &domain.SourceError{Location: path, Err: err}
	}

	ctxlog.FromContext(ctx).Debug("loaded graph",
		"location", path,
		"format", importer.Format(),
		"nodes", g.NumNodes(),
		"edges", g.NumEdges(),
	)
	return g, nil
}
