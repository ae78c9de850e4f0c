package codec

import (
	"io"
	"strings"

	"stixgraph/internal/domain"
)

// Importer interface for reading a graph back from an exported document
type Importer interface {
	Parse(r io.Reader) (*domain.Graph, error)
	Format() string
}

// Exporter interface for writing a graph in some format
type Exporter interface {
	Export(g *domain.Graph, w io.Writer) error
	Format() string
}

// AliasExporter interface for writing an alias map
type AliasExporter interface {
	ExportAliases(m domain.AliasMap, w io.Writer) error
	Format() string
}

// Format names
const (
	FormatTriples = "triples"
	FormatQuads   = "quads"
	FormatDOT     = "dot"
	FormatJSON    = "json"
	FormatYAML    = "yaml"
	FormatCSV     = "csv"
	FormatTSV     = "tsv"
)

// DefaultSeparator separates triple and quad fields
const DefaultSeparator = "\t"

// DefaultIndent is the JSON indent width
const DefaultIndent = 4

// Options carries the settings shared by the exporters
type Options struct {
	// Separator between triple/quad fields; empty means DefaultSeparator
	Separator string

	// Tabs forces a tab separator regardless of Separator
	Tabs bool

	// Namespace tags every quad
	Namespace string

	// Indent is the JSON indent width; zero or less writes compact JSON
	Indent int
}

// DefaultOptions returns tab-separated output with a four space JSON indent
func DefaultOptions() Options {
	return Options{Separator: DefaultSeparator, Indent: DefaultIndent}
}

func (o Options) separator() string {
	if o.Tabs || o.Separator == "" {
		return DefaultSeparator
	}
	return o.Separator
}

func (o Options) indent() string {
	if o.Indent <= 0 {
		return ""
	}
	return strings.Repeat(" ", o.Indent)
}

// Lookup returns the graph exporter for format
func Lookup(format string, opts Options) (Exporter, error) {
	switch strings.ToLower(format) {
	case FormatTriples:
		return NewTripleCodec(opts), nil
	case FormatQuads:
		return NewQuadCodec(opts), nil
	case FormatDOT:
		return NewDOTCodec(), nil
	case FormatJSON:
		return NewJSONCodec(opts), nil
	case FormatYAML:
		return NewYAMLCodec(), nil
	}
	return nil, &domain.UnsupportedFormatError{Format: format}
}

// LookupImporter returns the graph importer for format
func LookupImporter(format string) (Importer, error) {
	switch strings.ToLower(format) {
	case FormatJSON:
		return NewJSONCodec(DefaultOptions()), nil
	case FormatYAML, "yml":
		return NewYAMLCodec(), nil
	}
	return nil, &domain.UnsupportedFormatError{Format: format}
}

// LookupAlias returns the alias map exporter for format
func LookupAlias(format string, opts Options) (AliasExporter, error) {
	switch strings.ToLower(format) {
	case FormatJSON:
		return NewAliasJSONCodec(opts), nil
	case FormatCSV:
		return NewAliasCSVCodec(','), nil
	case FormatTSV:
		return NewAliasCSVCodec('\t'), nil
	}
	return nil, &domain.UnsupportedFormatError{Format: format}
}
