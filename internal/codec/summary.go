package codec

import (
	"io"
	"strings"

	"stixgraph/internal/domain"
)

// SummaryCodec writes node and edge counts as JSON or YAML
type SummaryCodec struct {
	format string
	indent string
}

// NewSummaryCodec creates a summary codec for json or yaml
func NewSummaryCodec(format string, opts Options) (*SummaryCodec, error) {
	switch f := strings.ToLower(format); f {
	case FormatJSON, FormatYAML:
		return &SummaryCodec{format: f, indent: opts.indent()}, nil
	}
	return nil, &domain.UnsupportedFormatError{Format: format}
}

// Format returns the codec format identifier
func (c *SummaryCodec) Format() string {
	return c.format
}

// Export writes domain.Summarize(g)
func (c *SummaryCodec) Export(g *domain.Graph, w io.Writer) error {
	summary := domain.Summarize(g)
	if c.format == FormatYAML {
		return encodeYAML(w, summary)
	}
	return encodeJSON(w, summary, c.indent)
}
